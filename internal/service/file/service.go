package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const (
	logoDir = "logos"

	// Logos wider or taller than this are scaled down, keeping the aspect ratio
	maxLogoDimension = 512
	maxLogoBytes     = 5 << 20
	// Upper bound on decoded pixels; the header is checked before decoding
	maxLogoPixels = 4096 * 4096
)

var (
	ErrUnsupportedFileType = errors.New("invalid file type: only jpg, jpeg, png allowed")
	ErrInvalidImage        = errors.New("file is not a valid image")
	ErrFileTooLarge        = errors.New("file exceeds the 5 MB limit")
	ErrImageTooLarge       = errors.New("image dimensions exceed 4096x4096 pixels")
)

type FileService interface {
	// UploadCompanyLogo normalizes and stores a company logo, returning the storage key
	UploadCompanyLogo(ctx context.Context, companyCode string, file io.Reader, filename string) (string, error)

	// DeleteLogo removes the stored file behind a logo URL; URLs that were not
	// produced by UploadCompanyLogo are left alone
	DeleteLogo(ctx context.Context, logoURL string) error

	GetFileURL(ctx context.Context, key string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadCompanyLogo implements FileService.
func (s *fileServiceImpl) UploadCompanyLogo(ctx context.Context, companyCode string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", ErrUnsupportedFileType
	}

	buffer, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(buffer) > maxLogoBytes {
		return "", ErrFileTooLarge
	}

	content, format, err := normalizeLogo(buffer)
	if err != nil {
		return "", err
	}

	outExt, contentType := ".jpg", "image/jpeg"
	if format == "png" {
		outExt, contentType = ".png", "image/png"
	}

	newFilename := fmt.Sprintf("%s-logo-%s%s", companyCode, uuid.New().String(), outExt)
	key := path.Join(logoDir, companyCode, newFilename)

	uploadedKey, err := s.storage.Upload(ctx, bytes.NewReader(content), key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload company logo: %w", err)
	}

	return uploadedKey, nil
}

// DeleteLogo implements FileService.
func (s *fileServiceImpl) DeleteLogo(ctx context.Context, logoURL string) error {
	key, ok := s.logoKey(ctx, logoURL)
	if !ok {
		return nil
	}
	return s.storage.Delete(ctx, key)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, key string) (string, error) {
	return s.storage.GetURL(ctx, key)
}

// ==================== HELPER FUNCTIONS ====================

// logoKey maps a public logo URL back to its storage key.
func (s *fileServiceImpl) logoKey(ctx context.Context, logoURL string) (string, bool) {
	prefix, err := s.storage.GetURL(ctx, logoDir)
	if err != nil {
		return "", false
	}
	rest, ok := strings.CutPrefix(logoURL, prefix+"/")
	if !ok {
		return "", false
	}
	key := path.Join(logoDir, rest)
	if !strings.HasPrefix(key, logoDir+"/") {
		return "", false
	}
	return key, true
}

// normalizeLogo decodes the upload, downscales it when needed and re-encodes it in
// its original format. PNG stays PNG so transparency survives.
func normalizeLogo(buffer []byte) ([]byte, string, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(buffer))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, "", ErrInvalidImage
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxLogoPixels {
		return nil, "", ErrImageTooLarge
	}

	img, format, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	bounds := img.Bounds()
	if w, h := bounds.Dx(), bounds.Dy(); w > maxLogoDimension || h > maxLogoDimension {
		img = resizeImage(img, fitWithin(w, h, maxLogoDimension))
	}

	buf := new(bytes.Buffer)
	if format == "png" {
		err = png.Encode(buf, img)
	} else {
		format = "jpeg"
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), format, nil
}

// fitWithin scales w x h so the longer side equals limit.
func fitWithin(w, h, limit int) image.Rectangle {
	if w >= h {
		nh := h * limit / w
		if nh < 1 {
			nh = 1
		}
		return image.Rect(0, 0, limit, nh)
	}
	nw := w * limit / h
	if nw < 1 {
		nw = 1
	}
	return image.Rect(0, 0, nw, limit)
}

// resizeImage resizes an image to the given bounds using high-quality interpolation
func resizeImage(src image.Image, bounds image.Rectangle) image.Image {
	dst := image.NewRGBA(bounds)
	// CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
