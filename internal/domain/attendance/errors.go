package attendance

import "errors"

var (
	ErrUnsupportedReportType = errors.New("unsupported attendance report type")
	ErrUnsupportedFormat     = errors.New("unsupported export format")
)
