package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/master/entry"
	"github.com/cmlabs-hris/workforce-admin-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the process-level settings the router needs.
type RouterOptions struct {
	AppName        string
	Version        string
	Env            string
	LogLevel       slog.Level
	AllowedOrigins []string

	// UploadsDir is served read-only under /uploads when set
	UploadsDir string
}

type Handlers struct {
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Master     MasterHandler
	Company    CompanyHandler
	HR         HRHandler
}

// entrySegments maps each code/name master kind to its URL segment.
var entrySegments = map[entry.Kind]string{
	entry.KindDepartment:          "departments",
	entry.KindDesignation:         "designations",
	entry.KindCategory:            "categories",
	entry.KindExtraClassification: "extra-classifications",
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	if opts.UploadsDir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(opts.UploadsDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Every API route requires an access token issued by the identity provider
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.GetReport)
			r.Get("/download", h.Attendance.Download)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Put("/update-status", h.Leave.UpdateStatus)
			r.Get("/pending", h.Leave.ListPending)
			r.Get("/monthly", h.Leave.ListMonthly)
			r.Get("/by-type", h.Leave.CountByType)
			r.Get("/year-end-process", h.Leave.YearEndProcess)
		})

		for _, kind := range entry.Kinds() {
			r.Route("/"+entrySegments[kind], func(r chi.Router) {
				r.Get("/", h.Master.ListEntries(kind))
				r.Post("/", h.Master.CreateEntry(kind))
				r.Get("/{id}", h.Master.GetEntry(kind))
				r.Put("/{id}", h.Master.UpdateEntry(kind))
				r.Delete("/{id}", h.Master.DeleteEntry(kind))
			})
		}

		r.Route("/sections", func(r chi.Router) {
			r.Get("/", h.Master.ListSections)
			r.Post("/", h.Master.CreateSection)
			r.Get("/{id}", h.Master.GetSection)
			r.Put("/{id}", h.Master.UpdateSection)
			r.Delete("/{id}", h.Master.DeleteSection)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", h.Company.List)
			r.Post("/", h.Company.Create)
			r.Post("/upload-logo", h.Company.UploadLogo)
			r.Get("/{id}", h.Company.GetByID)
			r.Put("/{id}", h.Company.Update)
			r.Delete("/{id}", h.Company.Delete)
		})

		r.Route("/hr", func(r chi.Router) {
			r.Get("/dashboard", h.HR.Dashboard)
			r.Get("/{kind}", h.HR.ListCases)
			r.Post("/{kind}", h.HR.CreateCase)
		})
	})
	return r
}
