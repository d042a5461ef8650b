package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/config"
	appHTTP "github.com/cmlabs-hris/workforce-admin-go/internal/handler/http"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/cron"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/database"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce-admin-go/internal/pkg/storage"
	"github.com/cmlabs-hris/workforce-admin-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/workforce-admin-go/internal/service/attendance"
	companyService "github.com/cmlabs-hris/workforce-admin-go/internal/service/company"
	"github.com/cmlabs-hris/workforce-admin-go/internal/service/file"
	hrService "github.com/cmlabs-hris/workforce-admin-go/internal/service/hr"
	leaveService "github.com/cmlabs-hris/workforce-admin-go/internal/service/leave"
	"github.com/cmlabs-hris/workforce-admin-go/internal/service/master"
)

const (
	appName    = "workforce-admin"
	appVersion = "v1.0.0"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	policies, err := cfg.LoadPolicyTable()
	if err != nil {
		return fmt.Errorf("load shift policies: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init local storage: %w", err)
	}

	// Repositories
	transactor := postgresql.NewTransactor(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	entryRepo := postgresql.NewEntryRepository(db)
	sectionRepo := postgresql.NewSectionRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	caseRepo := postgresql.NewCaseRepository(db)

	// Services
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Audience)
	fileService := file.NewFileService(fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, policies)
	leaveSvc := leaveService.NewLeaveService(transactor, leaveRequestRepo, leaveBalanceRepo)
	masterSvc := master.NewMasterService(entryRepo, sectionRepo)
	companySvc := companyService.NewCompanyService(companyRepo, fileService)
	hrSvc := hrService.NewHRService(caseRepo)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AppName:        appName,
			Version:        appVersion,
			Env:            cfg.App.Env,
			LogLevel:       cfg.SlogLevel(),
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			UploadsDir:     fileStorage.BasePath(),
		},
		JWTService,
		appHTTP.Handlers{
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Leave:      appHTTP.NewLeaveHandler(leaveSvc),
			Master:     appHTTP.NewMasterHandler(masterSvc),
			Company:    appHTTP.NewCompanyHandler(companySvc),
			HR:         appHTTP.NewHRHandler(hrSvc),
		},
	)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(leaveSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		scheduler.Stop()
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	scheduler.Stop()
	return nil
}
