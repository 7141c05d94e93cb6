package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"portfolio-gateway/app/controller"
	"portfolio-gateway/app/router"
	"portfolio-gateway/config"
	"portfolio-gateway/metrics"
	"portfolio-gateway/service"
)

// App holds the configured HTTP server
type App struct {
	config *config.Config
	server *http.Server
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	// Initialize Drive service
	driveService, err := service.NewDriveService(ctx, service.DriveOptions{
		APIKey:          cfg.DriveAPIKey,
		CredentialsPath: cfg.CredentialsPath,
		UserAgent:       cfg.DriveUserAgent,
		Timeout:         cfg.DriveTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize drive service: %w", err)
	}

	handler := NewHandler(cfg, driveService, metrics.New())

	return &App{
		config: cfg,
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// NewHandler wires services, controllers and routes around a Drive capability
func NewHandler(cfg *config.Config, driveService service.DriveServiceInterface, stats *metrics.Statistic) http.Handler {
	certificateService := service.NewCertificateService(driveService, cfg.CertificatesFolderID)
	documentService := service.NewDocumentService(driveService)
	thumbnailService := service.NewThumbnailService(driveService, cfg.CertificatesFolderID)

	// Create controllers
	controllers := &router.Controllers{
		Status:      controller.NewStatusController(),
		Resume:      controller.NewResumeController(cfg.ResumeFileID),
		Certificate: controller.NewCertificateController(certificateService, thumbnailService, stats),
		Tools:       controller.NewDocumentController(documentService, "/tools", cfg.ToolsFileID, stats),
		Education:   controller.NewDocumentController(documentService, "/education", cfg.EducationFileID, stats),
		Skills:      controller.NewDocumentController(documentService, "/skills", cfg.SkillsFileID, stats),
		Static:      controller.NewStaticController(cfg.PublicDir),
	}

	return router.NewRouter(controllers, cfg.FrontendURL, stats)
}

// Run serves HTTP until ctx is cancelled or the server fails, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("🚀 Server starting on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		log.Printf("🛑 Shutting down server on %s", a.server.Addr)
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		log.Printf("✓ Server stopped")
		return nil
	})

	return g.Wait()
}
