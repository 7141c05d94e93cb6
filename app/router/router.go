package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"portfolio-gateway/app/controller"
	"portfolio-gateway/metrics"
)

type Controllers struct {
	Status      *controller.StatusController
	Resume      *controller.ResumeController
	Certificate *controller.CertificateController
	Tools       *controller.DocumentController
	Education   *controller.DocumentController
	Skills      *controller.DocumentController
	Static      *controller.StaticController
}

// NewRouter registers every portfolio route.
// allowedOrigin is the CORS origin, "*" allows any
func NewRouter(controllers *Controllers, allowedOrigin string, stats *metrics.Statistic) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	// HEAD on any GET route answers like the GET without a body
	r.Use(middleware.GetHead)
	r.Use(stats.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderXRequestID},
		ExposedHeaders: []string{HeaderXRequestID},
		MaxAge:         300,
	}))

	// Status endpoint
	r.Get("/api/status", controllers.Status.GetStatus)

	// Resume download
	r.Get("/resume", controllers.Resume.Redirect)

	// Certificates routes
	r.Get("/certificates", controllers.Certificate.List)
	r.Get("/certificates/{fileID}/thumbnail", controllers.Certificate.Thumbnail)

	// JSON documents stored in Drive
	r.Get("/tools", controllers.Tools.Get)
	r.Get("/education", controllers.Education.Get)
	r.Get("/skills", controllers.Skills.Get)

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics", stats.Handler())

	// Catch-all: static files, then index.html for any other path
	r.NotFound(controllers.Static.Serve)

	return r
}
