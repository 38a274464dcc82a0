package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/RMahshie/headphone-power/internal/api/handlers"
	"github.com/RMahshie/headphone-power/internal/calculator"
	"github.com/RMahshie/headphone-power/internal/config"
	"github.com/RMahshie/headphone-power/internal/logging"
	"github.com/RMahshie/headphone-power/pkg/models"
)

// Version is reported by the health endpoint and the OpenAPI document
const Version = "1.0.0"

// NewRouter builds the Chi router with middleware and the Huma API mounted on it
func NewRouter(cfg *config.Config, calc calculator.Service) (*chi.Mux, huma.API) {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logging.RequestLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	humaConfig := huma.DefaultConfig("Headphone Power API", Version)
	humaConfig.DocsPath = "/api/docs"
	api := humachi.New(router, humaConfig)

	RegisterRoutes(api, handlers.NewDriveHandler(calc, cfg.Defaults))

	return router, api
}

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, driveHandler *handlers.DriveHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
	}, func(ctx context.Context, input *struct{}) (*models.HealthResponse, error) {
		resp := &models.HealthResponse{}
		resp.Body.Status = "healthy"
		resp.Body.Version = Version
		resp.Body.Time = time.Now()
		return resp, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "calculateDrive",
		Method:      http.MethodPost,
		Path:        "/api/drive",
		Summary:     "Calculate drive requirements",
		Description: "Computes the voltage, current and power a headphone needs to reach a target SPL",
		Tags:        []string{"Drive"},
	}, driveHandler.CalculateDrive)

	huma.Register(api, huma.Operation{
		OperationID: "getDriveDefaults",
		Method:      http.MethodGet,
		Path:        "/api/drive/defaults",
		Summary:     "Get calculator defaults",
		Description: "Returns the initial form values and the selectable target SPL range",
		Tags:        []string{"Drive"},
	}, driveHandler.GetDefaults)
}
