package api

import (
	"net/http"

	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/extract"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/job"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/core/orchestrator"
	"github.com/SagarThalkiya/multi-agent-document-analysis/internal/server/api/handlers"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type RouterConfig struct {
	Registry       *job.Registry
	Orchestrator   *orchestrator.Orchestrator
	Extractor      *extract.Extractor
	MaxUploadBytes int64
}

func SetupRouter(e *echo.Echo, cfg RouterConfig) {
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST"},
	}))
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/api/v1")
	config := huma.DefaultConfig("Multi-Agent Document Analysis API", "1.0.0")
	config.Servers = []*huma.Server{{URL: "/api/v1"}}
	config.Info.Description = "Upload a document, fan it out to parallel analysis agents, poll for aggregated results"

	api := humaecho.NewWithGroup(e, v1, config)

	docs := handlers.NewDocumentsHandler(cfg.Registry, cfg.Orchestrator, cfg.Extractor, cfg.MaxUploadBytes)

	huma.Register(api, huma.Operation{
		OperationID:   "upload-document",
		Method:        http.MethodPost,
		Path:          "/upload",
		Summary:       "Upload a document for analysis",
		Tags:          []string{"Documents"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  cfg.MaxUploadBytes + 1024*1024,
	}, docs.Upload)

	huma.Register(api, huma.Operation{
		OperationID: "start-analysis",
		Method:      http.MethodPost,
		Path:        "/analyze",
		Summary:     "Start analysis for an uploaded document",
		Tags:        []string{"Documents"},
	}, docs.Analyze)

	huma.Register(api, huma.Operation{
		OperationID: "get-results",
		Method:      http.MethodGet,
		Path:        "/results/{job_id}",
		Summary:     "Poll job status and aggregated results",
		Tags:        []string{"Documents"},
	}, docs.Results)
}
