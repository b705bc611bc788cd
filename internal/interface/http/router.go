package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/doc-summarizer/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
	)

	router.GET("/", handler.Home)
	router.GET("/available-models", handler.AvailableModels)
	router.GET("/summary-styles", handler.SummaryStyles)
	router.POST("/process-pdf", limitBody(cfg.HTTP.MaxUploadBytes), handler.ProcessDocument)
	router.POST("/summarize", handler.SummarizeText)
	router.POST("/export", handler.ExportSummary)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
