package http

import (
	"log/slog"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/doc-summarizer/internal/domain/analysis"
	"github.com/yanqian/doc-summarizer/internal/domain/export"
	"github.com/yanqian/doc-summarizer/internal/domain/summarizer"
	"github.com/yanqian/doc-summarizer/internal/infra/config"
	"github.com/yanqian/doc-summarizer/internal/infra/extractor"
	"github.com/yanqian/doc-summarizer/internal/infra/llm"
	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
	"github.com/yanqian/doc-summarizer/pkg/util"
)

const previewChars = 500

// Handler wires the HTTP transport to domain services.
type Handler struct {
	cfg           *config.Config
	summarizerSvc summarizer.Service
	exportSvc     export.Service
	extract       *extractor.Extractor
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, summarySvc summarizer.Service, exportSvc export.Service, extract *extractor.Extractor, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:           cfg,
		summarizerSvc: summarySvc,
		exportSvc:     exportSvc,
		extract:       extract,
		logger:        logger.With("component", "http.handler"),
	}
}

type summaryResponse struct {
	Analysis        analysis.Result `json:"analysis"`
	SummaryParts    []string        `json:"summary_parts"`
	CombinedSummary string          `json:"combined_summary"`
	ProcessingTime  float64         `json:"processing_time"`
	Timestamp       string          `json:"timestamp"`
}

type processResponse struct {
	Filename    string                   `json:"filename"`
	PageCount   int                      `json:"page_count"`
	TOC         []extractor.OutlineEntry `json:"toc"`
	TextPreview string                   `json:"text_preview"`
	summaryResponse
}

// Home is the liveness check.
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Document Summarizer API is running.")
}

// AvailableModels returns the static model catalog.
func (h *Handler) AvailableModels(c *gin.Context) {
	c.JSON(http.StatusOK, llm.Catalog())
}

// SummaryStyles returns the static style catalog.
func (h *Handler) SummaryStyles(c *gin.Context) {
	c.JSON(http.StatusOK, summarizer.StyleCatalog())
}

// ProcessDocument accepts a multipart document upload, extracts its text, and
// returns analysis plus the styled summary. The spooled upload is removed on
// every exit path.
func (h *Handler) ProcessDocument(c *gin.Context) {
	start := time.Now()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "No file part in request", err))
		return
	}
	if fileHeader.Filename == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "No selected file", nil))
		return
	}
	if !extractor.AllowedFile(fileHeader.Filename) {
		message := "File type not supported. Allowed types: " + strings.Join(extractor.AllowedExtensions(), ", ")
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", message, nil))
		return
	}

	req := h.buildRequest(
		c.PostForm("model"),
		c.PostForm("style"),
		formInt(c, "max_tokens"),
		formInt(c, "min_length"),
		formInt(c, "max_length"),
	)

	if err := os.MkdirAll(h.cfg.Upload.Dir, 0o755); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "Processing failed: "+err.Error(), err))
		return
	}
	path := filepath.Join(h.cfg.Upload.Dir, uuid.NewString()+"_"+filepath.Base(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "upload_failed", "Processing failed: "+err.Error(), err))
		return
	}
	defer h.removeUpload(path)

	doc, err := h.extract.Extract(path)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "extraction_failed", errMessage(err), err))
		return
	}
	if strings.TrimSpace(doc.Text) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "extraction_failed", "No text could be extracted from the document", nil))
		return
	}

	req.Text = doc.Text
	result, err := h.summarizerSvc.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "summarize_failed", "Processing failed: "+errMessage(err), err))
		return
	}

	toc := doc.Outline
	if toc == nil {
		toc = []extractor.OutlineEntry{}
	}

	c.JSON(http.StatusOK, processResponse{
		Filename:    fileHeader.Filename,
		PageCount:   doc.PageCount,
		TOC:         toc,
		TextPreview: preview(doc.Text),
		summaryResponse: summaryResponse{
			Analysis:        analysis.Analyze(doc.Text),
			SummaryParts:    summarizer.RenderParts(result.Parts),
			CombinedSummary: result.Combined,
			ProcessingTime:  roundSeconds(time.Since(start)),
			Timestamp:       util.Timestamp(util.NowUTC()),
		},
	})
}

type summarizePayload struct {
	Text      string `json:"text"`
	Model     string `json:"model"`
	Style     string `json:"style"`
	MaxTokens int    `json:"max_tokens"`
	MinLength int    `json:"min_length"`
	MaxLength int    `json:"max_length"`
}

// SummarizeText summarizes raw text supplied as JSON.
func (h *Handler) SummarizeText(c *gin.Context) {
	start := time.Now()

	var payload summarizePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Request must be in JSON format", err))
		return
	}

	req := h.buildRequest(payload.Model, payload.Style, payload.MaxTokens, payload.MinLength, payload.MaxLength)
	req.Text = payload.Text

	result, err := h.summarizerSvc.Summarize(c.Request.Context(), req)
	if err != nil {
		if apperrors.IsCode(err, "invalid_input") {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "summarize_failed", "Summarization failed: "+errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, summaryResponse{
		Analysis:        analysis.Analyze(payload.Text),
		SummaryParts:    summarizer.RenderParts(result.Parts),
		CombinedSummary: result.Combined,
		ProcessingTime:  roundSeconds(time.Since(start)),
		Timestamp:       util.Timestamp(util.NowUTC()),
	})
}

// ExportSummary renders a previously produced summary as a downloadable document.
func (h *Handler) ExportSummary(c *gin.Context) {
	var req export.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Request must be in JSON format", err))
		return
	}

	resp, err := h.exportSvc.Export(req)
	if err != nil {
		if apperrors.IsCode(err, "invalid_input") {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
			return
		}
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "export_failed", "Export failed: "+errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) buildRequest(model, style string, maxTokens, minLength, maxLength int) summarizer.Request {
	if strings.TrimSpace(model) == "" {
		model = h.cfg.Summary.DefaultModel
	}
	if strings.TrimSpace(style) == "" {
		style = h.cfg.Summary.DefaultStyle
	}
	return summarizer.Request{
		Model: model,
		Style: summarizer.Style(style),
		Params: summarizer.GenerationParams{
			MaxChunkChars: pickPositive(maxTokens, h.cfg.Summary.MaxChunkChars),
			MinLength:     pickPositive(minLength, h.cfg.Summary.MinLength),
			MaxLength:     pickPositive(maxLength, h.cfg.Summary.MaxLength),
		},
	}
}

func (h *Handler) removeUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.logger.Warn("failed to remove uploaded file", "path", path, "error", err)
	}
}

func formInt(c *gin.Context, key string) int {
	raw := c.PostForm(key)
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func pickPositive(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewChars {
		return text
	}
	return string(runes[:previewChars]) + "..."
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
