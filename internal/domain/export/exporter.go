package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
	"github.com/yanqian/doc-summarizer/pkg/util"
)

// Supported export formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Request describes one export invocation. Meta carries optional document
// statistics (date, page_count, word_count, sentence_count,
// avg_words_per_sentence) surfaced in the rendered output.
type Request struct {
	Format          string         `json:"format"`
	Filename        string         `json:"filename"`
	SummaryParts    []string       `json:"summary_parts"`
	CombinedSummary string         `json:"combined_summary"`
	Meta            map[string]any `json:"meta"`
}

// Response carries the base64-encoded document and a suggested filename.
type Response struct {
	Content  string `json:"content"`
	Filename string `json:"filename"`
}

// Service renders summaries into downloadable documents.
type Service interface {
	Export(req Request) (Response, error)
}

type service struct {
	now func() time.Time
}

// NewService is a wire provider for the export domain.
func NewService() Service {
	return &service{now: util.NowUTC}
}

func (s *service) Export(req Request) (Response, error) {
	filename := strings.TrimSpace(req.Filename)
	if filename == "" {
		filename = "document"
	}
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))

	format := strings.TrimSpace(req.Format)
	if format == "" {
		format = FormatText
	}

	var (
		body string
		ext  string
	)
	switch format {
	case FormatText:
		body = s.renderText(filename, req)
		ext = ".txt"
	case FormatMarkdown:
		body = s.renderMarkdown(filename, req)
		ext = ".md"
	case FormatJSON:
		rendered, err := s.renderJSON(filename, req)
		if err != nil {
			return Response{}, apperrors.Wrap("export_error", "failed to encode export payload", err)
		}
		body = rendered
		ext = ".json"
	default:
		return Response{}, apperrors.Wrap("invalid_input", "Unsupported export format", nil)
	}

	return Response{
		Content:  base64.StdEncoding.EncodeToString([]byte(body)),
		Filename: stem + "_summary" + ext,
	}, nil
}

func (s *service) renderText(filename string, req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SUMMARY OF: %s\n", filename)
	fmt.Fprintf(&b, "Generated on: %s\n", s.metaDate(req.Meta))
	fmt.Fprintf(&b, "Document stats: %v pages, %v words\n\n", metaValue(req.Meta, "page_count"), metaValue(req.Meta, "word_count"))
	b.WriteString("SUMMARY:\n\n")

	if req.CombinedSummary != "" {
		b.WriteString(req.CombinedSummary)
	} else {
		for i, part := range req.SummaryParts {
			fmt.Fprintf(&b, "--- Part %d ---\n%s\n\n", i+1, part)
		}
	}
	return b.String()
}

func (s *service) renderMarkdown(filename string, req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary of %s\n\n", filename)
	fmt.Fprintf(&b, "*Generated on: %s*\n\n", s.metaDate(req.Meta))
	fmt.Fprintf(&b, "**Document statistics:**\n- Pages: %v\n", metaValue(req.Meta, "page_count"))
	fmt.Fprintf(&b, "- Words: %v\n", metaValue(req.Meta, "word_count"))
	fmt.Fprintf(&b, "- Sentences: %v\n\n", metaValue(req.Meta, "sentence_count"))
	b.WriteString("## Summary Content\n\n")

	if req.CombinedSummary != "" {
		b.WriteString(req.CombinedSummary)
	} else {
		for i, part := range req.SummaryParts {
			fmt.Fprintf(&b, "### Part %d\n\n%s\n\n", i+1, part)
		}
	}
	return b.String()
}

func (s *service) renderJSON(filename string, req Request) (string, error) {
	parts := req.SummaryParts
	if parts == nil {
		parts = []string{}
	}
	payload := map[string]any{
		"document": map[string]any{
			"filename":       filename,
			"pages":          metaValue(req.Meta, "page_count"),
			"generated_date": s.metaDate(req.Meta),
		},
		"analysis": map[string]any{
			"word_count":             metaValue(req.Meta, "word_count"),
			"sentence_count":         metaValue(req.Meta, "sentence_count"),
			"avg_words_per_sentence": metaValue(req.Meta, "avg_words_per_sentence"),
		},
		"summary_parts":    parts,
		"combined_summary": req.CombinedSummary,
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *service) metaDate(meta map[string]any) string {
	if v, ok := meta["date"]; ok {
		if date, ok := v.(string); ok && date != "" {
			return date
		}
	}
	return util.Timestamp(s.now())
}

func metaValue(meta map[string]any, key string) any {
	if v, ok := meta[key]; ok && v != nil {
		return v
	}
	return "N/A"
}
