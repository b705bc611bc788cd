package extractor

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".txt":  {},
	".docx": {},
}

// AllowedFile reports whether the filename carries a supported extension.
func AllowedFile(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// AllowedExtensions lists the supported extensions without the leading dot,
// for error messages.
func AllowedExtensions() []string {
	return []string{"pdf", "txt", "docx"}
}

// OutlineEntry is one row of a document's table of contents.
type OutlineEntry struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Page  int    `json:"page"`
}

// Document is the extraction result: plain text, a page count, and an
// optional outline passed through unmodified.
type Document struct {
	Text      string
	PageCount int
	Outline   []OutlineEntry
}

// Extractor turns uploaded document files into plain text.
type Extractor struct {
	logger *slog.Logger
}

// New is a wire provider for the extractor.
func New(logger *slog.Logger) *Extractor {
	return &Extractor{logger: logger.With("component", "extractor")}
}

// Extract dispatches on the file extension. The caller decides whether an
// empty text result is an error.
func (e *Extractor) Extract(path string) (Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.extractPDF(path)
	case ".txt":
		return extractPlainText(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return Document{}, apperrors.Wrap("extraction_error", "unsupported file extension", nil)
	}
}

func extractPlainText(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, apperrors.Wrap("extraction_error", "failed to read text file", err)
	}
	return Document{Text: string(data), PageCount: 1}, nil
}
