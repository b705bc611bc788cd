package extractor

import (
	"strings"

	"github.com/gen2brain/go-fitz"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
)

// extractPDF reads text, page count, and the table of contents via MuPDF.
func (e *Extractor) extractPDF(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return Document{}, apperrors.Wrap("extraction_error", "failed to open PDF", err)
	}
	defer doc.Close()

	total := doc.NumPage()
	var text strings.Builder
	for page := 0; page < total; page++ {
		pageText, textErr := doc.Text(page)
		if textErr != nil {
			e.logger.Warn("failed to extract page text", "page", page+1, "error", textErr)
			continue
		}
		text.WriteString(pageText)
	}

	var outline []OutlineEntry
	if toc, tocErr := doc.ToC(); tocErr == nil {
		outline = make([]OutlineEntry, 0, len(toc))
		for _, entry := range toc {
			outline = append(outline, OutlineEntry{Level: entry.Level, Title: entry.Title, Page: entry.Page})
		}
	} else {
		e.logger.Warn("failed to read document outline", "error", tocErr)
	}

	return Document{Text: text.String(), PageCount: total, Outline: outline}, nil
}
