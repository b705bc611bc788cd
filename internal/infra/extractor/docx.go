package extractor

import (
	"archive/zip"
	"io"
	"strings"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
)

// extractDOCX pulls text out of the word/document.xml entry of a DOCX
// archive. Tag stripping is enough here: run text in WordprocessingML sits
// between tags and needs no attribute handling.
func extractDOCX(path string) (Document, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return Document{}, apperrors.Wrap("extraction_error", "cannot open DOCX archive", err)
	}
	defer archive.Close()

	var documentXML []byte
	for _, entry := range archive.File {
		if entry.Name != "word/document.xml" {
			continue
		}
		rc, openErr := entry.Open()
		if openErr != nil {
			return Document{}, apperrors.Wrap("extraction_error", "cannot open document.xml", openErr)
		}
		documentXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return Document{}, apperrors.Wrap("extraction_error", "cannot read document.xml", err)
		}
		break
	}
	if len(documentXML) == 0 {
		return Document{}, apperrors.Wrap("extraction_error", "document.xml not found in DOCX file", nil)
	}

	return Document{Text: stripTags(string(documentXML)), PageCount: 1}, nil
}

func stripTags(xmlContent string) string {
	var result strings.Builder
	inTag := false
	for _, r := range xmlContent {
		switch r {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				result.WriteRune(r)
			}
		}
	}

	lines := strings.Split(result.String(), "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			clean = append(clean, line)
		}
	}
	return strings.Join(clean, "\n")
}
