package extractor

import (
	"archive/zip"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/doc-summarizer/pkg/errors"
)

func newTestExtractor() *Extractor {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"report.pdf", true},
		{"notes.txt", true},
		{"paper.docx", true},
		{"REPORT.PDF", true},
		{"image.png", false},
		{"archive.doc", false},
		{"noextension", false},
		{"", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.filename, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, AllowedFile(tt.filename))
		})
	}
}

func TestAllowedExtensions(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"pdf", "txt", "docx"}, AllowedExtensions())
}

func TestExtractPlainText(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello world. This is a test."), 0o644))

	doc, err := newTestExtractor().Extract(path)
	require.NoError(t, err)
	require.Equal(t, "Hello world. This is a test.", doc.Text)
	require.Equal(t, 1, doc.PageCount)
	require.Empty(t, doc.Outline)
}

func TestExtractMissingFile(t *testing.T) {
	t.Parallel()
	_, err := newTestExtractor().Extract(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "extraction_error"))
}

func TestExtractUnsupportedExtension(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b"), 0o644))

	_, err := newTestExtractor().Extract(path)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "extraction_error"))
	require.Contains(t, err.Error(), "unsupported file extension")
}

func TestExtractDOCX(t *testing.T) {
	t.Parallel()
	path := writeDOCX(t, `<?xml version="1.0"?>
<w:document><w:body>
<w:p><w:r><w:t>First paragraph of the document.</w:t></w:r></w:p>
<w:p><w:r><w:t>Second paragraph follows.</w:t></w:r></w:p>
</w:body></w:document>`)

	doc, err := newTestExtractor().Extract(path)
	require.NoError(t, err)
	require.Contains(t, doc.Text, "First paragraph of the document.")
	require.Contains(t, doc.Text, "Second paragraph follows.")
	require.Equal(t, 1, doc.PageCount)
}

func TestExtractDOCXWithoutDocumentXML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "broken.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:t>unused</w:t>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = newTestExtractor().Extract(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "document.xml not found")
}

func TestExtractDOCXCorruptArchive(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "corrupt.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o644))

	_, err := newTestExtractor().Extract(path)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "extraction_error"))
}

func TestStripTags(t *testing.T) {
	t.Parallel()
	got := stripTags("<w:p><w:t>Hello</w:t></w:p>\n  \n<w:t>World</w:t>")
	require.Equal(t, "Hello\nWorld", got)
}

func writeDOCX(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}
