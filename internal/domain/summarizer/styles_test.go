package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPromptPrefixKnownStyles(t *testing.T) {
	tests := []struct {
		style Style
		want  string
	}{
		{StyleConcise, "concise and brief summary"},
		{StyleDetailed, "comprehensive and detailed summary"},
		{StyleBulletPoints, "list of bullet points"},
		{StyleAcademic, "methodology, findings, and conclusions"},
		{StyleELI5, "5-year old"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.style), func(t *testing.T) {
			t.Parallel()
			prefix := tt.style.PromptPrefix()
			require.Contains(t, prefix, tt.want)
			require.True(t, strings.HasSuffix(prefix, ": "))
		})
	}
}

func TestPromptPrefixCustomPassThrough(t *testing.T) {
	t.Parallel()
	custom := Style("Summarize this as a haiku: ")
	require.Equal(t, "Summarize this as a haiku: ", custom.PromptPrefix())
}

func TestStyleCatalogMatchesPrefixTable(t *testing.T) {
	t.Parallel()
	catalog := StyleCatalog()
	require.Len(t, catalog, len(stylePrefixes))
	for _, info := range catalog {
		require.NotEmpty(t, info.ID)
		require.NotEmpty(t, info.Name)
		require.NotEmpty(t, info.Description)
		require.Contains(t, stylePrefixes, Style(info.ID))
	}
}
