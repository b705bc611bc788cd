package summarizer

// Style names the intent shaping the generated summary. Values outside the
// known set are treated as a literal custom instruction.
type Style string

const (
	StyleConcise      Style = "Concise"
	StyleDetailed     Style = "Detailed"
	StyleBulletPoints Style = "Bullet Points"
	StyleAcademic     Style = "Academic"
	StyleELI5         Style = "ELI5"
)

var stylePrefixes = map[Style]string{
	StyleConcise:      "Provide a concise and brief summary of the following text: ",
	StyleDetailed:     "Provide a comprehensive and detailed summary of the following text, including key points and main ideas: ",
	StyleBulletPoints: "Summarize the following text as a list of bullet points covering the main ideas: ",
	StyleAcademic:     "Create an academic summary of the following text, highlighting methodology, findings, and conclusions: ",
	StyleELI5:         "Explain the following text as if explaining to a 5-year old in simple terms: ",
}

// PromptPrefix resolves the instruction prefix for the style. Unknown styles
// pass through unchanged so a caller can supply a fully custom instruction.
func (s Style) PromptPrefix() string {
	if prefix, ok := stylePrefixes[s]; ok {
		return prefix
	}
	return string(s)
}

// StyleInfo describes one selectable style for the catalog endpoint.
type StyleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// StyleCatalog lists the built-in styles in a stable order.
func StyleCatalog() []StyleInfo {
	return []StyleInfo{
		{ID: string(StyleConcise), Name: "Concise", Description: "Brief summary highlighting key points"},
		{ID: string(StyleDetailed), Name: "Detailed", Description: "Comprehensive summary with more information"},
		{ID: string(StyleBulletPoints), Name: "Bullet Points", Description: "Summary formatted as bullet points"},
		{ID: string(StyleAcademic), Name: "Academic", Description: "Formal summary suitable for academic context"},
		{ID: string(StyleELI5), Name: "Explain Like I'm 5", Description: "Simple summary in easy-to-understand language"},
	}
}
