package llm

// ModelInfo describes one selectable model for the catalog endpoint.
type ModelInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        string `json:"size"`
}

// Catalog lists the models the service advertises. Any other identifier is
// still accepted by the registry and routed to the matching backend.
func Catalog() []ModelInfo {
	return []ModelInfo{
		{
			ID:          "MBZUAI/lamini-flan-t5-248m",
			Name:        "Lamini Flan T5 Small",
			Description: "Fast and efficient summarization model",
			Size:        "248M parameters",
		},
		{
			ID:          "facebook/bart-large-cnn",
			Name:        "BART CNN",
			Description: "Optimized for news summarization",
			Size:        "400M parameters",
		},
		{
			ID:          "google/pegasus-xsum",
			Name:        "Pegasus XSum",
			Description: "Extreme summarization model",
			Size:        "568M parameters",
		},
		{
			ID:          "openai/gpt-4o-mini",
			Name:        "GPT-4o mini",
			Description: "Hosted chat model for higher quality summaries",
			Size:        "hosted",
		},
	}
}
