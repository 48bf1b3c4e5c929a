package domain

// SummaryResult is the structured output of the summarize enrichment.
type SummaryResult struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// Entity is a named entity found during document analysis.
type Entity struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"` // person, organization, location
	Importance float64 `json:"importance"`
}

// Sentiment holds an overall sentiment score in [-1, 1] with a label.
type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Complexity holds a reading-complexity score in [0, 1] with a label.
type Complexity struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// AnalysisResult is the structured output of the analyze enrichment.
type AnalysisResult struct {
	Topics     []string   `json:"topics"`
	Entities   []Entity   `json:"entities"`
	Sentiment  Sentiment  `json:"sentiment"`
	Complexity Complexity `json:"complexity"`
}

// TagsResult is the structured output of the tags enrichment.
type TagsResult struct {
	Tags []string `json:"tags"`
}

// DefaultAnalysisResult is the documented fallback used when the model's
// response cannot be parsed as structured data.
func DefaultAnalysisResult() AnalysisResult {
	return AnalysisResult{
		Topics: []string{"Sample Topic 1", "Sample Topic 2"},
		Entities: []Entity{
			{Name: "Example Person", Type: "person", Importance: 8},
			{Name: "Example Organization", Type: "organization", Importance: 6},
		},
		Sentiment:  Sentiment{Score: 0, Label: "neutral"},
		Complexity: Complexity{Score: 0.5, Label: "moderate"},
	}
}
