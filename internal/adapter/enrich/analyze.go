package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mattear/doclens-ai/internal/domain"
	"github.com/mattear/doclens-ai/internal/port"
)

// AnalyzeStrategy extracts topics, entities, sentiment, and reading
// complexity from a document.
type AnalyzeStrategy struct {
	ai port.AIProvider
}

func NewAnalyzeStrategy(ai port.AIProvider) *AnalyzeStrategy {
	return &AnalyzeStrategy{ai: ai}
}

func (s *AnalyzeStrategy) Name() string { return "analyze" }
func (s *AnalyzeStrategy) Description() string {
	return "Topic, entity, sentiment, and complexity analysis"
}

func (s *AnalyzeStrategy) Enrich(ctx context.Context, text string) (json.RawMessage, error) {
	systemPrompt := `You are a document analyst. Analyze the document you are given and provide:
1. Up to 5 main topics
2. Key entities (people, organizations, locations) with their importance (0-10)
3. Overall sentiment (score from -1 to 1, and label)
4. Reading complexity (score from 0 to 1, and label)

Format as JSON with 'topics' (array), 'entities' (array of objects with name, type, importance), 'sentiment' (object with score and label), and 'complexity' (object with score and label).`

	response, err := s.ai.Chat(ctx, systemPrompt, fmt.Sprintf("Document:\n%s", text))
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	result, perr := parseAnalysis(response)
	if perr != nil {
		slog.Warn("analyze response not parseable, using default result", "error", perr)
		result = domain.DefaultAnalysisResult()
	}
	return json.Marshal(result)
}
