package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mattear/doclens-ai/internal/domain"
	"github.com/mattear/doclens-ai/internal/port"
)

// SummarizeStrategy produces a summary and 3-5 key points for a document.
type SummarizeStrategy struct {
	ai port.AIProvider
}

func NewSummarizeStrategy(ai port.AIProvider) *SummarizeStrategy {
	return &SummarizeStrategy{ai: ai}
}

func (s *SummarizeStrategy) Name() string        { return "summarize" }
func (s *SummarizeStrategy) Description() string { return "Document summary with key points" }

func (s *SummarizeStrategy) Enrich(ctx context.Context, text string) (json.RawMessage, error) {
	systemPrompt := `You are a document analyst. Summarize the document you are given and provide 3-5 key points. Format your response as JSON with fields 'summary' and 'keyPoints' as an array.`

	response, err := s.ai.Chat(ctx, systemPrompt, fmt.Sprintf("Document content:\n%s", text))
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	result, perr := parseSummary(response)
	if perr != nil {
		// Fallback for non-JSON responses: the whole reply becomes the summary.
		slog.Warn("summarize response not parseable, using fallback", "error", perr)
		result = domain.SummaryResult{Summary: response, KeyPoints: []string{}}
	}
	if result.KeyPoints == nil {
		result.KeyPoints = []string{}
	}
	return json.Marshal(result)
}
