package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mattear/doclens-ai/internal/port"
)

// TagsStrategy generates short descriptive tags for a document.
type TagsStrategy struct {
	ai port.AIProvider
}

func NewTagsStrategy(ai port.AIProvider) *TagsStrategy {
	return &TagsStrategy{ai: ai}
}

func (s *TagsStrategy) Name() string        { return "tags" }
func (s *TagsStrategy) Description() string { return "Short descriptive document tags" }

func (s *TagsStrategy) Enrich(ctx context.Context, text string) (json.RawMessage, error) {
	systemPrompt := `You are a document analyst. Generate 5-10 relevant tags for the document you are given. Return them as a JSON array of strings. Tags should be short (1-2 words) and descriptive.`

	response, err := s.ai.Chat(ctx, systemPrompt, fmt.Sprintf("Document:\n%s", text))
	if err != nil {
		return nil, fmt.Errorf("tags: %w", err)
	}

	result, perr := parseTags(response)
	if perr != nil {
		// Fallback: words that look like tags from the raw response.
		slog.Warn("tags response not parseable, using fallback", "error", perr)
		result = fallbackTags(response)
	}
	return json.Marshal(result)
}
