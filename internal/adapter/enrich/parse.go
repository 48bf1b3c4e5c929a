package enrich

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/mattear/doclens-ai/internal/domain"
)

// Model responses wrap the structured payload in prose more often than not.
// These helpers carve the JSON fragment out of the raw text and decode it;
// callers apply the documented default on the error branch only.

var errNoJSON = errors.New("no JSON payload in model response")

// extractJSONObject returns the substring from the first '{' to the last '}'.
func extractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", errNoJSON
	}
	return raw[start : end+1], nil
}

// extractJSONArray returns the substring from the first '[' to the last ']'.
func extractJSONArray(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start < 0 || end <= start {
		return "", errNoJSON
	}
	return raw[start : end+1], nil
}

// parseSummary decodes a summarize response.
func parseSummary(raw string) (domain.SummaryResult, error) {
	text, err := extractJSONObject(raw)
	if err != nil {
		return domain.SummaryResult{}, err
	}
	var out domain.SummaryResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return domain.SummaryResult{}, err
	}
	return out, nil
}

// parseAnalysis decodes an analyze response.
func parseAnalysis(raw string) (domain.AnalysisResult, error) {
	text, err := extractJSONObject(raw)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	var out domain.AnalysisResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return domain.AnalysisResult{}, err
	}
	return out, nil
}

// parseTags decodes a tags response (a bare JSON array of strings).
func parseTags(raw string) (domain.TagsResult, error) {
	text, err := extractJSONArray(raw)
	if err != nil {
		return domain.TagsResult{}, err
	}
	var tags []string
	if err := json.Unmarshal([]byte(text), &tags); err != nil {
		return domain.TagsResult{}, err
	}
	return domain.TagsResult{Tags: tags}, nil
}

// fallbackTags extracts words longer than three characters from the raw
// response, capped at ten, when no JSON array can be recovered.
func fallbackTags(raw string) domain.TagsResult {
	var tags []string
	for _, word := range strings.Fields(raw) {
		if len(word) > 3 {
			tags = append(tags, strings.Trim(word, ".,;:\"'"))
		}
		if len(tags) == 10 {
			break
		}
	}
	if tags == nil {
		tags = []string{}
	}
	return domain.TagsResult{Tags: tags}
}
