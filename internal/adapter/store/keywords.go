package store

import (
	"encoding/json"
	"fmt"
)

// Keywords are stored as a JSON blob in a text column.

func keywordsToArray(keywords []string) (string, error) {
	if keywords == nil {
		keywords = []string{}
	}
	b, err := json.Marshal(keywords)
	if err != nil {
		return "", fmt.Errorf("encode keywords: %w", err)
	}
	return string(b), nil
}

func arrayToKeywords(blob string) []string {
	var keywords []string
	if err := json.Unmarshal([]byte(blob), &keywords); err != nil || keywords == nil {
		return []string{}
	}
	return keywords
}
