package cluster

import "fmt"

// InputError indicates the input corpus is malformed (e.g. duplicate
// document identifiers). No pipeline stage runs after an InputError.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input corpus: " + e.Reason
}

// ConfigError reports a term-filter configuration that eliminated the entire
// vocabulary, naming the offending document-frequency bounds.
type ConfigError struct {
	MinDocFreq      int
	MaxDocFreqRatio float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"vectorizer retained no terms: document-frequency bounds min_df=%d, max_df=%.2f eliminated the entire vocabulary",
		e.MinDocFreq, e.MaxDocFreqRatio,
	)
}
