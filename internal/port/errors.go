package port

import "errors"

// Sentinel errors used across ports.
var (
	ErrStrategyNotFound = errors.New("enrichment strategy not found")
	ErrDocumentNotFound = errors.New("document not found")
)
