package cluster

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeCorpus reads the external input contract: a single JSON object whose
// keys are document identifiers and whose values are document texts. Key
// order in the input defines corpus row order, so the object is walked
// token-by-token instead of decoded into a map.
func DecodeCorpus(r io.Reader) ([]Document, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("parse input document: %v", err)}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &InputError{Reason: "input must be a JSON object of document id to text"}
	}

	var docs []Document
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, &InputError{Reason: fmt.Sprintf("parse input document: %v", err)}
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, &InputError{Reason: "input object keys must be strings"}
		}

		var text string
		if err := dec.Decode(&text); err != nil {
			return nil, &InputError{Reason: fmt.Sprintf("document %q: text must be a string", id)}
		}
		docs = append(docs, Document{ID: id, Text: text})
	}

	if _, err := dec.Token(); err != nil {
		return nil, &InputError{Reason: fmt.Sprintf("parse input document: %v", err)}
	}
	return docs, nil
}
