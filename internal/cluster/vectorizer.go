package cluster

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vocabulary and weighting parameters. Terms appearing in fewer than
// minDocFreq documents or in more than maxDocFreqRatio of the corpus are
// dropped; the surviving vocabulary is capped at maxVocabulary terms by
// total corpus frequency.
const (
	maxVocabulary   = 5000
	minDocFreq      = 2
	maxDocFreqRatio = 0.85
)

// tfidfModel is the sparse document–term matrix together with its ordered
// vocabulary. Row order matches the input corpus; column indices address
// the vocabulary slice.
type tfidfModel struct {
	vocab []string
	rows  []map[int]float64
}

// buildTFIDF turns raw document texts into L2-normalized TF-IDF rows over a
// unigram+bigram vocabulary. Returns a ConfigError when the frequency bounds
// leave no retained terms.
func buildTFIDF(texts []string, stopwords map[string]struct{}) (*tfidfModel, error) {
	n := len(texts)

	termCounts := make([]map[string]int, n)
	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)

	for i, text := range texts {
		counts := make(map[string]int)
		for _, term := range extractTerms(text, stopwords) {
			counts[term]++
			totalFreq[term]++
		}
		for term := range counts {
			docFreq[term]++
		}
		termCounts[i] = counts
	}

	maxDF := maxDocFreqRatio * float64(n)
	var retained []string
	for term, df := range docFreq {
		if df < minDocFreq || float64(df) > maxDF {
			continue
		}
		retained = append(retained, term)
	}
	if len(retained) == 0 {
		return nil, &ConfigError{MinDocFreq: minDocFreq, MaxDocFreqRatio: maxDocFreqRatio}
	}

	if len(retained) > maxVocabulary {
		sort.Slice(retained, func(a, b int) bool {
			fa, fb := totalFreq[retained[a]], totalFreq[retained[b]]
			if fa != fb {
				return fa > fb
			}
			return retained[a] < retained[b]
		})
		retained = retained[:maxVocabulary]
	}
	sort.Strings(retained)

	columns := make(map[string]int, len(retained))
	for i, term := range retained {
		columns[term] = i
	}

	rows := make([]map[int]float64, n)
	for i, counts := range termCounts {
		row := make(map[int]float64)
		for term, count := range counts {
			col, ok := columns[term]
			if !ok {
				continue
			}
			idf := math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
			row[col] = float64(count) * idf
		}
		normalizeRow(row)
		rows[i] = row
	}

	return &tfidfModel{vocab: retained, rows: rows}, nil
}

// extractTerms tokenizes a document and emits its unigrams and bigrams.
// Tokens are lowercase runs of at least two word characters; stopwords are
// removed before bigrams are formed.
func extractTerms(text string, stopwords map[string]struct{}) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	tokens := fields[:0]
	for _, tok := range fields {
		if len([]rune(tok)) < 2 {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	terms := make([]string, 0, 2*len(tokens))
	for i, tok := range tokens {
		terms = append(terms, tok)
		if i+1 < len(tokens) {
			terms = append(terms, tok+" "+tokens[i+1])
		}
	}
	return terms
}

// normalizeRow scales a sparse row to unit Euclidean length. All-zero rows
// stay zero.
func normalizeRow(row map[int]float64) {
	var sum float64
	for _, v := range row {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for col, v := range row {
		row[col] = v / norm
	}
}
