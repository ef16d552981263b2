// Package textproc normalizes free-text course titles into the stemmed,
// stopword-filtered token sequences the serialized estimators vectorize.
// The pipeline here must stay bit-for-bit compatible with the analyzer the
// artifacts were trained with, or predictions silently corrupt.
package textproc

import (
	"regexp"
	"strings"

	"github.com/reiver/go-porterstemmer"
)

// tokenPattern extracts maximal runs of ASCII word characters of length 2+.
// Single-character tokens and punctuation are discarded by construction;
// there is deliberately no separate punctuation-stripping pass (the trained
// artifacts never had one either).
var tokenPattern = regexp.MustCompile(`[0-9A-Za-z_]{2,}`)

// Analyzer tokenizes raw titles. Build one at startup with NewAnalyzer and
// share it; it is immutable and safe for concurrent use.
type Analyzer struct {
	stopwords map[string]struct{}
}

func NewAnalyzer(stopwords map[string]struct{}) *Analyzer {
	return &Analyzer{stopwords: stopwords}
}

// Tokenize runs the full title preprocessing chain: lower-case, ASCII word
// tokenization, Porter stemming, stopword removal (applied to the stemmed
// form), and removal of all-digit tokens.
func (a *Analyzer) Tokenize(raw string) []string {
	out := make([]string, 0, 8)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(raw), -1) {
		stemmed := porterstemmer.StemString(tok)
		if _, stop := a.stopwords[stemmed]; stop {
			continue
		}
		if allDigits(stemmed) {
			continue
		}
		out = append(out, stemmed)
	}
	return out
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
