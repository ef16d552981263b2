package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(EnglishStopwords())
}

func TestTokenize_PunctuationAndStemming(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("Complete Python Bootcamp!!")
	assert.Equal(t, []string{"complet", "python", "bootcamp"}, got)
}

func TestTokenize_StopwordsRemoved(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("The Art of the Deal")
	assert.Equal(t, []string{"art", "deal"}, got)
}

func TestTokenize_PureDigitTokensDropped(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("Python 101 for 2020")
	assert.Equal(t, []string{"python"}, got)
}

func TestTokenize_SingleCharacterTokensDropped(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("C programming in R")
	assert.Equal(t, []string{"program"}, got)
}

func TestTokenize_Stemming(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("running trading strategies")
	assert.Equal(t, []string{"run", "trade", "strategi"}, got)
}

// Apostrophes split words: there is no punctuation-stripping pass, so
// "don't" tokenizes as "don" (a stopword) and the single-character "t" is
// discarded. This matches the behavior the deployed artifacts were trained
// with.
func TestTokenize_ApostropheSplitsToken(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("Don't Panic")
	assert.Equal(t, []string{"panic"}, got)
}

// Stopword removal runs after stemming, so a stopword whose stem differs
// from its surface form survives ("this" stems to "thi", which is not in
// the list). Contractual, if surprising.
func TestTokenize_StopwordFilterAppliesToStems(t *testing.T) {
	a := newTestAnalyzer()

	got := a.Tokenize("this course")
	assert.Equal(t, []string{"thi", "cours"}, got)
}

func TestTokenize_Empty(t *testing.T) {
	a := newTestAnalyzer()

	assert.Empty(t, a.Tokenize(""))
	assert.Empty(t, a.Tokenize("!!! ??? ..."))
}

func TestTokenize_Restartable(t *testing.T) {
	a := newTestAnalyzer()

	first := a.Tokenize("Complete Python Bootcamp!!")
	second := a.Tokenize("Complete Python Bootcamp!!")
	assert.Equal(t, first, second)
}
