// Package lix computes the LIX readability score of a text.
//
// LIX is the average sentence length plus the percentage of long
// words (seven or more characters):
//
//	words/sentences + 100*longWords/words
//
// The result is clamped to [0, 100]; higher means harder to read.
// Sentences are counted as terminator characters and words as runs of
// Unicode word characters, so no language-specific segmentation is
// involved.
package lix

import (
	"fmt"
	"io"
	"math"
	"regexp"

	"github.com/dlclark/regexp2"

	"github.com/astuanax/lix/internal/log"
)

const (
	// MinScore is the lowest score Calculate returns.
	MinScore = 0.0
	// MaxScore is the highest score Calculate returns.
	MaxScore = 100.0
	// LongWordLength is the rune length from which a word counts as long.
	LongWordLength = 7
)

// wordClass is the Unicode \w: alphabetic (letters, letter numbers,
// circled letters), all marks, decimal digits, connector punctuation
// and the zero-width joiners. RE2 and regexp2 spell code points
// differently, so the class is written once per engine.
const (
	wordClass   = `\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}\x{24B6}-\x{24E9}\x{200C}\x{200D}`
	wordClass2  = `\p{L}\p{Nl}\p{M}\p{Nd}\p{Pc}\u24B6-\u24E9\u200C\u200D`
	longWordFmt = `(?<![%[1]s])[%[1]s]{%[2]d,}(?![%[1]s])`
)

var (
	terminatorPattern = regexp.MustCompile(`[.!?]`)
	wordPattern       = regexp.MustCompile(`[` + wordClass + `]+`)
	// RE2 has no lookaround, and regexp2's own \w and \b leave out
	// spacing marks, so the boundaries are spelled with wordClass2.
	longWordPattern = regexp2.MustCompile(
		fmt.Sprintf(longWordFmt, wordClass2, LongWordLength), regexp2.None,
	)
)

// Counts holds the three scans a score is derived from.
type Counts struct {
	Sentences int
	Words     int
	LongWords int
}

// Score applies the LIX formula to c. No words scores MinScore. Words
// without any sentence terminator divide to +Inf, which the clamp maps
// to MaxScore.
func (c Counts) Score() float64 {
	if c.Words == 0 {
		return MinScore
	}
	words := float64(c.Words)
	lix := words/float64(c.Sentences) +
		100*float64(c.LongWords)/words
	return math.Max(MinScore, math.Min(MaxScore, lix))
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger traces the counts and score of every call to w.
func WithLogger(w io.Writer) Option {
	return func(c *Calculator) {
		c.log = log.New(w)
	}
}

// Calculator computes LIX scores. It holds no per-call state and is
// safe for concurrent use. The zero value is ready to use.
type Calculator struct {
	log *log.Logger
}

// New returns a Calculator configured by opts.
func New(opts ...Option) *Calculator {
	c := &Calculator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate returns the LIX score of text, always within
// [MinScore, MaxScore].
func (c *Calculator) Calculate(text string) float64 {
	counts := c.Analyze(text)
	score := counts.Score()
	c.logger().Printf(
		"lix: sentences=%d words=%d long-words=%d score=%.2f",
		counts.Sentences, counts.Words, counts.LongWords, score,
	)
	return score
}

// Analyze runs the three independent scans over text.
func (c *Calculator) Analyze(text string) Counts {
	return Counts{
		Sentences: CountSentences(text),
		Words:     CountWords(text),
		LongWords: CountLongWords(text),
	}
}

func (c *Calculator) logger() *log.Logger {
	if c == nil {
		return nil
	}
	return c.log
}

// Calculate scores text with a default Calculator.
func Calculate(text string) float64 {
	var c Calculator
	return c.Calculate(text)
}

// CountSentences counts '.', '!' and '?' anywhere in text.
// Abbreviations and decimals count like sentence ends.
func CountSentences(text string) int {
	return len(terminatorPattern.FindAllStringIndex(text, -1))
}

// CountWords counts maximal runs of word characters.
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}

// CountLongWords counts words of at least LongWordLength runes. It is
// a separate scan from CountWords over the same word class.
func CountLongWords(text string) int {
	n := 0
	m, err := longWordPattern.FindStringMatch(text)
	for m != nil {
		n++
		m, err = longWordPattern.FindNextMatch(m)
	}
	if err != nil {
		// regexp2 only fails on MatchTimeout, and longWordPattern has none.
		panic(fmt.Sprintf("lix: long-word scan: %v", err))
	}
	return n
}
