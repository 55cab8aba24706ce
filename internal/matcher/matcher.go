package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// wordPattern matches one maximal run of word characters: letters, digits and
// underscore. Anything else (punctuation, whitespace, symbols) separates tokens,
// so "C++" yields only "c".
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// TokenSet is a deduplicated set of lowercase word tokens. Frequency and
// position are discarded.
type TokenSet map[string]struct{}

// Tokenize lowercases the text and collects every word token into a set.
// Empty input and input without word characters yield an empty set.
func Tokenize(text string) TokenSet {
	tokens := TokenSet{}
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// Contains reports whether the token is part of the set.
func (t TokenSet) Contains(token string) bool {
	_, ok := t[token]
	return ok
}

// Sorted returns the tokens as a lexicographically sorted slice.
func (t TokenSet) Sorted() []string {
	words := make([]string, 0, len(t))
	for word := range t {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// Result is the outcome of comparing a resume against a job description.
// The field order doubles as the key order of the structured output.
type Result struct {
	Score           float64  `json:"score"`
	MatchedKeywords []string `json:"matched_keywords"`
	MissingKeywords []string `json:"missing_keywords"`
}

// Compare tokenizes both texts and reports which job-description keywords the
// resume covers. The score is the percentage of job keywords found in the
// resume, rounded to two decimals; an empty job keyword set scores 0 by
// definition rather than failing. Both keyword lists come back sorted, so
// identical inputs always produce identical output.
func Compare(resumeText, jobText string) Result {
	resumeTokens := Tokenize(resumeText)
	jobTokens := Tokenize(jobText)

	matched := make([]string, 0, len(jobTokens))
	missing := make([]string, 0, len(jobTokens))
	for token := range jobTokens {
		if resumeTokens.Contains(token) {
			matched = append(matched, token)
		} else {
			missing = append(missing, token)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	score := 0.0
	if len(jobTokens) > 0 {
		score = round2(float64(len(matched)) / float64(len(jobTokens)) * 100)
	}

	return Result{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
	}
}

// round2 rounds to two decimal places, ties to even.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
