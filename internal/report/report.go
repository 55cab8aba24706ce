// Package report renders comparison results as JSON or as a plain-text report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atsmatch/atsmatch/internal/matcher"
)

// Render writes the result to w in the requested format.
func Render(w io.Writer, result matcher.Result, asJSON bool) error {
	if asJSON {
		return RenderJSON(w, result)
	}

	return RenderText(w, result)
}

// RenderJSON writes the result as an indented JSON document. Field order is
// fixed: score, matched_keywords, missing_keywords.
func RenderJSON(w io.Writer, result matcher.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	_, err = w.Write(append(data, '\n'))

	return err
}

// RenderText writes the human-readable report.
func RenderText(w io.Writer, result matcher.Result) error {
	_, err := fmt.Fprintf(w, "ATS Match Score: %.2f%%\n\nMatched keywords:\n%s\n\nMissing keywords:\n%s\n",
		result.Score, joinOrNone(result.MatchedKeywords), joinOrNone(result.MissingKeywords))

	return err
}

func joinOrNone(keywords []string) string {
	if len(keywords) == 0 {
		return "None"
	}

	return strings.Join(keywords, ", ")
}
