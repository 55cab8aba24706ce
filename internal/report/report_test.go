package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/atsmatch/atsmatch/internal/matcher"
)

func TestRenderText(t *testing.T) {
	result := matcher.Result{
		Score:           40,
		MatchedKeywords: []string{"developer", "python", "sql", "with"},
		MissingKeywords: []string{"a", "and", "aws", "for", "looking", "skills"},
	}

	var buf bytes.Buffer
	if err := RenderText(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ATS Match Score: 40.00%\n" +
		"\n" +
		"Matched keywords:\n" +
		"developer, python, sql, with\n" +
		"\n" +
		"Missing keywords:\n" +
		"a, and, aws, for, looking, skills\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderTextEmptyLists(t *testing.T) {
	result := matcher.Result{Score: 0}

	var buf bytes.Buffer
	if err := RenderText(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "ATS Match Score: 0.00%\n" +
		"\n" +
		"Matched keywords:\n" +
		"None\n" +
		"\n" +
		"Missing keywords:\n" +
		"None\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderJSONKeyOrder(t *testing.T) {
	result := matcher.Compare("python developer", "python engineer")

	var buf bytes.Buffer
	if err := RenderJSON(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
  "score": 50,
  "matched_keywords": [
    "python"
  ],
  "missing_keywords": [
    "engineer"
  ]
}
`
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderJSONEmptyJobDescription(t *testing.T) {
	result := matcher.Compare("anything at all", "")

	var buf bytes.Buffer
	if err := RenderJSON(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
  "score": 0,
  "matched_keywords": [],
  "missing_keywords": []
}
`
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestRenderPicksFormat(t *testing.T) {
	result := matcher.Compare("go", "go")

	var asJSON bytes.Buffer
	if err := Render(&asJSON, result, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(asJSON.String(), "{") {
		t.Fatalf("expected a JSON document, got %q", asJSON.String())
	}

	var asText bytes.Buffer
	if err := Render(&asText, result, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(asText.String(), "ATS Match Score: 100.00%") {
		t.Fatalf("expected the plain-text report, got %q", asText.String())
	}
}
