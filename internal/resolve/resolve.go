// Package resolve locates the résumé file and the job description text from
// flags, configuration, the terminal and piped stdin.
package resolve

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	// ErrNoResume is returned when no résumé path could be resolved.
	ErrNoResume = errors.New("no resume provided: use --resume or run interactively")
	// ErrNoJobDescription is returned when no job description could be resolved.
	ErrNoJobDescription = errors.New("no job description provided: use --job-text, --job-file, or pipe it via stdin")
)

// FileNotFoundError reports a résumé or job file path that does not exist.
type FileNotFoundError struct {
	// Kind is used in the message to give more context about the file.
	Kind string
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// Resume returns the résumé path to read. An empty path falls back to the
// prompter when one is provided. The returned path always points to an
// existing file.
func Resume(path string, prompter Prompter) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" && prompter != nil {
		answer, err := prompter.Ask("Path to resume file (.pdf or .txt)")
		if err != nil {
			return "", fmt.Errorf("reading resume path: %w", err)
		}
		path = strings.TrimSpace(answer)
	}

	if path == "" {
		return "", ErrNoResume
	}

	// Any stat failure is reported as a missing file.
	if _, err := os.Stat(path); err != nil {
		return "", &FileNotFoundError{Kind: "resume file", Path: path}
	}

	return path, nil
}

// Origin identifies where a job description came from.
type Origin string

const (
	OriginInline Origin = "inline"
	OriginFile   Origin = "file"
	OriginStdin  Origin = "stdin"
)

// JobSource describes the places a job description may come from. Text takes
// precedence over File, and File over piped stdin.
type JobSource struct {
	// Text is an inline job description provided via flags or configuration.
	Text string
	// File points to a file containing the job description.
	File string
	// Stdin is consulted only when Piped is set.
	Stdin io.Reader
	// Piped reports whether stdin carries piped data rather than a terminal.
	Piped bool
}

// Job returns the resolved job description and where it was found.
func Job(src JobSource) (string, Origin, error) {
	if src.Text != "" {
		return src.Text, OriginInline, nil
	}

	if src.File != "" {
		if _, err := os.Stat(src.File); err != nil {
			return "", "", &FileNotFoundError{Kind: "job file", Path: src.File}
		}
		data, err := os.ReadFile(src.File)
		if err != nil {
			return "", "", fmt.Errorf("reading job file %q: %w", src.File, err)
		}
		return string(data), OriginFile, nil
	}

	// Piped stdin resolves even when it turns out to be empty; an empty job
	// description is a defined scoring case, not a missing input.
	if src.Piped && src.Stdin != nil {
		data, err := io.ReadAll(src.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading job description from stdin: %w", err)
		}
		return string(data), OriginStdin, nil
	}

	return "", "", ErrNoJobDescription
}
