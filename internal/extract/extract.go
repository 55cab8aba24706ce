// Package extract turns resume files into plain text.
//
// Formats are served by a small registry of lazily constructed extractors so
// that a build without a given capability (see the nopdf build tag) degrades
// into a configuration error instead of a parse error.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extractor produces the plain text of a file on disk.
type Extractor interface {
	Extract(path string) (string, error)
}

// Factory builds an Extractor. Construction is deferred to lookup time so a
// missing capability surfaces as an error on use, not at startup.
type Factory func() (Extractor, error)

// knownFormats is the closed set of resume formats the tool accepts. Anything
// else is rejected before a file is ever opened.
var knownFormats = []string{".pdf", ".txt"}

var registry = map[string]Factory{}

// capabilityHints explains how to obtain support for a known format when no
// extractor is registered for it in this binary.
var capabilityHints = map[string]string{
	".pdf": "this binary was built without PDF support, rebuild without the nopdf build tag",
}

// Register makes a factory available for the given file extension. It is meant
// to be called from init functions of the per-format files.
func Register(ext string, factory Factory) {
	registry[strings.ToLower(ext)] = factory
}

// ForPath returns the extractor responsible for the file's extension. The
// extension check is case-insensitive. Unknown extensions yield an
// UnsupportedFormatError; known extensions with no registered factory yield a
// DependencyMissingError.
func ForPath(path string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(path))

	known := false
	for _, candidate := range knownFormats {
		if ext == candidate {
			known = true
			break
		}
	}
	if !known {
		return nil, &UnsupportedFormatError{Ext: ext}
	}

	factory, ok := registry[ext]
	if !ok {
		return nil, &DependencyMissingError{Format: ext, Hint: capabilityHints[ext]}
	}

	return factory()
}

// UnsupportedFormatError reports a resume extension outside the supported set.
type UnsupportedFormatError struct {
	Ext string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported resume format %q (supported: %s)",
		e.Ext, strings.Join(knownFormats, ", "))
}

// DependencyMissingError reports a known format whose extractor is not
// available in this binary. The hint is an installation instruction for the
// user, not a parse failure.
type DependencyMissingError struct {
	Format string
	Hint   string
}

func (e *DependencyMissingError) Error() string {
	msg := fmt.Sprintf("no extractor available for %s files", e.Format)
	if e.Hint != "" {
		msg += ": " + e.Hint
	}
	return msg
}
