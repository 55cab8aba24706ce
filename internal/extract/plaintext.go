package extract

import (
	"fmt"
	"os"
)

func init() {
	Register(".txt", func() (Extractor, error) {
		return plainText{}, nil
	})
}

// plainText reads the file as-is. Resumes are expected to be UTF-8, but the
// bytes are passed through untouched; the tokenizer discards non-word runes.
type plainText struct{}

func (plainText) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}
