//go:build !nopdf

package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

func init() {
	Register(".pdf", func() (Extractor, error) {
		return pdfText{}, nil
	})
}

// pdfText extracts the text layer of every page, concatenated in page order.
type pdfText struct{}

func (pdfText) Extract(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	defer file.Close()

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// A page without an extractable text layer contributes nothing.
		content, _ := page.GetPlainText(nil)
		text.WriteString(content)
	}

	return text.String(), nil
}
