package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxResumeTextLength bounds the excerpt sent to the AI model so prompts
// stay within token limits.
const maxResumeTextLength = 4000

// TextExtractor converts resume bytes into a bounded plain-text excerpt.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

type pdfTextExtractor struct{}

func NewPDFTextExtractor() TextExtractor {
	return &pdfTextExtractor{}
}

// ExtractText implements TextExtractor.
func (p *pdfTextExtractor) ExtractText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("resume data is empty")
	}

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Log error but continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	text := normalizeResumeText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// normalizeResumeText collapses all whitespace runs to single spaces and
// truncates to maxResumeTextLength characters.
func normalizeResumeText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxResumeTextLength {
		text = text[:maxResumeTextLength] + "..."
	}
	return text
}
