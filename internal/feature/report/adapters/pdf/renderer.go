// Package pdf renders report text into PDF documents with fpdf.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"user_backend/internal/feature/report/usecase"
)

const (
	fontFamily = "Helvetica"
	fontSize   = 12
	lineHeight = 6
)

// Renderer writes text onto a single A4 page.
type Renderer struct {
	compress bool
}

var _ usecase.Renderer = (*Renderer)(nil)

// NewRenderer returns a renderer producing compressed output.
func NewRenderer() *Renderer {
	return &Renderer{compress: true}
}

// Render lays out text in flowing lines starting on a fresh page.
// Newlines in text start new lines in the document.
// The core fonts are cp1252 encoded, so UTF-8 input is translated first;
// characters outside cp1252 cannot be shown.
func (r *Renderer) Render(text string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(r.compress)
	doc.SetCreator("user_backend", true)
	doc.AddPage()
	doc.SetFont(fontFamily, "", fontSize)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.Write(lineHeight, tr(text))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}
