// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFConverter extracts the embedded text layer of a PDF in pure Go.
// Scanned, image-only pages yield no text.
type PDFConverter struct{}

// Convert reads the PDF at path page by page.
func (PDFConverter) Convert(ctx context.Context, path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	var pages []string

	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			return "", fmt.Errorf("reading page %d of %s: %w", i, path, err)
		}
		pages = append(pages, text)
	}

	return joinPages(path, pages)
}

// joinPages concatenates page texts, each non-empty page followed by a
// newline. It returns ErrNoText when every page is blank.
func joinPages(path string, pages []string) (string, error) {
	var b strings.Builder
	for _, text := range pages {
		if text == "" {
			continue
		}
		b.WriteString(text)
		b.WriteByte('\n')
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return b.String(), nil
}
