// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert extracts raw UTF-8 text from exam documents with
// pluggable backends. Page text is concatenated in page order, each
// non-empty page followed by a newline.
package convert

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/question-bank/internal/container"
	"github.com/pdiddy/question-bank/pkg/types"
)

var (
	// ErrNoText is returned when a document yields no extractable text.
	ErrNoText = errors.New("no text extracted")
	// ErrUnknownBackend is returned for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown conversion backend")
)

// Converter transforms a document into raw text. Different backends
// (pure-Go PDF, pdftotext, containerized pdftotext) implement this interface.
type Converter interface {
	// Convert reads the document at path and returns its text.
	Convert(ctx context.Context, path string) (string, error)
}

// ByExtension routes plain-text inputs (.txt, .text) to a TextConverter and
// everything else to the configured document converter.
type ByExtension struct {
	Document Converter
	Text     Converter
}

// Convert dispatches on the file extension of path.
func (b ByExtension) Convert(ctx context.Context, path string) (string, error) {
	if IsTextFile(path) {
		if b.Text != nil {
			return b.Text.Convert(ctx, path)
		}
		return TextConverter{}.Convert(ctx, path)
	}
	return b.Document.Convert(ctx, path)
}

// IsTextFile reports whether path names an already-extracted text file.
func IsTextFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".text":
		return true
	}
	return false
}

// IsSupported reports whether path has an extension some backend handles.
func IsSupported(path string) bool {
	return IsTextFile(path) || strings.EqualFold(filepath.Ext(path), ".pdf")
}

// New builds the converter selected by cfg.Backend, wrapped so that text
// files bypass it.
func New(cfg types.ConversionConfig) (Converter, error) {
	var doc Converter
	switch cfg.Backend {
	case "", types.BackendPDF:
		doc = PDFConverter{}
	case types.BackendPdftotext:
		doc = NewPdftotextConverter(cfg.PdftotextBin)
	case types.BackendContainer:
		rt, err := container.DetectRuntime()
		if err != nil {
			return nil, err
		}
		c, err := NewContainerConverter(rt, cfg.Image)
		if err != nil {
			return nil, err
		}
		doc = c
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	return ByExtension{Document: doc}, nil
}
