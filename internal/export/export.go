// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes parsed questions and flattened rows.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/question-bank/internal/pipeline"
	"github.com/pdiddy/question-bank/pkg/types"
)

// SheetName is the worksheet holding rows in XLSX exports.
const SheetName = "Questions"

var (
	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrTabularRaw is returned when raw questions are written in a
	// tabular format; flatten them to rows first.
	ErrTabularRaw = errors.New("raw questions cannot be written as a table")
)

// ParseFormat validates a format name (case-insensitive).
func ParseFormat(s string) (types.OutputFormat, error) {
	f := types.OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case types.FormatJSON, types.FormatYAML, types.FormatCSV, types.FormatXLSX:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension, including the dot, for f.
func Extension(f types.OutputFormat) string {
	return "." + string(f)
}

// WriteRows writes rows to w in format f.
func WriteRows(w io.Writer, f types.OutputFormat, rows []types.Row) error {
	switch f {
	case types.FormatJSON:
		return writeJSON(w, rows)
	case types.FormatYAML:
		return writeYAML(w, rows)
	case types.FormatCSV:
		return writeCSV(w, rows)
	case types.FormatXLSX:
		return writeXLSX(w, rows)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteQuestions writes questions to w in format f. Only json and yaml
// support the nested choice mapping.
func WriteQuestions(w io.Writer, f types.OutputFormat, questions []types.Question) error {
	switch f {
	case types.FormatJSON:
		return writeJSON(w, questions)
	case types.FormatYAML:
		return writeYAML(w, questions)
	case types.FormatCSV, types.FormatXLSX:
		return fmt.Errorf("%w: %s", ErrTabularRaw, f)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteResult exports the output selected by out.Raw: questions when raw,
// rows otherwise.
func WriteResult(w io.Writer, out types.OutputConfig, res pipeline.Result) error {
	if out.Raw {
		return WriteQuestions(w, out.Format, res.Questions)
	}
	return WriteRows(w, out.Format, res.Rows)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

func writeCSV(w io.Writer, rows []types.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(types.RowHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(r.Values()); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, rows []types.Row) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, types.RowHeader); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, i+2, r.Values()); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing XLSX: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
		return fmt.Errorf("writing XLSX row %d: %w", n, err)
	}
	return nil
}
