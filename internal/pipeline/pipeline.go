// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences cleaning, parsing and optional row formatting
// for one document. It holds no state between calls.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/question-bank/internal/clean"
	"github.com/pdiddy/question-bank/internal/convert"
	"github.com/pdiddy/question-bank/internal/format"
	"github.com/pdiddy/question-bank/internal/parse"
	"github.com/pdiddy/question-bank/pkg/types"
)

// Options controls one pipeline run.
type Options struct {
	// Verbose writes cleaning diagnostics to Diagnostics.
	Verbose bool
	// Flatten selects Row output instead of Question output.
	Flatten bool
	// Diagnostics receives verbose output. Nil discards it.
	Diagnostics io.Writer
	// Cleaner overrides the default contact-notice cleaner.
	Cleaner *clean.Cleaner
}

// Result holds the output of one run. Exactly one of Questions and Rows is
// set, depending on Options.Flatten.
type Result struct {
	Stats     types.CleaningStats
	Questions []types.Question
	Rows      []types.Row
}

// Len returns the number of records in the selected output.
func (r Result) Len() int {
	if r.Rows != nil {
		return len(r.Rows)
	}
	return len(r.Questions)
}

// Run cleans, parses and optionally flattens raw text.
func Run(raw string, opts Options) Result {
	cleaner := opts.Cleaner
	if cleaner == nil {
		cleaner = clean.New(types.DefaultContactMarker)
	}

	text, stats := cleaner.Clean(raw)
	if opts.Verbose && opts.Diagnostics != nil {
		clean.Report(opts.Diagnostics, stats)
	}

	questions := parse.Parse(text)
	if !opts.Flatten {
		return Result{Stats: stats, Questions: questions}
	}

	rows := format.Format(questions)
	if opts.Verbose && opts.Diagnostics != nil {
		if dropped := format.Dropped(questions); len(dropped) > 0 {
			fmt.Fprintf(opts.Diagnostics, "[format] dropped %d question(s) with malformed ids\n", len(dropped))
		}
	}
	return Result{Stats: stats, Rows: rows}
}

// RunDocument extracts text from the document at path with c and runs the
// pipeline over it.
func RunDocument(ctx context.Context, c convert.Converter, path string, opts Options) (Result, error) {
	raw, err := c.Convert(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("extracting text from %s: %w", path, err)
	}
	return Run(raw, opts), nil
}
