// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the pipeline over many documents and writes one export
// file per document. Each document gets its own pipeline invocation, so
// documents may be processed concurrently.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/question-bank/internal/clean"
	"github.com/pdiddy/question-bank/internal/convert"
	"github.com/pdiddy/question-bank/internal/export"
	"github.com/pdiddy/question-bank/internal/pipeline"
	"github.com/pdiddy/question-bank/pkg/types"
)

// ErrDuplicateOutput marks a document whose export path is already claimed by
// an earlier document in the same run.
var ErrDuplicateOutput = errors.New("duplicate output")

// Summary holds the outcome of a batch run.
type Summary struct {
	Parsed    int
	Skipped   int
	Failed    int
	Questions int
	Documents []types.Document
}

// Total returns the number of documents processed.
func (s Summary) Total() int {
	return s.Parsed + s.Skipped + s.Failed
}

// HasFailures reports whether any document failed.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Options configures a batch run.
type Options struct {
	Output  types.OutputConfig
	Batch   types.BatchConfig
	Cleaner *clean.Cleaner
	// Verbose writes per-document cleaning diagnostics to the log writer.
	Verbose bool
}

// Discover returns the supported inputs (.pdf, .txt) directly inside dir,
// sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if convert.IsSupported(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// OutputPath returns where the export for input is written.
func OutputPath(input string, out types.OutputConfig) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(out.Dir, base+export.Extension(out.Format))
}

// Run processes paths with c, writing status lines and a summary to w.
// Status lines appear in input order regardless of the number of jobs. When
// two inputs map to the same output file, the later one fails with
// ErrDuplicateOutput and is not processed.
func Run(ctx context.Context, c convert.Converter, paths []string, opts Options, w io.Writer) (Summary, error) {
	if opts.Output.Raw && (opts.Output.Format == types.FormatCSV || opts.Output.Format == types.FormatXLSX) {
		return Summary{}, fmt.Errorf("%w: %s", export.ErrTabularRaw, opts.Output.Format)
	}
	if err := os.MkdirAll(opts.Output.Dir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	jobs := opts.Batch.Jobs
	if jobs < 1 {
		jobs = 1
	}

	docs := make([]types.Document, len(paths))
	logs := make([]bytes.Buffer, len(paths))

	claimed := make(map[string]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		doc := newDocument(path, opts.Output)
		if first, ok := claimed[doc.OutputPath]; ok {
			docs[i] = failed(doc, fmt.Errorf("%w: %s is already written by %s", ErrDuplicateOutput, doc.OutputPath, first))
			continue
		}
		claimed[doc.OutputPath] = path

		g.Go(func() error {
			docs[i] = processOne(gctx, c, path, opts, &logs[i])
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	var summary Summary
	for i, d := range docs {
		_, _ = logs[i].WriteTo(w)
		switch d.Status {
		case types.ParseDone:
			summary.Parsed++
			summary.Questions += d.Questions
			fmt.Fprintf(w, "parsed:  %s (%d questions)\n", d.ID, d.Questions)
		case types.ParseSkipped:
			summary.Skipped++
			fmt.Fprintf(w, "skipped: %s (up to date)\n", d.ID)
		case types.ParseFailed:
			summary.Failed++
			fmt.Fprintf(w, "failed:  %s (%s)\n", d.ID, d.Err)
		}
	}
	summary.Documents = docs

	fmt.Fprintf(w, "\nBatch summary: %d parsed, %d skipped, %d failed (total: %d, questions: %d)\n",
		summary.Parsed, summary.Skipped, summary.Failed, summary.Total(), summary.Questions)
	return summary, nil
}

// processOne runs the pipeline for one document and writes its export.
// Diagnostics go to log.
func processOne(ctx context.Context, c convert.Converter, path string, opts Options, log io.Writer) types.Document {
	doc := newDocument(path, opts.Output)

	if !opts.Batch.Force {
		changed, err := hasChanged(path, doc.OutputPath)
		if err != nil {
			return failed(doc, err)
		}
		if !changed {
			doc.Status = types.ParseSkipped
			return doc
		}
	}

	res, err := pipeline.RunDocument(ctx, c, path, pipeline.Options{
		Verbose:     opts.Verbose,
		Flatten:     !opts.Output.Raw,
		Diagnostics: log,
		Cleaner:     opts.Cleaner,
	})
	if err != nil {
		return failed(doc, err)
	}

	if err := writeResult(doc.OutputPath, opts.Output, res); err != nil {
		return failed(doc, err)
	}

	doc.Questions = res.Len()
	doc.Status = types.ParseDone
	return doc
}

func newDocument(path string, out types.OutputConfig) types.Document {
	return types.Document{
		ID:         strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:       path,
		OutputPath: OutputPath(path, out),
		Status:     types.ParseNone,
	}
}

func failed(doc types.Document, err error) types.Document {
	doc.Status = types.ParseFailed
	doc.Err = err.Error()
	return doc
}

func writeResult(path string, out types.OutputConfig, res pipeline.Result) error {
	var buf bytes.Buffer
	if err := export.WriteResult(&buf, out, res); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// hasChanged reports whether input is newer than output. It returns true
// when output does not exist.
func hasChanged(input, output string) (bool, error) {
	inInfo, err := os.Stat(input)
	if err != nil {
		return false, fmt.Errorf("stat input %s: %w", input, err)
	}

	outInfo, err := os.Stat(output)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, fmt.Errorf("stat output %s: %w", output, err)
	}

	return inInfo.ModTime().After(outInfo.ModTime()), nil
}
