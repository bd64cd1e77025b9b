// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/question-bank/internal/clean"
	"github.com/pdiddy/question-bank/internal/convert"
	"github.com/pdiddy/question-bank/internal/export"
	"github.com/pdiddy/question-bank/internal/pipeline"
	"github.com/pdiddy/question-bank/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <document>",
	Short: "Parse one PDF or text dump into questions",
	Long: `Parse extracts text from a PDF (or reads a .txt dump), cleans it, and parses
it into questions. By default the questions are flattened into rows with the
columns Topic, question_id, question, A–F, answer; --raw keeps the nested
question records. Output goes to stdout unless --output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "write results to this file instead of stdout")
	parseCmd.Flags().Int("preview", 0, "print the first N results to stderr")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	preview, _ := cmd.Flags().GetInt("preview")

	if cfg.Output.Format == types.FormatXLSX && outPath == "" {
		return fmt.Errorf("xlsx output requires --output")
	}

	conv, err := convert.New(cfg.Conversion)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	res, err := pipeline.RunDocument(cmd.Context(), conv, args[0], pipeline.Options{
		Verbose:     cfg.Verbose,
		Flatten:     !cfg.Output.Raw,
		Diagnostics: stderr,
		Cleaner:     clean.NewFromConfig(cfg.Clean),
	})
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(stderr, "parsed %d record(s) from %s\n", res.Len(), args[0])
	}
	if preview > 0 {
		printPreview(stderr, res, preview)
	}

	var buf bytes.Buffer
	if err := export.WriteResult(&buf, cfg.Output, res); err != nil {
		return err
	}

	if outPath == "" {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(stderr, "wrote %d record(s) to %s\n", res.Len(), outPath)
	return nil
}

const previewWidth = 80

// printPreview writes a short human-readable summary of the first n records.
func printPreview(w io.Writer, res pipeline.Result, n int) {
	fmt.Fprintf(w, "\n%d record(s) parsed\n", res.Len())

	if res.Rows != nil {
		for i, r := range res.Rows {
			if i == n {
				break
			}
			fmt.Fprintf(w, "--- Topic %s Q#%s\n", r.Topic, r.QuestionID)
			fmt.Fprintf(w, "Q: %s\n", truncate(r.Question, previewWidth))
			for _, label := range types.ChoiceLabels {
				if text := r.Choice(label); text != "" {
					fmt.Fprintf(w, "  %s. %s\n", label, truncate(text, previewWidth))
				}
			}
			fmt.Fprintf(w, "Answer: %s\n", r.Answer)
		}
		return
	}

	for i, q := range res.Questions {
		if i == n {
			break
		}
		fmt.Fprintf(w, "--- %s\n", q.ID)
		fmt.Fprintf(w, "Q: %s\n", truncate(q.Text, previewWidth))
		for label, text := range q.Choices.All() {
			fmt.Fprintf(w, "  %s. %s\n", label, truncate(text, previewWidth))
		}
		fmt.Fprintf(w, "Answer: %s\n", q.Answer)
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
