// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/question-bank/internal/batch"
	"github.com/pdiddy/question-bank/internal/clean"
	"github.com/pdiddy/question-bank/internal/convert"
)

var batchCmd = &cobra.Command{
	Use:   "batch [documents or directories...]",
	Short: "Parse many documents, one output file each",
	Long: `Batch parses every PDF and .txt dump given on the command line. Directory
arguments are expanded to the supported files directly inside them. Each
document is written to <out-dir>/<name>.<format>; documents whose output is
newer than the input are skipped unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("out-dir", "", "directory for output files (default output)")
	batchCmd.Flags().IntP("jobs", "j", 0, "documents processed concurrently (default 1)")
	batchCmd.Flags().Bool("force", false, "reprocess documents whose output is up to date")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no .pdf or .txt documents found in %v", args)
	}

	conv, err := convert.New(cfg.Conversion)
	if err != nil {
		return err
	}

	summary, err := batch.Run(cmd.Context(), conv, paths, batch.Options{
		Output:  cfg.Output,
		Batch:   cfg.Batch,
		Cleaner: clean.NewFromConfig(cfg.Clean),
		Verbose: cfg.Verbose,
	}, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if summary.HasFailures() {
		return fmt.Errorf("%d document(s) failed", summary.Failed)
	}
	return nil
}

// expandInputs replaces directory arguments with the documents they contain.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("reading input %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := batch.Discover(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
