// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/question-bank/internal/clean"
	"github.com/pdiddy/question-bank/internal/convert"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <document>",
	Short: "Print the cleaned text of a document",
	Long: `Clean extracts text from a PDF (or reads a .txt dump), removes contact
notices and non-breaking spaces, and prints the result to stdout. The cleaning
report (notices removed, spaces replaced) is always written to stderr, which
makes this command useful for checking what parse will see.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv, err := convert.New(cfg.Conversion)
		if err != nil {
			return err
		}
		raw, err := conv.Convert(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		text, stats := clean.NewFromConfig(cfg.Clean).Clean(raw)
		clean.Report(cmd.ErrOrStderr(), stats)

		_, err = io.WriteString(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
