// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the question-bank CLI. It turns
// exam-dump PDFs into structured multiple-choice questions.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/question-bank/internal/export"
	"github.com/pdiddy/question-bank/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// configErr records a failure to read an explicitly named config file.
var configErr error

// cfg holds the merged configuration (defaults, config file, env, flags)
// loaded before each command runs.
var cfg types.PipelineConfig

// rootCmd is the base command for the question-bank CLI.
var rootCmd = &cobra.Command{
	Use:   "question-bank",
	Short: "Build question banks from exam-dump PDFs",
	Long: `question-bank extracts text from exam-prep PDFs, removes contact-notice
noise, and parses "Topic … Question #… / A.–F. / Correct Answer:" blocks into
structured questions. Results are written as JSON, YAML, CSV, or XLSX, either
as raw questions or as flattened rows (Topic, question_id, question, A–F, answer).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: question-bank.yaml in . or ~/.config/question-bank)")
	pf.BoolP("verbose", "v", false, "print cleaning diagnostics to stderr")
	pf.Bool("raw", false, "output raw questions instead of flattened rows")
	pf.StringP("format", "f", "", "output format: json, yaml, csv, or xlsx (default json)")
	pf.String("backend", "", "text extraction backend: pdf, pdftotext, or container (default pdf)")
	pf.StringSlice("marker", nil, "contact-notice marker to remove (repeatable)")
}

// initConfig wires defaults, flag bindings, the config file and the
// environment into viper. It runs before every command.
func initConfig() {
	configErr = nil

	pf := rootCmd.PersistentFlags()
	bindFlag("verbose", pf.Lookup("verbose"))
	bindFlag("output.raw", pf.Lookup("raw"))
	bindFlag("output.format", pf.Lookup("format"))
	bindFlag("conversion.backend", pf.Lookup("backend"))
	bindFlag("clean.markers", pf.Lookup("marker"))

	bf := batchCmd.Flags()
	bindFlag("output.dir", bf.Lookup("out-dir"))
	bindFlag("batch.jobs", bf.Lookup("jobs"))
	bindFlag("batch.force", bf.Lookup("force"))

	defaults := types.DefaultPipelineConfig()
	viper.SetDefault("clean.markers", defaults.Clean.Markers)
	viper.SetDefault("conversion.backend", string(defaults.Conversion.Backend))
	viper.SetDefault("conversion.pdftotext_bin", defaults.Conversion.PdftotextBin)
	viper.SetDefault("conversion.image", defaults.Conversion.Image)
	viper.SetDefault("output.format", string(defaults.Output.Format))
	viper.SetDefault("output.dir", defaults.Output.Dir)
	viper.SetDefault("batch.jobs", defaults.Batch.Jobs)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("question-bank")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "question-bank"))
		}
	}

	viper.SetEnvPrefix("QUESTION_BANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	switch {
	case err == nil:
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	case cfgFile != "":
		configErr = fmt.Errorf("reading config %s: %w", cfgFile, err)
	}
}

// loadConfig decodes the viper state into a PipelineConfig and validates it.
func loadConfig() (types.PipelineConfig, error) {
	var c types.PipelineConfig
	if configErr != nil {
		return c, configErr
	}
	if err := viper.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	f, err := export.ParseFormat(string(c.Output.Format))
	if err != nil {
		return c, err
	}
	c.Output.Format = f
	if c.Batch.Jobs < 1 {
		c.Batch.Jobs = 1
	}
	return c, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
