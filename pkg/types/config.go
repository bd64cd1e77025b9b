// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultContactMarker is the contact-notice marker removed by default.
const DefaultContactMarker = "店长微信"

// CleanConfig holds settings for the cleaning stage.
type CleanConfig struct {
	// Markers lists the contact-notice marker tokens. Each marker is matched
	// when immediately followed by a colon and a run of non-space characters.
	Markers []string `json:"markers" yaml:"markers" mapstructure:"markers"`
}

// ConversionBackend identifies the document-to-text tool.
type ConversionBackend string

const (
	BackendPDF       ConversionBackend = "pdf"
	BackendPdftotext ConversionBackend = "pdftotext"
	BackendContainer ConversionBackend = "container"
)

// ConversionConfig holds settings for the text extraction stage.
type ConversionConfig struct {
	// Backend selects the extraction tool: pdf, pdftotext, or container.
	Backend ConversionBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// PdftotextBin is the pdftotext executable used by the pdftotext backend.
	PdftotextBin string `json:"pdftotext_bin" yaml:"pdftotext_bin" mapstructure:"pdftotext_bin"`

	// Image is the container image used by the container backend. The image
	// must run pdftotext reading the PDF from stdin and writing text to stdout.
	Image string `json:"image" yaml:"image" mapstructure:"image"`
}

// OutputFormat selects the export serialization.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatCSV  OutputFormat = "csv"
	FormatXLSX OutputFormat = "xlsx"
)

// OutputConfig holds settings for exporting results.
type OutputConfig struct {
	// Format selects the serialization: json, yaml, csv, or xlsx.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Raw selects Question records instead of flattened Rows.
	Raw bool `json:"raw" yaml:"raw" mapstructure:"raw"`

	// Dir is the directory batch runs write into.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// BatchConfig holds settings for multi-document runs.
type BatchConfig struct {
	// Jobs is the number of documents processed at once (default 1).
	Jobs int `json:"jobs" yaml:"jobs" mapstructure:"jobs"`

	// Force reprocesses documents whose output is already up to date.
	Force bool `json:"force" yaml:"force" mapstructure:"force"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Clean      CleanConfig      `json:"clean" yaml:"clean" mapstructure:"clean"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion" mapstructure:"conversion"`
	Output     OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
	Batch      BatchConfig      `json:"batch" yaml:"batch" mapstructure:"batch"`
	Verbose    bool             `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// DefaultPipelineConfig returns the configuration used when no file or flag
// overrides a value.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Clean: CleanConfig{Markers: []string{DefaultContactMarker}},
		Conversion: ConversionConfig{
			Backend:      BackendPDF,
			PdftotextBin: "pdftotext",
			Image:        "pdftotext:latest",
		},
		Output: OutputConfig{Format: FormatJSON, Dir: "output"},
		Batch:  BatchConfig{Jobs: 1},
	}
}
