// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CleaningStats reports what one clean pass removed or replaced.
type CleaningStats struct {
	// RemovedNotices is the number of contact-notice occurrences removed.
	RemovedNotices int `json:"removed_notices" yaml:"removed_notices"`

	// RemovedValues holds the exact text of each removed notice, in order.
	RemovedValues []string `json:"removed_values,omitempty" yaml:"removed_values,omitempty"`

	// ReplacedNBSP is the number of non-breaking spaces replaced with a space.
	ReplacedNBSP int `json:"replaced_nbsp" yaml:"replaced_nbsp"`
}

// ParseStatus indicates the outcome of processing one document.
type ParseStatus string

const (
	ParseNone    ParseStatus = "none"
	ParseDone    ParseStatus = "parsed"
	ParseSkipped ParseStatus = "skipped"
	ParseFailed  ParseStatus = "failed"
)

// Document describes one input file and the result of processing it.
type Document struct {
	// ID is the input file name without its extension (e.g. "aws-p1").
	ID string `json:"id" yaml:"id"`

	// Path is the local filesystem path of the input.
	Path string `json:"path" yaml:"path"`

	// OutputPath is where the exported questions were written.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`

	// Questions is the number of questions (or rows) exported.
	Questions int `json:"questions" yaml:"questions"`

	// Status is the processing outcome.
	Status ParseStatus `json:"status" yaml:"status"`

	// Err holds the failure message when Status is ParseFailed.
	Err string `json:"error,omitempty" yaml:"error,omitempty"`
}
