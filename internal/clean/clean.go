// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean normalizes raw extracted text before parsing. It removes
// contact-notice noise and replaces non-breaking spaces; nothing else in the
// text is touched.
package clean

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/question-bank/pkg/types"
)

const nbsp = "\u00a0"

// Cleaner removes contact notices for a fixed set of markers. A Cleaner is
// immutable and safe for concurrent use.
type Cleaner struct {
	notice *regexp.Regexp
}

// New returns a Cleaner for the given marker tokens. A notice is a marker
// immediately followed by an ASCII or fullwidth colon and a run of non-space
// characters. With no markers, only non-breaking spaces are replaced.
func New(markers ...string) *Cleaner {
	quoted := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" {
			quoted = append(quoted, regexp.QuoteMeta(m))
		}
	}
	if len(quoted) == 0 {
		return &Cleaner{}
	}
	pattern := `(?:` + strings.Join(quoted, "|") + `)[:：]` + nonSpaceRun
	return &Cleaner{notice: regexp.MustCompile(pattern)}
}

// nonSpaceRun matches a run of characters that are not Unicode whitespace,
// counting the vertical tab, the file/group/record/unit separators and NEL
// as whitespace.
const nonSpaceRun = `[^\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`

// NewFromConfig returns a Cleaner for cfg.Markers.
func NewFromConfig(cfg types.CleanConfig) *Cleaner {
	return New(cfg.Markers...)
}

var defaultCleaner = New(types.DefaultContactMarker)

// Clean normalizes raw with the default contact marker.
func Clean(raw string) (string, types.CleaningStats) {
	return defaultCleaner.Clean(raw)
}

// Text is Clean without the statistics.
func Text(raw string) string {
	text, _ := defaultCleaner.Clean(raw)
	return text
}

// Clean removes every contact notice from raw and replaces each non-breaking
// space with an ordinary space. Removal repeats until no notice remains, so
// a second pass over the output always reports zero counts.
func (c *Cleaner) Clean(raw string) (string, types.CleaningStats) {
	var stats types.CleaningStats
	text := raw

	if c.notice != nil {
		for {
			found := c.notice.FindAllString(text, -1)
			if len(found) == 0 {
				break
			}
			stats.RemovedValues = append(stats.RemovedValues, found...)
			text = c.notice.ReplaceAllLiteralString(text, "")
		}
		stats.RemovedNotices = len(stats.RemovedValues)
	}

	stats.ReplacedNBSP = strings.Count(text, nbsp)
	if stats.ReplacedNBSP > 0 {
		text = strings.ReplaceAll(text, nbsp, " ")
	}

	return text, stats
}

// Report writes the diagnostic summary of stats to w.
func Report(w io.Writer, stats types.CleaningStats) {
	fmt.Fprintf(w, "[clean] removed notices: %d\n", stats.RemovedNotices)
	if len(stats.RemovedValues) > 0 {
		fmt.Fprintln(w, "[clean] removed values:")
		for _, v := range stats.RemovedValues {
			fmt.Fprintf(w, "  - %s\n", v)
		}
	}
	fmt.Fprintf(w, "[clean] replaced nbsp: %d\n", stats.ReplacedNBSP)
}
