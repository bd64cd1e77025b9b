// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/question-bank/pkg/types"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		want        string
		wantRemoved []string
		wantNBSP    int
	}{
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "no matches",
			raw:  "Topic 1\nQuestion #1\nPlain text.",
			want: "Topic 1\nQuestion #1\nPlain text.",
		},
		{
			name:        "fullwidth colon notice",
			raw:         "before 店长微信：abc123 after",
			want:        "before  after",
			wantRemoved: []string{"店长微信：abc123"},
		},
		{
			name:        "ascii colon notice at line end",
			raw:         "Question #2\n店长微信:shop_42\nA. yes",
			want:        "Question #2\n\nA. yes",
			wantRemoved: []string{"店长微信:shop_42"},
		},
		{
			name:        "multiple notices recorded in order",
			raw:         "店长微信：one x 店长微信：two",
			want:        " x ",
			wantRemoved: []string{"店长微信：one", "店长微信：two"},
		},
		{
			name: "marker without colon is kept",
			raw:  "店长微信 abc",
			want: "店长微信 abc",
		},
		{
			name:     "non-breaking spaces replaced",
			raw:      "A.\u00a0First\u00a0choice",
			want:     "A. First choice",
			wantNBSP: 2,
		},
		{
			name:        "notice stops at non-breaking space",
			raw:         "店长微信：id\u00a0tail",
			want:        " tail",
			wantRemoved: []string{"店长微信：id"},
			wantNBSP:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Clean(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.wantRemoved), stats.RemovedNotices)
			assert.Equal(t, tt.wantRemoved, stats.RemovedValues)
			assert.Equal(t, tt.wantNBSP, stats.ReplacedNBSP)
		})
	}
}

func TestClean_SecondPassIsNoop(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"店长微信：a\u00a0店长微信：b",
		"店长微店长微信：x信：y",
		"\u00a0\u00a0店长微信:z\n\u00a0",
	}
	for _, raw := range inputs {
		once, _ := Clean(raw)
		twice, stats := Clean(once)
		assert.Equal(t, once, twice, "input %q", raw)
		assert.Zero(t, stats.RemovedNotices, "input %q", raw)
		assert.Zero(t, stats.ReplacedNBSP, "input %q", raw)
	}
}

func TestClean_NoticeRunExtendsToWhitespace(t *testing.T) {
	got, stats := Clean("店长微店长微信：x信：y! next")
	assert.Equal(t, "店长微 next", got)
	assert.Equal(t, []string{"店长微信：x信：y!"}, stats.RemovedValues)
}

func TestClean_NoticeStopsAtUnicodeWhitespace(t *testing.T) {
	tests := []struct {
		name string
		sep  string
	}{
		{name: "vertical tab", sep: "\v"},
		{name: "file separator", sep: "\x1c"},
		{name: "unit separator", sep: "\x1f"},
		{name: "next line", sep: "\u0085"},
		{name: "line separator", sep: "\u2028"},
		{name: "ideographic space", sep: "\u3000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, stats := Clean("店长微信：abc" + tt.sep + "tail")
			assert.Equal(t, tt.sep+"tail", got)
			assert.Equal(t, []string{"店长微信：abc"}, stats.RemovedValues)
		})
	}
}

func TestNew_CustomMarkers(t *testing.T) {
	c := New("WeChat", " ", "Telegram")
	got, stats := c.Clean("a WeChat:foo b Telegram：bar c 店长微信：kept")
	assert.Equal(t, "a  b  c 店长微信：kept", got)
	assert.Equal(t, 2, stats.RemovedNotices)
}

func TestNew_NoMarkersOnlyReplacesSpaces(t *testing.T) {
	c := NewFromConfig(types.CleanConfig{})
	got, stats := c.Clean("店长微信：x\u00a0y")
	assert.Equal(t, "店长微信：x y", got)
	assert.Zero(t, stats.RemovedNotices)
	assert.Equal(t, 1, stats.ReplacedNBSP)
}

func TestText(t *testing.T) {
	assert.Equal(t, "a b", Text("a\u00a0b"))
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, types.CleaningStats{
		RemovedNotices: 2,
		RemovedValues:  []string{"店长微信：a", "店长微信：b"},
		ReplacedNBSP:   3,
	})
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "[clean] removed notices: 2\n"))
	assert.Contains(t, out, "  - 店长微信：a\n")
	assert.Contains(t, out, "  - 店长微信：b\n")
	assert.Contains(t, out, "[clean] replaced nbsp: 3\n")
}

func TestReport_NoValuesSection(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, types.CleaningStats{})
	assert.NotContains(t, buf.String(), "removed values")
}
