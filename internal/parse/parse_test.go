// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/question-bank/pkg/types"
)

const sampleDump = `
Topic 1
Question #1
This is a sample question that spans
multiple lines to test collection.
A. First choice Most Voted
B. Second choice
C. Third choice
Correct Answer: B
`

func TestParse_BasicQuestionAndTopic(t *testing.T) {
	got := Parse(sampleDump)
	require.Len(t, got, 1)

	q := got[0]
	assert.Equal(t, "Topic 1 Question #1", q.ID)
	assert.Equal(t, "This is a sample question that spans multiple lines to test collection.", q.Text)
	assert.Equal(t, types.Choices{
		{Label: "A", Text: "First choice"},
		{Label: "B", Text: "Second choice"},
		{Label: "C", Text: "Third choice"},
	}, q.Choices)
	assert.Equal(t, "B", q.Answer)
}

func TestParse_TrailingNoiseAfterAnswer(t *testing.T) {
	text := `Topic 2
Question #10
Which service stores objects?
A. Amazon S3
B. Amazon EC2
Correct Answer: A
Community vote distribution
A (90%) Other
Question #11
Which service runs containers?
A. Amazon ECS
B. Amazon SQS
Correct Answer: A
`
	got := Parse(text)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "Topic 2 Question #10", first.ID)
	assert.Equal(t, "Which service stores objects?", first.Text)
	for _, v := range first.Choices {
		assert.NotContains(t, v.Text, "vote")
	}
	assert.NotContains(t, first.Text, "Community")

	second := got[1]
	assert.Equal(t, "Topic NaN Question #11", second.ID)
	assert.Equal(t, "Which service runs containers?", second.Text)
	assert.Equal(t, []string{"A", "B"}, second.Choices.Labels())
	assert.Equal(t, "A", second.Answer)
}

func TestParse_MultiLineChoiceAndMultiAnswer(t *testing.T) {
	text := "Question #4\nSelect TWO.\nA. Configure a route\ntable entry\nB. Add a NAT\nC. Use a VPC gateway\nendpoint\nCorrect Answer: AC\n"
	got := Parse(text)
	require.Len(t, got, 1)

	a, _ := got[0].Choices.Get("A")
	c, _ := got[0].Choices.Get("C")
	assert.Equal(t, "Configure a route table entry", a)
	assert.Equal(t, "Use a VPC gateway endpoint", c)
	assert.Equal(t, "AC", got[0].Answer)
}

func TestParse_PartialQuestionsAreEmitted(t *testing.T) {
	text := "Question #1\nStem without choices\nQuestion #2\nA. only a choice"
	got := Parse(text)
	require.Len(t, got, 2)
	assert.Equal(t, "Stem without choices", got[0].Text)
	assert.Empty(t, got[0].Choices)
	assert.Empty(t, got[0].Answer)
	assert.Empty(t, got[1].Text)
	assert.Empty(t, got[1].Answer)
}

func TestParse_TopicBetweenQuestionsAppliesToNext(t *testing.T) {
	text := "Topic 1\nQuestion #1\nStem one\nTopic 2\nmore stem\nQuestion #2\nStem two"
	got := Parse(text)
	require.Len(t, got, 2)
	assert.Equal(t, "Topic 1 Question #1", got[0].ID)
	assert.Equal(t, "Stem one more stem", got[0].Text)
	assert.Equal(t, "Topic 2 Question #2", got[1].ID)
}

func TestParse_TrailingTopicIsDropped(t *testing.T) {
	got := Parse("Question #1\nStem\nTopic 9\n")
	require.Len(t, got, 1)
	assert.Equal(t, "Topic NaN Question #1", got[0].ID)
}

func TestParse_EmptyAndNoise(t *testing.T) {
	for _, text := range []string{"", "\n\n   \n", "header\nCorrect Answer: A\nA. stray"} {
		got := Parse(text)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestParse_WindowsLineEndings(t *testing.T) {
	got := Parse(strings.ReplaceAll(sampleDump, "\n", "\r\n"))
	require.Len(t, got, 1)
	assert.Equal(t, "B", got[0].Answer)
	assert.Equal(t, []string{"A", "B", "C"}, got[0].Choices.Labels())
}

func TestParse_OneRecordPerQuestionMarker(t *testing.T) {
	texts := []string{
		sampleDump,
		"Question #1\nQuestion #2\nQuestion #3",
		"noise\nTopic 1\nQuestion #1\nA. a\nCorrect Answer: A\nQuestion #1\nTopic 2",
		"Correct Answer: B\nQuestion #5\nCorrect Answer: C\nQuestion #6\nB. x\ny",
	}
	for _, text := range texts {
		markers := 0
		for _, line := range Lines(text) {
			if Classify(line).Kind == KindQuestion {
				markers++
			}
		}
		assert.Len(t, Parse(text), markers, "text %q", text)
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "mixed endings", in: "  a \r\n\r\nb\rc\n\n", want: []string{"a", "b", "c"}},
		{name: "form feed between pages", in: "a\fb", want: []string{"a", "b"}},
		{name: "vertical tab", in: "a\vb", want: []string{"a", "b"}},
		{name: "separators", in: "a\x1cb\x1dc\x1ed", want: []string{"a", "b", "c", "d"}},
		{name: "unicode breaks", in: "a\u0085b\u2028c\u2029d", want: []string{"a", "b", "c", "d"}},
		{name: "unit separator trimmed", in: "\x1fa\x1f\n", want: []string{"a"}},
		{name: "empty", in: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.in))
		})
	}
}

func TestParse_FormFeedSeparatesMarkers(t *testing.T) {
	got := Parse("Question #1\fStem\fA. x\fCorrect Answer: A")
	require.Len(t, got, 1)
	assert.Equal(t, "Stem", got[0].Text)
	assert.Equal(t, "A", got[0].Answer)
}

func TestParse_LaterAnswerReplacesEarlier(t *testing.T) {
	got := Parse("Question #1\nStem\nA. x\nCorrect Answer: A\nnoise\nCorrect Answer: C\n")
	require.Len(t, got, 1)
	assert.Equal(t, "C", got[0].Answer)
	assert.Equal(t, "Stem", got[0].Text)
	assert.Equal(t, []string{"A"}, got[0].Choices.Labels())
}
