// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"regexp"
	"strings"
)

// LineKind identifies the structural role of a trimmed, non-blank line.
type LineKind int

const (
	// KindText is any line that matches no marker.
	KindText LineKind = iota
	// KindTopic is "Topic <digits>".
	KindTopic
	// KindQuestion is "Question #<digits>".
	KindQuestion
	// KindAnswer is "Correct Answer: <letters>", colon optional.
	KindAnswer
	// KindChoice is "<A-F>. <text>".
	KindChoice
)

func (k LineKind) String() string {
	switch k {
	case KindTopic:
		return "topic"
	case KindQuestion:
		return "question"
	case KindAnswer:
		return "answer"
	case KindChoice:
		return "choice"
	}
	return "text"
}

// Line is a classified input line.
type Line struct {
	Kind LineKind
	// Raw is the trimmed line.
	Raw string
	// Value is the extracted payload: the topic or question number, the
	// answer letters, or the choice text.
	Value string
	// Label is the choice label for KindChoice.
	Label string
}

// classifier pairs a line pattern with its extraction.
type classifier struct {
	kind    LineKind
	pattern *regexp.Regexp
	extract func(m []string) (label, value string)
}

var (
	topicPattern    = regexp.MustCompile(`^Topic\s*(\d+)`)
	questionPattern = regexp.MustCompile(`^Question\s*#\s*(\d+)`)
	answerPattern   = regexp.MustCompile(`^Correct Answer\s*:?\s*([A-F]+)`)
	choicePattern   = regexp.MustCompile(`^([A-F])\.\s+(.*)$`)

	// mostVotedPattern matches the vote annotation some dumps append to a choice.
	mostVotedPattern = regexp.MustCompile(`\s*Most Voted.*$`)
)

func firstGroup(m []string) (string, string) { return "", m[1] }

// classifiers are evaluated in order; the first match wins.
var classifiers = []classifier{
	{kind: KindTopic, pattern: topicPattern, extract: firstGroup},
	{kind: KindQuestion, pattern: questionPattern, extract: firstGroup},
	{kind: KindAnswer, pattern: answerPattern, extract: firstGroup},
	{kind: KindChoice, pattern: choicePattern, extract: func(m []string) (string, string) {
		return m[1], StripAnnotation(m[2])
	}},
}

// Classify determines the kind of a line and extracts its payload. The line
// is trimmed first; callers skip blank lines before classifying.
func Classify(raw string) Line {
	line := strings.TrimSpace(raw)
	for _, c := range classifiers {
		if m := c.pattern.FindStringSubmatch(line); m != nil {
			label, value := c.extract(m)
			return Line{Kind: c.kind, Raw: line, Value: value, Label: label}
		}
	}
	return Line{Kind: KindText, Raw: line, Value: line}
}

// StripAnnotation removes a trailing "Most Voted" marker and surrounding
// whitespace from choice text.
func StripAnnotation(text string) string {
	return strings.TrimSpace(mostVotedPattern.ReplaceAllString(text, ""))
}
