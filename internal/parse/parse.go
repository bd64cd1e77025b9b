// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse turns cleaned exam-dump text into Question records.
//
// Lines are classified independently (Classify) and then fed through an
// explicit state machine (Step). Parsing never fails: malformed or empty
// input yields a possibly empty list.
package parse

import (
	"strings"
	"unicode"

	"github.com/pdiddy/question-bank/pkg/types"
)

// Lines splits text on any line boundary and returns the trimmed, non-blank
// lines. Besides \n and \r, the vertical tab, form feed, file/group/record
// separators, NEL and the Unicode line and paragraph separators end a line.
func Lines(text string) []string {
	var lines []string
	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		if line = strings.TrimFunc(line, isSpace); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// isSpace also counts the unit separator, which Unicode classes as a
// segment separator.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\x1f'
}

// Parse scans cleaned text and returns the questions in input order. Every
// Question marker yields exactly one record, including a partial one open at
// end of input.
func Parse(text string) []types.Question {
	questions := []types.Question{}
	var m Machine

	for _, raw := range Lines(text) {
		var emitted *types.Question
		m, emitted = Step(m, Classify(raw))
		if emitted != nil {
			questions = append(questions, *emitted)
		}
	}

	if q := Flush(m); q != nil {
		questions = append(questions, *q)
	}
	return questions
}
