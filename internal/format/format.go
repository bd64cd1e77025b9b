// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package format flattens parsed questions into fixed-column rows for
// tabular export.
package format

import (
	"regexp"

	"github.com/pdiddy/question-bank/pkg/types"
)

// idPattern is the only accepted question ID grammar.
var idPattern = regexp.MustCompile(`^Topic\s+(\d+|NaN)\s+Question #(\d+)$`)

// ParseID splits a question ID into its topic and question number. It
// reports false when id does not follow "Topic <digits|NaN> Question #<digits>".
func ParseID(id string) (topic, number string, ok bool) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// RowFor flattens one question. It reports false when the question ID is
// malformed.
func RowFor(q types.Question) (types.Row, bool) {
	topic, number, ok := ParseID(q.ID)
	if !ok {
		return types.Row{}, false
	}

	row := types.Row{
		Topic:      topic,
		QuestionID: number,
		Question:   q.Text,
		Answer:     q.Answer,
	}
	for _, label := range types.ChoiceLabels {
		if text, found := q.Choices.Get(label); found {
			row.SetChoice(label, text)
		}
	}
	return row, true
}

// Format flattens questions in order. Questions with a malformed ID are
// dropped silently; use Dropped to count them.
func Format(questions []types.Question) []types.Row {
	rows := make([]types.Row, 0, len(questions))
	for _, q := range questions {
		if row, ok := RowFor(q); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// Dropped returns the IDs of questions Format would exclude.
func Dropped(questions []types.Question) []string {
	var ids []string
	for _, q := range questions {
		if _, _, ok := ParseID(q.ID); !ok {
			ids = append(ids, q.ID)
		}
	}
	return ids
}
