// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RowHeader lists the Row columns in export order.
var RowHeader = []string{"Topic", "question_id", "question", "A", "B", "C", "D", "E", "F", "answer"}

// Row is the flattened, fixed-column projection of a Question used for
// tabular export. Missing choice labels hold the empty string.
type Row struct {
	Topic      string `json:"Topic" yaml:"Topic"`
	QuestionID string `json:"question_id" yaml:"question_id"`
	Question   string `json:"question" yaml:"question"`
	A          string `json:"A" yaml:"A"`
	B          string `json:"B" yaml:"B"`
	C          string `json:"C" yaml:"C"`
	D          string `json:"D" yaml:"D"`
	E          string `json:"E" yaml:"E"`
	F          string `json:"F" yaml:"F"`
	Answer     string `json:"answer" yaml:"answer"`
}

// Choice returns the column value for a choice label, or "" for labels
// outside A–F.
func (r Row) Choice(label string) string {
	switch label {
	case "A":
		return r.A
	case "B":
		return r.B
	case "C":
		return r.C
	case "D":
		return r.D
	case "E":
		return r.E
	case "F":
		return r.F
	}
	return ""
}

// Values returns the row's cells in RowHeader order.
func (r Row) Values() []string {
	return []string{r.Topic, r.QuestionID, r.Question, r.A, r.B, r.C, r.D, r.E, r.F, r.Answer}
}

// SetChoice stores text in the column for label. Labels outside A–F are ignored.
func (r *Row) SetChoice(label, text string) {
	switch label {
	case "A":
		r.A = text
	case "B":
		r.B = text
	case "C":
		r.C = text
	case "D":
		r.D = text
	case "E":
		r.E = text
	case "F":
		r.F = text
	}
}
