// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import "github.com/pdiddy/question-bank/pkg/types"

// State is the collecting state of the parser.
type State int

const (
	// Idle means no question is open.
	Idle State = iota
	// CollectingQuestion accumulates question text until the first choice.
	CollectingQuestion
	// CollectingChoices accumulates and merges choice text.
	CollectingChoices
	// Ignoring discards lines until the next Question marker.
	Ignoring
)

func (s State) String() string {
	switch s {
	case CollectingQuestion:
		return "collecting-question"
	case CollectingChoices:
		return "collecting-choices"
	case Ignoring:
		return "ignoring"
	}
	return "idle"
}

// Machine is the complete parser state between two lines. The zero value is
// the initial state: Idle, no pending topic, no open question.
type Machine struct {
	State State
	// PendingTopic is the topic number waiting for the next Question marker,
	// or "" when none was seen since the last one.
	PendingTopic string
	// Current is the open question. Step mutates it in place until it is
	// emitted; an emitted question is never touched again.
	Current *types.Question
	// LastLabel is the most recently opened choice label, "" if none.
	LastLabel string
}

// Step applies one classified line to m and returns the next state. When the
// line opens a new question, the previously open question is returned as
// emitted, complete or not.
func Step(m Machine, line Line) (next Machine, emitted *types.Question) {
	switch line.Kind {
	case KindTopic:
		m.PendingTopic = line.Value
		return m, nil

	case KindQuestion:
		emitted = m.Current
		topic := m.PendingTopic
		if topic == "" {
			topic = types.NoTopic
		}
		m.Current = &types.Question{ID: types.QuestionID(topic, line.Value)}
		m.PendingTopic = ""
		m.State = CollectingQuestion
		m.LastLabel = ""
		return m, emitted
	}

	if m.Current == nil {
		return m, nil
	}

	// A later Correct Answer line replaces the earlier one, even while ignoring.
	if line.Kind == KindAnswer {
		m.Current.Answer = line.Value
		m.State = Ignoring
		m.LastLabel = ""
		return m, nil
	}

	if m.State == Ignoring {
		return m, nil
	}

	if line.Kind == KindChoice {
		m.Current.Choices.Set(line.Label, line.Value)
		m.LastLabel = line.Label
		m.State = CollectingChoices
		return m, nil
	}

	switch {
	case m.State == CollectingChoices && m.LastLabel != "":
		m.Current.Choices.Append(m.LastLabel, line.Raw)
	case m.State == CollectingQuestion:
		m.Current.Text = types.JoinSpace(m.Current.Text, line.Raw)
	}
	return m, nil
}

// Flush closes the machine at end of input and returns the open question, if any.
func Flush(m Machine) *types.Question {
	return m.Current
}
