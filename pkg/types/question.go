// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"

	"go.yaml.in/yaml/v3"
)

// NoTopic is the topic value used when no Topic marker preceded a question.
const NoTopic = "NaN"

// ChoiceLabels is the closed set of choice labels in outbound column order.
var ChoiceLabels = []string{"A", "B", "C", "D", "E", "F"}

// QuestionID builds the canonical identifier "Topic <topic> Question #<number>".
func QuestionID(topic, number string) string {
	return fmt.Sprintf("Topic %s Question #%s", topic, number)
}

// Choice is one labeled answer option.
type Choice struct {
	Label string
	Text  string
}

// Choices is an insertion-ordered mapping from label to choice text. The zero
// value is an empty mapping ready to use.
type Choices []Choice

// Get returns the text stored under label.
func (c Choices) Get(label string) (string, bool) {
	for _, ch := range c {
		if ch.Label == label {
			return ch.Text, true
		}
	}
	return "", false
}

// Set stores text under label. An existing label keeps its position and has
// its text replaced; a new label is appended.
func (c *Choices) Set(label, text string) {
	for i := range *c {
		if (*c)[i].Label == label {
			(*c)[i].Text = text
			return
		}
	}
	*c = append(*c, Choice{Label: label, Text: text})
}

// Append merges text onto the existing text of label, separated by a single
// space. A missing label is created.
func (c *Choices) Append(label, text string) {
	for i := range *c {
		if (*c)[i].Label == label {
			(*c)[i].Text = JoinSpace((*c)[i].Text, text)
			return
		}
	}
	*c = append(*c, Choice{Label: label, Text: text})
}

// Labels returns the labels in insertion order.
func (c Choices) Labels() []string {
	labels := make([]string, len(c))
	for i, ch := range c {
		labels[i] = ch.Label
	}
	return labels
}

// All iterates label/text pairs in insertion order.
func (c Choices) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, ch := range c {
			if !yield(ch.Label, ch.Text) {
				return
			}
		}
	}
}

// MarshalJSON encodes the choices as a JSON object whose keys keep insertion order.
func (c Choices) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ch := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(ch.Label)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(ch.Text)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, preserving the key order of the input.
func (c *Choices) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("choices: expected object, got %v", tok)
	}
	var out Choices
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		label, _ := kt.(string)
		var text string
		if err := dec.Decode(&text); err != nil {
			return fmt.Errorf("choices: decoding %q: %w", label, err)
		}
		out.Set(label, text)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalYAML encodes the choices as a YAML mapping in insertion order.
func (c Choices) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, ch := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ch.Label},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ch.Text},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, preserving key order.
func (c *Choices) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("choices: expected mapping at line %d", node.Line)
	}
	var out Choices
	for i := 0; i+1 < len(node.Content); i += 2 {
		out.Set(node.Content[i].Value, node.Content[i+1].Value)
	}
	*c = out
	return nil
}

// Question is one parsed multiple-choice question.
//
// ID always has the shape "Topic <T> Question #<N>". Answer stays empty until
// a Correct Answer line has been seen and may hold several letters ("AC").
type Question struct {
	ID      string  `json:"id" yaml:"id"`
	Text    string  `json:"question" yaml:"question"`
	Choices Choices `json:"choices" yaml:"choices"`
	Answer  string  `json:"answer" yaml:"answer"`
}

// JoinSpace appends next to base with a single separating space. An empty
// base yields next unchanged.
func JoinSpace(base, next string) string {
	if base == "" {
		return next
	}
	return base + " " + next
}
