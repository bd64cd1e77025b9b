// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestChoices_SetKeepsInsertionOrder(t *testing.T) {
	var c Choices
	c.Set("C", "third")
	c.Set("A", "first")
	c.Set("C", "replaced")

	assert.Equal(t, []string{"C", "A"}, c.Labels())
	got, ok := c.Get("C")
	require.True(t, ok)
	assert.Equal(t, "replaced", got)

	_, ok = c.Get("B")
	assert.False(t, ok)
}

func TestChoices_AppendMergesWithSpace(t *testing.T) {
	var c Choices
	c.Set("A", "Use a VPC")
	c.Append("A", "gateway endpoint")
	c.Append("B", "orphan")

	a, _ := c.Get("A")
	assert.Equal(t, "Use a VPC gateway endpoint", a)
	b, _ := c.Get("B")
	assert.Equal(t, "orphan", b)
}

func TestChoices_All(t *testing.T) {
	c := Choices{{Label: "B", Text: "two"}, {Label: "A", Text: "one"}}
	var labels []string
	for label := range c.All() {
		labels = append(labels, label)
	}
	assert.Equal(t, []string{"B", "A"}, labels)
}

func TestChoices_JSONPreservesOrder(t *testing.T) {
	q := Question{
		ID:      QuestionID("1", "7"),
		Text:    "Pick one.",
		Choices: Choices{{Label: "B", Text: "second"}, {Label: "A", Text: "first"}},
		Answer:  "A",
	}
	data, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"Topic 1 Question #7","question":"Pick one.","choices":{"B":"second","A":"first"},"answer":"A"}`, string(data))
	assert.Contains(t, string(data), `{"B":"second","A":"first"}`)

	var back Question
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, q, back)
}

func TestChoices_YAMLPreservesOrder(t *testing.T) {
	c := Choices{{Label: "C", Text: "third"}, {Label: "A", Text: "first"}}
	data, err := yaml.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "C: third\nA: first\n", string(data))

	var back Choices
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

func TestRow_ChoiceColumns(t *testing.T) {
	var r Row
	for _, l := range ChoiceLabels {
		r.SetChoice(l, "text "+l)
	}
	r.SetChoice("G", "ignored")

	for _, l := range ChoiceLabels {
		assert.Equal(t, "text "+l, r.Choice(l))
	}
	assert.Equal(t, "", r.Choice("G"))
	assert.Len(t, r.Values(), len(RowHeader))
}
