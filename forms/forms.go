// Package forms holds the state of the admin editing screens between
// requests: what the admin typed, the tag lists being edited and the
// conversion into database inputs.
package forms

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// FieldOp is the name of the submit buttons. Their value selects what a
// post does: "save", "add-tag" or "remove-tag:<value>".
const FieldOp = "op"

type OpKind int

const (
	OpSave OpKind = iota
	OpAddTag
	OpRemoveTag
)

type Op struct {
	Kind  OpKind
	Value string
}

// Saves reports whether the post should be persisted. Tag edits only
// re-render the form.
func (o Op) Saves() bool {
	return o.Kind == OpSave
}

func ParseOp(button string) Op {
	switch {
	case button == "add-tag":
		return Op{Kind: OpAddTag}
	case strings.HasPrefix(button, "remove-tag:"):
		return Op{Kind: OpRemoveTag, Value: strings.TrimPrefix(button, "remove-tag:")}
	default:
		return Op{Kind: OpSave}
	}
}

// TagList is an editable list of distinct, non-empty strings.
type TagList []string

// Add appends v unless it is empty or already present.
func (t *TagList) Add(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" || slices.Contains(*t, v) {
		return false
	}
	*t = append(*t, v)
	return true
}

func (t *TagList) Remove(v string) bool {
	i := slices.Index(*t, v)
	if i < 0 {
		return false
	}
	*t = slices.Delete(*t, i, i+1)
	return true
}

func (t TagList) Strings() []string {
	return append([]string{}, t...)
}

// bindTags rebuilds the list from the hidden inputs and applies a tag op.
func bindTags(values url.Values, field, newField string, op Op) (TagList, string) {
	var tags TagList
	for _, v := range values[field] {
		tags.Add(v)
	}

	pending := strings.TrimSpace(values.Get(newField))
	switch op.Kind {
	case OpAddTag:
		tags.Add(pending)
		pending = ""
	case OpRemoveTag:
		tags.Remove(op.Value)
	}
	return tags, pending
}

func formString(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func formBool(values url.Values, key string) bool {
	switch values.Get(key) {
	case "on", "true", "1":
		return true
	}
	return false
}

func formInt(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", key)
	}
	return n, nil
}
