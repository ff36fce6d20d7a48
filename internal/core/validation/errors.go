package validation

import (
	"slices"
	"strings"
)

// Violation is one broken business rule, keyed by the form field it belongs
// to.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations are ordered by field declaration order (see FieldOrder), at most
// one per field.
type Violations []Violation

// First returns the violation to surface when only one message can be
// shown.
func (v Violations) First() (Violation, bool) {
	if len(v) == 0 {
		return Violation{}, false
	}
	return v[0], true
}

// Fields flattens v into a field-keyed error map.
func (v Violations) Fields() FormErrors {
	out := make(FormErrors, len(v))
	for _, violation := range v {
		out[violation.Field] = violation.Message
	}
	return out
}

// Messages returns the messages in order.
func (v Violations) Messages() []string {
	out := make([]string, len(v))
	for i, violation := range v {
		out[i] = violation.Message
	}
	return out
}

// FormErrors maps a field name to a single human-readable message. Values
// are never modified in place by this package; Apply returns a new map.
type FormErrors map[string]string

// Apply merges a step diff into e and returns the result as a new map: the
// diff's cleared fields are removed, its violations set.
func (e FormErrors) Apply(d Diff) FormErrors {
	out := make(FormErrors, len(e)+len(d.Set))
	for field, msg := range e {
		out[field] = msg
	}
	for _, field := range d.Clear {
		delete(out, field)
	}
	for _, violation := range d.Set {
		out[violation.Field] = violation.Message
	}
	return out
}

// Ordered returns the entries of e sorted by field declaration order.
// Fields the engine does not know sort last, alphabetically.
func (e FormErrors) Ordered() Violations {
	out := make(Violations, 0, len(e))
	for field, msg := range e {
		out = append(out, Violation{Field: field, Message: msg})
	}
	slices.SortFunc(out, func(a, b Violation) int {
		if c := fieldRank(a.Field) - fieldRank(b.Field); c != 0 {
			return c
		}
		return strings.Compare(a.Field, b.Field)
	})
	return out
}

// First returns the entry of e for the earliest declared field.
func (e FormErrors) First() (Violation, bool) {
	return e.Ordered().First()
}

// Diff is the result of validating one wizard step: violations to set and
// fields of the step that now pass and should be cleared.
type Diff struct {
	Set   Violations `json:"set"`
	Clear []string   `json:"clear"`
}

// Error is returned by full validation when at least one rule fails.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("campaign is invalid: ")
	for i, v := range e.Violations {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(v.Field)
		b.WriteString(": ")
		b.WriteString(v.Message)
	}
	return b.String()
}

// Fields returns the field-keyed error map.
func (e *Error) Fields() FormErrors {
	return e.Violations.Fields()
}

// First returns the violation to surface to the user.
func (e *Error) First() Violation {
	v, _ := e.Violations.First()
	return v
}
