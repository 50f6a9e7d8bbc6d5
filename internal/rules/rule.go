// Package rules holds the correction rules of the pipeline. Each rule
// is a pure function from (text, annotation) to a possibly-changed text
// plus change records; rules carry no state between applications.
package rules

import "redline/internal/annotate"

// ChangeRecord is one audit entry describing an applied transformation.
// Immutable once created; the pipeline appends records in rule
// execution order.
type ChangeRecord struct {
	Name       string  `json:"name"`
	Reason     string  `json:"reason"`
	Before     string  `json:"before"`
	After      string  `json:"after"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Outcome is the result of applying one rule. The zero value is the
// "no change" sentinel: it distinguishes a rule that found nothing to
// fix from one that produced identical text (which would be a bug).
type Outcome struct {
	Changed bool
	Text    string
	Changes []ChangeRecord
}

// NoChange reports that the rule inspected the text and left it alone.
func NoChange() Outcome { return Outcome{} }

// Changed wraps a rewritten text and its records.
func Changed(text string, changes []ChangeRecord) Outcome {
	return Outcome{Changed: true, Text: text, Changes: changes}
}

// Rule is a single correction step. Apply must leave text byte-for-byte
// untouched and return the NoChange sentinel when nothing fires. The
// annotation always describes the given text; it is stale the moment
// Apply returns changed text, and regenerating it is the orchestrator's
// job, not the rule's.
type Rule interface {
	Name() string
	Apply(text string, ann annotate.Annotation) Outcome
}
