package rules

import (
	"regexp"
	"strings"

	"redline/internal/annotate"
)

var questionRe = regexp.MustCompile(
	`(?i)\b(where|when|what|why|how)\b\s+\b(is|are|was|were)\b\s+([^?.!,]+)`)

// QuestionReordering rewrites inverted indirect questions:
// "where is the market" becomes "where the market is". Each match in
// the sentence produces its own ChangeRecord.
type QuestionReordering struct{}

func (QuestionReordering) Name() string { return "Question reordering" }

func (r QuestionReordering) Apply(text string, _ annotate.Annotation) Outcome {
	var changes []ChangeRecord
	rewritten := questionRe.ReplaceAllStringFunc(text, func(match string) string {
		parts := questionRe.FindStringSubmatch(match)
		wh, aux, rest := parts[1], parts[2], strings.TrimSpace(parts[3])
		after := wh + " " + rest + " " + aux
		changes = append(changes, ChangeRecord{
			Name:   r.Name(),
			Reason: "Indirect question inversion",
			Before: match,
			After:  after,
		})
		return after
	})
	if len(changes) == 0 {
		return NoChange()
	}
	return Changed(rewritten, changes)
}
