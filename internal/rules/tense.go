package rules

import (
	"strings"

	"redline/internal/annotate"
	"redline/internal/lexicon"
)

// TenseConsistency converts base-form verbs to past tense when a
// past-time marker (yesterday/ago/last) appears anywhere in the
// sentence. Conversion is suffix-only ("ed"); irregular verbs are not
// handled.
type TenseConsistency struct{}

func (TenseConsistency) Name() string { return "Past Tense conversion" }

func (r TenseConsistency) Apply(text string, ann annotate.Annotation) Outcome {
	marker := false
	for _, tok := range ann.Tokens {
		if lexicon.TimeMarkers[strings.ToLower(tok.Text)] {
			marker = true
			break
		}
	}
	if !marker {
		return NoChange()
	}

	var changes []ChangeRecord
	seen := make(map[string]bool)
	for _, tok := range ann.Tokens {
		if tok.POS != annotate.Verb {
			continue
		}
		vl := strings.ToLower(tok.Text)
		if seen[vl] || vl != tok.Lemma || strings.HasSuffix(vl, "ed") {
			continue
		}
		seen[vl] = true
		after := pastTense(tok.Text)
		text = replaceWholeWord(text, tok.Text, after, true)
		changes = append(changes, ChangeRecord{
			Name:   r.Name(),
			Reason: "Time marker present",
			Before: tok.Text,
			After:  after,
		})
	}
	if len(changes) == 0 {
		return NoChange()
	}
	return Changed(text, changes)
}

// pastTense inflects a base verb with plain orthographic suffixing
// (walk -> walked, live -> lived, try -> tried).
func pastTense(verb string) string {
	lw := strings.ToLower(verb)
	switch {
	case strings.HasSuffix(lw, "e"):
		return verb + "d"
	case strings.HasSuffix(lw, "y") && len(lw) > 1 && !isVowel(lw[len(lw)-2]):
		return verb[:len(verb)-1] + "ied"
	default:
		return verb + "ed"
	}
}
