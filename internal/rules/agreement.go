package rules

import (
	"fmt"
	"strings"

	"redline/internal/annotate"
	"redline/internal/lexicon"
)

// SubjectVerbAgreement appends "s" to a base-form verb governed by a
// third-person-singular pronoun subject. Irregular verbs are out of
// scope; anything already ending in "s" is skipped.
type SubjectVerbAgreement struct{}

func (SubjectVerbAgreement) Name() string { return "Subject-Verb agreement" }

func (r SubjectVerbAgreement) Apply(text string, ann annotate.Annotation) Outcome {
	var changes []ChangeRecord
	for _, tok := range ann.Tokens {
		if tok.Dep != annotate.DepSubject || tok.Head < 0 || tok.Head >= len(ann.Tokens) {
			continue
		}
		verb := ann.Tokens[tok.Head]
		if verb.POS != annotate.Verb {
			continue
		}
		if !lexicon.ThirdSingularPronouns[strings.ToLower(tok.Text)] {
			continue
		}
		vl := strings.ToLower(verb.Text)
		if vl != verb.Lemma || strings.HasSuffix(vl, "s") {
			continue
		}
		after := thirdSingular(verb.Text)
		text = replaceWholeWord(text, verb.Text, after, true)
		changes = append(changes, ChangeRecord{
			Name:   r.Name(),
			Reason: fmt.Sprintf("Subject '%s' needs 3rd person singular verb", tok.Text),
			Before: verb.Text,
			After:  after,
		})
	}
	if len(changes) == 0 {
		return NoChange()
	}
	return Changed(text, changes)
}

// thirdSingular inflects a base verb for a 3rd-person-singular subject
// with plain orthographic suffixing (go -> goes, try -> tries,
// walk -> walks). Irregular forms are not handled.
func thirdSingular(verb string) string {
	lw := strings.ToLower(verb)
	switch {
	case strings.HasSuffix(lw, "o"), strings.HasSuffix(lw, "x"),
		strings.HasSuffix(lw, "z"), strings.HasSuffix(lw, "ch"),
		strings.HasSuffix(lw, "sh"):
		return verb + "es"
	case strings.HasSuffix(lw, "y") && len(lw) > 1 && !isVowel(lw[len(lw)-2]):
		return verb[:len(verb)-1] + "ies"
	default:
		return verb + "s"
	}
}

func isVowel(c byte) bool {
	return c == 'a' || c == 'e' || c == 'i' || c == 'o' || c == 'u'
}
