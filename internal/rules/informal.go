package rules

import (
	"redline/internal/annotate"
	"redline/internal/lexicon"
)

// InformalFormal replaces informal contractions and slang with their
// formal equivalents. Every occurrence of a present key is replaced,
// but the rule reports one ChangeRecord per distinct key, not per
// occurrence.
type InformalFormal struct{}

func (InformalFormal) Name() string { return "Informal -> Formal" }

func (r InformalFormal) Apply(text string, _ annotate.Annotation) Outcome {
	var changes []ChangeRecord
	for _, p := range lexicon.InformalPhrases {
		re := wordPattern(p.From)
		if !re.MatchString(text) {
			continue
		}
		text = re.ReplaceAllString(text, p.To)
		changes = append(changes, ChangeRecord{
			Name:   r.Name(),
			Reason: "Replace common informal contractions",
			Before: p.From,
			After:  p.To,
		})
	}
	if len(changes) == 0 {
		return NoChange()
	}
	return Changed(text, changes)
}
