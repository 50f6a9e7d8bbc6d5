package rules

import (
	"regexp"

	"redline/internal/annotate"
	"redline/internal/lexicon"
)

// WordySimplification shortens verbose multi-word phrases. Matching is
// case-insensitive, phrase-level, first match only per key.
type WordySimplification struct{}

func (WordySimplification) Name() string { return "Wordy phrase simplification" }

func (r WordySimplification) Apply(text string, _ annotate.Annotation) Outcome {
	var changes []ChangeRecord
	for _, p := range lexicon.WordyPhrases {
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p.From))
		loc := re.FindStringIndex(text)
		if loc == nil {
			continue
		}
		text = text[:loc[0]] + p.To + text[loc[1]:]
		changes = append(changes, ChangeRecord{
			Name:   r.Name(),
			Reason: "Shorten verbose phrases",
			Before: p.From,
			After:  p.To,
		})
	}
	if len(changes) == 0 {
		return NoChange()
	}
	return Changed(text, changes)
}
