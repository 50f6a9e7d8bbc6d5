package rules

import (
	"fmt"
	"strings"

	"redline/internal/annotate"
	"redline/internal/fuzzy"
	"redline/internal/lexicon"
)

// Spelling corrects out-of-vocabulary alphabetic tokens through the
// fuzzy matcher. A found correction is applied whole-word across the
// entire text, so a repeated misspelling converges in a single pass.
type Spelling struct {
	Matcher *fuzzy.Matcher
	Vocab   *lexicon.Vocabulary
}

func (Spelling) Name() string { return "Spelling correction" }

func (r Spelling) Apply(text string, ann annotate.Annotation) Outcome {
	var changes []ChangeRecord
	seen := make(map[string]bool)
	for _, tok := range ann.Tokens {
		if !tok.IsAlphabetic() {
			continue
		}
		lw := strings.ToLower(tok.Text)
		if seen[lw] || r.Vocab.Contains(lw) {
			continue
		}
		seen[lw] = true

		corr := r.Matcher.Correct(tok.Text)
		if !corr.Changed || strings.EqualFold(corr.Corrected, tok.Text) {
			continue
		}
		text = replaceWholeWord(text, tok.Text, corr.Corrected, false)
		changes = append(changes, ChangeRecord{
			Name:       r.Name(),
			Reason:     fmt.Sprintf("Fuzzy match for '%s'", tok.Text),
			Before:     tok.Text,
			After:      corr.Corrected,
			Confidence: corr.Confidence,
		})
	}
	if len(changes) == 0 {
		return NoChange()
	}
	return Changed(text, changes)
}
