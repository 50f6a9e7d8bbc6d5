// Package improve derives stylistically "improved" variants of already
// corrected text. It never feeds back into the correction chain: the
// corrected text is read, the improved text is written, and the two
// stay independent.
package improve

import (
	"regexp"
	"strings"

	"redline/internal/fuzzy"
	"redline/internal/lexicon"
)

// Rewrite is the heuristic pass the pipeline runs after the rule chain:
// a small closed synonym vocabulary applied whole-word across the text.
func Rewrite(text string) string {
	out := text
	for _, p := range lexicon.RewritePhrases {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.From) + `\b`)
		out = re.ReplaceAllString(out, p.To)
	}
	return out
}

// Change describes one stylistic substitution.
type Change struct {
	Type   string `json:"type"`
	Before string `json:"before"`
	After  string `json:"after"`
	Reason string `json:"reason"`
}

// Improver applies synonym and clarity substitutions for a target
// style. Stateless and safe for concurrent use.
type Improver struct{}

func NewImprover() *Improver { return &Improver{} }

// substitute replaces the first occurrence of each whole-word match of
// the table keys, preserving the matched occurrence's leading case.
func substitute(text string, table []lexicon.Pair, typ, reason string) (string, []Change) {
	improved := text
	var changes []Change
	for _, p := range table {
		re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.From) + `\b`)
		match := re.FindString(text)
		if match == "" {
			continue
		}
		replacement := fuzzy.ApplyCase(match, p.To)
		improved = strings.Replace(improved, match, replacement, 1)
		changes = append(changes, Change{Type: typ, Before: match, After: replacement, Reason: reason})
	}
	return improved, changes
}

// Clarity replaces vague verbs with precise alternatives.
func (im *Improver) Clarity(text string) (string, []Change) {
	return substitute(text, lexicon.ClaritySynonyms, "clarity",
		"Replace vague verb with precise alternative")
}

// Professionalism upgrades casual vocabulary.
func (im *Improver) Professionalism(text string) (string, []Change) {
	return substitute(text, lexicon.ProfessionalSynonyms, "professionalism",
		"Replace informal with professional vocabulary")
}

// Casual simplifies overly formal vocabulary.
func (im *Improver) Casual(text string) (string, []Change) {
	return substitute(text, lexicon.CasualSynonyms, "simplification",
		"Simplify overly formal vocabulary")
}

// Redundancy removes tautological phrases ("true fact", "exact same").
func (im *Improver) Redundancy(text string) (string, []Change) {
	improved := text
	var changes []Change
	for _, p := range lexicon.RedundantPhrases {
		re := regexp.MustCompile(`(?i)` + p.From)
		match := re.FindString(improved)
		if match == "" {
			continue
		}
		replacement := fuzzy.ApplyCase(match, p.To)
		improved = strings.Replace(improved, match, replacement, 1)
		changes = append(changes, Change{Type: "redundancy", Before: match, After: replacement,
			Reason: "Remove redundant phrase"})
	}
	return improved, changes
}

// Readability rewrites weak hedging constructions.
func (im *Improver) Readability(text string) (string, []Change) {
	improved := text
	var changes []Change
	for _, p := range lexicon.WeakConstructions {
		re := regexp.MustCompile(`(?i)` + p.From)
		match := re.FindString(improved)
		if match == "" {
			continue
		}
		rewritten := re.ReplaceAllString(improved, p.To)
		if rewritten == improved {
			continue
		}
		changes = append(changes, Change{Type: "readability", Before: match, After: p.To,
			Reason: "Improve sentence structure and readability"})
		improved = rewritten
	}
	return improved, changes
}

// Styles accepted by ForStyle.
const (
	StyleNeutral      = "neutral"
	StyleProfessional = "professional"
	StyleCasual       = "casual"
)

// ForStyle runs clarity, redundancy and readability passes, then the
// style-specific pass. Unknown styles behave as neutral.
func (im *Improver) ForStyle(text, style string) (string, []Change) {
	current := text
	var all []Change

	for _, pass := range []func(string) (string, []Change){im.Clarity, im.Redundancy, im.Readability} {
		improved, changes := pass(current)
		if len(changes) > 0 {
			current = improved
			all = append(all, changes...)
		}
	}

	switch style {
	case StyleProfessional:
		improved, changes := im.Professionalism(current)
		if len(changes) > 0 {
			current = improved
			all = append(all, changes...)
		}
	case StyleCasual:
		improved, changes := im.Casual(current)
		if len(changes) > 0 {
			current = improved
			all = append(all, changes...)
		}
	}
	return current, all
}

// Mode post-processing: trivial find/replace adjustments applied by the
// HTTP layer to the improved text.
const (
	ModeStandard     = "standard"
	ModeSimple       = "simple"
	ModeFormal       = "formal"
	ModeProfessional = "professional"
)

var simpleStrip = regexp.MustCompile(`(?i)\b(favorable|unfavorable|professional)\b`)

// ApplyMode adjusts text for the requested output mode. Unknown modes
// and ModeStandard return the text unchanged.
func ApplyMode(text, mode string) string {
	switch mode {
	case ModeSimple:
		stripped := simpleStrip.ReplaceAllString(text, "")
		return strings.Join(strings.Fields(stripped), " ")
	case ModeFormal:
		out := strings.ReplaceAll(text, "gonna", "going to")
		return strings.ReplaceAll(out, "wanna", "want to")
	case ModeProfessional:
		out := strings.ReplaceAll(text, "good", "satisfactory")
		return strings.ReplaceAll(out, "bad", "unsatisfactory")
	default:
		return text
	}
}
