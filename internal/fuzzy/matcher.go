// Package fuzzy implements best-guess spelling correction: a typo
// table, context-free shorthand rewrites, and similarity-ranked
// vocabulary search, applied in that priority order.
package fuzzy

import (
	"regexp"
	"strings"

	"redline/internal/lexicon"
	"redline/pkg/options"
)

// Matcher corrects single words against a reference vocabulary. The
// vocabulary may be empty, in which case only the typo table and the
// shorthand rewrites apply. Matcher is read-only after construction and
// safe for concurrent use.
type Matcher struct {
	vocab *lexicon.Vocabulary
	opts  options.MatcherOptions
}

func NewMatcher(vocab *lexicon.Vocabulary, opts ...options.Option) *Matcher {
	o := options.DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	if vocab == nil {
		vocab = lexicon.NewVocabulary()
	}
	return &Matcher{vocab: vocab, opts: o}
}

// Correction is the outcome of correcting one word.
type Correction struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Changed    bool    `json:"-"`
	Confidence float64 `json:"confidence"`
}

// Candidate is one scored suggestion.
type Candidate struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Correct corrects a single word. Strategy order, first hit wins:
//
//  1. typo-table lookup (confidence 0.9)
//  2. whole-token shorthand rewrite (ur -> your, confidence 0.75)
//  3. vocabulary membership: known words are never altered
//  4. fuzzy vocabulary search at the configured threshold
//
// The first letter's case of the input is preserved in the replacement.
func (m *Matcher) Correct(word string) Correction {
	lw := strings.ToLower(word)

	if fix, ok := lexicon.CommonTypos[lw]; ok {
		return Correction{Original: word, Corrected: ApplyCase(word, fix), Changed: true, Confidence: 0.9}
	}

	if fix, ok := lexicon.ContextShorthand[lw]; ok {
		return Correction{Original: word, Corrected: ApplyCase(word, fix), Changed: true, Confidence: 0.75}
	}

	if m.vocab.Contains(lw) {
		return Correction{Original: word, Corrected: word}
	}

	candidates := m.vocab.Closest(lw, m.opts.MaxCandidates, m.opts.ConfidenceThreshold)
	if len(candidates) > 0 {
		best := m.pick(lw, candidates)
		if !strings.EqualFold(best, lw) {
			return Correction{Original: word, Corrected: ApplyCase(word, best), Changed: true, Confidence: 0.75}
		}
	}

	return Correction{Original: word, Corrected: word}
}

// pick selects the best correction among fuzzy candidates: prefer
// candidates whose length is within MaxLengthDelta of the word, fall
// back to the full list, then maximize the similarity ratio with
// first-found tie-breaking.
func (m *Matcher) pick(word string, candidates []string) string {
	wl := len([]rune(word))
	var filtered []string
	for _, c := range candidates {
		if d := len([]rune(c)) - wl; -m.opts.MaxLengthDelta <= d && d <= m.opts.MaxLengthDelta {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		filtered = candidates
	}
	best := filtered[0]
	bestScore := lexicon.Similarity(word, best)
	for _, c := range filtered[1:] {
		if s := lexicon.Similarity(word, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

// Suggest returns up to max scored candidates sorted by descending
// similarity, for callers that want alternatives rather than an
// automatic fix. A typo-table hit short-circuits with confidence 1.0.
func (m *Matcher) Suggest(word string, max int) []Candidate {
	if max <= 0 {
		max = m.opts.MaxSuggestions
	}
	lw := strings.ToLower(word)

	if fix, ok := lexicon.CommonTypos[lw]; ok {
		return []Candidate{{Term: fix, Score: 1.0}}
	}

	terms := m.vocab.Closest(lw, max, m.opts.SuggestCutoff)
	out := make([]Candidate, len(terms))
	for i, t := range terms {
		out[i] = Candidate{Term: t, Score: lexicon.Similarity(lw, t)}
	}
	return out
}

var wordCore = regexp.MustCompile(`^(\W*)(\w+)(\W*)$`)

// CorrectText corrects every word of text independently, peeling
// punctuation around each whitespace-separated token. It returns the
// corrected text and one record per changed word. Tokens without a
// clean word core (pure punctuation, embedded apostrophes) pass
// through unchanged.
func (m *Matcher) CorrectText(text string) (string, []Correction) {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))
	var records []Correction

	for _, w := range words {
		parts := wordCore.FindStringSubmatch(w)
		if parts == nil {
			out = append(out, w)
			continue
		}
		prefix, core, suffix := parts[1], parts[2], parts[3]
		corr := m.Correct(core)
		if corr.Changed && !strings.EqualFold(corr.Corrected, core) {
			out = append(out, prefix+corr.Corrected+suffix)
			records = append(records, corr)
		} else {
			out = append(out, w)
		}
	}
	return strings.Join(out, " "), records
}
