package annotate

import (
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[A-Za-z]+(?:'[A-Za-z]+)?|\d+|[^\sA-Za-z0-9]`)

// Tagger is the built-in heuristic annotation provider. Tagging runs in
// two passes: a baseline from a closed-class lexicon plus suffix
// heuristics, then contextual reinforcement rules that repair the most
// common baseline mistakes. It is deliberately approximate; the rules
// that consume its output tolerate tagging mistakes.
type Tagger struct {
	lexicon map[string]string
	verbs   map[string]bool
}

// NewTagger returns a Tagger with the default English lexicon.
func NewTagger() *Tagger {
	t := &Tagger{lexicon: make(map[string]string), verbs: make(map[string]bool)}
	t.load()
	return t
}

// Annotate tokenizes text and produces per-token category, lemma,
// dependency role and head reference plus sentence boundaries.
func (t *Tagger) Annotate(text string) (Annotation, error) {
	if err := checkText(text); err != nil {
		return Annotation{}, err
	}
	words := tokenRe.FindAllString(text, -1)
	tokens := make([]Token, len(words))
	for i, w := range words {
		tokens[i] = Token{
			Text:  w,
			POS:   t.baseline(w),
			Lemma: Lemma(w),
			Dep:   DepNone,
			Head:  -1,
		}
	}
	t.reinforce(tokens)
	assignSubjects(tokens)
	return Annotation{
		Text:      text,
		Tokens:    tokens,
		Sentences: sentenceSpans(tokens),
	}, nil
}

func (t *Tagger) baseline(word string) string {
	if word == "" {
		return Other
	}
	r := rune(word[0])
	if r >= '0' && r <= '9' {
		return Number
	}
	if !isLetter(r) {
		return Punct
	}
	lw := strings.ToLower(word)
	if pos, ok := t.lexicon[lw]; ok {
		return pos
	}
	if t.verbs[lw] {
		return Verb
	}
	switch {
	case strings.HasSuffix(lw, "ly") && len(lw) > 3:
		return Adverb
	case strings.HasSuffix(lw, "ing") && len(lw) > 4:
		return Verb
	case strings.HasSuffix(lw, "ed") && len(lw) > 3:
		return Verb
	case hasAnySuffix(lw, "tion", "ment", "ness", "ity", "ance", "ence"):
		return Noun
	case hasAnySuffix(lw, "ous", "ful", "ive", "able", "ible", "al"):
		return Adjective
	}
	// inflected forms of known base verbs: goes, wants, tries
	if base := Lemma(lw); base != lw && t.verbs[base] {
		return Verb
	}
	return Noun
}

// reinforce applies contextual correction rules over the baseline tags.
func (t *Tagger) reinforce(tokens []Token) {
	for i := range tokens {
		lw := strings.ToLower(tokens[i].Text)

		// demonstratives act as determiners before a nominal
		if lw == "this" || lw == "that" || lw == "these" || lw == "those" {
			if i+1 < len(tokens) {
				next := tokens[i+1].POS
				if next == Noun || next == Adjective {
					tokens[i].POS = Determiner
					continue
				}
			}
		}

		// a verb reading directly after a determiner or adjective is
		// almost always a noun ("the run", "a quick play")
		if i > 0 && tokens[i].POS == Verb && !t.verbs[lw] {
			prev := tokens[i-1].POS
			if prev == Determiner || prev == Adjective {
				tokens[i].POS = Noun
			}
		}
	}
}

// assignSubjects marks the nearest pronoun or noun to the left of each
// verb as its subject. Intervening adverbs and auxiliaries are skipped;
// a token can head at most one subject.
func assignSubjects(tokens []Token) {
	taken := make(map[int]bool)
	for vi := range tokens {
		if tokens[vi].POS != Verb {
			continue
		}
		for si := vi - 1; si >= 0 && si >= vi-3; si-- {
			pos := tokens[si].POS
			if pos == Adverb || pos == Aux || pos == Particle {
				continue
			}
			if (pos == Pronoun || pos == Noun) && !taken[si] {
				tokens[si].Dep = DepSubject
				tokens[si].Head = vi
				taken[si] = true
			}
			break
		}
	}
}

func sentenceSpans(tokens []Token) []Span {
	var spans []Span
	start := 0
	for i, tok := range tokens {
		if tok.POS == Punct && (tok.Text == "." || tok.Text == "!" || tok.Text == "?") {
			spans = append(spans, Span{Start: start, End: i + 1})
			start = i + 1
		}
	}
	if start < len(tokens) {
		spans = append(spans, Span{Start: start, End: len(tokens)})
	}
	return spans
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) && len(s) > len(suf)+1 {
			return true
		}
	}
	return false
}

func (t *Tagger) load() {
	add := func(pos string, words ...string) {
		for _, w := range words {
			t.lexicon[w] = pos
		}
	}
	add(Pronoun,
		"i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them",
		"this", "that", "these", "those",
		"someone", "anyone", "everyone", "nobody",
		"what", "which", "who", "whom",
		"they're", "you're", "it's", "there's")
	add(Determiner,
		"the", "a", "an", "my", "your", "his", "its", "our", "their",
		"some", "any", "no", "every", "each", "another")
	add(Preposition,
		"in", "on", "at", "from", "with", "by", "for", "of", "about",
		"into", "over", "under", "between", "through", "during",
		"before", "after", "without", "against")
	add(Particle, "to", "not")
	add(Aux,
		"is", "are", "was", "were", "be", "been", "being", "am",
		"do", "does", "did", "have", "has", "had",
		"will", "would", "can", "could", "shall", "should",
		"may", "might", "must", "ain't", "don't", "doesn't", "didn't",
		"isn't", "aren't", "wasn't", "weren't")
	add(Conjunction, "and", "or", "but", "so", "because", "if", "while", "although")
	add(Adverb,
		"where", "when", "why", "how",
		"very", "really", "too", "also", "just", "never", "always",
		"again", "here", "there", "now", "then", "still", "often",
		"yesterday", "today", "tomorrow", "ago", "well")
	add(Adjective,
		"good", "bad", "nice", "big", "small", "fast", "slow", "easy",
		"hard", "many", "few", "new", "old", "last", "first", "same",
		"other", "great", "little", "own", "long", "high", "different")
	for _, w := range []string{
		"go", "want", "make", "take", "know", "think", "see", "come",
		"get", "give", "find", "tell", "ask", "work", "seem", "feel",
		"try", "leave", "call", "buy", "need", "like", "help", "talk",
		"turn", "start", "show", "hear", "play", "run", "move", "live",
		"believe", "bring", "happen", "write", "sit", "stand", "lose",
		"pay", "meet", "walk", "say", "eat", "read", "speak", "visit",
		"wonder", "look", "use", "put", "stop", "wait", "love", "open",
		"stay", "let", "keep", "hold", "win", "learn", "change", "watch",
	} {
		t.verbs[w] = true
	}
}
