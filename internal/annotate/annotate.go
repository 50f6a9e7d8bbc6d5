// Package annotate defines the linguistic annotation boundary consumed
// by the correction rules, together with a heuristic in-process
// implementation. Annotation is a pure function of the text: it carries
// no state across calls and must be regenerated whenever the text
// changes, because token boundaries, lemmas and dependency roles are
// all invalidated by any mutation.
package annotate

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Lexical categories. String-typed so a provider backed by a real
// tagger can pass its own tags through untouched.
const (
	Noun        = "NOUN"
	Verb        = "VERB"
	Aux         = "AUX"
	Pronoun     = "PRON"
	Adjective   = "ADJ"
	Adverb      = "ADV"
	Determiner  = "DET"
	Preposition = "ADP"
	Conjunction = "CCONJ"
	Particle    = "PART"
	Number      = "NUM"
	Punct       = "PUNCT"
	Other       = "X"
)

// Dependency roles used by the rules.
const (
	DepSubject = "nsubj"
	DepNone    = ""
)

// Token is one annotated unit of the input text.
type Token struct {
	Text  string // surface form
	POS   string // lexical category
	Lemma string // dictionary base form, lowercase
	Dep   string // dependency role
	Head  int    // index of the grammatical head token, -1 if none
}

// Span marks a half-open token range [Start, End).
type Span struct {
	Start int
	End   int
}

// Annotation is the read-only result of annotating one text.
type Annotation struct {
	Text      string
	Tokens    []Token
	Sentences []Span
}

// Provider produces annotations. Implementations must be safe for
// concurrent use. A failure is fatal for the request being processed:
// annotation is deterministic in the text, so retrying cannot help.
type Provider interface {
	Annotate(text string) (Annotation, error)
}

// ErrInvalidText reports input the annotator cannot process.
var ErrInvalidText = errors.New("annotate: text is not valid UTF-8")

func checkText(text string) error {
	if !utf8.ValidString(text) {
		return fmt.Errorf("%w", ErrInvalidText)
	}
	return nil
}

// IsAlphabetic reports whether the token is made of letters only.
// Contractions ("they're") are not alphabetic: their boundaries are
// ambiguous for whole-word replacement, so spelling correction passes
// them through.
func (t Token) IsAlphabetic() bool {
	if t.Text == "" {
		return false
	}
	for _, r := range t.Text {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
