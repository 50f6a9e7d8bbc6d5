package rules

import (
	"testing"

	"redline/internal/annotate"
	"redline/internal/fuzzy"
	"redline/internal/lexicon"
)

var tagger = annotate.NewTagger()

func mustAnnotate(t *testing.T, text string) annotate.Annotation {
	t.Helper()
	ann, err := tagger.Annotate(text)
	if err != nil {
		t.Fatalf("annotate %q: %v", text, err)
	}
	return ann
}

func vocabOf(words ...string) *lexicon.Vocabulary {
	v := lexicon.NewVocabulary()
	for _, w := range words {
		v.Add(w, 1)
	}
	return v
}

func TestInformalFormal(t *testing.T) {
	r := InformalFormal{}
	out := r.Apply("I wanna go and he is gonna stay", annotate.Annotation{})
	if !out.Changed {
		t.Fatal("rule did not fire")
	}
	want := "I want to go and he is going to stay"
	if out.Text != want {
		t.Errorf("text = %q, want %q", out.Text, want)
	}
	if len(out.Changes) != 2 {
		t.Fatalf("got %d records, want one per distinct key: %+v", len(out.Changes), out.Changes)
	}
	if out.Changes[1].Before != "wanna" || out.Changes[1].After != "want to" {
		t.Errorf("record = %+v", out.Changes[1])
	}
}

func TestInformalFormalAllOccurrences(t *testing.T) {
	r := InformalFormal{}
	out := r.Apply("wanna wanna", annotate.Annotation{})
	if out.Text != "want to want to" {
		t.Errorf("text = %q", out.Text)
	}
	if len(out.Changes) != 1 {
		t.Errorf("got %d records, want 1 for a repeated key", len(out.Changes))
	}
}

func TestWordySimplification(t *testing.T) {
	r := WordySimplification{}
	out := r.Apply("We met in order to discuss the plan", annotate.Annotation{})
	if !out.Changed || out.Text != "We met to discuss the plan" {
		t.Errorf("outcome = %+v", out)
	}
}

func TestWordyFirstMatchOnly(t *testing.T) {
	r := WordySimplification{}
	out := r.Apply("in order to a, in order to b", annotate.Annotation{})
	if out.Text != "to a, in order to b" {
		t.Errorf("text = %q, want only the first phrase replaced", out.Text)
	}
	if len(out.Changes) != 1 {
		t.Errorf("got %d records, want 1", len(out.Changes))
	}
}

func TestSpelling(t *testing.T) {
	vocab := vocabOf("the", "cat", "sat")
	r := Spelling{Matcher: fuzzy.NewMatcher(vocab), Vocab: vocab}
	out := r.Apply("teh cat sat.", mustAnnotate(t, "teh cat sat."))
	if !out.Changed || out.Text != "the cat sat." {
		t.Fatalf("outcome = %+v", out)
	}
	rec := out.Changes[0]
	if rec.Before != "teh" || rec.After != "the" || rec.Confidence != 0.9 {
		t.Errorf("record = %+v", rec)
	}
}

func TestSpellingPreservesCase(t *testing.T) {
	vocab := vocabOf("the", "cat", "sat")
	r := Spelling{Matcher: fuzzy.NewMatcher(vocab), Vocab: vocab}
	out := r.Apply("Teh cat sat.", mustAnnotate(t, "Teh cat sat."))
	if out.Text != "The cat sat." {
		t.Errorf("text = %q, want The cat sat.", out.Text)
	}
}

func TestSpellingWholeTextReplacement(t *testing.T) {
	vocab := vocabOf("the", "cat")
	r := Spelling{Matcher: fuzzy.NewMatcher(vocab), Vocab: vocab}
	out := r.Apply("teh cat teh", mustAnnotate(t, "teh cat teh"))
	if out.Text != "the cat the" {
		t.Errorf("text = %q, want every occurrence replaced", out.Text)
	}
	if len(out.Changes) != 1 {
		t.Errorf("got %d records, want 1 per corrected token", len(out.Changes))
	}
}

func TestSpellingSkipsPunctuationTokens(t *testing.T) {
	vocab := vocabOf("fine")
	r := Spelling{Matcher: fuzzy.NewMatcher(vocab), Vocab: vocab}
	out := r.Apply("fine !!! fine", mustAnnotate(t, "fine !!! fine"))
	if out.Changed {
		t.Errorf("punctuation tokens triggered the rule: %+v", out)
	}
}

func TestSubjectVerbAgreement(t *testing.T) {
	r := SubjectVerbAgreement{}
	out := r.Apply("He go to market.", mustAnnotate(t, "He go to market."))
	if !out.Changed || out.Text != "He goes to market." {
		t.Fatalf("outcome = %+v", out)
	}
	rec := out.Changes[0]
	if rec.Before != "go" || rec.After != "goes" {
		t.Errorf("record = %+v, want go -> goes", rec)
	}
}

func TestSubjectVerbAgreementPluralSubjectNoFire(t *testing.T) {
	r := SubjectVerbAgreement{}
	out := r.Apply("They go to market.", mustAnnotate(t, "They go to market."))
	if out.Changed {
		t.Errorf("rule fired for plural subject: %+v", out)
	}
}

func TestTenseConsistency(t *testing.T) {
	r := TenseConsistency{}
	out := r.Apply("I walk home yesterday.", mustAnnotate(t, "I walk home yesterday."))
	if !out.Changed || out.Text != "I walked home yesterday." {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Changes[0].Before != "walk" || out.Changes[0].After != "walked" {
		t.Errorf("record = %+v", out.Changes[0])
	}
}

func TestTenseNoMarkerNoFire(t *testing.T) {
	r := TenseConsistency{}
	out := r.Apply("I walk home.", mustAnnotate(t, "I walk home."))
	if out.Changed {
		t.Errorf("rule fired without a time marker: %+v", out)
	}
}

func TestTenseSkipsInflectedVerbs(t *testing.T) {
	r := TenseConsistency{}
	out := r.Apply("She walked home yesterday.", mustAnnotate(t, "She walked home yesterday."))
	if out.Changed {
		t.Errorf("already-past verb converted again: %+v", out)
	}
}

func TestQuestionReordering(t *testing.T) {
	r := QuestionReordering{}
	out := r.Apply("I wonder where is the market.", annotate.Annotation{})
	if !out.Changed || out.Text != "I wonder where the market is." {
		t.Fatalf("outcome = %+v", out)
	}
	if len(out.Changes) != 1 {
		t.Errorf("got %d records, want 1", len(out.Changes))
	}
	rec := out.Changes[0]
	if rec.Before != "where is the market" || rec.After != "where the market is" {
		t.Errorf("record = %+v", rec)
	}
}

func TestRulesIdempotentOnCleanText(t *testing.T) {
	vocab := vocabOf("the", "quick", "fox", "runs", "every", "morning")
	clean := "The quick fox runs every morning."
	ann := mustAnnotate(t, clean)
	all := []Rule{
		InformalFormal{},
		WordySimplification{},
		Spelling{Matcher: fuzzy.NewMatcher(vocab), Vocab: vocab},
		SubjectVerbAgreement{},
		TenseConsistency{},
		QuestionReordering{},
	}
	for _, r := range all {
		out := r.Apply(clean, ann)
		if out.Changed {
			t.Errorf("%s changed clean text: %+v", r.Name(), out)
		}
	}
}
