// Package pipeline chains the correction rules in a fixed order and
// assembles the final result. The orchestrator owns annotation
// lifecycle: every rule that changes the text invalidates the current
// annotation, and the next rule sees a freshly annotated checkpoint.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"redline/internal/annotate"
	"redline/internal/fuzzy"
	"redline/internal/improve"
	"redline/internal/lexicon"
	"redline/internal/rules"
)

// ErrInputTooLarge reports input above the configured byte bound.
var ErrInputTooLarge = errors.New("pipeline: input exceeds maximum size")

// DefaultMaxInputBytes bounds a single request. The pipeline is linear
// in sentence length, so this is a sanity cap, not a resource budget.
const DefaultMaxInputBytes = 10000

// Result is the outcome of one pipeline run. Original is the immutable
// input; Corrected and Improved are derived from it, never the other
// way around. RulesFired lists changes in rule execution order.
type Result struct {
	Original   string               `json:"original"`
	Corrected  string               `json:"corrected"`
	Improved   string               `json:"improved"`
	RulesFired []rules.ChangeRecord `json:"rules_fired"`
}

// Pipeline runs the rule chain. Construct once, share freely: runs are
// independent and touch no shared mutable state.
type Pipeline struct {
	provider annotate.Provider
	chain    []rules.Rule
	maxInput int
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; by default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithMaxInputBytes overrides the input size bound.
func WithMaxInputBytes(n int) Option {
	return func(p *Pipeline) { p.maxInput = n }
}

// New assembles the fixed rule chain: informal, wordy, spelling,
// subject-verb, tense, question reordering. The order is deliberate —
// spelling runs before the grammar rules so they never fire on
// misspelled tokens, and the normalization rules run before both.
func New(provider annotate.Provider, matcher *fuzzy.Matcher, vocab *lexicon.Vocabulary, opts ...Option) *Pipeline {
	p := &Pipeline{
		provider: provider,
		chain: []rules.Rule{
			rules.InformalFormal{},
			rules.WordySimplification{},
			rules.Spelling{Matcher: matcher, Vocab: vocab},
			rules.SubjectVerbAgreement{},
			rules.TenseConsistency{},
			rules.QuestionReordering{},
		},
		maxInput: DefaultMaxInputBytes,
		logger:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RuleNames returns the chain's rule names in execution order.
func (p *Pipeline) RuleNames() []string {
	names := make([]string, len(p.chain))
	for i, r := range p.chain {
		names[i] = r.Name()
	}
	return names
}

// Run executes every rule over text and derives the improved variant.
// Empty input yields an empty result and no error. An annotation
// failure aborts the request: returning unannotated guesses would be
// worse than failing.
func (p *Pipeline) Run(text string) (Result, error) {
	result := Result{Original: text, RulesFired: []rules.ChangeRecord{}}
	if text == "" {
		return result, nil
	}
	if len(text) > p.maxInput {
		return Result{}, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(text))
	}

	current := text
	ann, err := p.provider.Annotate(current)
	if err != nil {
		return Result{}, fmt.Errorf("annotate input: %w", err)
	}

	for _, rule := range p.chain {
		out := rule.Apply(current, ann)
		if !out.Changed {
			continue
		}
		p.logger.Debug("rule fired", "rule", rule.Name(), "changes", len(out.Changes))
		result.RulesFired = append(result.RulesFired, out.Changes...)
		current = out.Text
		ann, err = p.provider.Annotate(current)
		if err != nil {
			return Result{}, fmt.Errorf("reannotate after %s: %w", rule.Name(), err)
		}
	}

	result.Corrected = current
	result.Improved = improve.Rewrite(current)
	return result, nil
}
