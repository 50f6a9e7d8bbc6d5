// Package options carries the tunable knobs of the fuzzy matcher as
// functional options, so callers and tests can override individual
// settings without rebuilding the whole configuration.
package options

var DefaultOptions = MatcherOptions{
	ConfidenceThreshold: 0.75,
	SuggestCutoff:       0.6,
	MaxCandidates:       3,
	MaxSuggestions:      5,
	MaxLengthDelta:      2,
}

type MatcherOptions struct {
	ConfidenceThreshold float64 // minimum similarity for an automatic fix
	SuggestCutoff       float64 // looser minimum for suggestion listings
	MaxCandidates       int     // vocabulary candidates fetched per lookup
	MaxSuggestions      int     // default cap for Suggest results
	MaxLengthDelta      int     // preferred |len(candidate) - len(word)|
}

type Option interface {
	Apply(opts *MatcherOptions)
}

type funcOption struct {
	f func(opts *MatcherOptions)
}

func (o funcOption) Apply(opts *MatcherOptions) { o.f(opts) }

func newFuncOption(f func(opts *MatcherOptions)) Option {
	return funcOption{f: f}
}

func WithConfidenceThreshold(threshold float64) Option {
	return newFuncOption(func(opts *MatcherOptions) {
		opts.ConfidenceThreshold = threshold
	})
}

func WithSuggestCutoff(cutoff float64) Option {
	return newFuncOption(func(opts *MatcherOptions) {
		opts.SuggestCutoff = cutoff
	})
}

func WithMaxCandidates(n int) Option {
	return newFuncOption(func(opts *MatcherOptions) {
		opts.MaxCandidates = n
	})
}

func WithMaxSuggestions(n int) Option {
	return newFuncOption(func(opts *MatcherOptions) {
		opts.MaxSuggestions = n
	})
}

func WithMaxLengthDelta(n int) Option {
	return newFuncOption(func(opts *MatcherOptions) {
		opts.MaxLengthDelta = n
	})
}
