package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"redline/internal/annotate"
	"redline/internal/config"
	"redline/internal/customdict"
	"redline/internal/fuzzy"
	"redline/internal/lexicon"
	"redline/internal/pipeline"
	"redline/pkg/options"
)

// customWordFreq pins user words well above the reference corpus so the
// fuzzy ranking never prefers a dictionary word over an explicit one.
const customWordFreq = 1e12

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func buildLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// buildVocabulary loads the reference vocabulary and, when Redis is
// configured, merges the custom dictionary into it. The returned store
// is nil when Redis is not configured.
func buildVocabulary(ctx context.Context, cfg config.Config, logger *slog.Logger) (*lexicon.Vocabulary, *customdict.Store, error) {
	var vocab *lexicon.Vocabulary
	if cfg.DictionaryPath != "" {
		v, err := lexicon.LoadVocabulary(cfg.DictionaryPath)
		if err != nil {
			return nil, nil, err
		}
		vocab = v
	} else {
		vocab = lexicon.BuiltinVocabulary()
	}
	logger.Info("vocabulary loaded", "words", vocab.Len(), "path", cfg.DictionaryPath)

	var dict *customdict.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		dict = customdict.New(client)
		words, err := dict.All(ctx)
		if err != nil {
			// a broken custom dictionary must not take the service down
			logger.Warn("custom dictionary unavailable", "error", err)
		} else {
			for _, w := range words {
				vocab.Add(w, customWordFreq)
			}
			logger.Info("custom words merged", "count", len(words))
		}
	}
	return vocab, dict, nil
}

func buildMatcher(vocab *lexicon.Vocabulary, cfg config.Config) *fuzzy.Matcher {
	return fuzzy.NewMatcher(vocab,
		options.WithConfidenceThreshold(cfg.Fuzzy.ConfidenceThreshold),
		options.WithSuggestCutoff(cfg.Fuzzy.SuggestCutoff),
		options.WithMaxCandidates(cfg.Fuzzy.MaxCandidates),
		options.WithMaxSuggestions(cfg.Fuzzy.MaxSuggestions),
		options.WithMaxLengthDelta(cfg.Fuzzy.MaxLengthDelta),
	)
}

func buildPipeline(matcher *fuzzy.Matcher, vocab *lexicon.Vocabulary, cfg config.Config, logger *slog.Logger) *pipeline.Pipeline {
	return pipeline.New(annotate.NewTagger(), matcher, vocab,
		pipeline.WithLogger(logger),
		pipeline.WithMaxInputBytes(cfg.MaxInputBytes),
	)
}
