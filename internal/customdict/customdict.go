// Package customdict persists user-supplied vocabulary words in Redis.
// The store is write-through only: the running matcher keeps its
// snapshot, and additions become visible on the next startup load.
package customdict

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/redis/go-redis/v9"
)

const defaultKey = "redline:custom_words"

// ErrInvalidWord reports a word that is empty or not purely alphabetic.
var ErrInvalidWord = errors.New("customdict: word must be non-empty and alphabetic")

// Store wraps a Redis set holding custom dictionary words.
type Store struct {
	client *redis.Client
	key    string
}

// New creates a Store on the given Redis client.
func New(client *redis.Client) *Store {
	return &Store{client: client, key: defaultKey}
}

// normalize lowercases and trims a word, rejecting anything that is not
// a plain alphabetic token. The vocabulary stores lowercase forms only.
func normalize(word string) (string, error) {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return "", ErrInvalidWord
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return "", ErrInvalidWord
		}
	}
	return w, nil
}

// Add inserts a word. Adding an existing word is a no-op.
func (s *Store) Add(ctx context.Context, word string) error {
	w, err := normalize(word)
	if err != nil {
		return err
	}
	return s.client.SAdd(ctx, s.key, w).Err()
}

// Remove deletes a word. Removing an absent word is a no-op.
func (s *Store) Remove(ctx context.Context, word string) error {
	w, err := normalize(word)
	if err != nil {
		return err
	}
	return s.client.SRem(ctx, s.key, w).Err()
}

// Contains reports whether a word is stored.
func (s *Store) Contains(ctx context.Context, word string) (bool, error) {
	w, err := normalize(word)
	if err != nil {
		return false, err
	}
	return s.client.SIsMember(ctx, s.key, w).Result()
}

// All returns every stored word, in no particular order.
func (s *Store) All(ctx context.Context) ([]string, error) {
	return s.client.SMembers(ctx, s.key).Result()
}

// Count returns the number of stored words.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.client.SCard(ctx, s.key).Result()
}
