// Package storage defines the key-value persistence contract the
// questionnaire core saves through, plus the well-known keys it uses.
package storage

import (
	"context"
	"errors"
)

// Well-known keys in the remote store.
const (
	QuestionsKey = "dynamicform_questions"
	AnswersKey   = "dynamicform_answers"
)

// ErrNotFound signals that a key holds no data yet. It is the defined
// "nothing saved" signal, not a failure: callers fall back to defaults
// instead of surfacing it.
var ErrNotFound = errors.New("storage: key not found")

// ErrNoToken marks an operation attempted without an access token. The
// application surfaces it as "operation not permitted" rather than
// crashing.
var ErrNoToken = errors.New("storage: access token is not available")

// Gateway is the remote key-value store abstraction. Implementations make
// no cross-call ordering guarantees; overlapping writes to the same key
// are last-write-wins.
type Gateway interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
