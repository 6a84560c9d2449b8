// Package store persists per-session working copies of a resume under
// edit. Each commit replaces a bounded paragraph range, which keeps
// updates idempotent and safe to retry; concurrent writers to the same
// session follow last-write-wins, with a short advisory lock so a
// second writer is warned rather than silently clobbered.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLockTTL bounds how long an advisory lock holds without renewal.
const DefaultLockTTL = 5 * time.Minute

// ErrSessionNotFound is returned for unknown session IDs.
var ErrSessionNotFound = errors.New("session not found")

// RangeError signals a paragraph range outside the working copy.
type RangeError struct {
	Start, End, Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("paragraph range [%d,%d) out of bounds for %d paragraphs", e.Start, e.End, e.Len)
}

// Session is a working copy of a document under edit.
type Session struct {
	ID         uuid.UUID `json:"id"`
	Paragraphs []string  `json:"paragraphs"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Text flattens the working copy back into scoring input.
func (s *Session) Text() string {
	out := ""
	for i, p := range s.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		out += p
	}
	return out
}

// LockStatus reports the outcome of a lock attempt.
type LockStatus struct {
	Acquired  bool      `json:"acquired"`
	Owner     string    `json:"owner"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store is the session persistence interface. Implementations must
// apply last-write-wins on concurrent replaces.
type Store interface {
	CreateSession(ctx context.Context, paragraphs []string) (*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)
	// ReplaceRange commits a full replacement of paragraphs [start,end).
	ReplaceRange(ctx context.Context, id uuid.UUID, start, end int, paragraphs []string) (*Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error
	// AcquireLock takes the session's advisory lock for owner, or
	// reports the current holder. Re-acquiring one's own lock renews it.
	AcquireLock(ctx context.Context, id uuid.UUID, owner string) (*LockStatus, error)
	ReleaseLock(ctx context.Context, id uuid.UUID, owner string) error
	Close()
}

// spliceParagraphs applies a bounded range replacement.
func spliceParagraphs(existing []string, start, end int, replacement []string) ([]string, error) {
	if start < 0 || end < start || end > len(existing) {
		return nil, &RangeError{Start: start, End: end, Len: len(existing)}
	}
	out := make([]string, 0, len(existing)-(end-start)+len(replacement))
	out = append(out, existing[:start]...)
	out = append(out, replacement...)
	out = append(out, existing[end:]...)
	return out, nil
}
