package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Suitable for tests and
// single-instance deployments without a database.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*memorySession
	lockTTL  time.Duration
	now      func() time.Time
}

type memorySession struct {
	session     Session
	lockOwner   string
	lockExpires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]*memorySession),
		lockTTL:  DefaultLockTTL,
		now:      time.Now,
	}
}

func (m *MemoryStore) CreateSession(_ context.Context, paragraphs []string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := Session{
		ID:         uuid.New(),
		Paragraphs: append([]string(nil), paragraphs...),
		UpdatedAt:  m.now(),
	}
	m.sessions[session.ID] = &memorySession{session: session}

	out := session
	return &out, nil
}

func (m *MemoryStore) GetSession(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := entry.session
	out.Paragraphs = append([]string(nil), entry.session.Paragraphs...)
	return &out, nil
}

func (m *MemoryStore) ReplaceRange(_ context.Context, id uuid.UUID, start, end int, paragraphs []string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	updated, err := spliceParagraphs(entry.session.Paragraphs, start, end, paragraphs)
	if err != nil {
		return nil, err
	}
	entry.session.Paragraphs = updated
	entry.session.UpdatedAt = m.now()

	out := entry.session
	out.Paragraphs = append([]string(nil), updated...)
	return &out, nil
}

func (m *MemoryStore) DeleteSession(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) AcquireLock(_ context.Context, id uuid.UUID, owner string) (*LockStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := m.now()
	held := entry.lockOwner != "" && entry.lockExpires.After(now)
	if held && entry.lockOwner != owner {
		return &LockStatus{Acquired: false, Owner: entry.lockOwner, ExpiresAt: entry.lockExpires}, nil
	}

	entry.lockOwner = owner
	entry.lockExpires = now.Add(m.lockTTL)
	return &LockStatus{Acquired: true, Owner: owner, ExpiresAt: entry.lockExpires}, nil
}

func (m *MemoryStore) ReleaseLock(_ context.Context, id uuid.UUID, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if entry.lockOwner == owner {
		entry.lockOwner = ""
		entry.lockExpires = time.Time{}
	}
	return nil
}

func (m *MemoryStore) Close() {}
