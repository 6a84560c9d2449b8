package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists sessions in PostgreSQL for multi-instance
// deployments.
type PostgresStore struct {
	pool    *pgxpool.Pool
	lockTTL time.Duration
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool, lockTTL: DefaultLockTTL}, nil
}

// EnsureSchema creates the sessions table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS edit_sessions (
			id UUID PRIMARY KEY,
			paragraphs JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			lock_owner TEXT,
			lock_expires_at TIMESTAMPTZ
		)`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateSession(ctx context.Context, paragraphs []string) (*Session, error) {
	session := &Session{ID: uuid.New(), Paragraphs: paragraphs}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO edit_sessions (id, paragraphs) VALUES ($1, $2) RETURNING updated_at`,
		session.ID, paragraphs,
	).Scan(&session.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

func (s *PostgresStore) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	session := &Session{ID: id}
	err := s.pool.QueryRow(ctx,
		`SELECT paragraphs, updated_at FROM edit_sessions WHERE id = $1`,
		id,
	).Scan(&session.Paragraphs, &session.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// ReplaceRange applies the replacement inside a transaction. The final
// UPDATE overwrites the whole paragraph array, so concurrent commits
// resolve to whichever transaction lands last.
func (s *PostgresStore) ReplaceRange(ctx context.Context, id uuid.UUID, start, end int, paragraphs []string) (*Session, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var existing []string
	err = tx.QueryRow(ctx,
		`SELECT paragraphs FROM edit_sessions WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	updated, err := spliceParagraphs(existing, start, end, paragraphs)
	if err != nil {
		return nil, err
	}

	session := &Session{ID: id, Paragraphs: updated}
	err = tx.QueryRow(ctx,
		`UPDATE edit_sessions SET paragraphs = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at`,
		updated, id,
	).Scan(&session.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit session update: %w", err)
	}
	return session, nil
}

func (s *PostgresStore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM edit_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// AcquireLock takes the advisory lock when it is free, expired, or
// already held by the same owner.
func (s *PostgresStore) AcquireLock(ctx context.Context, id uuid.UUID, owner string) (*LockStatus, error) {
	status := &LockStatus{}
	err := s.pool.QueryRow(ctx, `
		UPDATE edit_sessions
		SET lock_owner = CASE
				WHEN lock_owner IS NULL OR lock_expires_at < NOW() OR lock_owner = $2 THEN $2
				ELSE lock_owner
			END,
			lock_expires_at = CASE
				WHEN lock_owner IS NULL OR lock_expires_at < NOW() OR lock_owner = $2 THEN NOW() + make_interval(secs => $3)
				ELSE lock_expires_at
			END
		WHERE id = $1
		RETURNING lock_owner = $2, lock_owner, lock_expires_at`,
		id, owner, s.lockTTL.Seconds(),
	).Scan(&status.Acquired, &status.Owner, &status.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to acquire session lock: %w", err)
	}
	return status, nil
}

func (s *PostgresStore) ReleaseLock(ctx context.Context, id uuid.UUID, owner string) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE edit_sessions
		SET lock_owner = NULL, lock_expires_at = NULL
		WHERE id = $1 AND lock_owner = $2`,
		id, owner)
	if err != nil {
		return fmt.Errorf("failed to release session lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the session is gone or the lock belongs to someone
		// else; confirm the session exists so callers can tell.
		var exists bool
		if err := s.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM edit_sessions WHERE id = $1)`, id,
		).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check session: %w", err)
		}
		if !exists {
			return ErrSessionNotFound
		}
	}
	return nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
