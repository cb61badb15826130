// Package session owns the authentication token and identity of the
// current user: restoring them from the local database at startup,
// establishing them after a successful login, clearing them on logout,
// and deriving the authenticated-request header.
package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yajai/medtrack/internal/client/models"
	"github.com/yajai/medtrack/internal/client/repositories/credentials"
	"github.com/yajai/medtrack/internal/common"
	"github.com/yajai/medtrack/internal/dbx"
)

// Session is the authenticated identity and credential currently active.
// An empty token means unauthenticated. Token and identity are set and
// cleared together; the role is computed once when they are set.
type Session struct {
	db       *sql.DB
	token    string
	identity string
	role     models.Role
}

func New(db *sql.DB) *Session {
	return &Session{db: db}
}

func (s *Session) repo(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLiteRepository(db)
}

// Restore loads persisted credentials into the session. Absence of
// persisted data yields the empty state and no error. A half-written
// pair (one key but not the other) is treated as absent.
func (s *Session) Restore(ctx context.Context) error {
	repo := s.repo(s.db)

	token, err := repo.Get(ctx, credentials.KeyToken)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	identity, err := repo.Get(ctx, credentials.KeyIdentity)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	if token == "" || identity == "" {
		return nil
	}

	s.token = token
	s.identity = identity
	s.role = models.RoleFor(identity)
	return nil
}

// Establish sets token and identity atomically and persists them. Both
// arguments must be non-empty. Memory is only updated after the
// persistence transaction commits, so a storage failure leaves the
// session unchanged.
func (s *Session) Establish(ctx context.Context, token, identity string) error {
	if token == "" || identity == "" {
		return fmt.Errorf("%w: token and identity are required", common.ErrValidation)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, credentials.KeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, credentials.KeyIdentity, identity)
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.token = token
	s.identity = identity
	s.role = models.RoleFor(identity)
	return nil
}

// Clear resets the session to the empty state and removes persisted
// credentials. It is idempotent.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.token = ""
	s.identity = ""
	s.role = ""
	return nil
}

// AuthHeader returns the bearer-credential header value for
// authenticated remote calls.
func (s *Session) AuthHeader() (string, error) {
	if s.token == "" {
		return "", common.ErrUnauthenticated
	}
	return "Bearer " + s.token, nil
}

func (s *Session) Identity() string {
	return s.identity
}

func (s *Session) Role() models.Role {
	return s.role
}

func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}
