// Package services contains the application services of the medtrack
// client: authentication, the medication store, and progress
// notifications. Services gate every remote call on the active session
// and never retry on their own; failures are surfaced for the caller to
// report.
package services

import (
	"context"
	"fmt"

	"github.com/yajai/medtrack/internal/client/api"
	"github.com/yajai/medtrack/internal/client/session"
	"github.com/yajai/medtrack/internal/logging"
)

// AuthService drives login and registration against the remote API and
// feeds successful results into the session.
//
// Contract:
//   - Login: authenticate and establish the session from the response.
//   - Register: create an account; does not authenticate — the caller
//     switches to login afterwards.
//   - Logout: clear the session (memory and persisted credentials).
type AuthService interface {
	Login(ctx context.Context, identity string, secret []byte) error
	Register(ctx context.Context, identity string, secret []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger
}

func NewAuthService(client api.Client, sess *session.Session, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

// Login submits credentials and, on success, establishes the session
// from the token/identity pair the server returned. Remote rejections
// surface verbatim; nothing is retried.
func (a *authService) Login(ctx context.Context, identity string, secret []byte) error {
	token, ident, err := a.client.Login(ctx, identity, string(secret))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.session.Establish(ctx, token, ident); err != nil {
		return fmt.Errorf("session error: %w", err)
	}

	a.log.Info(ctx, "logged in", "identity", ident, "role", a.session.Role())
	return nil
}

// Register creates a new account on the server. A successful
// registration does not authenticate.
func (a *authService) Register(ctx context.Context, identity string, secret []byte) error {
	if err := a.client.Register(ctx, identity, string(secret)); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

// Logout clears the session. Idempotent.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.Clear(ctx)
}
