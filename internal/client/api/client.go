// Package api implements the client for the remote medication API.
package api

import (
	"context"

	"github.com/yajai/medtrack/internal/client/models"
)

// Client is the remote API surface the services depend on. The auth
// parameter of authenticated calls is the bearer-credential header value
// produced by the session.
type Client interface {
	Login(ctx context.Context, identity, secret string) (token string, ident string, err error)
	Register(ctx context.Context, identity, secret string) error
	ListMedications(ctx context.Context, auth string) ([]models.Medication, error)
	CreateMedication(ctx context.Context, auth, name, timeOfDay, targetOwner string) (*models.Medication, error)
	MarkTaken(ctx context.Context, auth string, id int64) error
	DeleteMedication(ctx context.Context, auth string, id int64) error
	ResetMedications(ctx context.Context, auth string) error
	SendNotification(ctx context.Context, auth, message string) error
}
