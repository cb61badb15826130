package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yajai/medtrack/internal/client/api"
	"github.com/yajai/medtrack/internal/client/models"
	"github.com/yajai/medtrack/internal/client/session"
	"github.com/yajai/medtrack/internal/logging"
	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupSessionDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
DELETE FROM credentials;
`)
	require.NoError(t, err)
	return db
}

// authedSession returns a session established with the given pair, or an
// empty one when token is empty.
func authedSession(t *testing.T, token, identity string) *session.Session {
	t.Helper()
	s := session.New(setupSessionDB(t))
	if token != "" {
		require.NoError(t, s.Establish(context.Background(), token, identity))
	}
	return s
}

// fakeClient satisfies api.Client with preset results and recorded calls.
type fakeClient struct {
	loginToken    string
	loginIdentity string
	loginErr      error
	registerErr   error

	listMeds  []models.Medication
	listErr   error
	created   *models.Medication
	createErr error
	markErr   error
	deleteErr error
	resetErr  error
	notifyErr error

	calls    []string
	lastAuth string

	createdName  string
	createdTime  string
	createdOwner string
	markID       int64
	deleteID     int64
	notifyMsg    string
}

func (f *fakeClient) Login(_ context.Context, identity, secret string) (string, string, error) {
	f.calls = append(f.calls, "login")
	return f.loginToken, f.loginIdentity, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, identity, secret string) error {
	f.calls = append(f.calls, "register")
	return f.registerErr
}

func (f *fakeClient) ListMedications(_ context.Context, auth string) ([]models.Medication, error) {
	f.calls = append(f.calls, "list")
	f.lastAuth = auth
	return f.listMeds, f.listErr
}

func (f *fakeClient) CreateMedication(_ context.Context, auth, name, timeOfDay, targetOwner string) (*models.Medication, error) {
	f.calls = append(f.calls, "create")
	f.lastAuth = auth
	f.createdName, f.createdTime, f.createdOwner = name, timeOfDay, targetOwner
	return f.created, f.createErr
}

func (f *fakeClient) MarkTaken(_ context.Context, auth string, id int64) error {
	f.calls = append(f.calls, "mark")
	f.lastAuth = auth
	f.markID = id
	return f.markErr
}

func (f *fakeClient) DeleteMedication(_ context.Context, auth string, id int64) error {
	f.calls = append(f.calls, "delete")
	f.lastAuth = auth
	f.deleteID = id
	return f.deleteErr
}

func (f *fakeClient) ResetMedications(_ context.Context, auth string) error {
	f.calls = append(f.calls, "reset")
	f.lastAuth = auth
	return f.resetErr
}

func (f *fakeClient) SendNotification(_ context.Context, auth, message string) error {
	f.calls = append(f.calls, "notify")
	f.lastAuth = auth
	f.notifyMsg = message
	return f.notifyErr
}

var _ api.Client = (*fakeClient)(nil)

// acceptAll and declineAll exercise both branches of the confirmation
// collaborator.
var (
	acceptAll  = ConfirmerFunc(func(string) bool { return true })
	declineAll = ConfirmerFunc(func(string) bool { return false })
)
