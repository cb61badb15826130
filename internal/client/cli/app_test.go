package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/yajai/medtrack/internal/client/models"
)

// stubInputs replaces the interactive input seams for the duration of a
// test.
func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirm
	confirm = func(*App, string) bool { return answer }
	t.Cleanup(func() { confirm = orig })
}

type fakeAuth struct {
	loginIdentity string
	loginPass     []byte
	loginErr      error

	regIdentity string
	regErr      error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Login(_ context.Context, identity string, secret []byte) error {
	f.loginIdentity = identity
	f.loginPass = append([]byte(nil), secret...)
	return f.loginErr
}

func (f *fakeAuth) Register(_ context.Context, identity string, secret []byte) error {
	f.regIdentity = identity
	return f.regErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

type fakeMeds struct {
	meds     []models.Medication
	progress models.Progress

	refreshCalled bool
	refreshErr    error

	addName, addTime, addOwner string
	addErr                     error

	takeID   int64
	takeErr  error
	removeID int64
	resetErr error

	forgotten bool
}

func (f *fakeMeds) Refresh(context.Context) error {
	f.refreshCalled = true
	return f.refreshErr
}

func (f *fakeMeds) Add(_ context.Context, name, timeOfDay, targetOwner string) error {
	f.addName, f.addTime, f.addOwner = name, timeOfDay, targetOwner
	return f.addErr
}

func (f *fakeMeds) Take(_ context.Context, id int64) error {
	f.takeID = id
	return f.takeErr
}

func (f *fakeMeds) Remove(_ context.Context, id int64) error {
	f.removeID = id
	return nil
}

func (f *fakeMeds) ResetAll(context.Context) error { return f.resetErr }

func (f *fakeMeds) List() []models.Medication { return f.meds }

func (f *fakeMeds) Progress() models.Progress { return f.progress }

func (f *fakeMeds) Forget() { f.forgotten = true }

type fakeNotify struct {
	sent models.Progress
	err  error
}

func (f *fakeNotify) SendProgressReport(_ context.Context, p models.Progress) error {
	f.sent = p
	return f.err
}
