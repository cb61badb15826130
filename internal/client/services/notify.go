package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yajai/medtrack/internal/client/api"
	"github.com/yajai/medtrack/internal/client/models"
	"github.com/yajai/medtrack/internal/client/session"
	"github.com/yajai/medtrack/internal/common"
	"github.com/yajai/medtrack/internal/logging"
)

// now is a test seam for the report timestamp.
var now = time.Now

// NotifyService submits a progress-report message through the remote
// API on explicit user request. Patients only: administrators have no
// progress of their own to report.
type NotifyService interface {
	SendProgressReport(ctx context.Context, p models.Progress) error
}

type notifyService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger
}

func NewNotifyService(client api.Client, sess *session.Session, log logging.Logger) NotifyService {
	return &notifyService{client: client, session: sess, log: log}
}

// SendProgressReport formats a human-readable summary of the given
// progress and posts it. There is no local state to reconcile; failures
// surface to the caller.
func (n *notifyService) SendProgressReport(ctx context.Context, p models.Progress) error {
	auth, err := n.session.AuthHeader()
	if err != nil {
		return err
	}
	if !n.session.Role().Can(models.CapReport) {
		return fmt.Errorf("%w: progress reports are not available to %s", common.ErrForbidden, n.session.Role())
	}

	message := fmt.Sprintf("%s took %d of %d medications (%d%%) as of %s",
		n.session.Identity(), p.Taken, p.Total, p.Percent,
		now().Format("2006-01-02 15:04"))

	if err := n.client.SendNotification(ctx, auth, message); err != nil {
		return fmt.Errorf("notify error: %w", err)
	}

	n.log.Info(ctx, "progress report sent", "identity", n.session.Identity())
	return nil
}
