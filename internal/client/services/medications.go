package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yajai/medtrack/internal/client/api"
	"github.com/yajai/medtrack/internal/client/models"
	"github.com/yajai/medtrack/internal/client/session"
	"github.com/yajai/medtrack/internal/common"
	"github.com/yajai/medtrack/internal/logging"
)

// MedicationService is the medication store: it owns the local list for
// the current session, performs CRUD against the remote API with
// optimistic local updates, and exposes derived progress.
//
// Every operation requires an authenticated session and checks the role
// router before any network traffic. Local state changes only after the
// corresponding remote call succeeds; failures leave it untouched, with
// one exception: an authorization failure during Refresh clears both the
// session and the local list.
type MedicationService interface {
	Refresh(ctx context.Context) error
	Add(ctx context.Context, name, timeOfDay, targetOwner string) error
	Take(ctx context.Context, id int64) error
	Remove(ctx context.Context, id int64) error
	ResetAll(ctx context.Context) error
	List() []models.Medication
	Progress() models.Progress
	Forget()
}

type medicationService struct {
	client  api.Client
	session *session.Session
	confirm Confirmer
	log     logging.Logger
	meds    []models.Medication
}

func NewMedicationService(client api.Client, sess *session.Session, confirm Confirmer, log logging.Logger) MedicationService {
	return &medicationService{client: client, session: sess, confirm: confirm, log: log}
}

// gate resolves the auth and role preconditions, in that order, without
// a network round-trip. Role gating is re-checked here even though the
// UI hides unavailable commands.
func (s *medicationService) gate(c models.Capability) (string, error) {
	auth, err := s.session.AuthHeader()
	if err != nil {
		return "", err
	}
	if !s.session.Role().Can(c) {
		return "", fmt.Errorf("%w: %s is not available to %s", common.ErrForbidden, c, s.session.Role())
	}
	return auth, nil
}

// Refresh replaces the local list with the server's view, scoped to the
// caller by the server. A rejected credential forces a logout: the
// session and the local list are cleared together, and the caller sees
// an unauthenticated error rather than a silent retry with stale
// credentials.
func (s *medicationService) Refresh(ctx context.Context) error {
	auth, err := s.session.AuthHeader()
	if err != nil {
		return err
	}

	meds, err := s.client.ListMedications(ctx, auth)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.log.Warn(ctx, "credential rejected, clearing session")
			if clearErr := s.session.Clear(ctx); clearErr != nil {
				s.log.Error(ctx, "failed to clear session", "error", clearErr)
			}
			s.meds = nil
			return fmt.Errorf("%w: %v", common.ErrUnauthenticated, err)
		}
		return fmt.Errorf("refresh error: %w", err)
	}

	s.meds = meds
	s.log.Debug(ctx, "medications refreshed", "count", len(meds))
	return nil
}

// Add validates its input locally, creates the record remotely, and
// appends the server's canonical record to the local list. Patients add
// for themselves; administrators must name the target patient.
func (s *medicationService) Add(ctx context.Context, name, timeOfDay, targetOwner string) error {
	auth, err := s.gate(models.CapAdd)
	if err != nil {
		return err
	}

	if name == "" || timeOfDay == "" {
		return fmt.Errorf("%w: name and time are required", common.ErrValidation)
	}
	switch s.session.Role() {
	case models.RoleAdministrator:
		if targetOwner == "" {
			return fmt.Errorf("%w: target patient is required", common.ErrValidation)
		}
	default:
		// Adding on behalf of another patient is the administrator's
		// shape of this operation.
		if targetOwner != "" {
			return fmt.Errorf("%w: patients add medications for themselves only", common.ErrForbidden)
		}
	}

	med, err := s.client.CreateMedication(ctx, auth, name, timeOfDay, targetOwner)
	if err != nil {
		return fmt.Errorf("add error: %w", err)
	}

	s.meds = append(s.meds, *med)
	return nil
}

// Take marks a pending dose taken. Taking an already-taken dose is a
// no-op: no remote call, no state change.
func (s *medicationService) Take(ctx context.Context, id int64) error {
	auth, err := s.gate(models.CapTake)
	if err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: medication %d", common.ErrNotFound, id)
	}
	if s.meds[idx].Taken() {
		return nil
	}

	if err := s.client.MarkTaken(ctx, auth, id); err != nil {
		return fmt.Errorf("take error: %w", err)
	}

	s.meds[idx].Status = models.StatusTaken
	return nil
}

// Remove deletes a record after explicit user confirmation.
func (s *medicationService) Remove(ctx context.Context, id int64) error {
	auth, err := s.gate(models.CapRemove)
	if err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: medication %d", common.ErrNotFound, id)
	}

	if !s.confirm.Confirm(fmt.Sprintf("Delete medication %q?", s.meds[idx].Name)) {
		return common.ErrCancelled
	}

	if err := s.client.DeleteMedication(ctx, auth, id); err != nil {
		return fmt.Errorf("remove error: %w", err)
	}

	s.meds = append(s.meds[:idx], s.meds[idx+1:]...)
	return nil
}

// ResetAll returns every record of the caller to pending, after
// confirmation. The local list is reset regardless of the response
// payload shape.
func (s *medicationService) ResetAll(ctx context.Context) error {
	auth, err := s.gate(models.CapResetAll)
	if err != nil {
		return err
	}

	if !s.confirm.Confirm("Reset every medication to pending?") {
		return common.ErrCancelled
	}

	if err := s.client.ResetMedications(ctx, auth); err != nil {
		return fmt.Errorf("reset error: %w", err)
	}

	for i := range s.meds {
		s.meds[i].Status = models.StatusPending
	}
	return nil
}

// List returns a copy of the current local list.
func (s *medicationService) List() []models.Medication {
	out := make([]models.Medication, len(s.meds))
	copy(out, s.meds)
	return out
}

// Progress is recomputed from the current local state on every call.
func (s *medicationService) Progress() models.Progress {
	return models.ComputeProgress(s.meds)
}

// Forget drops the local list. Called when the session ends; the store
// is scoped to the active session.
func (s *medicationService) Forget() {
	s.meds = nil
}

func (s *medicationService) indexOf(id int64) int {
	for i, m := range s.meds {
		if m.ID == id {
			return i
		}
	}
	return -1
}
