package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"mergington-activities/internal/domain"
	"mergington-activities/internal/observability"
)

type activityService struct {
	registry domain.ActivityRegistry
	emails   domain.EmailService
	logger   *slog.Logger
}

// NewActivityService creates an ActivityService backed by the given registry.
// emails may be nil, in which case no confirmation emails are sent.
func NewActivityService(registry domain.ActivityRegistry, emails domain.EmailService, logger *slog.Logger) domain.ActivityService {
	return &activityService{
		registry: registry,
		emails:   emails,
		logger:   logger,
	}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) SignUp(ctx context.Context, activityName, email string) (string, error) {
	if err := s.registry.SignUp(ctx, activityName, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}
	observability.RecordSignup()
	s.logger.InfoContext(ctx, "student signed up", "activity", activityName, "email", email)
	s.sendConfirmation(ctx, activityName, email, true)
	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if err := s.registry.Unregister(ctx, activityName, email); err != nil {
		observability.RecordRejection(rejectionReason(err))
		return "", err
	}
	observability.RecordUnregistration()
	s.logger.InfoContext(ctx, "student unregistered", "activity", activityName, "email", email)
	s.sendConfirmation(ctx, activityName, email, false)
	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// sendConfirmation sends a confirmation email best-effort: failures are
// logged, never surfaced to the student.
func (s *activityService) sendConfirmation(ctx context.Context, activityName, email string, signup bool) {
	if s.emails == nil {
		return
	}
	data := &domain.ConfirmationEmailData{
		Email:        email,
		ActivityName: activityName,
	}
	if a, err := s.registry.Get(ctx, activityName); err == nil {
		data.Schedule = a.Schedule
	}
	var err error
	if signup {
		err = s.emails.SendSignupConfirmation(ctx, data)
	} else {
		err = s.emails.SendUnregisterConfirmation(ctx, data)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "confirmation email failed", "activity", activityName, "email", email, "err", err)
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return observability.ReasonNotFound
	case errors.Is(err, domain.ErrAlreadySignedUp):
		return observability.ReasonDuplicate
	case errors.Is(err, domain.ErrActivityFull):
		return observability.ReasonFull
	case errors.Is(err, domain.ErrNotRegistered):
		return observability.ReasonNotRegistered
	default:
		return "internal"
	}
}
