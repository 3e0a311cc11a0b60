package services

import (
	"context"
	"fmt"

	"mergington-activities/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends the signup confirmation email using the
// "signup_confirmation" template.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.ConfirmationEmailData) error {
	return s.send("signup_confirmation", data)
}

// SendUnregisterConfirmation sends the unregistration confirmation email using
// the "unregister_confirmation" template.
func (s *emailService) SendUnregisterConfirmation(ctx context.Context, data *domain.ConfirmationEmailData) error {
	return s.send("unregister_confirmation", data)
}

func (s *emailService) send(templateName string, data *domain.ConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("confirmation email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	return nil
}
