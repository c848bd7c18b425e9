package services

import (
	"context"
	"fmt"

	"sakeenah/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendWishReceived notifies the couple of a new wish using the "wish_received" template.
func (s *emailService) SendWishReceived(ctx context.Context, data *domain.WishReceivedEmailData) error {
	if data == nil {
		return fmt.Errorf("wish received data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("wish_received", data)
	if err != nil {
		return fmt.Errorf("failed to render wish_received template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send wish notification: %w", err)
	}
	return nil
}
