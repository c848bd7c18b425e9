package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// WishReceivedEmailData holds data for the new wish notification.
type WishReceivedEmailData struct {
	Email      string
	Title      string
	GuestName  string
	Message    string
	Attendance Attendance
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendWishReceived(ctx context.Context, data *WishReceivedEmailData) error
}
