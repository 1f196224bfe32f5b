package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// AttendancePassEmailData holds data for the attendance pass email. Token is
// the opaque string the frontend encodes into the QR image.
type AttendancePassEmailData struct {
	Email         string
	AttendeeName  string
	EventName     string
	EventLocation string
	EventDate     string
	EventWindow   string
	Token         string
}

// NotificationDispatcher sends domain-level notifications. Delivery is
// best-effort: a dispatch failure never rolls back the registration that
// triggered it.
type NotificationDispatcher interface {
	SendAttendancePass(ctx context.Context, data *AttendancePassEmailData) error
}
