package services

import (
	"context"
	"fmt"
	"log"

	"expopass/internal/domain"
)

type notificationService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewNotificationService returns a NotificationDispatcher that uses the given Mailer and template renderer.
func NewNotificationService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.NotificationDispatcher {
	return &notificationService{mailer: mailer, renderer: renderer}
}

// SendAttendancePass sends the attendance pass email using the "attendance_pass" template.
func (s *notificationService) SendAttendancePass(ctx context.Context, data *domain.AttendancePassEmailData) error {
	if data == nil {
		return fmt.Errorf("attendance pass data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("attendance_pass", data)
	if err != nil {
		return fmt.Errorf("failed to render attendance_pass template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send attendance pass email: %w", err)
	}
	log.Printf("[EMAIL] Attendance pass sent to %s", data.Email)
	return nil
}
