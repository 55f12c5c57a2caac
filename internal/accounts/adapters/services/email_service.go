package services

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"betola/internal/accounts/domain/services"
	svc "betola/internal/accounts/ports/services"
	"betola/pkg/logger"
)

// Константы для отправки почты.
const (
	msgEmailLogged    = "email delivered to log"
	msgEmailSent      = "email sent via SMTP"
	msgErrSendEmail   = "failed to send email via SMTP"
	errCtxSendingSMTP = "sending email via SMTP"
)

// ServiceLogEmail реализует EmailService записью письма в лог.
// Используется в development-окружении вместо реальной доставки.
type ServiceLogEmail struct{}

// NewLogEmail создает новый экземпляр лог-отправителя писем.
func NewLogEmail() svc.EmailService {
	return &ServiceLogEmail{}
}

// Send записывает письмо в лог вместо отправки.
func (s *ServiceLogEmail) Send(ctx context.Context, to, subject, body string) error {
	logger.Log(ctx).Info(ctx, msgEmailLogged,
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// ServiceSMTPEmail реализует EmailService поверх SMTP.
type ServiceSMTPEmail struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPEmail создает новый экземпляр SMTP-отправителя писем.
func NewSMTPEmail(host string, port int, username, password, from string) svc.EmailService {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &ServiceSMTPEmail{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: auth,
	}
}

// Send отправляет письмо по SMTP. Доставка не повторяется при сбое.
func (s *ServiceSMTPEmail) Send(ctx context.Context, to, subject, body string) error {
	log := logger.Log(ctx).With(zap.String("to", to))

	var msg strings.Builder
	msg.WriteString("From: " + s.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String())); err != nil {
		log.Error(ctx, msgErrSendEmail, zap.Error(err))
		return fmt.Errorf("%s: %w: %w", errCtxSendingSMTP, services.ErrEmailDeliveryFailed, err)
	}

	log.Info(ctx, msgEmailSent, zap.String("subject", subject))
	return nil
}
