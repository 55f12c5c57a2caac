package services

import "context"

// EmailService определяет отправку писем пользователю.
// Сбои доставки не повторяются этим слоем.
type EmailService interface {
	Send(ctx context.Context, to, subject, body string) error
}
