package services

import "errors"

// ErrEmailDeliveryFailed сообщает о сбое отправки письма.
// Слой use-case не повторяет отправку, ошибка уходит вызывающему.
var ErrEmailDeliveryFailed = errors.New("failed to deliver email")
