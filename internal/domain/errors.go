package domain

import "errors"

var (
	// ErrMalformedStudyTime возвращается, когда текст периодов не парсится
	// Текст ошибки содержит проблемный токен
	ErrMalformedStudyTime = errors.New("domain: malformed study time")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")
)
