package mailer

import "errors"

var (
	// ErrNoRecipient возвращается, когда у клиента нет e-mail
	ErrNoRecipient = errors.New("mailer: customer has no email")

	// ErrSend возвращается при ошибке SMTP
	ErrSend = errors.New("mailer: send failed")

	// ErrProfileLookup возвращается, если профиль клиента не удалось получить
	ErrProfileLookup = errors.New("mailer: profile lookup failed")

	// ErrInvalidMessage возвращается при пустом получателе или теме
	ErrInvalidMessage = errors.New("mailer: invalid message")
)
