package mailer

import (
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

const defaultFrom = "no-reply@barberia.local"

// SMTPSender отправляет письма через SMTP
// Без Username работает без авторизации (Mailpit и локальные релеи)
type SMTPSender struct {
	addr     string
	from     string
	fromName string
	auth     smtp.Auth
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender создает SMTP отправителя
func NewSMTPSender(cfg SenderConfig) *SMTPSender {
	host := strings.TrimSpace(cfg.Host)

	from := strings.TrimSpace(cfg.From)
	if from == "" {
		from = strings.TrimSpace(cfg.Username)
	}
	if from == "" {
		from = defaultFrom
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}

	return &SMTPSender{
		addr:     net.JoinHostPort(host, strconv.Itoa(cfg.Port)),
		from:     from,
		fromName: strings.TrimSpace(cfg.FromName),
		auth:     auth,
		sendMail: smtp.SendMail,
	}
}

// Send отправляет письмо
// net/smtp не принимает context, поэтому проверяем отмену только перед отправкой
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" || msg.Subject == "" {
		return ErrInvalidMessage
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	raw := buildMessage(s.fromHeader(), msg)
	if err := s.sendMail(s.addr, s.auth, s.from, []string{msg.To}, []byte(raw)); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, msg.To, err)
	}
	return nil
}

func (s *SMTPSender) fromHeader() string {
	if s.fromName == "" {
		return s.from
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", s.fromName), s.from)
}

// buildMessage минимальное RFC 5322 письмо
func buildMessage(from string, msg Message) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=utf-8\r\n\r\n%s\r\n",
		from,
		msg.To,
		mime.QEncoding.Encode("utf-8", msg.Subject),
		msg.HTML,
	)
}
