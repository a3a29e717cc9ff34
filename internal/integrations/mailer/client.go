package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Client отправляет уведомления клиентам
type Client struct {
	sender   Sender
	profiles ProfileRepository
	location *time.Location
	metrics  Metrics
	log      Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(sender Sender, profiles ProfileRepository, location *time.Location, metrics Metrics, log Logger) *Client {
	if location == nil {
		location = time.UTC
	}
	return &Client{
		sender:   sender,
		profiles: profiles,
		location: location,
		metrics:  metrics,
		log:      log,
	}
}

// NotifyAppointment отправляет подтверждение созданной записи
// Вызывающая сторона только логирует ошибку, запись не откатывается
func (c *Client) NotifyAppointment(ctx context.Context, appt *domain.Appointment) error {
	c.log.Info("NotifyAppointment: sending confirmation for appointment id=%s, customer=%s", appt.ID, appt.CustomerID)

	profile, err := c.profiles.GetByID(ctx, appt.CustomerID)
	if err != nil {
		err = fmt.Errorf("%w: customer=%s: %v", ErrProfileLookup, appt.CustomerID, err)
		c.metrics.IncNotification(KindConfirmation, err)
		return err
	}
	if !profile.HasEmail() {
		c.log.Warn("NotifyAppointment: customer=%s has no email, skipping", appt.CustomerID)
		c.metrics.IncNotification(KindConfirmation, ErrNoRecipient)
		return ErrNoRecipient
	}

	msg, err := ConfirmationMessage(profile, appt, c.location)
	if err != nil {
		c.metrics.IncNotification(KindConfirmation, err)
		return err
	}

	err = c.sender.Send(ctx, msg)
	c.metrics.IncNotification(KindConfirmation, err)
	if err != nil {
		return err
	}

	c.log.Info("NotifyAppointment: confirmation sent for appointment id=%s", appt.ID)
	return nil
}

// SendReminder отправляет одно напоминание со всеми записями клиента
func (c *Client) SendReminder(ctx context.Context, profile *domain.Profile, appts []*domain.Appointment) error {
	if !profile.HasEmail() {
		c.metrics.IncNotification(KindReminder, ErrNoRecipient)
		return ErrNoRecipient
	}

	msg, err := ReminderMessage(profile, appts, c.location)
	if err != nil {
		c.metrics.IncNotification(KindReminder, err)
		return err
	}

	err = c.sender.Send(ctx, msg)
	c.metrics.IncNotification(KindReminder, err)
	return err
}
