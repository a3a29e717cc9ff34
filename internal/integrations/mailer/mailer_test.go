package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

var bogota = time.FixedZone("COT", -5*60*60)

type fakeSender struct {
	sent []Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeProfiles struct {
	profiles map[uuid.UUID]*domain.Profile
	err      error
}

func (f *fakeProfiles) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

type notification struct {
	kind string
	ok   bool
}

type fakeMetrics struct{ calls []notification }

func (f *fakeMetrics) IncNotification(kind string, err error) {
	f.calls = append(f.calls, notification{kind: kind, ok: err == nil})
}

func testAppointment(customerID uuid.UUID) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		CustomerID:      customerID,
		BarberID:        uuid.New(),
		Service:         "Corte & barba",
		StartAt:         time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Status:          domain.StatusScheduled,
		BarberName:      ptr.Ptr("Carlos"),
	}
}

func TestConfirmationMessage(t *testing.T) {
	profile := &domain.Profile{ID: uuid.New(), FullName: "Ana <b>", Email: "ana@example.com"}
	appt := testAppointment(profile.ID)

	msg, err := ConfirmationMessage(profile, appt, bogota)
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, "Confirmación cita: Corte & barba", msg.Subject)
	assert.Contains(t, msg.HTML, "Fecha/hora: 10/03/2025 10:00")
	assert.Contains(t, msg.HTML, "Fin estimado: 10/03/2025 10:45")
	assert.Contains(t, msg.HTML, "Barbero: Carlos")
	assert.Contains(t, msg.HTML, "Corte &amp; barba")
	assert.Contains(t, msg.HTML, "Ana &lt;b&gt;")
}

func TestReminderMessage(t *testing.T) {
	profile := &domain.Profile{ID: uuid.New(), FullName: "Ana", Email: "ana@example.com"}
	first := testAppointment(profile.ID)
	second := testAppointment(profile.ID)
	second.Service = "Afeitado"
	second.StartAt = first.StartAt.Add(3 * time.Hour)

	msg, err := ReminderMessage(profile, []*domain.Appointment{first, second}, bogota)
	require.NoError(t, err)

	assert.Equal(t, reminderSubject, msg.Subject)
	assert.Contains(t, msg.HTML, "<li>10/03/2025 10:00 - Corte &amp; barba</li>")
	assert.Contains(t, msg.HTML, "<li>10/03/2025 13:00 - Afeitado</li>")
}

func TestSMTPSender_Send(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotBody string
		gotAuth smtp.Auth
	)

	s := NewSMTPSender(SenderConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "citas@example.com",
		Password: "secret",
		FromName: "Barbería Citas",
	})
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotBody = addr, a, from, to, string(msg)
		return nil
	}

	err := s.Send(context.Background(), Message{To: "ana@example.com", Subject: "Hola", HTML: "<p>x</p>"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "citas@example.com", gotFrom)
	assert.Equal(t, []string{"ana@example.com"}, gotTo)
	assert.True(t, strings.HasPrefix(gotBody, "From: =?utf-8?q?Barber=C3=ADa_Citas?= <citas@example.com>\r\n"))
	assert.Contains(t, gotBody, "Subject: Hola\r\n")
	assert.Contains(t, gotBody, "Content-Type: text/html; charset=utf-8\r\n\r\n<p>x</p>")
}

func TestSMTPSender_Errors(t *testing.T) {
	s := NewSMTPSender(SenderConfig{Host: "localhost", Port: 1025})
	assert.Equal(t, defaultFrom, s.from)
	assert.Nil(t, s.auth)

	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	t.Run("invalid message", func(t *testing.T) {
		err := s.Send(context.Background(), Message{Subject: "x"})
		assert.ErrorIs(t, err, ErrInvalidMessage)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := s.Send(ctx, Message{To: "a@b.c", Subject: "x"})
		assert.ErrorIs(t, err, ErrSend)
	})

	t.Run("smtp failure", func(t *testing.T) {
		err := s.Send(context.Background(), Message{To: "a@b.c", Subject: "x"})
		assert.ErrorIs(t, err, ErrSend)
	})
}

func TestClient_NotifyAppointment(t *testing.T) {
	customer := &domain.Profile{ID: uuid.New(), FullName: "Ana", Email: "ana@example.com"}
	silent := &domain.Profile{ID: uuid.New(), FullName: "Luis"}
	profiles := &fakeProfiles{profiles: map[uuid.UUID]*domain.Profile{
		customer.ID: customer,
		silent.ID:   silent,
	}}

	t.Run("sends confirmation", func(t *testing.T) {
		sender := &fakeSender{}
		metrics := &fakeMetrics{}
		c := NewClient(sender, profiles, bogota, metrics, logger.NewNop())

		require.NoError(t, c.NotifyAppointment(context.Background(), testAppointment(customer.ID)))
		require.Len(t, sender.sent, 1)
		assert.Equal(t, "ana@example.com", sender.sent[0].To)
		assert.Equal(t, []notification{{kind: KindConfirmation, ok: true}}, metrics.calls)
	})

	t.Run("customer without email", func(t *testing.T) {
		sender := &fakeSender{}
		c := NewClient(sender, profiles, bogota, &fakeMetrics{}, logger.NewNop())

		err := c.NotifyAppointment(context.Background(), testAppointment(silent.ID))
		assert.ErrorIs(t, err, ErrNoRecipient)
		assert.Empty(t, sender.sent)
	})

	t.Run("profile lookup failure", func(t *testing.T) {
		c := NewClient(&fakeSender{}, &fakeProfiles{err: errors.New("db down")}, bogota, &fakeMetrics{}, logger.NewNop())

		err := c.NotifyAppointment(context.Background(), testAppointment(customer.ID))
		assert.ErrorIs(t, err, ErrProfileLookup)
	})

	t.Run("send failure is returned", func(t *testing.T) {
		metrics := &fakeMetrics{}
		c := NewClient(&fakeSender{err: ErrSend}, profiles, bogota, metrics, logger.NewNop())

		err := c.NotifyAppointment(context.Background(), testAppointment(customer.ID))
		assert.ErrorIs(t, err, ErrSend)
		assert.Equal(t, []notification{{kind: KindConfirmation, ok: false}}, metrics.calls)
	})
}

func TestClient_SendReminder(t *testing.T) {
	sender := &fakeSender{}
	c := NewClient(sender, &fakeProfiles{}, bogota, &fakeMetrics{}, logger.NewNop())
	profile := &domain.Profile{ID: uuid.New(), Email: "ana@example.com"}

	require.NoError(t, c.SendReminder(context.Background(), profile, []*domain.Appointment{testAppointment(profile.ID)}))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, reminderSubject, sender.sent[0].Subject)

	err := c.SendReminder(context.Background(), &domain.Profile{ID: uuid.New()}, nil)
	assert.ErrorIs(t, err, ErrNoRecipient)
}
