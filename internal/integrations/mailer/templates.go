package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const (
	confirmationSubject = "Confirmación cita: %s"
	reminderSubject     = "Recordatorio de tus citas de hoy"

	// Формат даты в письмах
	mailTimeFormat = "02/01/2006 15:04"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`<p>Hola {{.Name}},</p>
<p>Tu cita para <strong>{{.Service}}</strong> fue agendada.</p>
{{if .Barber}}<p>Barbero: {{.Barber}}</p>
{{end}}<p>Fecha/hora: {{.Start}}</p>
<p>Fin estimado: {{.End}}</p>
<p>Gracias por reservar.</p>`))

var reminderTmpl = template.Must(template.New("reminder").Parse(
	`<p>Hola {{.Name}},</p>
<p>Estas son tus citas de hoy:</p>
<ul>{{range .Items}}<li>{{.Start}} - {{.Service}}</li>{{end}}</ul>
<p>¡Te esperamos!</p>`))

type confirmationData struct {
	Name    string
	Service string
	Barber  string
	Start   string
	End     string
}

type reminderItem struct {
	Start   string
	Service string
}

type reminderData struct {
	Name  string
	Items []reminderItem
}

// ConfirmationMessage письмо о созданной записи
func ConfirmationMessage(profile *domain.Profile, appt *domain.Appointment, loc *time.Location) (Message, error) {
	data := confirmationData{
		Name:    profile.FullName,
		Service: appt.Service,
		Start:   appt.StartAt.In(loc).Format(mailTimeFormat),
		End:     appt.EndAt().In(loc).Format(mailTimeFormat),
	}
	if appt.BarberName != nil {
		data.Barber = *appt.BarberName
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("%w: render confirmation: %v", ErrInvalidMessage, err)
	}

	return Message{
		To:      profile.Email,
		Subject: fmt.Sprintf(confirmationSubject, appt.Service),
		HTML:    buf.String(),
	}, nil
}

// ReminderMessage письмо со всеми записями клиента на день
func ReminderMessage(profile *domain.Profile, appts []*domain.Appointment, loc *time.Location) (Message, error) {
	data := reminderData{
		Name:  profile.FullName,
		Items: make([]reminderItem, 0, len(appts)),
	}
	for _, a := range appts {
		data.Items = append(data.Items, reminderItem{
			Start:   a.StartAt.In(loc).Format(mailTimeFormat),
			Service: a.Service,
		})
	}

	var buf bytes.Buffer
	if err := reminderTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("%w: render reminder: %v", ErrInvalidMessage, err)
	}

	return Message{
		To:      profile.Email,
		Subject: reminderSubject,
		HTML:    buf.String(),
	}, nil
}
