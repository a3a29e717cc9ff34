package mailer

// Типы уведомлений для метрик
const (
	KindConfirmation = "confirmation"
	KindReminder     = "reminder"
)

// Message письмо в формате HTML
type Message struct {
	To      string
	Subject string
	HTML    string
}

// SenderConfig параметры SMTP
type SenderConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // Адрес отправителя, по умолчанию Username
	FromName string // Отображаемое имя, например "Barbería Citas"
}
