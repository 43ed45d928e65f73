package mailer

import (
	"log"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"barprep_backend/internals/configs"
)

// Mailer sends best-effort outbound mail. Send failures are logged and never
// fail the request that triggered them.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewFromEnv() *Mailer {
	port, err := strconv.Atoi(configs.GetEnv("SMTP_PORT", "587"))
	if err != nil {
		port = 587
	}
	return &Mailer{
		host: configs.GetEnv("SMTP_HOST"),
		port: port,
		user: configs.GetEnv("SMTP_USERNAME"),
		pass: configs.GetEnv("SMTP_PASSWORD"),
		from: configs.GetEnv("SMTP_FROM"),
	}
}

func (m *Mailer) enabled() bool {
	return m.host != "" && m.from != ""
}

// Send delivers a plain-text mail in the background.
func (m *Mailer) Send(to, subject, body string) {
	if !m.enabled() {
		log.Printf("[INFO] mailer disabled, skipping %q to %s", subject, to)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	go func() {
		dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
		if err := dialer.DialAndSend(msg); err != nil {
			log.Printf("[ERROR] mail %q to %s: %v", subject, to, err)
		}
	}()
}
