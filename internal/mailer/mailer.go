package mailer

import (
	"fmt"
	"log"

	"peoplepulse/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends best-effort plain-text mail. When SMTP_HOST is unset it
// only logs, so local setups work without a mail server.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func New() *Mailer {
	return &Mailer{
		host: config.GetEnv("SMTP_HOST", ""),
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASS", ""),
		from: config.GetEnv("SMTP_FROM", "no-reply@peoplepulse.local"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		log.Printf("mailer disabled, skipping mail to %s: %s", to, subject)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}

// SendWelcome delivers the invite mail with the temporary password. The
// password is never returned through the API; when mail is off it is logged
// server-side so the admin can hand it over manually.
func (m *Mailer) SendWelcome(to, companyName, tempPassword string) {
	body := fmt.Sprintf(
		"You have been invited to join %s on PeoplePulse HR.\n\n"+
			"Login email: %s\nTemporary password: %s\n\n"+
			"Please change your password after your first login.",
		companyName, to, tempPassword,
	)
	if !m.Enabled() {
		log.Printf("invite for %s created, temporary password: %s", to, tempPassword)
		return
	}
	if err := m.Send(to, "Welcome to "+companyName, body); err != nil {
		log.Printf("failed to send welcome mail to %s: %v", to, err)
	}
}
