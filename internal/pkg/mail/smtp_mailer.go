package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/carlimendez/aulareserva/internal/pkg/env"
)

// SendMail sends an HTML email via SMTP.
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// SendPasswordResetMail emails a time-limited reset link to the user.
func SendPasswordResetMail(to string, name string, resetURL string) error {
	subject := "Password reset - Aula Reserva"
	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
			<h2>Password reset</h2>
			<p>Hello <strong>%s</strong>,</p>
			<p>You requested a password reset for the room reservation portal.
			Click the link below to choose a new password. The link is valid for one hour.</p>
			<p><a href="%s">%s</a></p>
			<p>If you did not request this email you can safely ignore it.</p>
		</div>
	`, name, resetURL, resetURL)

	return SendMail(to, subject, body)
}
