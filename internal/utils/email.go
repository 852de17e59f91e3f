package utils

import (
	"log"
	"os"

	"github.com/wneessen/go-mail"
)

// SMTPMailer envoie les notifications transactionnelles via le relais SMTP.
// L'identité du compte (EMAIL_USER / EMAIL_PASS) vient de l'environnement.
type SMTPMailer struct{}

func (SMTPMailer) Send(from, to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("EMAIL_USER")),
		mail.WithPassword(os.Getenv("EMAIL_PASS")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
