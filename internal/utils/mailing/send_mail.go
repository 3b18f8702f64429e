package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"pantry-tracker-api/internal/utils"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// SendMail sends an HTML mail through the configured SMTP relay. Used for
// account verification and the expiry digest.
func SendMail(toEmail string, subject string, body string) error {
	cfg := LoadMailConfig()

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		return err
	}

	mailer := gomail.NewMessage()
	mailer.SetAddressHeader("From", cfg.SMTPEmail, cfg.SMTPSender)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPEmail, cfg.SMTPPassword)
	return dialer.DialAndSend(mailer)
}
