package utils

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

func smtpDialer() (*gomail.Dialer, string, error) {
	host := os.Getenv("SMTP_HOST")
	port := ParseIntDefault(os.Getenv("SMTP_PORT"), 587)
	user := os.Getenv("SMTP_USERNAME")
	pass := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	if host == "" || from == "" {
		return nil, "", fmt.Errorf("missing SMTP env vars (SMTP_HOST, SMTP_FROM)")
	}
	return gomail.NewDialer(host, port, user, pass), from, nil
}

func sendMail(to, subject, body string) error {
	d, from, err := smtpDialer()
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return d.DialAndSend(m)
}

func SendTwoFactorCode(to, code string) error {
	body := fmt.Sprintf("Your verification code is: %s\n\nThis code will expire in 10 minutes.", code)
	return sendMail(to, "Your verification code", body)
}

func SendPasswordReset(to, resetURL string) error {
	body := fmt.Sprintf("To reset your password, open the link below:\n\n%s\n\nThe link expires in one hour. If you did not request a reset, ignore this email.", resetURL)
	return sendMail(to, "Password reset", body)
}
