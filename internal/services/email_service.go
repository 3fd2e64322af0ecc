package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendCredentialsEmail(email, name, plainPassword string) error
	SendReservationEmail(email, name, vehicle string, validUntil string) error
}

type emailService struct {
	dialer  *gomail.Dialer
	from    string
	company string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail, companyName string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer:  dialer,
		from:    fromEmail,
		company: companyName,
	}
}

func (s *emailService) SendCredentialsEmail(email, name, plainPassword string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Seu acesso ao portal %s", s.company))

	body := fmt.Sprintf(`
		<h2>Olá, %s!</h2>
		<p>Sua conta no portal do cliente %s foi criada.</p>
		<p>Login: <strong>%s</strong><br>Senha: <strong>%s</strong></p>
		<p>Recomendamos alterar a senha no primeiro acesso.</p>
		<p>Atenciosamente,<br>Equipe %s</p>
	`, name, s.company, email, plainPassword, s.company)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send credentials email: %w", err)
	}

	return nil
}

func (s *emailService) SendReservationEmail(email, name, vehicle string, validUntil string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Reserva de veículo confirmada")

	body := fmt.Sprintf(`
                <h3>Olá, %s!</h3>
                <p>Sua reserva do veículo <strong>%s</strong> foi registrada.</p>
                <p>A reserva é válida até <strong>%s</strong>.</p>
                <p>Atenciosamente,<br>Equipe %s</p>
        `, name, vehicle, validUntil, s.company)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reservation email: %w", err)
	}

	return nil
}
