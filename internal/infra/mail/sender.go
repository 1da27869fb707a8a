package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from, salesInbox string) *EmailSender {
	return &EmailSender{
		Host:       host,
		Port:       port,
		User:       user,
		Password:   password,
		From:       from,
		SalesInbox: salesInbox,
	}
}

// SendNewLeadAlert avisa a caixa comercial que um lead novo entrou pelo site.
func (s *EmailSender) SendNewLeadAlert(name, email, phone, product string) error {
	data := NewLeadEmailData{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Product: product,
	}

	body, err := s.render("novo_lead.html", data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Novo lead: %s (%s)", name, product)
	return s.send(subject, body)
}

// SendDealClosedAlert avisa que um lead virou negócio fechado.
func (s *EmailSender) SendDealClosedAlert(leadID int64, status string) error {
	data := DealClosedEmailData{
		LeadID: leadID,
		Status: status,
	}

	body, err := s.render("lead_fechado.html", data)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("Lead #%d fechado 🎉", leadID)
	return s.send(subject, body)
}

func (s *EmailSender) render(name string, data interface{}) (string, error) {
	tmplPath := filepath.Join("templates", name)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("erro ao processar template: %w", err)
	}
	return body.String(), nil
}

func (s *EmailSender) send(subject, htmlBody string) error {
	if s.SalesInbox == "" {
		return fmt.Errorf("caixa comercial não configurada (CRM_SALES_INBOX)")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.SalesInbox)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
