package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

const (
	ActivationSubject = `Account activation link generated from "URL-Shortener Web Application"`
	ResetSubject      = `Requested Password Reset Link from "URL-Shortener Web Application"`
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Message письмо в формате HTML
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender доставляет готовое письмо
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notifier формирует письма со ссылками и передаёт их Sender
type Notifier struct {
	sender Sender
	from   string
}

// NewNotifier создает Notifier, подписывающий письма адресом from
func NewNotifier(sender Sender, from string) *Notifier {
	return &Notifier{
		sender: sender,
		from:   from,
	}
}

// SendActivation отправляет ссылку для активации учётной записи
func (n *Notifier) SendActivation(ctx context.Context, to, link string) error {
	return n.send(ctx, to, ActivationSubject, "activation.html", link)
}

// SendPasswordReset отправляет ссылку для сброса пароля
func (n *Notifier) SendPasswordReset(ctx context.Context, to, link string) error {
	return n.send(ctx, to, ResetSubject, "reset.html", link)
}

func (n *Notifier) send(ctx context.Context, to, subject, tmpl, link string) error {
	var body bytes.Buffer
	data := struct {
		Email string
		Link  string
	}{Email: to, Link: link}

	if err := templates.ExecuteTemplate(&body, tmpl, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", tmpl, err)
	}

	msg := Message{
		From:    n.from,
		To:      to,
		Subject: subject,
		HTML:    body.String(),
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}

	return nil
}
