package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/avc-dev/linkshortener/internal/config"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const gmailScope = "https://mail.google.com/"

// SMTPSender отправляет письма через SMTP с STARTTLS.
// Авторизация XOAUTH2, если задан refresh token, иначе PLAIN.
type SMTPSender struct {
	host     string
	addr     string
	username string
	password string
	tokens   oauth2.TokenSource
	now      func() time.Time
}

// NewSMTPSender создает SMTPSender по почтовым настройкам
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	s := &SMTPSender{
		host:     cfg.Host,
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		username: cfg.Username,
		password: cfg.Password,
		now:      time.Now,
	}

	if cfg.UsesOAuth() {
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gmailScope},
		}
		// TokenSource кэширует access token и обновляет его по refresh token
		s.tokens = oauthCfg.TokenSource(context.Background(), &oauth2.Token{
			RefreshToken: cfg.OAuthRefreshToken,
		})
	}

	return s
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	auth, err := s.auth()
	if err != nil {
		return err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", s.addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to start SMTP session: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); !ok {
		return errors.New("SMTP server does not support STARTTLS")
	}
	if err := client.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("MAIL FROM rejected: %w", err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("RCPT TO rejected: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA rejected: %w", err)
	}
	if _, err := w.Write(buildMessage(msg, s.now())); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("message rejected: %w", err)
	}

	return client.Quit()
}

func (s *SMTPSender) auth() (smtp.Auth, error) {
	if s.tokens == nil {
		return smtp.PlainAuth("", s.username, s.password, s.host), nil
	}

	token, err := s.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh OAuth2 token: %w", err)
	}

	return &xoauth2Auth{username: s.username, accessToken: token.AccessToken}, nil
}

// buildMessage собирает письмо по RFC 5322 с HTML телом
func buildMessage(msg Message, now time.Time) []byte {
	var b bytes.Buffer

	writeHeader := func(name, value string) {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	writeHeader("From", msg.From)
	writeHeader("To", msg.To)
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader("Date", now.Format(time.RFC1123Z))
	writeHeader("Message-ID", "<"+uuid.NewString()+"@linkshortener>")
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="UTF-8"`)
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	return b.Bytes()
}

// xoauth2Auth реализует механизм XOAUTH2 (Gmail)
type xoauth2Auth struct {
	username    string
	accessToken string
}

func (a *xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, errors.New("XOAUTH2 requires an encrypted connection")
	}

	resp := "user=" + a.username + "\x01auth=Bearer " + a.accessToken + "\x01\x01"
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// Сервер присылает JSON с описанием ошибки
		return nil, fmt.Errorf("XOAUTH2 rejected: %s", fromServer)
	}
	return nil, nil
}
