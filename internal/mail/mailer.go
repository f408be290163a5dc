// Package mail delivers transactional email through a lazily-initialized
// transport: live SMTP when credentials are configured, otherwise a preview
// transport that logs instead of sending.
package mail

import (
	"fmt"
	"sync"

	"opticaluna/internal/config"
	applog "opticaluna/internal/log"

	"gopkg.in/gomail.v2"
)

type transport interface {
	send(from, to, subject, htmlBody string) error
}

type smtpTransport struct {
	dialer *gomail.Dialer
}

func (t *smtpTransport) send(from, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return t.dialer.DialAndSend(m)
}

// previewTransport stands in when no SMTP credentials exist. It logs the
// message instead of delivering it.
type previewTransport struct{}

func (t *previewTransport) send(from, to, subject, htmlBody string) error {
	applog.Info(nil, "mail.preview", map[string]any{
		"from": from, "to": to, "subject": subject, "body": htmlBody,
	})
	return nil
}

type Mailer struct {
	cfg         config.MailConfig
	frontendURL string

	once sync.Once
	tr   transport
}

func New(cfg config.Config) *Mailer {
	return &Mailer{cfg: cfg.Mail, frontendURL: cfg.FrontendURL}
}

// transportOnce picks the transport exactly once per process.
func (m *Mailer) transportOnce() transport {
	m.once.Do(func() {
		if m.tr != nil {
			return
		}
		if m.cfg.Live() {
			m.tr = &smtpTransport{dialer: gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Pass)}
			applog.Info(nil, "mail.transport.smtp", map[string]any{"host": m.cfg.Host, "port": m.cfg.Port})
			return
		}
		m.tr = &previewTransport{}
		applog.Info(nil, "mail.transport.preview", nil)
	})
	return m.tr
}

// Send attempts delivery and reports success. Transport failures are logged
// and reported as false; they never propagate to the caller.
func (m *Mailer) Send(to, subject, htmlBody string) bool {
	if err := m.transportOnce().send(m.cfg.From, to, subject, htmlBody); err != nil {
		applog.Error(nil, "mail.send.fail", err, map[string]any{"to": to, "subject": subject})
		return false
	}
	applog.Info(nil, "mail.send", map[string]any{"to": to, "subject": subject})
	return true
}

// SendPasswordReset mails the reset link. The embedded token expires one hour
// after issue; the issuer enforces that, not this package.
func (m *Mailer) SendPasswordReset(email, name, token string) bool {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)
	body := fmt.Sprintf(`
<div style="font-family:sans-serif;max-width:520px;margin:0 auto">
  <h2>Óptica Luna</h2>
  <p>Hola %s,</p>
  <p>Recibimos una solicitud para restablecer tu contraseña. Haz clic en el
  siguiente enlace para elegir una nueva:</p>
  <p><a href="%s">Restablecer contraseña</a></p>
  <p>El enlace es válido durante 1 hora. Si no solicitaste este cambio,
  ignora este correo.</p>
</div>`, name, link)
	return m.Send(email, "Restablece tu contraseña", body)
}
