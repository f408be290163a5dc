package mail

import (
	"errors"
	"strings"
	"testing"

	"opticaluna/internal/config"
)

type captureTransport struct {
	to, subject, body string
	err               error
}

func (t *captureTransport) send(from, to, subject, htmlBody string) error {
	if t.err != nil {
		return t.err
	}
	t.to, t.subject, t.body = to, subject, htmlBody
	return nil
}

func newTestMailer(frontendURL string, tr transport) *Mailer {
	m := New(config.Config{FrontendURL: frontendURL})
	m.tr = tr
	return m
}

func TestSendReportsTransportFailureAsFalse(t *testing.T) {
	m := newTestMailer("http://x", &captureTransport{err: errors.New("connection refused")})
	if m.Send("a@b.com", "subject", "<p>hi</p>") {
		t.Fatal("expected false on transport failure")
	}
}

func TestSendSucceeds(t *testing.T) {
	tr := &captureTransport{}
	m := newTestMailer("http://x", tr)
	if !m.Send("a@b.com", "subject", "<p>hi</p>") {
		t.Fatal("expected true")
	}
	if tr.to != "a@b.com" || tr.subject != "subject" {
		t.Fatalf("unexpected message: %+v", tr)
	}
}

func TestPasswordResetLinkFormat(t *testing.T) {
	tr := &captureTransport{}
	m := newTestMailer("http://x", tr)
	if !m.SendPasswordReset("a@b.com", "Ana", "tok123") {
		t.Fatal("expected true")
	}
	if tr.to != "a@b.com" {
		t.Fatalf("wrong recipient: %s", tr.to)
	}
	if !strings.Contains(tr.body, "http://x/reset-password?token=tok123") {
		t.Fatalf("reset link missing from body:\n%s", tr.body)
	}
	if !strings.Contains(tr.body, "Ana") {
		t.Fatal("recipient name missing from body")
	}
}

func TestPreviewTransportWhenNoCredentials(t *testing.T) {
	m := New(config.Config{FrontendURL: "http://x"})
	// No SMTP credentials in config: transport resolves to the preview one
	// and sends report success without real delivery.
	if !m.Send("a@b.com", "subject", "<p>hi</p>") {
		t.Fatal("preview transport should report success")
	}
	if _, ok := m.tr.(*previewTransport); !ok {
		t.Fatalf("expected preview transport, got %T", m.tr)
	}
}

func TestTransportInitializedOnce(t *testing.T) {
	m := New(config.Config{FrontendURL: "http://x"})
	_ = m.Send("a@b.com", "one", "<p>1</p>")
	first := m.tr
	_ = m.Send("a@b.com", "two", "<p>2</p>")
	if m.tr != first {
		t.Fatal("transport was re-initialized")
	}
}
