package mailer

import (
	"context"
	"strings"
	"testing"

	"net/smtp"

	"github.com/codegym/gym-manager-backend/pkg/config"
)

func TestSMTPMailerSend(t *testing.T) {
	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotMsg  []byte
	)
	m := &SMTPMailer{
		cfg: config.MailConfig{
			Host:    "smtp.example.com",
			Port:    587,
			From:    "gym@example.com",
			Enabled: true,
		},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr = addr
			gotFrom = from
			gotTo = to
			gotMsg = msg
			return nil
		},
	}

	err := m.Send(context.Background(), "member@example.com", "Membership expiring", "Renew soon.")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotAddr != "smtp.example.com:587" {
		t.Fatalf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "gym@example.com" {
		t.Fatalf("unexpected from %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "member@example.com" {
		t.Fatalf("unexpected recipients %v", gotTo)
	}

	body := string(gotMsg)
	for _, want := range []string{
		"Subject: Membership expiring",
		"To: member@example.com",
		"Content-Type: text/plain",
		"Renew soon.",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSMTPMailerRequiresRecipient(t *testing.T) {
	m := &SMTPMailer{
		cfg: config.MailConfig{Host: "smtp.example.com", Port: 25, From: "gym@example.com"},
		send: func(string, smtp.Auth, string, []string, []byte) error {
			t.Fatal("send should not be called")
			return nil
		},
	}
	if err := m.Send(context.Background(), "  ", "subj", "body"); err == nil {
		t.Fatal("expected error for blank recipient")
	}
}

func TestNewReturnsNoopWhenDisabled(t *testing.T) {
	m := New(config.MailConfig{Enabled: false})
	if _, ok := m.(NoopMailer); !ok {
		t.Fatalf("expected NoopMailer, got %T", m)
	}
	if err := m.Send(context.Background(), "anyone@example.com", "s", "b"); err != nil {
		t.Fatalf("noop send should not fail: %v", err)
	}
}
