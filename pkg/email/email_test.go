package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Alijeyrad/enquiry_backend/config"
)

func TestBuildEnquiryNotification(t *testing.T) {
	msg, err := BuildEnquiryNotification("admin@example.com", EnquiryEmailData{
		Name:     "Jane",
		Lastname: "Doe",
		Email:    "jane@example.com",
		Subject:  "Hi",
		Notes:    "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("BuildEnquiryNotification() error = %v", err)
	}

	if msg.Subject != "New Enquiry from Jane Doe" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if len(msg.To) != 1 || msg.To[0] != "admin@example.com" {
		t.Errorf("To = %v", msg.To)
	}
	if msg.ReplyTo != "jane@example.com" {
		t.Errorf("ReplyTo = %q", msg.ReplyTo)
	}
	if strings.Contains(msg.HTMLBody, "<script>") {
		t.Error("HTML body must escape submitted notes")
	}
	if !strings.Contains(msg.HTMLBody, "&lt;script&gt;") {
		t.Error("HTML body should contain the escaped notes")
	}
	if !strings.Contains(msg.TextBody, "<script>alert(1)</script>") {
		t.Error("text body should carry notes verbatim")
	}
	if !strings.Contains(msg.TextBody, "Email: jane@example.com") {
		t.Errorf("text body missing email line:\n%s", msg.TextBody)
	}
}

func TestBuildMessage(t *testing.T) {
	base := Message{
		To:       []string{" admin@example.com ", ""},
		ReplyTo:  "jane@example.com",
		Subject:  "New Enquiry from Jane Doe",
		TextBody: "hello",
		HTMLBody: "<p>hello</p>",
	}

	msg, err := buildMessage("Website Enquiry", "forms@example.com", base)
	if err != nil {
		t.Fatalf("buildMessage() error = %v", err)
	}
	if got := msg.GetHeader("From"); len(got) != 1 || got[0] != `"Website Enquiry" <forms@example.com>` {
		t.Errorf("From = %v", got)
	}
	if got := msg.GetHeader("To"); len(got) != 1 || got[0] != "admin@example.com" {
		t.Errorf("To = %v", got)
	}
	if got := msg.GetHeader("Reply-To"); len(got) != 1 || got[0] != "jane@example.com" {
		t.Errorf("Reply-To = %v", got)
	}

	tests := []struct {
		name   string
		from   string
		mutate func(*Message)
	}{
		{name: "missing from", from: "", mutate: func(*Message) {}},
		{name: "missing recipient", from: "forms@example.com", mutate: func(m *Message) { m.To = nil }},
		{name: "missing subject", from: "forms@example.com", mutate: func(m *Message) { m.Subject = " " }},
		{name: "missing body", from: "forms@example.com", mutate: func(m *Message) {
			m.TextBody = ""
			m.HTMLBody = ""
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			tt.mutate(&m)
			_, err := buildMessage("", tt.from, m)
			var invalid ErrInvalidMessage
			if !errors.As(err, &invalid) {
				t.Errorf("buildMessage() error = %v, want ErrInvalidMessage", err)
			}
		})
	}
}

func TestSend_Disabled(t *testing.T) {
	client, err := NewFromCentral(config.EmailConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewFromCentral() error = %v", err)
	}
	if client.IsEnabled() {
		t.Fatal("expected disabled client")
	}

	err = client.Send(context.Background(), Message{})
	var disabled ErrDisabled
	if !errors.As(err, &disabled) {
		t.Errorf("Send() error = %v, want ErrDisabled", err)
	}
}

func TestFromCentralConfig_SenderIsSMTPUser(t *testing.T) {
	cfg := FromCentralConfig(config.EmailConfig{
		FromName: "Website Enquiry",
		SMTP:     config.SMTPConfig{Username: "forms@example.com"},
	})
	if cfg.FromAddress != "forms@example.com" {
		t.Errorf("FromAddress = %q", cfg.FromAddress)
	}
	if cfg.SMTPTimeout().Seconds() != 30 {
		t.Errorf("SMTPTimeout() = %v, want 30s", cfg.SMTPTimeout())
	}
}
