package sms

import (
	"context"
	"testing"

	"github.com/Alijeyrad/enquiry_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	client, err := NewFromConfig(config.SMSConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR:   config.SMSIRConfig{TemplateID: "test-template"},
	}

	if _, err := NewFromConfig(cfg); err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewFromConfig_EnabledWithoutTemplate(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR:   config.SMSIRConfig{APIKey: "test-api-key"},
	}

	if _, err := NewFromConfig(cfg); err == nil {
		t.Error("Expected error when template ID is missing")
	}
}

func TestNewFromConfig_EnabledWithAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:     "test-api-key",
			SecretKey:  "test-secret-key",
			TemplateID: "test-template",
		},
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if !client.IsEnabled() {
		t.Error("Expected client to be enabled")
	}
}

func TestSendTemplate_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	if err := client.SendTemplate(context.Background(), "+989121234567", map[string]string{"name": "Jane"}); err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSendTemplate_Validation(t *testing.T) {
	client := &Client{enabled: true, templateID: "tpl"}

	tests := []struct {
		name   string
		phone  string
		params map[string]string
	}{
		{name: "missing phone", phone: "", params: map[string]string{"name": "Jane"}},
		{name: "missing params", phone: "+989121234567", params: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.SendTemplate(context.Background(), tt.phone, tt.params); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		region  string
		want    string
		wantErr bool
	}{
		{name: "national iranian mobile", raw: "09121234567", region: "IR", want: "+989121234567"},
		{name: "already international", raw: "+1 650-253-0000", region: "IR", want: "+16502530000"},
		{name: "garbage", raw: "not-a-number", region: "IR", wantErr: true},
		{name: "too short", raw: "123", region: "US", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, tt.region)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizePhone() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizePhone() = %q, want %q", got, tt.want)
			}
		})
	}
}
