package app

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/pkg/email"
	"github.com/Alijeyrad/enquiry_backend/pkg/sms"
)

func effectNames(t *testing.T, p EnquiryParams) []string {
	t.Helper()
	effects, err := buildEffects(p)
	if err != nil {
		t.Fatalf("buildEffects() error = %v", err)
	}
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = e.Name()
	}
	return names
}

func testParams(t *testing.T, smsCfg config.SMSConfig) EnquiryParams {
	t.Helper()
	mail, err := email.NewFromCentral(config.EmailConfig{Enabled: false})
	if err != nil {
		t.Fatal(err)
	}
	smsCli, err := sms.NewFromConfig(smsCfg)
	if err != nil {
		t.Fatal(err)
	}
	return EnquiryParams{
		Cfg:   &config.Config{Email: config.EmailConfig{AdminAddress: "admin@example.com"}, SMS: smsCfg},
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Email: mail,
		SMS:   smsCli,
	}
}

func TestBuildEffects(t *testing.T) {
	enabledSMS := config.SMSConfig{
		Enabled:    true,
		AdminPhone: "09121234567",
		Region:     "IR",
		SMSIR:      config.SMSIRConfig{APIKey: "key", TemplateID: "100"},
	}

	tests := []struct {
		name string
		sms  config.SMSConfig
		want []string
	}{
		{"email only", config.SMSConfig{}, []string{"admin_email"}},
		{"sms without admin phone", config.SMSConfig{Enabled: true, SMSIR: enabledSMS.SMSIR}, []string{"admin_email"}},
		{"email and sms", enabledSMS, []string{"admin_email", "admin_sms"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := effectNames(t, testParams(t, tt.sms))
			if len(got) != len(tt.want) {
				t.Fatalf("effects = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("effects = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestBuildEffectsRejectsBadAdminPhone(t *testing.T) {
	p := testParams(t, config.SMSConfig{
		Enabled:    true,
		AdminPhone: "not a phone",
		Region:     "IR",
		SMSIR:      config.SMSIRConfig{APIKey: "key", TemplateID: "100"},
	})
	if _, err := buildEffects(p); err == nil {
		t.Error("expected an error for an unparsable admin phone")
	}
}

func TestBuildEffectsWarnsWhenEmailUndeliverable(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		admin   string
		want    string
	}{
		{"disabled", false, "admin@example.com", "email disabled"},
		{"no admin address", true, "", "email.admin_address is empty"},
		{"deliverable", true, "admin@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := testParams(t, config.SMSConfig{})
			p.Log = slog.New(slog.NewTextHandler(&buf, nil))
			p.Cfg.Email.AdminAddress = tt.admin

			mail, err := email.NewFromCentral(config.EmailConfig{Enabled: tt.enabled})
			if err != nil {
				t.Fatal(err)
			}
			p.Email = mail

			effects, err := buildEffects(p)
			if err != nil {
				t.Fatalf("buildEffects() error = %v", err)
			}
			if len(effects) != 1 || effects[0].Name() != "admin_email" {
				t.Errorf("admin email effect should always be wired, got %d effects", len(effects))
			}

			logged := buf.String()
			if tt.want == "" && logged != "" {
				t.Errorf("unexpected warning: %s", logged)
			}
			if tt.want != "" && !strings.Contains(logged, tt.want) {
				t.Errorf("log = %q, want it to contain %q", logged, tt.want)
			}
		})
	}
}
