package sms

import (
	"context"
	"fmt"
	"sort"

	"github.com/arsmn/go-smsir/smsir"
	"github.com/nyaruka/phonenumbers"

	"github.com/Alijeyrad/enquiry_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client     *smsir.Client
	enabled    bool
	templateID string
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}
	if cfg.SMSIR.TemplateID == "" {
		return nil, fmt.Errorf("sms.ir template ID required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:     client,
		enabled:    true,
		templateID: cfg.SMSIR.TemplateID,
	}, nil
}

// SendTemplate sends the configured UltraFast template to phoneNumber,
// filling it with params. If SMS is disabled, this is a no-op.
func (c *Client) SendTemplate(ctx context.Context, phoneNumber string, params map[string]string) error {
	if !c.enabled {
		return nil
	}

	if phoneNumber == "" {
		return fmt.Errorf("phone number is required")
	}
	if len(params) == 0 {
		return fmt.Errorf("template parameters are required")
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	req := &smsir.UltraFastSendRequest{
		Mobile:     phoneNumber,
		TemplateID: c.templateID,
	}
	for _, k := range keys {
		req.Parameters = append(req.Parameters, smsir.UltraFastParameter{Key: k, Value: params[k]})
	}

	if _, err := c.client.Verification.UltraFastSend(ctx, req); err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// NormalizePhone parses raw in the given default region and returns it in
// E.164 form.
func NormalizePhone(raw, region string) (string, error) {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number %q for region %s", raw, region)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
