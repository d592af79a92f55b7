package app

import (
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/Alijeyrad/enquiry_backend/config"
	"github.com/Alijeyrad/enquiry_backend/internal/repo"
	"github.com/Alijeyrad/enquiry_backend/internal/service/enquiry"
	"github.com/Alijeyrad/enquiry_backend/pkg/email"
	"github.com/Alijeyrad/enquiry_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(ProvideEnquiryService),
)

type EnquiryParams struct {
	fx.In

	Cfg   *config.Config
	Log   *slog.Logger
	Store repo.EnquiryStore
	Email *email.Client
	SMS   *sms.Client
	NC    *nats.Conn `optional:"true"`
}

func ProvideEnquiryService(p EnquiryParams) (enquiry.Service, error) {
	effects, err := buildEffects(p)
	if err != nil {
		return nil, err
	}
	return enquiry.New(p.Store, p.Log, effects...), nil
}

// buildEffects wires the notifications that follow a stored enquiry. The
// admin email is always attempted; event and SMS depend on configuration.
func buildEffects(p EnquiryParams) ([]enquiry.Effect, error) {
	// a disabled mailer still runs as an effect so every skipped
	// notification is logged and counted
	if !p.Email.IsEnabled() {
		p.Log.Warn("email disabled, enquiry notifications will not be delivered")
	} else if p.Cfg.Email.AdminAddress == "" {
		p.Log.Warn("email.admin_address is empty, enquiry notifications will not be delivered")
	}
	effects := []enquiry.Effect{
		enquiry.NewAdminEmail(p.Email, p.Cfg.Email.AdminAddress),
	}

	if p.NC != nil {
		effects = append(effects, enquiry.NewCreatedEvent(p.NC))
	}

	if p.SMS != nil && p.SMS.IsEnabled() && p.Cfg.SMS.AdminPhone != "" {
		phone, err := sms.NormalizePhone(p.Cfg.SMS.AdminPhone, p.Cfg.SMS.Region)
		if err != nil {
			return nil, fmt.Errorf("sms.admin_phone: %w", err)
		}
		effects = append(effects, enquiry.NewAdminSMS(p.SMS, phone))
	}

	return effects, nil
}
