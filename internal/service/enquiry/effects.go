package enquiry

import (
	"context"
	"errors"

	"github.com/Alijeyrad/enquiry_backend/internal/repo"
	"github.com/Alijeyrad/enquiry_backend/pkg/constants"
	"github.com/Alijeyrad/enquiry_backend/pkg/email"
	"github.com/Alijeyrad/enquiry_backend/pkg/events"
)

// Effect is a follow-up run after an enquiry has been stored. A failing
// effect never changes the outcome of the submission.
type Effect interface {
	Name() string
	Apply(ctx context.Context, e *repo.Enquiry) error
}

// ---------------------------------------------------------------------------
// admin email
// ---------------------------------------------------------------------------

type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

type adminEmail struct {
	mailer Mailer
	admin  string
}

// NewAdminEmail notifies admin by email about every new enquiry.
func NewAdminEmail(mailer Mailer, admin string) Effect {
	return &adminEmail{mailer: mailer, admin: admin}
}

func (a *adminEmail) Name() string { return "admin_email" }

func (a *adminEmail) Apply(ctx context.Context, e *repo.Enquiry) error {
	if a.admin == "" {
		return errors.New("admin address is not configured")
	}

	msg, err := email.BuildEnquiryNotification(a.admin, email.EnquiryEmailData{
		Name:     e.Name,
		Lastname: e.Lastname,
		Email:    e.Email,
		Subject:  e.Subject,
		Notes:    e.Notes,
	})
	if err != nil {
		return err
	}

	return a.mailer.Send(ctx, msg)
}

// ---------------------------------------------------------------------------
// enquiry.created event
// ---------------------------------------------------------------------------

type createdEvent struct {
	pub events.Publisher
}

// NewCreatedEvent publishes an enquiry.created.<id> event.
func NewCreatedEvent(pub events.Publisher) Effect {
	return &createdEvent{pub: pub}
}

func (c *createdEvent) Name() string { return "created_event" }

func (c *createdEvent) Apply(_ context.Context, e *repo.Enquiry) error {
	return events.PublishJSON(c.pub, constants.EnquirySubject+"."+e.ID, events.EnquiryCreated{
		ID:        e.ID,
		Name:      e.Name,
		Lastname:  e.Lastname,
		Email:     e.Email,
		Subject:   e.Subject,
		CreatedAt: e.CreatedAt,
	})
}

// ---------------------------------------------------------------------------
// admin SMS
// ---------------------------------------------------------------------------

type TemplateSender interface {
	SendTemplate(ctx context.Context, phoneNumber string, params map[string]string) error
}

type adminSMS struct {
	sender TemplateSender
	phone  string
}

// NewAdminSMS texts phone (E.164) a short alert for every new enquiry.
func NewAdminSMS(sender TemplateSender, phone string) Effect {
	return &adminSMS{sender: sender, phone: phone}
}

func (a *adminSMS) Name() string { return "admin_sms" }

func (a *adminSMS) Apply(ctx context.Context, e *repo.Enquiry) error {
	return a.sender.SendTemplate(ctx, a.phone, map[string]string{
		"name":    e.Name + " " + e.Lastname,
		"subject": e.Subject,
	})
}
