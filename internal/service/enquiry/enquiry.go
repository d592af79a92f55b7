package enquiry

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Alijeyrad/enquiry_backend/internal/repo"
)

const meterName = "github.com/Alijeyrad/enquiry_backend/internal/service/enquiry"

// emailChar is any character other than "@" and the whitespace set of an
// ECMAScript \s, which is wider than RE2's \s.
const emailChar = `[^\t\n\v\f\r \x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}@]`

var emailPattern = regexp.MustCompile(`^` + emailChar + `+@` + emailChar + `+\.` + emailChar + `+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SubmitRequest struct {
	Name     string
	Lastname string
	Email    string
	Subject  string
	Notes    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*repo.Enquiry, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type enquiryService struct {
	store    repo.EnquiryStore
	effects  []Effect
	log      *slog.Logger
	failures metric.Int64Counter
}

func New(store repo.EnquiryStore, log *slog.Logger, effects ...Effect) Service {
	failures, err := otel.Meter(meterName).Int64Counter(
		"enquiry_effect_failures_total",
		metric.WithDescription("Best-effort enquiry side effects that failed"),
	)
	if err != nil {
		log.Warn("enquiry: effect failure counter unavailable", "err", err)
	}

	return &enquiryService{
		store:    store,
		effects:  effects,
		log:      log,
		failures: failures,
	}
}

// Validate checks that every field is non-empty once trimmed, then matches
// the email as received, so surrounding whitespace makes it invalid. The
// first failure wins. The returned request holds the trimmed fields.
func Validate(req SubmitRequest) (SubmitRequest, error) {
	out := SubmitRequest{
		Name:     strings.TrimSpace(req.Name),
		Lastname: strings.TrimSpace(req.Lastname),
		Email:    strings.TrimSpace(req.Email),
		Subject:  strings.TrimSpace(req.Subject),
		Notes:    strings.TrimSpace(req.Notes),
	}

	if out.Name == "" || out.Lastname == "" || out.Email == "" || out.Subject == "" || out.Notes == "" {
		return out, ErrFieldsRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return out, ErrInvalidEmail
	}

	return out, nil
}

func (s *enquiryService) Submit(ctx context.Context, req SubmitRequest) (*repo.Enquiry, error) {
	clean, err := Validate(req)
	if err != nil {
		return nil, err
	}

	e := &repo.Enquiry{
		Name:     clean.Name,
		Lastname: clean.Lastname,
		Email:    clean.Email,
		Subject:  clean.Subject,
		Notes:    clean.Notes,
	}

	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "enquiry saved", "id", e.ID)

	s.runEffects(ctx, e)

	return e, nil
}

// runEffects applies every effect in order. Failures only reach the logs
// and the failure counter.
func (s *enquiryService) runEffects(ctx context.Context, e *repo.Enquiry) {
	for _, eff := range s.effects {
		if err := applyEffect(ctx, eff, e); err != nil {
			s.log.WarnContext(ctx, "enquiry: effect failed",
				"effect", eff.Name(),
				"id", e.ID,
				"err", err,
			)
			if s.failures != nil {
				s.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("effect", eff.Name())))
			}
			continue
		}
		s.log.DebugContext(ctx, "enquiry: effect applied", "effect", eff.Name(), "id", e.ID)
	}
}

func applyEffect(ctx context.Context, eff Effect, e *repo.Enquiry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return eff.Apply(ctx, e)
}
