package service

import (
	"context"
	"fmt"
	"time"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/metrics"
	"go.uber.org/zap"
)

// Mailer delivers a rendered email.
type Mailer interface {
	Send(ctx context.Context, e domain.Email) error
}

// Archive records relayed submissions. It is optional.
type Archive interface {
	Save(ctx context.Context, r *domain.Record) error
	ListRecent(ctx context.Context, limit int) ([]domain.Record, error)
}

// Addresses configures sender and recipient of relayed messages.
type Addresses struct {
	Recipient string
	FromFull  string
	FromQuick string
}

// ContactService validates submissions and relays them by email.
type ContactService struct {
	mailer  Mailer
	archive Archive
	addr    Addresses
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewContactService(mailer Mailer, archive Archive, addr Addresses, m *metrics.Metrics, log *zap.Logger) *ContactService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactService{mailer: mailer, archive: archive, addr: addr, metrics: m, log: log}
}

// SubmitContact relays the main contact form.
func (s *ContactService) SubmitContact(ctx context.Context, sub domain.Submission) error {
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		s.metrics.ObserveContact(domain.KindFull, "rejected")
		return err
	}

	html, err := renderContact(sub)
	if err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	email := domain.Email{
		From:    s.addr.FromFull,
		To:      []string{s.addr.Recipient},
		Subject: contactSubject(sub),
		HTML:    html,
		ReplyTo: sub.Email,
	}
	if err := s.send(ctx, domain.KindFull, email); err != nil {
		return err
	}

	s.record(ctx, &domain.Record{
		Kind:    domain.KindFull,
		Name:    sub.Name,
		Email:   sub.Email,
		Company: sub.Company,
		Service: sub.Service,
		Message: sub.Message,
	})
	return nil
}

// SubmitQuick relays the short call-back form.
func (s *ContactService) SubmitQuick(ctx context.Context, q domain.QuickRequest) error {
	q.Normalize()
	if err := q.Validate(); err != nil {
		s.metrics.ObserveContact(domain.KindQuick, "rejected")
		return err
	}

	html, err := renderQuick(q)
	if err != nil {
		return fmt.Errorf("render quick email: %w", err)
	}

	email := domain.Email{
		From:    s.addr.FromQuick,
		To:      []string{s.addr.Recipient},
		Subject: quickSubject(q),
		HTML:    html,
	}
	if err := s.send(ctx, domain.KindQuick, email); err != nil {
		return err
	}

	s.record(ctx, &domain.Record{
		Kind:    domain.KindQuick,
		Name:    q.Name,
		Phone:   q.Phone,
		Project: q.ProjectName,
	})
	return nil
}

// Recent lists the newest archived submissions.
func (s *ContactService) Recent(ctx context.Context, limit int) ([]domain.Record, error) {
	if s.archive == nil {
		return nil, domain.ErrArchiveDisabled
	}
	return s.archive.ListRecent(ctx, limit)
}

func (s *ContactService) send(ctx context.Context, kind string, e domain.Email) error {
	if err := s.mailer.Send(ctx, e); err != nil {
		s.metrics.ObserveContact(kind, "failed")
		s.log.Error("contact relay failed", zap.String("kind", kind), zap.Error(err))
		return err
	}
	s.metrics.ObserveContact(kind, "sent")
	return nil
}

// record archives a relayed submission. Archive errors are logged only; the
// email has already gone out.
func (s *ContactService) record(ctx context.Context, r *domain.Record) {
	if s.archive == nil {
		return
	}
	r.CreatedAt = time.Now().UTC()
	if err := s.archive.Save(ctx, r); err != nil {
		s.log.Warn("contact archive failed", zap.String("kind", r.Kind), zap.Error(err))
	}
}
