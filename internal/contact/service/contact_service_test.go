package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent []domain.Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, e domain.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, e)
	return nil
}

type fakeArchive struct {
	records []*domain.Record
	err     error
}

func (a *fakeArchive) Save(_ context.Context, r *domain.Record) error {
	a.records = append(a.records, r)
	return a.err
}

func (a *fakeArchive) ListRecent(_ context.Context, limit int) ([]domain.Record, error) {
	out := make([]domain.Record, 0, limit)
	for i := len(a.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *a.records[i])
	}
	return out, nil
}

var testAddr = Addresses{
	Recipient: "hello@digiweb-agency.com",
	FromFull:  "Digiweb Contact Form <onboarding@resend.dev>",
	FromQuick: "Digiweb Quick Contact <onboarding@resend.dev>",
}

func TestSubmitContact(t *testing.T) {
	mailer := &fakeMailer{}
	archive := &fakeArchive{}
	svc := NewContactService(mailer, archive, testAddr, metrics.New(), nil)

	err := svc.SubmitContact(context.Background(), domain.Submission{
		Name:    " Jan <b>de Vries</b> ",
		Email:   "jan@example.com",
		Service: "seo",
		Message: "Line one\nLine two",
	})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)

	e := mailer.sent[0]
	assert.Equal(t, []string{"hello@digiweb-agency.com"}, e.To)
	assert.Equal(t, testAddr.FromFull, e.From)
	assert.Equal(t, "jan@example.com", e.ReplyTo)
	assert.Equal(t, "New Contact Form Submission from Jan <b>de Vries</b>", e.Subject)

	assert.Contains(t, e.HTML, "SEO Optimization")
	assert.Contains(t, e.HTML, "Not provided")
	assert.Contains(t, e.HTML, "Line one<br>Line two")
	assert.Contains(t, e.HTML, "Jan &lt;b&gt;de Vries&lt;/b&gt;")
	assert.NotContains(t, e.HTML, "<b>de Vries</b>")

	require.Len(t, archive.records, 1)
	assert.Equal(t, domain.KindFull, archive.records[0].Kind)
	assert.False(t, archive.records[0].CreatedAt.IsZero())
}

func TestSubmitContact_Validation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer, nil, testAddr, nil, nil)

	err := svc.SubmitContact(context.Background(), domain.Submission{Name: "Jan", Message: "Hi"})
	assert.ErrorIs(t, err, domain.ErrMissingContactFields)
	assert.Empty(t, mailer.sent)
}

func TestSubmitContact_MailerError(t *testing.T) {
	archive := &fakeArchive{}
	svc := NewContactService(&fakeMailer{err: domain.ErrMailerNotConfigured}, archive, testAddr, nil, nil)

	err := svc.SubmitContact(context.Background(), domain.Submission{Name: "Jan", Email: "jan@example.com", Message: "Hi"})
	assert.ErrorIs(t, err, domain.ErrMailerNotConfigured)
	assert.Empty(t, archive.records, "nothing is archived when delivery fails")
}

func TestSubmitContact_ArchiveErrorIsIgnored(t *testing.T) {
	svc := NewContactService(&fakeMailer{}, &fakeArchive{err: errors.New("db down")}, testAddr, nil, nil)
	err := svc.SubmitContact(context.Background(), domain.Submission{Name: "Jan", Email: "jan@example.com", Message: "Hi"})
	assert.NoError(t, err)
}

func TestSubmitQuick(t *testing.T) {
	t.Run("with project", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewContactService(mailer, nil, testAddr, nil, nil)

		err := svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Bo", Phone: "0612345678", ProjectName: "K Mensen"})
		require.NoError(t, err)
		require.Len(t, mailer.sent, 1)

		e := mailer.sent[0]
		assert.Equal(t, "Quick Contact Request - Similar to K Mensen", e.Subject)
		assert.Equal(t, testAddr.FromQuick, e.From)
		assert.Empty(t, e.ReplyTo)
		assert.Contains(t, e.HTML, "Interested in a project similar to:</strong> K Mensen")
		assert.Contains(t, e.HTML, "0612345678")
	})

	t.Run("without project", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewContactService(mailer, nil, testAddr, nil, nil)

		require.NoError(t, svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Bo", Phone: "06"}))
		assert.Equal(t, "Quick Contact Request", mailer.sent[0].Subject)
		assert.False(t, strings.Contains(mailer.sent[0].HTML, "Interested in"))
	})

	t.Run("missing phone", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewContactService(mailer, nil, testAddr, nil, nil)
		err := svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Bo"})
		assert.ErrorIs(t, err, domain.ErrMissingQuickFields)
		assert.Empty(t, mailer.sent)
	})
}

func TestRecent(t *testing.T) {
	_, err := NewContactService(&fakeMailer{}, nil, testAddr, nil, nil).Recent(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)

	archive := &fakeArchive{}
	svc := NewContactService(&fakeMailer{}, archive, testAddr, nil, nil)
	require.NoError(t, svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Bo", Phone: "06"}))
	require.NoError(t, svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Ann", Phone: "07"}))

	recs, err := svc.Recent(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Ann", recs[0].Name)
}
