package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/digiweb-agency/digiweb-backend/internal/contact/domain"
	"github.com/digiweb-agency/digiweb-backend/internal/contact/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubArchive struct {
	recs []domain.Record
	err  error
}

func (a *stubArchive) Save(_ context.Context, r *domain.Record) error {
	a.recs = append([]domain.Record{*r}, a.recs...)
	return nil
}

func (a *stubArchive) ListRecent(_ context.Context, limit int) ([]domain.Record, error) {
	if a.err != nil {
		return nil, a.err
	}
	if limit > len(a.recs) {
		limit = len(a.recs)
	}
	return a.recs[:limit], nil
}

type stubMailer struct {
	calls int
	err   error
}

func (m *stubMailer) Send(_ context.Context, _ domain.Email) error {
	m.calls++
	return m.err
}

func setupRouter(m *stubMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewContactService(m, nil, service.Addresses{Recipient: "hello@digiweb-agency.com"}, nil, nil)

	router := gin.New()
	New(svc, nil).Register(router.Group("/api/contact"))
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mailErr  error
		wantCode int
		wantBody string
		wantSend int
	}{
		{
			name:     "success",
			body:     `{"name":"Jan","email":"jan@example.com","service":"seo","message":"Hello"}`,
			wantCode: http.StatusOK,
			wantBody: `{"success":true}`,
			wantSend: 1,
		},
		{
			name:     "missing message",
			body:     `{"name":"Jan","email":"jan@example.com"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Name, email, and message are required."}`,
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Name, email, and message are required."}`,
		},
		{
			name:     "invalid email",
			body:     `{"name":"Jan","email":"jan","message":"Hello"}`,
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Please provide a valid email address."}`,
		},
		{
			name:     "provider failure",
			body:     `{"name":"Jan","email":"jan@example.com","message":"Hello"}`,
			mailErr:  domain.ErrDeliveryFailed,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to send message. Please try again later."}`,
			wantSend: 1,
		},
		{
			name:     "provider not configured",
			body:     `{"name":"Jan","email":"jan@example.com","message":"Hello"}`,
			mailErr:  domain.ErrMailerNotConfigured,
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to send message. Please try again later."}`,
			wantSend: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &stubMailer{err: tt.mailErr}
			rr := post(setupRouter(m), "/api/contact", tt.body)

			require.Equal(t, tt.wantCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, tt.wantSend, m.calls)
		})
	}
}

func TestSubmitQuick(t *testing.T) {
	m := &stubMailer{}
	router := setupRouter(m)

	rr := post(router, "/api/contact/quick", `{"name":"Bo","phone":"0612345678","projectName":"K Mensen"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())

	rr = post(router, "/api/contact/quick", `{"name":"Bo"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Name and phone are required."}`, rr.Body.String())
	assert.Equal(t, 1, m.calls)
}

func TestRegister_PreHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := &stubMailer{}
	svc := service.NewContactService(m, nil, service.Addresses{}, nil, nil)

	router := gin.New()
	block := func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "slow down"})
	}
	New(svc, nil).Register(router.Group("/api/contact"), block)

	rr := post(router, "/api/contact", `{"name":"Jan","email":"jan@example.com","message":"Hello"}`)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, 0, m.calls)
}

func TestListSubmissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	get := func(svc *service.ContactService, path string) *httptest.ResponseRecorder {
		router := gin.New()
		New(svc, nil).RegisterAdmin(router.Group("/admin/contact"))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		return rr
	}

	t.Run("archive disabled", func(t *testing.T) {
		svc := service.NewContactService(&stubMailer{}, nil, service.Addresses{}, nil, nil)
		rr := get(svc, "/admin/contact/submissions")
		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})

	t.Run("lists newest first", func(t *testing.T) {
		archive := &stubArchive{}
		svc := service.NewContactService(&stubMailer{}, archive, service.Addresses{}, nil, nil)
		require.NoError(t, svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Bo", Phone: "06"}))
		require.NoError(t, svc.SubmitQuick(context.Background(), domain.QuickRequest{Name: "Ann", Phone: "07"}))

		rr := get(svc, "/admin/contact/submissions?limit=1")
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Submissions []domain.Record `json:"submissions"`
			Count       int             `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Equal(t, "Ann", resp.Submissions[0].Name)
	})

	t.Run("bad limit", func(t *testing.T) {
		svc := service.NewContactService(&stubMailer{}, &stubArchive{}, service.Addresses{}, nil, nil)
		assert.Equal(t, http.StatusBadRequest, get(svc, "/admin/contact/submissions?limit=0").Code)
		assert.Equal(t, http.StatusBadRequest, get(svc, "/admin/contact/submissions?limit=abc").Code)
	})

	t.Run("archive error", func(t *testing.T) {
		svc := service.NewContactService(&stubMailer{}, &stubArchive{err: errors.New("db down")}, service.Addresses{}, nil, nil)
		assert.Equal(t, http.StatusInternalServerError, get(svc, "/admin/contact/submissions").Code)
	})
}
