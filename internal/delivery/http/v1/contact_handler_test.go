package v1_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-contact-notifier/config"
	v1 "go-contact-notifier/internal/delivery/http/v1"
	"go-contact-notifier/internal/domain"
	"go-contact-notifier/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUsecase implements domain.ContactUsecase with a canned outcome
type stubUsecase struct {
	receipt *domain.Receipt
	err     error
	called  bool
}

func (s *stubUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.Receipt, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	return s.receipt, nil
}

func newTestRouter(uc domain.ContactUsecase, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{ContactUC: uc, Config: cfg})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const validPayload = `{"name":"Jane","email":"jane@example.com","company":"Acme","message":"Hello"}`

func TestMethodGate(t *testing.T) {
	router := newTestRouter(&stubUsecase{}, &config.Config{EnableCORS: false})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			w := doRequest(router, method, "/v1/contact", "")
			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Method not allowed. Use POST.", body["error"])
		})
	}

	t.Run("OPTIONS is also rejected when CORS is disabled", func(t *testing.T) {
		w := doRequest(router, http.MethodOptions, "/v1/contact", "")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(&stubUsecase{}, &config.Config{EnableCORS: true})

	w := doRequest(router, http.MethodOptions, "/v1/contact", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestBodyParsing(t *testing.T) {
	stub := &stubUsecase{}
	router := newTestRouter(stub, &config.Config{EnableCORS: false})

	for _, body := range []string{"not json at all", `{"name":`, `"just a string"`} {
		t.Run(body, func(t *testing.T) {
			stub.called = false
			w := doRequest(router, http.MethodPost, "/v1/contact", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeBody(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "Invalid JSON in request body", resp["error"])
			assert.False(t, stub.called)
		})
	}
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		label      string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing fields", usecase.ErrMissingFields, http.StatusBadRequest, "Missing required fields: name, email, message"},
		{"invalid email", usecase.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
		{"not configured", usecase.ErrNotConfigured, http.StatusInternalServerError, "Telegram bot not configured. Please contact the site administrator."},
		{"bad chat id", usecase.ErrInvalidChatID, http.StatusInternalServerError, "Invalid CHAT_ID format. Must be a number."},
		{"delivery failed", fmt.Errorf("%w: telegram API error 400: chat not found", usecase.ErrDeliveryFailed), http.StatusInternalServerError, "Failed to send Telegram notification"},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			router := newTestRouter(&stubUsecase{err: tc.err}, &config.Config{EnableCORS: false})
			w := doRequest(router, http.MethodPost, "/v1/contact", validPayload)

			assert.Equal(t, tc.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.wantError, body["error"])
		})
	}
}

func TestErrorDetailsGating(t *testing.T) {
	failure := fmt.Errorf("%w: telegram API error 403: bot was blocked", usecase.ErrDeliveryFailed)

	t.Run("Should omit details in production", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{err: failure}, &config.Config{AppEnv: "production"})
		w := doRequest(router, http.MethodPost, "/v1/contact", validPayload)

		body := decodeBody(t, w)
		assert.NotContains(t, body, "details")
	})

	t.Run("Should include details in development", func(t *testing.T) {
		router := newTestRouter(&stubUsecase{err: failure}, &config.Config{AppEnv: "development"})
		w := doRequest(router, http.MethodPost, "/v1/contact", validPayload)

		body := decodeBody(t, w)
		assert.Contains(t, body["details"], "bot was blocked")
	})
}

func TestSuccessfulSubmission(t *testing.T) {
	stub := &stubUsecase{receipt: &domain.Receipt{MessageID: 42}}
	router := newTestRouter(stub, &config.Config{EnableCORS: true})

	w := doRequest(router, http.MethodPost, "/v1/contact", validPayload)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Telegram notification sent successfully", body["message"])
	assert.Equal(t, float64(42), body["messageId"])
	assert.True(t, stub.called)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubUsecase{}, &config.Config{EnableCORS: false})

	w := doRequest(router, http.MethodGet, "/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
}
