package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/cpr_dispatch/internal/config"
	"github.com/shenikar/cpr_dispatch/internal/events"
	"github.com/shenikar/cpr_dispatch/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string) *WebhookWorker {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWebhookWorker(nil, logger, cfg)
}

func acceptedPayload(t *testing.T) (WebhookEvent, string) {
	t.Helper()
	req := &models.EmergencyRequest{
		ID:           "3",
		AcceptedETAs: []string{"5 min", "8 min", "10 min"},
		UpdatedAt:    time.Date(2026, 5, 10, 18, 0, 0, 0, time.UTC),
	}
	event := NewWebhookEvent(events.NewAcceptedEvent(req, 10, &models.Responder{Name: "Dr. Sarah Chen"}))
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestNewWebhookEvent(t *testing.T) {
	event, _ := acceptedPayload(t)

	assert.Equal(t, events.TypeRequestAccepted, event.Type)
	assert.Equal(t, "3", event.RequestID)
	assert.Equal(t, 3, event.AcceptedCount)
	assert.Equal(t, "10 min", event.ETA)
	require.NotNil(t, event.Responder)
	assert.Equal(t, "Dr. Sarah Chen", event.Responder.Name)

	opened := NewWebhookEvent(events.NewOpenedEvent(&models.EmergencyRequest{ID: "x"}))
	assert.Empty(t, opened.ETA)
}

func TestProcessWebhookEvent_DeliversSigned(t *testing.T) {
	event, raw := acceptedPayload(t)

	var gotSignature, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL)
	ok := w.processWebhookEvent(context.Background(), event, raw)

	assert.True(t, ok)
	assert.Equal(t, raw, gotBody)
	assert.Equal(t, generateHMACSHA256(raw, "s3cret"), gotSignature)
}

func TestProcessWebhookEvent_RetriesUntilSuccess(t *testing.T) {
	event, raw := acceptedPayload(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL).processWebhookEvent(context.Background(), event, raw)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_GivesUp(t *testing.T) {
	event, raw := acceptedPayload(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL).processWebhookEvent(context.Background(), event, raw)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessWebhookEvent_NoURL(t *testing.T) {
	event, raw := acceptedPayload(t)

	assert.False(t, newTestWorker("").processWebhookEvent(context.Background(), event, raw))
}

func TestGenerateHMACSHA256(t *testing.T) {
	// RFC 4231, test case 2
	got := generateHMACSHA256("what do ya want for nothing?", "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}
