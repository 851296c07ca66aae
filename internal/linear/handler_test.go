package linear

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/papercut-dev/papercut/internal/ticket"
)

const testSecret = "test-signing-secret"

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

type webhookHarness struct {
	engine    *gin.Engine
	delivered []*ticket.Ticket
	handler   *Handler
}

func newWebhookHarness(t *testing.T) *webhookHarness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := &webhookHarness{engine: gin.New()}
	h.handler = NewHandler(testSecret, func(tk *ticket.Ticket) {
		h.delivered = append(h.delivered, tk)
	}, zap.NewNop())
	h.handler.Register(h.engine.Group("/webhooks"))
	return h
}

func (h *webhookHarness) post(t *testing.T, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/linear", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("Linear-Signature", signature)
	}
	w := httptest.NewRecorder()
	h.engine.ServeHTTP(w, req)
	return w
}

func freshIssueCreate(t *testing.T) []byte {
	t.Helper()
	wh := sampleWebhook()
	wh.WebhookTimestamp = time.Now().UnixMilli()
	body, err := json.Marshal(wh)
	require.NoError(t, err)
	return body
}

func TestWebhookMissingSignatureRejected(t *testing.T) {
	h := newWebhookHarness(t)
	w := h.post(t, freshIssueCreate(t), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, h.delivered)
}

func TestWebhookInvalidSignatureRejected(t *testing.T) {
	h := newWebhookHarness(t)
	w := h.post(t, freshIssueCreate(t), "deadbeef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, h.delivered)
}

func TestWebhookStaleTimestampRejected(t *testing.T) {
	h := newWebhookHarness(t)

	wh := sampleWebhook()
	wh.WebhookTimestamp = time.Now().Add(-5 * time.Minute).UnixMilli()
	body, err := json.Marshal(wh)
	require.NoError(t, err)

	w := h.post(t, body, sign(body))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, h.delivered)
}

func TestWebhookIssueCreateDelivered(t *testing.T) {
	h := newWebhookHarness(t)
	body := freshIssueCreate(t)

	w := h.post(t, body, sign(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "received", resp.Status)
	assert.False(t, resp.Ignored)
	assert.Equal(t, "Issue", resp.Type)
	assert.Equal(t, "create", resp.Action)

	require.Len(t, h.delivered, 1)
	assert.Equal(t, "WEB-17", h.delivered[0].Identifier)
	assert.Equal(t, "Ada Lovelace", h.delivered[0].CreatedBy)
}

func TestWebhookNonCreateIgnored(t *testing.T) {
	h := newWebhookHarness(t)

	wh := sampleWebhook()
	wh.Action = "update"
	wh.WebhookTimestamp = time.Now().UnixMilli()
	body, err := json.Marshal(wh)
	require.NoError(t, err)

	w := h.post(t, body, sign(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Ignored)
	assert.Empty(t, h.delivered)
}

func TestWebhookNonIssueIgnored(t *testing.T) {
	h := newWebhookHarness(t)

	wh := sampleWebhook()
	wh.Type = "Comment"
	wh.WebhookTimestamp = time.Now().UnixMilli()
	body, err := json.Marshal(wh)
	require.NoError(t, err)

	w := h.post(t, body, sign(body))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, h.delivered)
}

func TestWebhookMalformedJSONAcknowledged(t *testing.T) {
	h := newWebhookHarness(t)
	body := []byte(`{"type": "Issue", "action":`)

	w := h.post(t, body, sign(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Ignored)
	assert.Empty(t, h.delivered)
}

func TestVerifySignatureRoundTrip(t *testing.T) {
	body := []byte(`{"hello": "world"}`)
	assert.True(t, VerifySignature(testSecret, body, sign(body)))
	assert.False(t, VerifySignature(testSecret, body, sign([]byte("other"))))
	assert.False(t, VerifySignature("wrong-secret", body, sign(body)))
}

func TestVerifyTimestampWindow(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	assert.True(t, VerifyTimestamp(now.UnixMilli(), now))
	assert.True(t, VerifyTimestamp(now.Add(-59*time.Second).UnixMilli(), now))
	assert.True(t, VerifyTimestamp(now.Add(59*time.Second).UnixMilli(), now))
	assert.False(t, VerifyTimestamp(now.Add(-61*time.Second).UnixMilli(), now))
	assert.False(t, VerifyTimestamp(now.Add(61*time.Second).UnixMilli(), now))
}
