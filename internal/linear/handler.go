package linear

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/papercut-dev/papercut/internal/ticket"
)

// signatureHeader carries the hex HMAC of the request body.
const signatureHeader = "Linear-Signature"

// WebhookResponse acknowledges a delivery. Ignored deliveries are still
// acknowledged with 200 so Linear does not retry them.
type WebhookResponse struct {
	Status    string `json:"status"`
	Ignored   bool   `json:"ignored,omitempty"`
	Type      string `json:"type,omitempty"`
	Action    string `json:"action,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Handler terminates Linear webhooks. Verified Issue-create events are
// adapted to tickets and handed to deliver; everything else is either
// rejected (bad signature, stale timestamp) or acknowledged and dropped.
type Handler struct {
	secret  string
	deliver func(*ticket.Ticket)
	log     *zap.Logger
	now     func() time.Time
}

// NewHandler builds a handler. deliver is called synchronously from the
// request goroutine with each accepted ticket.
func NewHandler(secret string, deliver func(*ticket.Ticket), log *zap.Logger) *Handler {
	return &Handler{secret: secret, deliver: deliver, log: log, now: time.Now}
}

// Register mounts the webhook route on the given router group.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/linear", h.handle)
}

func (h *Handler) handle(c *gin.Context) {
	signature := c.GetHeader(signatureHeader)
	if signature == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing Linear-Signature header"})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}

	if !VerifySignature(h.secret, body, signature) {
		h.log.Warn("rejecting webhook with invalid signature")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var wh Webhook
	if err := json.Unmarshal(body, &wh); err != nil {
		h.log.Info("ignoring malformed webhook payload", zap.Error(err))
		c.JSON(http.StatusOK, WebhookResponse{Status: "received", Ignored: true})
		return
	}

	if wh.WebhookTimestamp != 0 && !VerifyTimestamp(wh.WebhookTimestamp, h.now()) {
		h.log.Warn("rejecting webhook with stale timestamp",
			zap.Int64("webhook_timestamp", wh.WebhookTimestamp))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "webhook timestamp outside acceptable range"})
		return
	}

	if wh.Type != "Issue" || wh.Action != "create" {
		h.log.Info("ignoring webhook",
			zap.String("type", wh.Type), zap.String("action", wh.Action))
		c.JSON(http.StatusOK, WebhookResponse{Status: "received", Ignored: true})
		return
	}

	if wh.Data.Identifier == "" || wh.Data.Title == "" {
		h.log.Info("ignoring incomplete issue payload")
		c.JSON(http.StatusOK, WebhookResponse{Status: "received", Ignored: true})
		return
	}

	h.deliver(ToTicket(&wh))

	c.JSON(http.StatusOK, WebhookResponse{
		Status:    "received",
		Type:      wh.Type,
		Action:    wh.Action,
		Timestamp: wh.WebhookTimestamp,
	})
}
