package linear

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// maxWebhookAge is how far a delivery's webhookTimestamp may drift from
// now, in either direction, before it is rejected as a replay.
const maxWebhookAge = 60 * time.Second

// VerifySignature checks the Linear-Signature header: the lowercase hex
// HMAC-SHA256 of the raw request body under the signing secret.
func VerifySignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyTimestamp checks that a webhookTimestamp (unix milliseconds) is
// within the replay window around now.
func VerifyTimestamp(timestampMillis int64, now time.Time) bool {
	age := now.UnixMilli() - timestampMillis
	if age < 0 {
		age = -age
	}
	return age <= maxWebhookAge.Milliseconds()
}
