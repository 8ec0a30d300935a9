package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// SignatureHeader carries the event signature:
//
//	X-AutoDinar-Signature: t={timestamp},v1={signature}
//
// where signature = HMAC-SHA256(secret, "{timestamp}.{payload}").
const SignatureHeader = "X-AutoDinar-Signature"

// Sign produces the signature header value for a payload.
func Sign(payload []byte, secret string, timestamp int64) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, computeSignature(timestamp, payload, secret))
}

// Verify checks a signature header against a payload. Receivers use it
// to authenticate deliveries.
func Verify(header string, payload []byte, secret string) bool {
	var timestamp int64
	var sig string
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			return false
		}
		switch k {
		case "t":
			ts, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return false
			}
			timestamp = ts
		case "v1":
			sig = v
		}
	}
	if timestamp == 0 || sig == "" {
		return false
	}
	want := computeSignature(timestamp, payload, secret)
	return hmac.Equal([]byte(want), []byte(sig))
}

func computeSignature(timestamp int64, payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
