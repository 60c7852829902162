package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bimaru-solver/internal/core"
)

// SolveReceipt ties a signed token to a previously computed result, so a
// client can refetch it without the server keeping session state.
type SolveReceipt struct {
	Result    core.Result `json:"result"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

const receiptTTL = 10 * time.Minute

func createToken(secret string, receipt SolveReceipt) (string, error) {
	payload, err := json.Marshal(receipt)
	if err != nil {
		return "", err
	}

	encoded := base64.URLEncoding.EncodeToString(payload)

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	sig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s.%s", encoded, sig), nil
}

func verifyToken(secret, token string) (*SolveReceipt, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid token format")
	}

	encoded := parts[0]
	sig := parts[1]

	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(encoded))
	expectedSig := base64.URLEncoding.EncodeToString(h.Sum(nil))

	if subtle.ConstantTimeCompare([]byte(sig), []byte(expectedSig)) != 1 {
		return nil, fmt.Errorf("invalid signature")
	}

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var receipt SolveReceipt
	if err := json.Unmarshal(payload, &receipt); err != nil {
		return nil, err
	}

	if time.Now().After(receipt.ExpiresAt) {
		return nil, fmt.Errorf("token expired")
	}

	return &receipt, nil
}
