package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests used for request body integrity
// (the HashSHA256 header). Hash instances are pooled per Hasher, so one
// Hasher should be constructed per key and shared.
//
// A Hasher with an empty key is disabled: [Hasher.Enabled] reports false and
// [Hasher.SumHex] returns an empty string.
type Hasher struct {
	hashKey []byte
	pool    sync.Pool
}

// NewHasher constructs a Hasher for the given key.
//
// Example usage:
//
//	hasher := utils.NewHasher("my-secret-key")
//	signature := hasher.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	h := &Hasher{hashKey: []byte(hashKey)}
	h.pool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, h.hashKey)
		},
	}
	return h
}

// Enabled reports whether a key is configured.
func (h *Hasher) Enabled() bool {
	return h != nil && len(h.hashKey) > 0
}

// Sum computes an HMAC-SHA256 digest over data using a pooled hash instance.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex returns the hex-encoded digest of data, or "" when the hasher is disabled.
func (h *Hasher) SumHex(data []byte) string {
	if !h.Enabled() {
		return ""
	}
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signature is the hex digest of data. Comparison is
// constant-time.
func (h *Hasher) Verify(data []byte, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), expected)
}
