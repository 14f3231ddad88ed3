// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceHMAC(key, data string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestHasher_SumMatchesHMAC(t *testing.T) {
	h := NewHasher("secret")

	assert.Equal(t, referenceHMAC("secret", "payload"), h.SumHex([]byte("payload")))
	// pooled instances must be reset between calls
	assert.Equal(t, referenceHMAC("secret", "payload"), h.SumHex([]byte("payload")))
	assert.Equal(t, referenceHMAC("secret", ""), h.SumHex(nil))
}

func TestHasher_DifferentKeys(t *testing.T) {
	a := NewHasher("key-a")
	b := NewHasher("key-b")

	assert.NotEqual(t, a.SumHex([]byte("x")), b.SumHex([]byte("x")))
}

func TestHasher_Disabled(t *testing.T) {
	var nilHasher *Hasher
	assert.False(t, nilHasher.Enabled())
	assert.Equal(t, "", nilHasher.SumHex([]byte("x")))

	empty := NewHasher("")
	assert.False(t, empty.Enabled())
	assert.Equal(t, "", empty.SumHex([]byte("x")))
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("secret")
	sig := h.SumHex([]byte("body"))

	assert.True(t, h.Verify([]byte("body"), sig))
	assert.False(t, h.Verify([]byte("other body"), sig))
	assert.False(t, h.Verify([]byte("body"), "not-hex"))
	assert.False(t, h.Verify([]byte("body"), ""))
}

func TestHasher_ConcurrentUse(t *testing.T) {
	h := NewHasher("secret")
	want := referenceHMAC("secret", "data")

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = h.SumHex([]byte("data"))
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
