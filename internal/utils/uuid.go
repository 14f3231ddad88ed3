package utils

import (
	"crypto/rand"
	"strings"

	"github.com/google/uuid"
)

// friendCodeAlphabet omits characters that are easy to confuse when a code is
// read aloud or typed (0/O, 1/I/L).
const friendCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// FriendCodeLength is the number of characters in a generated friend code.
const FriendCodeLength = 6

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered uuid v7, falling back to v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// GenerateFriendCode returns a random uppercase code of FriendCodeLength
// characters drawn from friendCodeAlphabet.
func (g *UUIDGenerator) GenerateFriendCode() string {
	buf := make([]byte, FriendCodeLength)
	if _, err := rand.Read(buf); err != nil {
		// fall back to the random bits of a v4 uuid
		u := uuid.New()
		copy(buf, u[:FriendCodeLength])
	}

	var sb strings.Builder
	sb.Grow(FriendCodeLength)
	for _, b := range buf {
		sb.WriteByte(friendCodeAlphabet[int(b)%len(friendCodeAlphabet)])
	}
	return sb.String()
}

// NormalizeFriendCode trims surrounding whitespace and uppercases code.
func NormalizeFriendCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
