package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toggleChecker struct {
	down atomic.Bool
}

func (c *toggleChecker) Ping(context.Context) error {
	if c.down.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func TestReachabilityProbe_EmitsOnChange(t *testing.T) {
	checker := &toggleChecker{}
	probe := NewReachabilityProbe(checker, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go probe.Run(ctx)

	select {
	case up := <-probe.Changes():
		assert.True(t, up)
	case <-time.After(time.Second):
		t.Fatal("no availability change received")
	}
	assert.True(t, probe.Available())

	checker.down.Store(true)
	select {
	case up := <-probe.Changes():
		assert.False(t, up)
	case <-time.After(time.Second):
		t.Fatal("no availability change received")
	}
	assert.False(t, probe.Available())
}

func TestReachabilityProbe_StartsUnavailable(t *testing.T) {
	checker := &toggleChecker{}
	checker.down.Store(true)
	probe := NewReachabilityProbe(checker, time.Hour, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	probe.Run(ctx)

	require.False(t, probe.Available())
	select {
	case <-probe.Changes():
		t.Fatal("no change expected while the backend stays down")
	default:
	}
}
