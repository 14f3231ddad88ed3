// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRunner считает вызовы SyncAll.
type spyRunner struct {
	calls atomic.Int64
}

func (s *spyRunner) SyncAll(_ context.Context, ownerID string) models.SyncReport {
	s.calls.Add(1)
	return models.SyncReport{OwnerID: ownerID}
}

func (s *spyRunner) SyncDomains(ctx context.Context, ownerID string, _ ...models.Domain) models.SyncReport {
	return s.SyncAll(ctx, ownerID)
}

func (s *spyRunner) Status(context.Context, string) ([]models.DomainStatus, error) {
	return nil, nil
}

// stubWatcher ничего не считает.
type stubWatcher struct {
	refreshes atomic.Int64
}

func (w *stubWatcher) Subscribe() (<-chan int, func()) { return nil, func() {} }

func (w *stubWatcher) Refresh(context.Context, string) (int, error) {
	w.refreshes.Add(1)
	return 0, nil
}

// stubProbe управляет доступностью сервера из теста.
type stubProbe struct {
	up      atomic.Bool
	changes chan bool
}

func newStubProbe(up bool) *stubProbe {
	p := &stubProbe{changes: make(chan bool, 1)}
	p.up.Store(up)
	return p
}

func (p *stubProbe) Run(ctx context.Context) { <-ctx.Done() }
func (p *stubProbe) Available() bool { return p.up.Load() }
func (p *stubProbe) Changes() <-chan bool { return p.changes }

func (p *stubProbe) set(up bool) {
	p.up.Store(up)
	p.changes <- up
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := NewClientSyncJob(&spyRunner{}, &stubWatcher{}, nil, logger.Nop())
	require.NotNil(t, job)

	_, ok := job.LastReport()
	assert.False(t, ok, "до первого прохода отчёта нет")
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsSyncAll(t *testing.T) {
	spy := &spyRunner{}
	watcher := &stubWatcher{}
	job := NewClientSyncJob(spy, watcher, nil, logger.Nop())

	// Интервал 10ms: за 55ms должно быть ~5 тиков
	job.Start(context.Background(), testOwner, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "SyncAll должен быть вызван несколько раз, вызвано: %d", got)
	assert.Equal(t, got, watcher.refreshes.Load())

	report, ok := job.LastReport()
	require.True(t, ok)
	assert.Equal(t, testOwner, report.OwnerID)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRunner{}
	job := NewClientSyncJob(spy, &stubWatcher{}, nil, logger.Nop())

	job.Start(context.Background(), testOwner, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientSyncJob(&spyRunner{}, &stubWatcher{}, nil, logger.Nop())

	// Stop без Start не должен паниковать
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_RunNow_TriggersPass(t *testing.T) {
	spy := &spyRunner{}
	job := NewClientSyncJob(spy, &stubWatcher{}, nil, logger.Nop())

	job.Start(context.Background(), testOwner, time.Hour)
	defer job.Stop()

	job.RunNow()
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestClientSyncJob_RunNow_WithoutStart_DoesNotBlock(t *testing.T) {
	job := NewClientSyncJob(&spyRunner{}, &stubWatcher{}, nil, logger.Nop())

	done := make(chan struct{})
	go func() {
		job.RunNow()
		job.RunNow()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunNow заблокировался")
	}
}

func TestClientSyncJob_SkipsPassWhileUnreachable(t *testing.T) {
	spy := &spyRunner{}
	probe := newStubProbe(false)
	job := NewClientSyncJob(spy, &stubWatcher{}, probe, logger.Nop())

	job.Start(context.Background(), testOwner, 10*time.Millisecond)
	defer job.Stop()

	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int64(0), spy.calls.Load(), "без сервера проходов быть не должно")

	// сервер вернулся: проход запускается сразу
	probe.set(true)
	assert.Eventually(t, func() bool { return spy.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
}

func TestClientSyncJob_ContextCancel_StopsGoroutine(t *testing.T) {
	spy := &spyRunner{}
	job := NewClientSyncJob(spy, &stubWatcher{}, nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, testOwner, 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())

	job.Stop()
}

func TestClientSyncJob_Running(t *testing.T) {
	job := NewClientSyncJob(&spyRunner{}, &stubWatcher{}, nil, logger.Nop())
	assert.False(t, job.Running())

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, testOwner, time.Hour)
	assert.True(t, job.Running())

	// отмена родительского контекста тоже останавливает задачу
	cancel()
	assert.False(t, job.Running())

	job.Start(context.Background(), testOwner, time.Hour)
	assert.True(t, job.Running())
	job.Stop()
	assert.False(t, job.Running())
}
