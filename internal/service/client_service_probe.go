package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/adapter"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

type reachabilityProbe struct {
	checker  adapter.ReachabilityChecker
	interval time.Duration
	timeout  time.Duration

	available atomic.Bool
	changes   chan bool

	logger *logger.Logger
}

// NewReachabilityProbe returns a probe pinging checker every interval. The
// backend counts as unavailable until the first ping succeeds.
func NewReachabilityProbe(checker adapter.ReachabilityChecker, interval time.Duration, logger *logger.Logger) ReachabilityProbe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &reachabilityProbe{
		checker:  checker,
		interval: interval,
		timeout:  interval / 2,
		changes:  make(chan bool, 1),
		logger:   logger,
	}
}

func (p *reachabilityProbe) Run(ctx context.Context) {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	p.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.check(ctx)
		}
	}
}

func (p *reachabilityProbe) Available() bool {
	return p.available.Load()
}

func (p *reachabilityProbe) Changes() <-chan bool {
	return p.changes
}

func (p *reachabilityProbe) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, p.timeout)
	err := p.checker.Ping(pingCtx)
	cancel()

	if ctx.Err() != nil {
		return
	}

	up := err == nil
	if p.available.Swap(up) == up {
		return
	}

	p.logger.Info().Bool("available", up).Msg("backend reachability changed")

	// keep only the latest state for a slow reader
	select {
	case <-p.changes:
	default:
	}
	p.changes <- up
}
