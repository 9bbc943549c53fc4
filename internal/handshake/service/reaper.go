package service

import (
	"log/slog"
	"time"

	"github.com/keystep/keystep/internal/handshake/metrics"
)

// ExpiryReaper sweeps the coordinator's registries on a fixed period for
// the lifetime of the process. It only ever deletes: liveness checks
// re-evaluate expiry on every access regardless, so a missed tick costs
// memory, never correctness.
type ExpiryReaper struct {
	Coordinator *HandshakeService
	Logger      *slog.Logger
	Interval    time.Duration
	Metrics     *metrics.Metrics

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewExpiryReaper creates a reaper with the given sweep interval.
// If interval is 0 or negative, defaults to 30 seconds.
func NewExpiryReaper(coordinator *HandshakeService, logger *slog.Logger, interval time.Duration, m *metrics.Metrics) *ExpiryReaper {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	return &ExpiryReaper{
		Coordinator: coordinator,
		Logger:      logger,
		Interval:    interval,
		Metrics:     m,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start begins the background sweep loop. This is non-blocking; call
// Stop() to gracefully shut the loop down.
func (r *ExpiryReaper) Start() {
	go r.run()
	r.Logger.Info("expiry reaper started", "interval", r.Interval)
}

// Stop gracefully shuts down the background loop.
// Blocks until any in-progress sweep has finished.
func (r *ExpiryReaper) Stop() {
	close(r.stopCh)
	<-r.doneCh
	r.Logger.Info("expiry reaper stopped")
}

// run is the main background loop.
func (r *ExpiryReaper) run() {
	defer close(r.doneCh)

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup
	r.sweep()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopCh:
			return
		}
	}
}

func (r *ExpiryReaper) sweep() {
	stats := r.Coordinator.SweepExpired(time.Now())
	r.Metrics.ObserveSweep(stats.Verifications, stats.Credentials, stats.Sessions)

	if stats.Total() == 0 {
		r.Logger.Debug("reaper pass found nothing to remove")
		return
	}

	r.Logger.Info("reaper removed expired entries",
		"verifications", stats.Verifications,
		"credentials", stats.Credentials,
		"sessions", stats.Sessions,
	)
}
