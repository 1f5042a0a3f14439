package network

import (
	"context"
	"errors"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

// Pinger checks that the remote service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Prober converts remote health checks into the monitor's connectivity
// signal. Any HTTP answer counts as reachable; only transport failures mark
// the device offline.
type Prober struct {
	pinger  Pinger
	monitor *Monitor
	timeout time.Duration
	logger  *logger.Logger
}

// NewProber returns a prober that bounds each ping by timeout.
func NewProber(pinger Pinger, monitor *Monitor, timeout time.Duration, logger *logger.Logger) *Prober {
	return &Prober{pinger: pinger, monitor: monitor, timeout: timeout, logger: logger}
}

// Probe pings the remote once, updates the monitor and returns the observed
// state.
func (p *Prober) Probe(ctx context.Context) bool {
	pingCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	err := p.pinger.Ping(pingCtx)
	if err != nil && ctx.Err() != nil {
		// shutting down, the failure says nothing about the network
		return p.monitor.CurrentlyOnline()
	}
	online := err == nil || !errors.Is(err, adapter.ErrTransport)
	if err != nil {
		p.logger.Debug().Err(err).Str("func", "Prober.Probe").Bool("online", online).Msg("health check failed")
	}

	p.monitor.SetOnline(online)
	return online
}
