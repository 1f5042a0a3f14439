package network

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/adapter"
	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestProber_Probe(t *testing.T) {
	tests := []struct {
		name    string
		pingErr error
		want    bool
	}{
		{name: "healthy", want: true},
		{name: "transport failure", pingErr: fmt.Errorf("%w: dial tcp", adapter.ErrTransport), want: false},
		{name: "server answered with 5xx", pingErr: adapter.ErrInternalServerError, want: false},
		{name: "server answered with 401", pingErr: adapter.ErrUnauthorized, want: true},
		{name: "server answered with 404", pingErr: adapter.ErrNotFound, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMonitor(NewManualClock(time.Unix(0, 0)), time.Second, logger.Nop())
			if !tt.want {
				m.SetOnline(true)
			}

			p := NewProber(pingerFunc(func(ctx context.Context) error { return tt.pingErr }), m, time.Second, logger.Nop())

			assert.Equal(t, tt.want, p.Probe(context.Background()))
			assert.Equal(t, tt.want, m.CurrentlyOnline())
		})
	}
}

func TestProber_AppliesTimeout(t *testing.T) {
	m := NewMonitor(NewManualClock(time.Unix(0, 0)), time.Second, logger.Nop())
	m.SetOnline(true)

	p := NewProber(pingerFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return fmt.Errorf("%w: %w", adapter.ErrTransport, ctx.Err())
	}), m, 10*time.Millisecond, logger.Nop())

	assert.False(t, p.Probe(context.Background()))
	assert.False(t, m.CurrentlyOnline())
}

func TestProber_CanceledContextKeepsState(t *testing.T) {
	m := NewMonitor(NewManualClock(time.Unix(0, 0)), time.Second, logger.Nop())
	m.SetOnline(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewProber(pingerFunc(func(ctx context.Context) error {
		return errors.Join(adapter.ErrTransport, ctx.Err())
	}), m, time.Second, logger.Nop())

	assert.True(t, p.Probe(ctx))
	assert.True(t, m.CurrentlyOnline())
}
