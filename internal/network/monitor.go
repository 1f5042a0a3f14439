// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package network tracks device connectivity and turns reconnects into
// debounced sync triggers.
//
// [Monitor] owns the single online flag of the process. A transition from
// offline to online arms a reconnect timer on an injectable [Clock]; the
// reconnect callback runs only if the device is still online when the timer
// fires. Going offline, or an explicit [Monitor.CancelPending] from a manual
// sync, disarms it. [Prober] feeds the monitor from periodic remote health
// checks.
package network

import (
	"sync"
	"time"

	"github.com/TRENZITSOLUTIONS/POS-mobile/internal/logger"
)

// Event is published to subscribers on every connectivity transition.
type Event struct {
	Online bool
	At     time.Time
}

// Monitor holds the current connectivity state. The zero value is not usable;
// construct with [NewMonitor]. A new monitor starts offline.
type Monitor struct {
	clock    Clock
	debounce time.Duration
	logger   *logger.Logger

	mu          sync.Mutex
	online      bool
	stopped     bool
	pending     Timer
	generation  uint64
	onReconnect func()
	callbacks   sync.WaitGroup

	subscribers map[uint64]chan Event
	nextSubID   uint64
}

// NewMonitor creates an offline monitor that waits debounce after each
// offline→online transition before calling the reconnect callback.
func NewMonitor(clock Clock, debounce time.Duration, logger *logger.Logger) *Monitor {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Monitor{
		clock:       clock,
		debounce:    debounce,
		logger:      logger,
		subscribers: make(map[uint64]chan Event),
	}
}

// OnReconnect registers fn as the reconnect callback, replacing any previous
// one. fn must not block: it runs on the timer goroutine.
func (m *Monitor) OnReconnect(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconnect = fn
}

// CurrentlyOnline reports the last connectivity state seen by the monitor.
func (m *Monitor) CurrentlyOnline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline consumes a connectivity signal. Repeated signals with the same
// value are ignored.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}

	m.online = online
	now := m.clock.Now()
	m.stopPendingLocked()

	if online && !m.stopped {
		gen := m.generation
		m.pending = m.clock.AfterFunc(m.debounce, func() { m.fire(gen) })
	}
	m.publishLocked(Event{Online: online, At: now})
	m.mu.Unlock()

	m.logger.Info().
		Str("func", "Monitor.SetOnline").
		Bool("online", online).
		Dur("debounce", m.debounce).
		Msg("connectivity changed")
}

// CancelPending disarms a scheduled reconnect trigger. It reports whether a
// trigger was pending.
func (m *Monitor) CancelPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopPendingLocked()
}

// Stop disarms the reconnect trigger for good and waits for a reconnect
// callback already running to return. Connectivity is still tracked and
// published after Stop.
func (m *Monitor) Stop() {
	m.mu.Lock()
	m.stopped = true
	m.stopPendingLocked()
	m.mu.Unlock()

	m.callbacks.Wait()
}

// ReconnectPending reports whether a reconnect trigger is armed.
func (m *Monitor) ReconnectPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending != nil
}

// Subscribe returns a channel receiving every later connectivity [Event] and
// a function that unsubscribes and closes the channel. Events are dropped
// for a subscriber whose buffer is full.
func (m *Monitor) Subscribe(buffer int) (<-chan Event, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	ch := make(chan Event, buffer)
	m.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subscribers, id)
			close(ch)
		})
	}
}

func (m *Monitor) fire(gen uint64) {
	m.mu.Lock()
	if gen != m.generation || !m.online || m.pending == nil {
		m.mu.Unlock()
		return
	}
	m.pending = nil
	fn := m.onReconnect
	m.callbacks.Add(1)
	m.mu.Unlock()
	defer m.callbacks.Done()

	m.logger.Debug().Str("func", "Monitor.fire").Msg("reconnect debounce elapsed")
	if fn != nil {
		fn()
	}
}

// stopPendingLocked also bumps the generation so that a callback already
// dispatched by the clock is ignored.
func (m *Monitor) stopPendingLocked() bool {
	m.generation++
	if m.pending == nil {
		return false
	}
	m.pending.Stop()
	m.pending = nil
	return true
}

func (m *Monitor) publishLocked(ev Event) {
	for _, ch := range m.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}
