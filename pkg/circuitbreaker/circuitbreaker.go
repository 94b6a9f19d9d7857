package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

type state uint8

const (
	closed state = iota + 1
	open
	halfOpen
)

var ErrOpen = errors.New("circuit breaker is open")

type CircuitBreaker interface {
	Call(fn func() error) error
	Reset()
}

type circuitBreaker struct {
	mu sync.Mutex

	state state
	// window holds the outcome of the last windowSize calls.
	window     []bool
	windowSize int
	pos        int
	// failureRate at which the breaker trips open.
	failureRate float64
	// cooldown before an open breaker lets a probe through.
	cooldown time.Duration
	openedAt time.Time
	// recoveryCalls successful probes in a row close the breaker again.
	recoveryCalls int
	successCount  int
}

func New(windowSize int, cooldown time.Duration, failureRate float64, recoveryCalls int) CircuitBreaker {
	return &circuitBreaker{
		state:         closed,
		window:        make([]bool, windowSize),
		windowSize:    windowSize,
		failureRate:   failureRate,
		cooldown:      cooldown,
		recoveryCalls: recoveryCalls,
	}
}

func (cb *circuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == open {
		if time.Since(cb.openedAt) <= cb.cooldown {
			cb.mu.Unlock()
			return ErrOpen
		}
		cb.state = halfOpen
		cb.successCount = 0
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.window[cb.pos] = err != nil
	cb.pos = (cb.pos + 1) % cb.windowSize

	if cb.state == halfOpen {
		if err != nil {
			cb.state = open
			cb.successCount = 0
			cb.openedAt = time.Now()
		} else {
			cb.successCount++
			if cb.successCount > cb.recoveryCalls {
				cb.Reset()
			}
		}
		return err
	}

	fails := 0
	for _, failed := range cb.window {
		if failed {
			fails++
		}
	}
	if float64(fails)/float64(cb.windowSize) >= cb.failureRate {
		cb.state = open
		cb.successCount = 0
		cb.openedAt = time.Now()
	}

	return err
}

func (cb *circuitBreaker) Reset() {
	for i := range cb.window {
		cb.window[i] = false
	}
	cb.successCount = 0
	cb.pos = 0
	cb.state = closed
}
