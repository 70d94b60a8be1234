// Package countdown drives the messages that tick down once per second: the
// "you must wait" message shown while the posting interval has not elapsed
// and the time left before the streak resets.
package countdown

import (
	"sync"
	"time"
)

// Ticker is the subset of *time.Ticker the countdown needs.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) Chan() <-chan time.Time { return t.C }

func newTimeTicker(d time.Duration) Ticker { return timeTicker{time.NewTicker(d)} }

type Option func(*Countdown)

// WithTicker replaces the wall-clock ticker; tests drive ticks by hand.
func WithTicker(f func(time.Duration) Ticker) Option {
	return func(c *Countdown) { c.newTicker = f }
}

// WithFormat renders the remaining time into the published message.
// The default is WaitMessage.
func WithFormat(f func(time.Duration) string) Option {
	return func(c *Countdown) { c.format = f }
}

// Countdown decrements a remaining duration once per second and publishes
// the formatted message after each decrement. When it reaches zero it publishes
// an empty message and stops by itself.
type Countdown struct {
	remaining time.Duration
	publish   func(string)
	format    func(time.Duration) string
	newTicker func(time.Duration) Ticker

	stopOnce sync.Once
	quit     chan struct{}
	done     chan struct{}
}

// Start launches a countdown of remaining (whole seconds). A non-positive
// remaining yields a countdown that is already finished. publish runs on
// the countdown goroutine and must not call Stop.
func Start(remaining time.Duration, publish func(msg string), opts ...Option) *Countdown {
	c := &Countdown{
		remaining: remaining.Truncate(time.Second),
		publish:   publish,
		format:    WaitMessage,
		newTicker: newTimeTicker,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}

	if c.remaining <= 0 {
		close(c.done)
		return c
	}

	t := c.newTicker(time.Second)
	go c.run(t)
	return c
}

func (c *Countdown) run(t Ticker) {
	defer close(c.done)
	defer t.Stop()

	for {
		select {
		case <-c.quit:
			return
		case <-t.Chan():
		}

		// a tick and Stop can be ready together
		select {
		case <-c.quit:
			return
		default:
		}

		c.remaining -= time.Second
		if c.remaining <= 0 {
			c.publish("")
			return
		}
		c.publish(c.format(c.remaining))
	}
}

// Stop cancels the countdown and waits for its goroutine to exit. No publish
// happens after Stop returns. Safe to call more than once.
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() { close(c.quit) })
	<-c.done
}

// Done is closed once the countdown has finished or been stopped.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}
