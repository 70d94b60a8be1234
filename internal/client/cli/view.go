package cli

import (
	"sync"

	"github.com/dmitrijs2005/codelog/internal/client/countdown"
)

// viewScope is the lifetime of one shown view. Results that arrive after
// the scope was closed are dropped, and countdowns attached to it are
// stopped with it.
type viewScope struct {
	mu     sync.Mutex
	closed bool
	cds    []*countdown.Countdown
}

func newViewScope() *viewScope {
	return &viewScope{}
}

func (v *viewScope) alive() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed
}

// attach hands cd to the scope; a closed scope stops it at once.
func (v *viewScope) attach(cd *countdown.Countdown) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		cd.Stop()
		return
	}
	v.cds = append(v.cds, cd)
	v.mu.Unlock()
}

func (v *viewScope) close() {
	v.mu.Lock()
	v.closed = true
	cds := v.cds
	v.cds = nil
	v.mu.Unlock()

	for _, cd := range cds {
		cd.Stop()
	}
}

// statusLine is a message shown in the prompt. Countdowns write it from
// their own goroutines.
type statusLine struct {
	mu  sync.Mutex
	msg string
}

func (s *statusLine) Set(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

func (s *statusLine) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.msg
}
