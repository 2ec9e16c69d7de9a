package editor

import (
	"context"
	"sync"
	"time"
)

type request struct {
	action Action
	reply  chan<- result
}

type result struct {
	state State
	err   error
}

// Loop owns the editor state and the auto-advance timer. Actions and timer
// ticks are handled one at a time on the goroutine running Run, so a tick can
// never start while another transition is in progress. A late tick is dropped
// by the ticker rather than queued.
type Loop struct {
	requests chan request

	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// NewLoop returns a loop starting from initial
func NewLoop(initial State) *Loop {
	return &Loop{
		requests: make(chan request),
		state:    initial,
	}
}

// Subscribe registers fn to receive every new state. fn runs on the loop
// goroutine, it must not call Dispatch.
func (l *Loop) Subscribe(fn func(State)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// Snapshot returns the latest state
func (l *Loop) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

// Dispatch hands a to the loop and waits for the resulting state. It blocks
// until Run picks the action up or ctx is done.
func (l *Loop) Dispatch(ctx context.Context, a Action) (State, error) {
	reply := make(chan result, 1)
	select {
	case l.requests <- request{action: a, reply: reply}:
	case <-ctx.Done():
		return l.Snapshot(), ctx.Err()
	}
	r := <-reply
	return r.state, r.err
}

// Run processes actions and timer ticks until ctx is done. Stopping the run
// stops the ticker, nothing else needs cancelling.
func (l *Loop) Run(ctx context.Context) error {
	var (
		ticker *time.Ticker
		tick   <-chan time.Time
		speed  time.Duration
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer stopTicker()

	syncTicker := func(s State) {
		switch {
		case !s.Running:
			stopTicker()
		case ticker == nil:
			ticker = time.NewTicker(s.Speed)
			tick, speed = ticker.C, s.Speed
		case speed != s.Speed:
			ticker.Reset(s.Speed)
			speed = s.Speed
		}
	}
	syncTicker(l.Snapshot())

	for {
		select {
		case <-ctx.Done():
			return nil

		case req := <-l.requests:
			s, err := l.apply(req.action)
			req.reply <- result{state: s, err: err}
			syncTicker(s)

		case <-tick:
			s, err := l.apply(AdvanceGeneration{})
			if err != nil {
				s, _ = l.apply(Stop{})
			}
			syncTicker(s)
		}
	}
}

// apply runs one transition and publishes the result
func (l *Loop) apply(a Action) (State, error) {
	l.mu.Lock()
	next, err := Reduce(l.state, a)
	if err != nil {
		l.mu.Unlock()
		return next, err
	}
	l.state = next
	subscribers := l.subscribers
	l.mu.Unlock()

	for _, fn := range subscribers {
		fn(next)
	}
	return next, nil
}
