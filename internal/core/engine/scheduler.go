package engine

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/riftlens/riftlens/internal/metrics"
)

// Default personal API key quotas and pacing.
const (
	DefaultPerSecondLimit    = 20
	DefaultPerMinuteLimit    = 100
	DefaultInterRequestDelay = 50 * time.Millisecond
)

// Executor performs a single outbound request. Implemented by riot.Transport.
type Executor interface {
	Execute(ctx context.Context, url string) (json.RawMessage, error)
}

// RequestSpec describes one request awaiting dispatch.
type RequestSpec struct {
	URL string
}

// SchedulerConfig tunes the scheduler. Zero values fall back to the
// personal-key defaults. Clock and Sleep exist for deterministic tests.
type SchedulerConfig struct {
	PerSecondLimit    int
	PerMinuteLimit    int
	InterRequestDelay time.Duration
	Clock             func() time.Time
	Sleep             func(context.Context, time.Duration)
}

// Scheduler owns a FIFO queue of pending requests and admits them one at
// a time under a dual per-second/per-minute budget. Processing is
// strictly serial: a single drain goroutine exists at a time, and the
// next admission check runs only after the previous request completes
// plus a fixed inter-request delay. A transport failure rejects only its
// own caller; the queue advances unconditionally.
type Scheduler struct {
	transport Executor
	cfg       SchedulerConfig

	mu         sync.Mutex
	queue      []*pendingRequest
	processing bool

	// Window state, touched only by the drain goroutine.
	secondCount    int
	lastDispatch   time.Time
	minuteCount    int
	minuteBoundary time.Time
}

type pendingRequest struct {
	ctx  context.Context
	spec RequestSpec
	done chan outcome
}

type outcome struct {
	body json.RawMessage
	err  error
}

// NewScheduler constructs a scheduler around the given transport.
func NewScheduler(transport Executor, cfg SchedulerConfig) *Scheduler {
	if cfg.PerSecondLimit <= 0 {
		cfg.PerSecondLimit = DefaultPerSecondLimit
	}
	if cfg.PerMinuteLimit <= 0 {
		cfg.PerMinuteLimit = DefaultPerMinuteLimit
	}
	if cfg.InterRequestDelay <= 0 {
		cfg.InterRequestDelay = DefaultInterRequestDelay
	}
	if cfg.Clock == nil {
		cfg.Clock = func() time.Time { return time.Now().UTC() }
	}
	if cfg.Sleep == nil {
		cfg.Sleep = func(ctx context.Context, d time.Duration) {
			timer := time.NewTimer(d)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
			}
		}
	}

	return &Scheduler{transport: transport, cfg: cfg}
}

// Limits returns the configured per-second and per-minute quotas.
func (s *Scheduler) Limits() (perSecond, perMinute int) {
	return s.cfg.PerSecondLimit, s.cfg.PerMinuteLimit
}

// QueueDepth returns the number of requests awaiting dispatch.
func (s *Scheduler) QueueDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Submit enqueues a request and blocks until it has been dispatched and
// resolved. Requests are serviced strictly in submission order. Once
// submitted, a request is serviced or permanently fails; the request's
// own context still bounds its transport call.
func (s *Scheduler) Submit(ctx context.Context, spec RequestSpec) (json.RawMessage, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	pending := &pendingRequest{
		ctx:  ctx,
		spec: spec,
		done: make(chan outcome, 1),
	}

	s.mu.Lock()
	s.queue = append(s.queue, pending)
	start := !s.processing
	if start {
		s.processing = true
	}
	s.mu.Unlock()

	if start {
		go s.drain()
	}

	result := <-pending.done
	return result.body, result.err
}

// drain services the queue until empty. Exactly one drain goroutine is
// alive at a time: Submit only starts one when processing is false.
func (s *Scheduler) drain() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.processing = false
			s.mu.Unlock()
			return
		}
		head := s.queue[0]
		s.queue = s.queue[1:]
		metrics.SetQueueDepth(len(s.queue))
		s.mu.Unlock()

		s.awaitAdmission(head.ctx)

		metrics.RecordDispatch()
		body, err := s.transport.Execute(head.ctx, head.spec.URL)
		head.done <- outcome{body: body, err: err}

		s.mu.Lock()
		remaining := len(s.queue)
		s.mu.Unlock()
		if remaining > 0 {
			s.cfg.Sleep(context.Background(), s.cfg.InterRequestDelay)
		}
	}
}

// awaitAdmission blocks until the dual-window budget admits one more
// dispatch, then records it against both windows.
func (s *Scheduler) awaitAdmission(ctx context.Context) {
	now := s.cfg.Clock()

	// Minute boundary crossed: fresh minute window.
	if now.After(s.minuteBoundary) {
		s.minuteCount = 0
		s.minuteBoundary = now.Add(time.Minute)
	}

	if elapsed := now.Sub(s.lastDispatch); !s.lastDispatch.IsZero() && elapsed < time.Second {
		if s.secondCount >= s.cfg.PerSecondLimit {
			s.cfg.Sleep(ctx, time.Second-elapsed)
			s.secondCount = 0
		}
	} else {
		// A full second has passed since the last dispatch.
		s.secondCount = 0
	}

	if s.minuteCount >= s.cfg.PerMinuteLimit {
		now = s.cfg.Clock()
		if wait := s.minuteBoundary.Sub(now); wait > 0 {
			s.cfg.Sleep(ctx, wait)
		}
		s.minuteCount = 0
		s.minuteBoundary = s.cfg.Clock().Add(time.Minute)
	}

	s.secondCount++
	s.minuteCount++
	s.lastDispatch = s.cfg.Clock()
}
