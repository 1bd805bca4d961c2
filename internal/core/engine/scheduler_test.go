package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manual clock whose Sleep advances time instantly and
// records every requested duration.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

// recordingTransport records request order and serves scripted responses.
type recordingTransport struct {
	mu    sync.Mutex
	calls []string
	errs  map[string]error

	// gate, when set, blocks the first Execute until released.
	gate    chan struct{}
	gateHit chan struct{}

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (t *recordingTransport) Execute(ctx context.Context, url string) (json.RawMessage, error) {
	cur := t.inFlight.Add(1)
	defer t.inFlight.Add(-1)
	for {
		max := t.maxInFlight.Load()
		if cur <= max || t.maxInFlight.CompareAndSwap(max, cur) {
			break
		}
	}

	t.mu.Lock()
	first := len(t.calls) == 0
	t.calls = append(t.calls, url)
	t.mu.Unlock()

	if first && t.gate != nil {
		close(t.gateHit)
		<-t.gate
	}

	if t.errs != nil {
		if err, ok := t.errs[url]; ok {
			return nil, err
		}
	}
	return json.RawMessage(fmt.Sprintf(`{"url":%q}`, url)), nil
}

func (t *recordingTransport) Calls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.calls))
	copy(out, t.calls)
	return out
}

func newTestScheduler(transport Executor, clock *fakeClock, cfg SchedulerConfig) *Scheduler {
	cfg.Clock = clock.Now
	cfg.Sleep = clock.Sleep
	return NewScheduler(transport, cfg)
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(&recordingTransport{}, SchedulerConfig{})

	perSecond, perMinute := s.Limits()
	assert.Equal(t, DefaultPerSecondLimit, perSecond)
	assert.Equal(t, DefaultPerMinuteLimit, perMinute)
	assert.Equal(t, 0, s.QueueDepth())
}

func TestSchedulerServicesInOrder(t *testing.T) {
	transport := &recordingTransport{
		gate:    make(chan struct{}),
		gateHit: make(chan struct{}),
	}
	clock := newFakeClock()
	s := newTestScheduler(transport, clock, SchedulerConfig{InterRequestDelay: time.Millisecond})

	var wg sync.WaitGroup
	results := make([]error, 4)

	// First request blocks inside the transport, pinning the drain loop
	// while the rest queue up behind it.
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, results[0] = s.Submit(context.Background(), RequestSpec{URL: "req-0"})
	}()
	<-transport.gateHit

	for i := 1; i < 4; i++ {
		i := i
		url := fmt.Sprintf("req-%d", i)
		// Wait for the previous submission to land in the queue so
		// arrival order is deterministic.
		for s.QueueDepth() < i-1 {
			time.Sleep(time.Millisecond)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, results[i] = s.Submit(context.Background(), RequestSpec{URL: url})
		}()
	}

	for s.QueueDepth() < 3 {
		time.Sleep(time.Millisecond)
	}
	close(transport.gate)
	wg.Wait()

	for i, err := range results {
		require.NoError(t, err, "request %d", i)
	}
	assert.Equal(t, []string{"req-0", "req-1", "req-2", "req-3"}, transport.Calls())
}

func TestSchedulerNeverOverlapsRequests(t *testing.T) {
	transport := &recordingTransport{}
	clock := newFakeClock()
	s := newTestScheduler(transport, clock, SchedulerConfig{InterRequestDelay: time.Millisecond})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		url := fmt.Sprintf("req-%d", i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Submit(context.Background(), RequestSpec{URL: url})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, transport.Calls(), 20)
	assert.Equal(t, int32(1), transport.maxInFlight.Load(), "transport calls must be strictly serial")
	assert.Equal(t, 0, s.QueueDepth())
}

func TestSchedulerEnforcesPerSecondLimit(t *testing.T) {
	transport := &recordingTransport{}
	clock := newFakeClock()
	s := newTestScheduler(transport, clock, SchedulerConfig{
		PerSecondLimit:    2,
		PerMinuteLimit:    100,
		InterRequestDelay: time.Millisecond,
	})

	// Sequential submissions within the same fake second.
	for i := 0; i < 3; i++ {
		_, err := s.Submit(context.Background(), RequestSpec{URL: fmt.Sprintf("req-%d", i)})
		require.NoError(t, err)
	}

	// The third dispatch exhausts the 2/s budget and must wait out the
	// remainder of the window.
	var waited bool
	for _, d := range clock.Sleeps() {
		if d >= 500*time.Millisecond {
			waited = true
		}
	}
	assert.True(t, waited, "expected a window-remainder sleep, got %v", clock.Sleeps())
	assert.Len(t, transport.Calls(), 3)
}

func TestSchedulerEnforcesPerMinuteLimit(t *testing.T) {
	transport := &recordingTransport{}
	clock := newFakeClock()
	s := newTestScheduler(transport, clock, SchedulerConfig{
		PerSecondLimit:    100,
		PerMinuteLimit:    3,
		InterRequestDelay: time.Millisecond,
	})

	for i := 0; i < 4; i++ {
		_, err := s.Submit(context.Background(), RequestSpec{URL: fmt.Sprintf("req-%d", i)})
		require.NoError(t, err)
	}

	// The fourth dispatch must sleep until the minute boundary.
	var boundaryWait bool
	for _, d := range clock.Sleeps() {
		if d >= 30*time.Second {
			boundaryWait = true
		}
	}
	assert.True(t, boundaryWait, "expected a minute-boundary sleep, got %v", clock.Sleeps())
	assert.Len(t, transport.Calls(), 4)
}

func TestSchedulerAppliesInterRequestDelay(t *testing.T) {
	transport := &recordingTransport{
		gate:    make(chan struct{}),
		gateHit: make(chan struct{}),
	}
	clock := newFakeClock()
	delay := 50 * time.Millisecond
	s := newTestScheduler(transport, clock, SchedulerConfig{InterRequestDelay: delay})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := s.Submit(context.Background(), RequestSpec{URL: "first"})
		assert.NoError(t, err)
	}()
	<-transport.gateHit
	go func() {
		defer wg.Done()
		_, err := s.Submit(context.Background(), RequestSpec{URL: "second"})
		assert.NoError(t, err)
	}()

	for s.QueueDepth() < 1 {
		time.Sleep(time.Millisecond)
	}
	close(transport.gate)
	wg.Wait()

	assert.Contains(t, clock.Sleeps(), delay, "expected the inter-request delay between queued dispatches")
}

func TestSchedulerIsolatesFailures(t *testing.T) {
	failure := fmt.Errorf("upstream exploded")
	transport := &recordingTransport{errs: map[string]error{"bad": failure}}
	clock := newFakeClock()
	s := newTestScheduler(transport, clock, SchedulerConfig{InterRequestDelay: time.Millisecond})

	_, err := s.Submit(context.Background(), RequestSpec{URL: "bad"})
	require.ErrorIs(t, err, failure)

	body, err := s.Submit(context.Background(), RequestSpec{URL: "good"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"good"}`, string(body))

	assert.Equal(t, []string{"bad", "good"}, transport.Calls())
}

func TestSchedulerNilContext(t *testing.T) {
	transport := &recordingTransport{}
	clock := newFakeClock()
	s := newTestScheduler(transport, clock, SchedulerConfig{InterRequestDelay: time.Millisecond})

	body, err := s.Submit(nil, RequestSpec{URL: "req"}) //nolint:staticcheck
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
