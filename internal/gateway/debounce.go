package gateway

import (
	"sync"
	"time"
)

// DefaultDebounceInterval is how long the debouncer waits for mutations to
// settle before flushing a snapshot.
const DefaultDebounceInterval = 500 * time.Millisecond

// Debouncer coalesces rapid snapshot writes. Each Schedule call replaces
// any pending snapshot and restarts the inactivity timer, so a burst of
// mutations settles into a single write. Close flushes whatever is pending.
type Debouncer struct {
	interval time.Duration
	flush    func(Snapshot)

	mu      sync.Mutex
	timer   *time.Timer
	pending *Snapshot
	closed  bool
}

// NewDebouncer creates a debouncer that calls flush after interval of
// inactivity. A non-positive interval falls back to the default.
func NewDebouncer(interval time.Duration, flush func(Snapshot)) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounceInterval
	}
	return &Debouncer{interval: interval, flush: flush}
}

// Schedule records a snapshot to be flushed once mutations settle. A newer
// snapshot supersedes a pending one; they are not merged.
func (d *Debouncer) Schedule(snapshot Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.pending = &snapshot

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
}

// Flush immediately writes any pending snapshot and cancels the timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	if pending != nil {
		d.flush(*pending)
	}
}

// Close performs a final guaranteed flush and rejects further schedules.
func (d *Debouncer) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.Flush()
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()

	if pending != nil {
		d.flush(*pending)
	}
}
