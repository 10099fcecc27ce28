package gateway

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/models"
)

// flushRecorder collects flushed snapshots behind a mutex so the timer
// goroutine and the test can both touch it.
type flushRecorder struct {
	mu      sync.Mutex
	flushed []Snapshot
}

func (r *flushRecorder) record(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushed = append(r.flushed, s)
}

func (r *flushRecorder) snapshots() []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Snapshot, len(r.flushed))
	copy(out, r.flushed)
	return out
}

func (r *flushRecorder) waitForFlushes(t *testing.T, n int) []Snapshot {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := r.snapshots(); len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d flushes, got %d", n, len(r.snapshots()))
	return nil
}

func ledgerOfSize(n int) []models.Transaction {
	ledger := make([]models.Transaction, n)
	return ledger
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	recorder := &flushRecorder{}
	d := NewDebouncer(30*time.Millisecond, recorder.record)

	d.Schedule(Snapshot{Transactions: ledgerOfSize(1)})
	d.Schedule(Snapshot{Transactions: ledgerOfSize(2)})
	d.Schedule(Snapshot{Transactions: ledgerOfSize(3)})

	flushed := recorder.waitForFlushes(t, 1)

	require.Len(t, flushed, 1, "a burst settles into a single write")
	assert.Len(t, flushed[0].Transactions, 3, "the latest snapshot wins")
}

func TestDebouncer_FlushesAgainAfterQuiet(t *testing.T) {
	recorder := &flushRecorder{}
	d := NewDebouncer(20*time.Millisecond, recorder.record)

	d.Schedule(Snapshot{Transactions: ledgerOfSize(1)})
	recorder.waitForFlushes(t, 1)

	d.Schedule(Snapshot{Transactions: ledgerOfSize(2)})
	flushed := recorder.waitForFlushes(t, 2)

	require.Len(t, flushed, 2)
	assert.Len(t, flushed[1].Transactions, 2)
}

func TestDebouncer_FlushWritesPendingImmediately(t *testing.T) {
	recorder := &flushRecorder{}
	d := NewDebouncer(time.Hour, recorder.record)

	d.Schedule(Snapshot{DisplayMode: true})
	d.Flush()

	flushed := recorder.snapshots()
	require.Len(t, flushed, 1)
	assert.True(t, flushed[0].DisplayMode)
}

func TestDebouncer_FlushWithoutPendingIsNoOp(t *testing.T) {
	recorder := &flushRecorder{}
	d := NewDebouncer(time.Hour, recorder.record)

	d.Flush()

	assert.Empty(t, recorder.snapshots())
}

func TestDebouncer_CloseFlushesPending(t *testing.T) {
	recorder := &flushRecorder{}
	d := NewDebouncer(time.Hour, recorder.record)

	d.Schedule(Snapshot{Transactions: ledgerOfSize(4)})
	d.Close()

	flushed := recorder.snapshots()
	require.Len(t, flushed, 1, "shutdown guarantees the final state is written")
	assert.Len(t, flushed[0].Transactions, 4)
}

func TestDebouncer_RejectsScheduleAfterClose(t *testing.T) {
	recorder := &flushRecorder{}
	d := NewDebouncer(10*time.Millisecond, recorder.record)

	d.Close()
	d.Schedule(Snapshot{Transactions: ledgerOfSize(1)})
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, recorder.snapshots())
}

func TestDebouncer_DefaultsInterval(t *testing.T) {
	d := NewDebouncer(0, func(Snapshot) {})
	assert.Equal(t, DefaultDebounceInterval, d.interval)

	d = NewDebouncer(-time.Second, func(Snapshot) {})
	assert.Equal(t, DefaultDebounceInterval, d.interval)
}
