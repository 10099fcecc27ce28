package gateway

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"fintrack/internal/models"
)

const defaultRemoteTimeout = 10 * time.Second

// Gateway mirrors ledger store mutations into two independent sinks: the
// remote expense service and the local durable snapshot. The two are not
// transactionally coupled. Remote calls are fire-and-forget: a failure is
// logged and surfaced nowhere else, and the already-applied local mutation
// is never rolled back. Snapshot writes are debounced and best-effort.
type Gateway struct {
	remote    RemoteClient
	snapshots *SnapshotStore
	debouncer *Debouncer
	logger    *slog.Logger
	timeout   time.Duration

	mu          sync.Mutex
	displayMode bool

	// pending tracks in-flight remote calls so tests can await them.
	pending sync.WaitGroup
}

// New creates a persistence gateway. The debounce interval applies to
// snapshot writes; remote calls go out immediately, in issue order, with no
// coordination of their completion order.
func New(remote RemoteClient, snapshots *SnapshotStore, debounce time.Duration, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	g := &Gateway{
		remote:    remote,
		snapshots: snapshots,
		logger:    logger,
		timeout:   defaultRemoteTimeout,
	}
	g.debouncer = NewDebouncer(debounce, g.writeSnapshot)
	return g
}

// Restore loads the local snapshot written by a previous run. Callers seed
// the ledger store with the returned transactions.
func (g *Gateway) Restore() (Snapshot, error) {
	snapshot, err := g.snapshots.Load()
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	g.displayMode = snapshot.DisplayMode
	g.mu.Unlock()
	return snapshot, nil
}

// DisplayMode reports the persisted display-mode flag.
func (g *Gateway) DisplayMode() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.displayMode
}

// SetDisplayMode updates the flag and schedules a snapshot write carrying
// the given ledger state.
func (g *Gateway) SetDisplayMode(on bool, ledger []models.Transaction) {
	g.mu.Lock()
	g.displayMode = on
	g.mu.Unlock()
	g.schedule(ledger)
}

// TransactionAdded mirrors a store add: one remote create plus a debounced
// snapshot of the new canonical order.
func (g *Gateway) TransactionAdded(tx models.Transaction, snapshot []models.Transaction) {
	g.pending.Add(1)
	go func() {
		defer g.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()
		if _, err := g.remote.Create(ctx, tx); err != nil {
			g.logger.Error("remote create failed", "transaction_id", tx.ID, "error", err)
		}
	}()
	g.schedule(snapshot)
}

// TransactionRemoved mirrors a store remove with one remote delete plus a
// debounced snapshot.
func (g *Gateway) TransactionRemoved(id uuid.UUID, snapshot []models.Transaction) {
	g.pending.Add(1)
	go func() {
		defer g.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), g.timeout)
		defer cancel()
		if err := g.remote.Delete(ctx, id.String()); err != nil {
			g.logger.Error("remote delete failed", "transaction_id", id, "error", err)
		}
	}()
	g.schedule(snapshot)
}

// LedgerReordered only touches the local snapshot: the remote service keeps
// its own authoritative date ordering and has no notion of manual order.
func (g *Gateway) LedgerReordered(snapshot []models.Transaction) {
	g.schedule(snapshot)
}

// Close flushes the pending snapshot, guaranteeing durable state on
// shutdown. In-flight remote calls are not awaited or cancelled.
func (g *Gateway) Close() {
	g.debouncer.Close()
}

// WaitRemote blocks until all issued remote calls have completed. Intended
// for tests; production callers fire and forget.
func (g *Gateway) WaitRemote() {
	g.pending.Wait()
}

func (g *Gateway) schedule(ledger []models.Transaction) {
	g.mu.Lock()
	displayMode := g.displayMode
	g.mu.Unlock()

	g.debouncer.Schedule(Snapshot{
		DisplayMode:  displayMode,
		Transactions: ledger,
	})
}

func (g *Gateway) writeSnapshot(snapshot Snapshot) {
	if err := g.snapshots.Save(snapshot); err != nil {
		g.logger.Error("snapshot write failed", "error", err)
	}
}
