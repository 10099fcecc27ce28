package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fintrack/internal/models"
)

// Snapshot is the local durable state: the full canonical ledger in manual
// order plus the display-mode flag. It is written as one JSON document with
// the two named entries and read once at process start to seed the store.
type Snapshot struct {
	DisplayMode  bool                 `json:"display_mode"`
	Transactions []models.Transaction `json:"transactions"`
}

// SnapshotStore persists snapshots to a single file. Writes go through a
// temp file and rename so a crash mid-write never corrupts the previous
// snapshot.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a snapshot store at the given file path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save writes the snapshot atomically.
func (s *SnapshotStore) Save(snapshot Snapshot) error {
	if snapshot.Transactions == nil {
		snapshot.Transactions = []models.Transaction{}
	}

	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot from disk. A missing file is not an error: it
// yields an empty snapshot, the state of a first run.
func (s *SnapshotStore) Load() (Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{Transactions: []models.Transaction{}}, nil
		}
		return Snapshot{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snapshot.Transactions == nil {
		snapshot.Transactions = []models.Transaction{}
	}
	return snapshot, nil
}
