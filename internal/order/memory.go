package order

import (
	"encoding/json"

	"github.com/autodinar/autodinar/internal/kv"
)

// MemoryStore holds all order state in memory.
type MemoryStore struct {
	Orders *kv.Store[Order]
	Clock  *kv.Clock
}

// NewMemoryStore creates a MemoryStore with empty state.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Orders: kv.New[Order]("ord"),
		Clock:  kv.NewClock(),
	}
}

// stateSnapshot is the JSON-serializable state for admin endpoints and
// seed files.
type stateSnapshot struct {
	Orders map[string]Order `json:"orders"`
}

// Snapshot returns the full state as a JSON-serializable value.
func (s *MemoryStore) Snapshot() any {
	return stateSnapshot{Orders: s.Orders.Snapshot()}
}

// LoadState replaces the full state from a JSON body.
func (s *MemoryStore) LoadState(data []byte) error {
	var snap stateSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	if snap.Orders != nil {
		s.Orders.LoadSnapshot(snap.Orders)
	}
	return nil
}

// Reset clears all state.
func (s *MemoryStore) Reset() {
	s.Orders.Reset()
	s.Clock.Reset()
}
