package session

import (
	"errors"
	"sync"
	"time"

	"pfep-analyzer/core/analysis"

	"github.com/google/uuid"
)

// ErrLocked is returned when a write targets a locked dataset.
var ErrLocked = errors.New("dataset is locked")

// ErrNotLoaded is returned when an operation needs a dataset that has not
// been loaded yet.
var ErrNotLoaded = errors.New("dataset is not loaded")

// Kind names one of the two session datasets.
type Kind string

const (
	KindReference Kind = "pfep"
	KindInventory Kind = "inventory"
)

// DatasetInfo describes a loaded dataset for status reporting.
type DatasetInfo struct {
	ID       uuid.UUID `json:"id"`
	Kind     Kind      `json:"kind"`
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	Dropped  int       `json:"dropped_rows"`
	Locked   bool      `json:"locked"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Session is the mutable working set for one analysis session.
type Session struct {
	mu sync.RWMutex

	reference     []analysis.ReferenceItem
	referenceInfo *DatasetInfo
	inventory     []analysis.InventoryItem
	inventoryInfo *DatasetInfo

	tolerance float64
}

// New creates an empty session with the default tolerance.
func New() *Session {
	return &Session{tolerance: analysis.DefaultTolerance}
}

// SetReference replaces the reference dataset wholesale. It fails with
// ErrLocked while the dataset is locked.
func (s *Session) SetReference(items []analysis.ReferenceItem, source string, dropped int) (DatasetInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.referenceInfo != nil && s.referenceInfo.Locked {
		return DatasetInfo{}, ErrLocked
	}

	s.reference = items
	s.referenceInfo = &DatasetInfo{
		ID:       uuid.New(),
		Kind:     KindReference,
		Source:   source,
		Rows:     len(items),
		Dropped:  dropped,
		LoadedAt: time.Now().UTC(),
	}
	return *s.referenceInfo, nil
}

// SetInventory replaces the inventory dataset wholesale. It fails with
// ErrLocked while the dataset is locked.
func (s *Session) SetInventory(items []analysis.InventoryItem, source string, dropped int) (DatasetInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inventoryInfo != nil && s.inventoryInfo.Locked {
		return DatasetInfo{}, ErrLocked
	}

	s.inventory = items
	s.inventoryInfo = &DatasetInfo{
		ID:       uuid.New(),
		Kind:     KindInventory,
		Source:   source,
		Rows:     len(items),
		Dropped:  dropped,
		LoadedAt: time.Now().UTC(),
	}
	return *s.inventoryInfo, nil
}

// SetLock flips the advisory lock flag on one dataset. Locking a dataset that
// has not been loaded fails with ErrNotLoaded.
func (s *Session) SetLock(kind Kind, locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := s.info(kind)
	if info == nil {
		return ErrNotLoaded
	}
	info.Locked = locked
	return nil
}

func (s *Session) info(kind Kind) *DatasetInfo {
	if kind == KindReference {
		return s.referenceInfo
	}
	return s.inventoryInfo
}

// SetTolerance stores the session's tolerance after validating it against the
// allowed interface set.
func (s *Session) SetTolerance(tolerance float64) error {
	if err := analysis.ValidateTolerance(tolerance); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tolerance = tolerance
	return nil
}

// Tolerance returns the session's current tolerance.
func (s *Session) Tolerance() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tolerance
}

// Snapshot returns copies of both datasets for a pipeline run. The engine
// never reads session state directly, so a concurrent re-upload cannot
// corrupt a run in flight.
func (s *Session) Snapshot() (reference []analysis.ReferenceItem, inventory []analysis.InventoryItem) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reference = make([]analysis.ReferenceItem, len(s.reference))
	copy(reference, s.reference)
	inventory = make([]analysis.InventoryItem, len(s.inventory))
	copy(inventory, s.inventory)
	return reference, inventory
}

// Status reports both datasets' metadata. Nil entries mean "not loaded".
func (s *Session) Status() (reference, inventory *DatasetInfo) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.referenceInfo != nil {
		r := *s.referenceInfo
		reference = &r
	}
	if s.inventoryInfo != nil {
		i := *s.inventoryInfo
		inventory = &i
	}
	return reference, inventory
}

// Loaded reports whether both datasets are present.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.referenceInfo != nil && s.inventoryInfo != nil
}
