package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-game-keeper/models"
)

// partitionKey addresses one (domain, owner) partition.
type partitionKey struct {
	domain  models.Domain
	ownerID string
}

type recordKey struct {
	domain  models.Domain
	ownerID string
	id      string
}

// memoryStorage is an in-process [LocalStorage]. It backs ephemeral local
// runs and tests.
type memoryStorage struct {
	mu      sync.RWMutex
	records map[partitionKey]map[string]models.Record
	cursors map[partitionKey]time.Time
	now     func() time.Time
}

// NewMemoryStorage returns an empty in-memory [LocalStorage]. now stamps
// soft deletes; nil means time.Now.
func NewMemoryStorage(now func() time.Time) LocalStorage {
	if now == nil {
		now = time.Now
	}
	return &memoryStorage{
		records: make(map[partitionKey]map[string]models.Record),
		cursors: make(map[partitionKey]time.Time),
		now:     now,
	}
}

func (m *memoryStorage) Get(_ context.Context, domain models.Domain, ownerID, id string) (*models.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.lookup(recordKey{domain: domain, ownerID: ownerID, id: id})
	if !ok {
		return nil, nil
	}

	rec = cloneRecord(rec)
	return &rec, nil
}

func (m *memoryStorage) lookup(key recordKey) (models.Record, bool) {
	rec, ok := m.records[partitionKey{domain: key.domain, ownerID: key.ownerID}][key.id]
	return rec, ok
}

func (m *memoryStorage) store(key recordKey, rec models.Record) {
	pk := partitionKey{domain: key.domain, ownerID: key.ownerID}
	partition, ok := m.records[pk]
	if !ok {
		partition = make(map[string]models.Record)
		m.records[pk] = partition
	}
	partition[key.id] = rec
}

func (m *memoryStorage) ListPending(_ context.Context, domain models.Domain, ownerID string) ([]models.Record, error) {
	return m.filter(domain, ownerID, func(s models.SyncStatus) bool { return s.IsPending() }), nil
}

func (m *memoryStorage) List(_ context.Context, domain models.Domain, ownerID string) ([]models.Record, error) {
	return m.filter(domain, ownerID, func(s models.SyncStatus) bool { return s != models.StatusDeletedPending }), nil
}

func (m *memoryStorage) filter(domain models.Domain, ownerID string, keep func(models.SyncStatus) bool) []models.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	partition := m.records[partitionKey{domain: domain, ownerID: ownerID}]
	out := make([]models.Record, 0, len(partition))
	for _, rec := range partition {
		if keep(rec.SyncStatus) {
			out = append(out, cloneRecord(rec))
		}
	}

	slices.SortFunc(out, func(a, b models.Record) int {
		if c := a.UpdatedAtLocal.Compare(b.UpdatedAtLocal); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	return out
}

func (m *memoryStorage) Upsert(_ context.Context, domain models.Domain, record models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record.Domain = domain
	m.store(recordKey{domain: domain, ownerID: record.OwnerID, id: record.ID}, cloneRecord(record))
	return nil
}

func (m *memoryStorage) MarkClean(_ context.Context, domain models.Domain, ownerID, id string, remoteTimestamp time.Time, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{domain: domain, ownerID: ownerID, id: id}
	rec, ok := m.lookup(key)
	if !ok {
		return nil
	}

	remote := remoteTimestamp
	rec.UpdatedAtRemote = &remote
	rec.Version = version
	rec.SyncStatus = models.StatusClean
	m.store(key, rec)
	return nil
}

func (m *memoryStorage) SoftDelete(_ context.Context, domain models.Domain, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey{domain: domain, ownerID: ownerID, id: id}
	rec, ok := m.lookup(key)
	if !ok {
		return nil
	}

	now := m.now()
	if !now.After(rec.UpdatedAtLocal) {
		now = rec.UpdatedAtLocal.Add(time.Nanosecond)
	}
	rec.UpdatedAtLocal = now
	rec.SyncStatus = models.StatusDeletedPending
	m.store(key, rec)
	return nil
}

func (m *memoryStorage) Purge(_ context.Context, domain models.Domain, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records[partitionKey{domain: domain, ownerID: ownerID}], id)
	return nil
}

func (m *memoryStorage) CountPending(_ context.Context, domain models.Domain, ownerID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, rec := range m.records[partitionKey{domain: domain, ownerID: ownerID}] {
		if rec.SyncStatus.IsPending() {
			count++
		}
	}
	return count, nil
}

func (m *memoryStorage) GetCursor(_ context.Context, domain models.Domain, ownerID string) (*time.Time, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cursor, ok := m.cursors[partitionKey{domain: domain, ownerID: ownerID}]
	if !ok {
		return nil, nil
	}
	return &cursor, nil
}

func (m *memoryStorage) SetCursor(_ context.Context, domain models.Domain, ownerID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := partitionKey{domain: domain, ownerID: ownerID}
	if current, ok := m.cursors[key]; ok && !at.After(current) {
		return nil
	}
	m.cursors[key] = at
	return nil
}

func cloneRecord(rec models.Record) models.Record {
	if rec.Payload != nil {
		rec.Payload = slices.Clone(rec.Payload)
	}
	if rec.UpdatedAtRemote != nil {
		remote := *rec.UpdatedAtRemote
		rec.UpdatedAtRemote = &remote
	}
	return rec
}
