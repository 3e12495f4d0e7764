package links

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore keeps link records in memory for demos and tests.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]LinkRecord
}

var _ LinkStore = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory LinkStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]LinkRecord),
	}
}

// Save stores records by ID, falling back to URL when ID is empty.
func (s *MemoryStore) Save(ctx context.Context, records []LinkRecord) error {
	if s == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.records == nil {
		s.records = make(map[string]LinkRecord)
	}
	for _, record := range records {
		id := record.ID
		if id == "" {
			id = record.URL
		}
		if id == "" {
			continue
		}
		record.Metadata = cloneMetadata(record.Metadata)
		s.records[id] = record
	}
	return nil
}

// Records returns a snapshot of stored records ordered by creation time.
func (s *MemoryStore) Records() []LinkRecord {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LinkRecord, 0, len(s.records))
	for _, record := range s.records {
		record.Metadata = cloneMetadata(record.Metadata)
		out = append(out, record)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Key < out[j].Key
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func cloneMetadata(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
