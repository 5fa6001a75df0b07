package stub

import (
	"sync"

	"github.com/Demma22/REMI-APP-sub000/internal/domain"
)

// RecordStorage holds the seeded user records served to the subsystem under
// test. Records are partitioned by run ID so concurrent load-test runs do
// not see each other's data.
type RecordStorage struct {
	mu      sync.RWMutex
	records map[string]map[string]domain.UserRecord // runID -> userID -> record
}

func NewRecordStorage() *RecordStorage {
	return &RecordStorage{
		records: make(map[string]map[string]domain.UserRecord),
	}
}

func (s *RecordStorage) Reset(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, runID)
}

func (s *RecordStorage) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make(map[string]map[string]domain.UserRecord)
}

func (s *RecordStorage) Put(runID, userID string, record domain.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records[runID] == nil {
		s.records[runID] = make(map[string]domain.UserRecord)
	}
	s.records[runID][userID] = record
}

func (s *RecordStorage) Get(runID, userID string) (domain.UserRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[runID][userID]
	return record, ok
}

func (s *RecordStorage) Count(runID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[runID])
}
