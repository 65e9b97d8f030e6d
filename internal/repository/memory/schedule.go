package memory

import (
	"sync"

	"github.com/cineworks/roster-backend-go/internal/domain/schedule"
)

// scheduleStoreImpl keeps the session's schedule table in memory. Writers
// build a full updated copy and swap it in under the lock, so readers always
// see a complete table and never an intermediate state.
type scheduleStoreImpl struct {
	mu    sync.RWMutex
	table schedule.Table
}

func NewScheduleStore() schedule.TableStore {
	return &scheduleStoreImpl{table: schedule.Table{}}
}

// Load implements schedule.TableStore.
func (s *scheduleStoreImpl) Load() schedule.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

// Replace implements schedule.TableStore.
func (s *scheduleStoreImpl) Replace(t schedule.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
}
