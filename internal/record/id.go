package record

import (
	"sync"
	"time"
)

// IDSource hands out time-derived ids that never repeat: each id is the current Unix
// millisecond, or one more than the previous id when the clock has not moved past it.
type IDSource struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewIDSource() *IDSource {
	return &IDSource{now: time.Now}
}

// NewIDSourceWithClock is used by tests that need a frozen or rewinding clock.
func NewIDSourceWithClock(now func() time.Time) *IDSource {
	return &IDSource{now: now}
}

// Observe raises the floor so later ids are greater than id. Stores call it with every
// id they load so reloaded collections keep the uniqueness guarantee.
func (s *IDSource) Observe(id int64) {
	s.mu.Lock()
	if id > s.last {
		s.last = id
	}
	s.mu.Unlock()
}

func (s *IDSource) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
