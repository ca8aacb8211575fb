package memcache

import (
	"sync"
	"time"
)

// DeliveryStore remembers webhook delivery ids for a while so retried deliveries
// can be acknowledged without being applied twice.
type DeliveryStore interface {
	Remember(deliveryID string, ttl time.Duration)

	// Seen reports whether deliveryID was remembered and has not expired.
	Seen(deliveryID string) bool
}

type Deliveries struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewDeliveries() *Deliveries {
	return &Deliveries{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *Deliveries) Remember(deliveryID string, ttl time.Duration) {
	if deliveryID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	// sweep on write; the map only ever holds one TTL window of ids
	for id, expiresAt := range s.data {
		if now.After(expiresAt) {
			delete(s.data, id)
		}
	}
	s.data[deliveryID] = now.Add(ttl)
}

func (s *Deliveries) Seen(deliveryID string) bool {
	if deliveryID == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	expiresAt, ok := s.data[deliveryID]
	return ok && !s.now().After(expiresAt)
}

func (s *Deliveries) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
