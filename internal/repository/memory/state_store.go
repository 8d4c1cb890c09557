package memory

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// StateStore holds short-lived OAuth state nonces so the callback can verify
// that the login flow originated here. Entries expire after 10 minutes.
type StateStore struct {
	cache *cache.Cache
}

func NewStateStore() *StateStore {
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &StateStore{
		cache: c,
	}
}

func (s *StateStore) Save(state string) {
	s.cache.Set(state, struct{}{}, cache.DefaultExpiration)
}

// Consume returns whether the state was issued by us, and invalidates it.
// A state is only good for one callback.
func (s *StateStore) Consume(state string) bool {
	if _, found := s.cache.Get(state); !found {
		return false
	}
	s.cache.Delete(state)
	return true
}
