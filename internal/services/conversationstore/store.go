package conversationstore

import (
	"sync"
	"time"

	"github.com/DIMO-Network/insurance-chatbot/internal/conversation"
	"github.com/patrickmn/go-cache"
)

// entry holds one sender's fields. Its mutex serialises updates for that sender only.
type entry struct {
	mu     sync.Mutex
	fields conversation.Fields
}

// Store keeps claim intake fields per sender in memory.
// A conversation that sees no activity for the configured TTL is dropped.
type Store struct {
	// mu guards entry creation and expiry refresh so a stale entry never replaces a newer one.
	mu    sync.Mutex
	cache *cache.Cache
}

// New creates a store whose conversations expire after ttl of inactivity.
func New(ttl time.Duration) *Store {
	return &Store{
		cache: cache.New(ttl, ttl/2),
	}
}

// OnExpired registers a callback run when a conversation is evicted.
func (s *Store) OnExpired(fn func(senderID string)) {
	s.cache.OnEvicted(func(key string, _ any) {
		fn(key)
	})
}

// Get returns a copy of the sender's fields, or zero Fields for an unknown sender.
func (s *Store) Get(senderID string) conversation.Fields {
	v, found := s.cache.Get(senderID)
	if !found {
		return conversation.Fields{}
	}
	e := v.(*entry)
	s.touch(senderID, e)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fields
}

// Update applies mutate to the sender's fields under the sender's lock.
func (s *Store) Update(senderID string, mutate func(*conversation.Fields)) {
	e := s.entry(senderID)
	e.mu.Lock()
	mutate(&e.fields)
	e.mu.Unlock()
	s.touch(senderID, e)
}

// Len returns the number of live conversations.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}

func (s *Store) entry(senderID string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, found := s.cache.Get(senderID); found {
		return v.(*entry)
	}
	e := &entry{}
	s.cache.Set(senderID, e, cache.DefaultExpiration)
	return e
}

// touch restarts the expiry clock of e while it is still the sender's live entry.
// An entry that expired and was replaced is left alone.
func (s *Store) touch(senderID string, e *entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, found := s.cache.Get(senderID); found && v.(*entry) == e {
		s.cache.Set(senderID, e, cache.DefaultExpiration)
	}
}
