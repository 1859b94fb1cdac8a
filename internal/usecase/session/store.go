package session

import (
	"time"

	"github.com/futig/fitplan-backend/internal/config"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Session owns one request state machine.
type Session struct {
	ID        string
	CreatedAt time.Time
	Machine   *Machine
}

// Store keeps sessions in memory and expires them after a period of inactivity.
// Expired or deleted sessions have their in-flight work cancelled.
type Store struct {
	cache *cache.Cache
}

func NewStore(cfg config.SessionConfig, logger *zap.Logger) *Store {
	c := cache.New(cfg.TTL, cfg.CleanupInterval)
	c.OnEvicted(func(id string, v any) {
		if s, ok := v.(*Session); ok {
			s.Machine.Abandon()
			logger.Debug("session evicted", zap.String("session_id", id))
		}
	})
	return &Store{cache: c}
}

func (s *Store) Put(session *Session) {
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
}

// Get returns the session and extends its lifetime. A session evicted in
// between is reported missing rather than stored again.
func (s *Store) Get(id string) (*Session, bool) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	session := v.(*Session)
	if err := s.cache.Replace(id, session, cache.DefaultExpiration); err != nil {
		return nil, false
	}
	return session, true
}

func (s *Store) Delete(id string) bool {
	if _, ok := s.cache.Get(id); !ok {
		return false
	}
	s.cache.Delete(id)
	return true
}

func (s *Store) Len() int {
	return s.cache.ItemCount()
}

// Close drops every session, abandoning in-flight requests.
func (s *Store) Close() {
	for id := range s.cache.Items() {
		s.cache.Delete(id)
	}
}
