package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"eatsfront/storefront/internal/cart"
	"eatsfront/storefront/internal/search"
	"eatsfront/storefront/internal/storage"

	"github.com/sirupsen/logrus"
)

// Session is the per-browser state the storefront keeps: the search
// controller and the cart controller. The cart itself lives in the scratch
// store; the controller is reused across restaurants.
type Session struct {
	ID     string
	Search *search.Controller

	cartMu sync.Mutex
	cart   *cart.Controller

	userCreated atomic.Bool
	lastSeen    atomic.Int64
}

// WithCart runs fn with exclusive use of the session's cart, hydrated for
// restaurantID.
func (s *Session) WithCart(ctx context.Context, restaurantID string, fn func(c *cart.Controller) error) error {
	s.cartMu.Lock()
	defer s.cartMu.Unlock()
	if err := s.cart.Initialize(ctx, restaurantID); err != nil {
		return err
	}
	return fn(s.cart)
}

type Sessions struct {
	searcher search.Searcher
	store    storage.ScratchStore
	log      logrus.FieldLogger
	idleTTL  time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessions(searcher search.Searcher, store storage.ScratchStore, idleTTL time.Duration, log logrus.FieldLogger) *Sessions {
	return &Sessions{
		searcher: searcher,
		store:    store,
		log:      log,
		idleTTL:  idleTTL,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first use.
func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		log := s.log.WithField("session", id)
		session = &Session{
			ID:     id,
			Search: search.NewController(s.searcher, log),
			cart:   cart.NewController(storage.ForSession(s.store, id), log),
		}
		s.sessions[id] = session
	}
	session.lastSeen.Store(s.now().UnixNano())
	return session
}

// Peek returns the session without creating or touching it.
func (s *Sessions) Peek(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	return session, ok
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep forgets sessions idle for longer than the idle TTL. Their carts stay
// in the scratch store and come back when the browser returns.
func (s *Sessions) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, session := range s.sessions {
		if session.lastSeen.Load() < cutoff {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
