package services

import "sync"

// SessionStore maps authenticated users to their session trackers.
// Trackers are created lazily on first use and dropped on sign-out; there
// is no persistence behind them.
type SessionStore struct {
	mu       sync.RWMutex
	trackers map[uint]*Tracker
}

func NewSessionStore() *SessionStore {
	return &SessionStore{trackers: make(map[uint]*Tracker)}
}

// ForUser returns the user's tracker, creating it if needed.
func (s *SessionStore) ForUser(userID uint) *Tracker {
	s.mu.RLock()
	t := s.trackers[userID]
	s.mu.RUnlock()
	if t != nil {
		return t
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if t = s.trackers[userID]; t == nil {
		t = NewTracker()
		s.trackers[userID] = t
	}
	return t
}

// Drop discards the user's session state.
func (s *SessionStore) Drop(userID uint) {
	s.mu.Lock()
	delete(s.trackers, userID)
	s.mu.Unlock()
}
