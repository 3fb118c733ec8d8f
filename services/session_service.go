package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdemaers/skb-voedingsdagboek/models"
)

// sessionState is the per-session mutable state: the pending food elements of
// the meal being composed, and the player id to pre-select on the next render.
type sessionState struct {
	pending  []models.FoodItem
	playerID string
	lastSeen time.Time
}

// SessionService keeps per-session state in memory. Sessions die with the
// process; nothing here is persisted or shared between sessions.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
	idleTTL  time.Duration
	now      func() time.Time
}

func NewSessionService(idleTTL time.Duration) *SessionService {
	return &SessionService{
		sessions: make(map[string]*sessionState),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Touch looks up the session for id, creating it when unknown. An empty id
// gets a freshly minted one. Stale sessions are evicted on the way through.
func (s *SessionService) Touch(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, st := range s.sessions {
		if now.Sub(st.lastSeen) > s.idleTTL {
			delete(s.sessions, k)
		}
	}

	if id == "" {
		id = uuid.NewString()
	}
	st, ok := s.sessions[id]
	if !ok {
		st = &sessionState{}
		s.sessions[id] = st
	}
	st.lastSeen = now
	return id
}

// PendingItems returns a copy of the session's pending list.
func (s *SessionService) PendingItems(id string) []models.FoodItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		return nil
	}
	out := make([]models.FoodItem, len(st.pending))
	copy(out, st.pending)
	return out
}

// AppendItem adds a validated item to the session's pending list.
func (s *SessionService) AppendItem(id string, item models.FoodItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.sessions[id]
	if !ok {
		st = &sessionState{lastSeen: s.now()}
		s.sessions[id] = st
	}
	st.pending = append(st.pending, item)
}

// FinishMeal clears the pending list and remembers the submitted player id.
// Called exactly once per successful meal submission.
func (s *SessionService) FinishMeal(id, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.sessions[id]; ok {
		st.pending = nil
		st.playerID = playerID
	}
}

// RememberPlayer stores the player id to pre-select on the next form render.
func (s *SessionService) RememberPlayer(id, playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.sessions[id]; ok {
		st.playerID = playerID
	}
}

// RememberedPlayer returns the stored player id, or "" when none was set.
func (s *SessionService) RememberedPlayer(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st, ok := s.sessions[id]; ok {
		return st.playerID
	}
	return ""
}
