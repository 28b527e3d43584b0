package client

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultAlertTTL is how long an alert stays before self-removal.
const DefaultAlertTTL = 3 * time.Second

// Store serializes action dispatches and notifies subscribers with state
// snapshots. All mutation goes through pure reducers.
type Store struct {
	mu       sync.Mutex
	state    State
	subs     []chan State
	alertTTL time.Duration
}

func NewStore() *Store {
	return &Store{
		state: State{
			Auth:    AuthState{Loading: true},
			Profile: ProfileState{},
			Posts:   PostState{},
		},
		alertTTL: DefaultAlertTTL,
	}
}

// SetAlertTTL overrides the alert lifetime (tests use a short one).
func (s *Store) SetAlertTTL(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertTTL = ttl
}

// GetState returns the current state snapshot. Reducers copy on write, so
// the snapshot is safe to read without further locking.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the action and notifies subscribers. Slow subscribers
// miss snapshots rather than blocking dispatch.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = reduce(s.state, action)
	snapshot := s.state
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Subscribe returns a channel receiving state snapshots after every
// dispatch.
func (s *Store) Subscribe() <-chan State {
	ch := make(chan State, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// SetAlert inserts an alert with a generated id and schedules its removal
// after the configured delay. The timer is fire-and-forget: if the alert
// was already cleared the late removal filters out nothing.
func (s *Store) SetAlert(msg string, severity AlertSeverity) string {
	s.mu.Lock()
	ttl := s.alertTTL
	s.mu.Unlock()

	id := uuid.NewString()
	s.Dispatch(alertSet{alert: Alert{ID: id, Message: msg, Severity: severity}})

	time.AfterFunc(ttl, func() {
		s.Dispatch(alertRemoved{id: id})
	})
	return id
}
