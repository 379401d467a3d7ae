package alert

import (
	"strconv"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/logger"
)

// DefaultTimeout is how long an alert stays visible when Set is called
// without an explicit timeout.
const DefaultTimeout = 5 * time.Second

// Store owns the alert list and dispatches every change through Reduce.
// It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	alerts  []Alert
	expires map[string]time.Time
	nextID  int
	now     func() time.Time
	log     *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to compute expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		alerts:  []Alert{},
		expires: map[string]time.Time{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Set adds an alert that expires after timeout and returns it. A
// non-positive timeout uses DefaultTimeout.
func (s *Store) Set(msg, kind string, timeout time.Duration) Alert {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	s.mu.Lock()
	s.nextID++
	a := Alert{ID: strconv.Itoa(s.nextID), Msg: msg, Type: kind}
	s.alerts = Reduce(s.alerts, Action{Type: SetAlert, Alert: a})
	s.expires[a.ID] = s.now().Add(timeout)
	s.mu.Unlock()

	s.log.Debug("alert set", "id", a.ID, "type", kind, "timeout", timeout.String())
	return a
}

// Remove drops the alert with id. Removing an unknown id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	before := len(s.alerts)
	s.alerts = Reduce(s.alerts, Action{Type: RemoveAlert, ID: id})
	delete(s.expires, id)
	removed := before != len(s.alerts)
	s.mu.Unlock()

	if removed {
		s.log.Debug("alert removed", "id", id)
	}
}

// Prune removes every alert whose timeout has elapsed and returns how many
// were removed.
func (s *Store) Prune() int {
	s.mu.Lock()
	now := s.now()
	var expired []string
	for _, a := range s.alerts {
		if deadline, ok := s.expires[a.ID]; ok && !now.Before(deadline) {
			expired = append(expired, a.ID)
		}
	}
	for _, id := range expired {
		s.alerts = Reduce(s.alerts, Action{Type: RemoveAlert, ID: id})
		delete(s.expires, id)
	}
	s.mu.Unlock()

	if len(expired) > 0 {
		s.log.Debug("alerts expired", "count", len(expired))
	}
	return len(expired)
}

// Alerts returns a snapshot of the current list, oldest first.
func (s *Store) Alerts() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Alert(nil), s.alerts...)
}

// Len reports how many alerts are visible.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alerts)
}
