package server

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/playperu/jeopardy/internal/controller"
	"github.com/playperu/jeopardy/internal/jeopardy"
)

var ErrTooManySessions = errors.New("too many sessions")

// Session is one running game and its host credentials.
type Session struct {
	ID         string
	Controller *controller.Controller
	CreatedAt  time.Time

	hostKeyHash []byte
}

// SessionSummary is the list form of a Session.
type SessionSummary struct {
	ID        string        `json:"id"`
	Mode      jeopardy.Mode `json:"mode"`
	Teams     int           `json:"teams"`
	CreatedAt string        `json:"createdAt"`
}

// Registry owns every live session. Each session's controller publishes its
// events to the broker under the session ID.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	opts   jeopardy.Options
	max    int
	broker *Broker
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger, broker *Broker, opts jeopardy.Options, maxSessions int) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		opts:     opts,
		max:      maxSessions,
		broker:   broker,
		logger:   logger,
	}
}

// Create starts a new session in config mode and returns it together with
// the host key. Only the bcrypt hash of the key is kept.
func (r *Registry) Create() (*Session, string, error) {
	hostKey, hash, err := newHostKey()
	if err != nil {
		return nil, "", err
	}

	id := uuid.NewString()
	logger := r.logger.With("session", id)
	sess := &Session{
		ID: id,
		Controller: controller.New(jeopardy.NewGame(r.opts),
			controller.WithLogger(logger),
			controller.WithHandler(func(e controller.Event) { r.broker.Publish(id, e) }),
		),
		CreatedAt:   time.Now().UTC(),
		hostKeyHash: hash,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sessions) >= r.max {
		return nil, "", ErrTooManySessions
	}
	r.sessions[id] = sess

	logger.Info("session created")
	return sess, hostKey, nil
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// List returns the sessions ordered by creation time.
func (r *Registry) List() []SessionSummary {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	out := make([]SessionSummary, len(sessions))
	for i, s := range sessions {
		out[i] = SessionSummary{
			ID:        s.ID,
			Mode:      s.Controller.Mode(),
			Teams:     len(s.Controller.Teams()),
			CreatedAt: s.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// Delete removes the session and disconnects its event subscribers.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	_, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if ok {
		r.broker.Close(id)
		r.logger.Info("session closed", "session", id)
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) Capacity() int { return r.max }
