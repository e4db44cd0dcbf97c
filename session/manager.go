package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager tracks live sessions by identifier.
type Manager struct {
	registry Registry
	log      zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*GameSession
}

func NewManager(registry Registry, log zerolog.Logger) *Manager {
	return &Manager{
		registry: registry,
		log:      log,
		sessions: make(map[string]*GameSession),
	}
}

func (m *Manager) Create(cfg Config) (*GameSession, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	s, err := newGameSession(id, cfg, m.registry, m.log.With().Str("session", id).Logger())
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.log.Info().Str("session", id).Str("mode", string(cfg.Mode)).Msg("session created")
	return s, nil
}

func (m *Manager) Get(id string) (*GameSession, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

func (m *Manager) Delete(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func newSessionID() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf[:]), nil
}
