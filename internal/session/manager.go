package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/grabshow/storefront/internal/entity"
)

// IdentityStore persists the identity record behind a session token.
type IdentityStore interface {
	Save(ctx context.Context, token string, user *entity.User) error
	Load(ctx context.Context, token string) (*entity.User, error)
	Delete(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
}

// Manager owns the live sessions. A session is created on login or
// registration, re-established from the persisted identity record on
// restore, and destroyed on logout.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    IdentityStore
	onEvict  func(token string)
}

func NewManager(store IdentityStore) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		store:    store,
	}
}

// Create mints a new session for user, persisting the identity record.
func (m *Manager) Create(ctx context.Context, user *entity.User) (*Session, error) {
	token := uuid.NewString()

	if err := m.store.Save(ctx, token, user); err != nil {
		return nil, err
	}

	sess := New(token, user)
	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()

	return sess, nil
}

// Get restores the session behind token. A live in-memory session is
// returned as-is; otherwise the identity record is loaded from the
// store and a fresh session (empty mirrors) is built around it.
func (m *Manager) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, entity.ErrNotAuthenticated
	}

	m.mu.RLock()
	sess, ok := m.sessions[token]
	m.mu.RUnlock()
	if ok {
		return sess, nil
	}

	user, err := m.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	sess = New(token, user)
	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()

	return sess, nil
}

// OnEvict registers a hook fired with the token of every session that
// leaves the in-memory set, on logout or sweep. Per-token state held
// elsewhere (the active notice) is released through it.
func (m *Manager) OnEvict(fn func(token string)) {
	m.onEvict = fn
}

// Destroy drops the session and its persisted identity record.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	m.mu.Lock()
	if sess, ok := m.sessions[token]; ok {
		sess.Reset()
		delete(m.sessions, token)
	}
	m.mu.Unlock()

	if m.onEvict != nil {
		m.onEvict(token)
	}

	return m.store.Delete(ctx, token)
}

// Tokens returns the tokens of all live in-memory sessions.
func (m *Manager) Tokens() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tokens := make([]string, 0, len(m.sessions))
	for token := range m.sessions {
		tokens = append(tokens, token)
	}
	return tokens
}

// Evict drops an in-memory session without touching the store.
func (m *Manager) Evict(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()

	if m.onEvict != nil {
		m.onEvict(token)
	}
}

func (m *Manager) Store() IdentityStore {
	return m.store
}
