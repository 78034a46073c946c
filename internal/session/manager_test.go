package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grabshow/storefront/internal/entity"
)

type memStore struct {
	records map[string]*entity.User
}

func newMemStore() *memStore {
	return &memStore{records: make(map[string]*entity.User)}
}

func (s *memStore) Save(ctx context.Context, token string, user *entity.User) error {
	s.records[token] = user
	return nil
}

func (s *memStore) Load(ctx context.Context, token string) (*entity.User, error) {
	user, ok := s.records[token]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return user, nil
}

func (s *memStore) Delete(ctx context.Context, token string) error {
	delete(s.records, token)
	return nil
}

func (s *memStore) Exists(ctx context.Context, token string) (bool, error) {
	_, ok := s.records[token]
	return ok, nil
}

func TestManagerCreatePersistsIdentity(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)

	sess, err := m.Create(context.Background(), &entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token())

	saved, ok := store.records[sess.Token()]
	require.True(t, ok)
	assert.Equal(t, "alice", saved.Username)
}

func TestManagerRestoreRoundTrip(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)

	sess, err := m.Create(context.Background(), &entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	sess.SetCartCount(3)

	// A live session is returned as-is, mirrors intact.
	again, err := m.Get(context.Background(), sess.Token())
	require.NoError(t, err)
	assert.Same(t, sess, again)
	assert.Equal(t, 3, again.CartCount())

	// After eviction only the identity record survives: the restored
	// session carries the same user but empty mirrors.
	m.Evict(sess.Token())
	restored, err := m.Get(context.Background(), sess.Token())
	require.NoError(t, err)
	assert.NotSame(t, sess, restored)
	assert.Equal(t, int64(1), restored.UserID())
	assert.Zero(t, restored.CartCount())
	assert.Empty(t, restored.Cart())
}

func TestManagerGetUnknownToken(t *testing.T) {
	m := NewManager(newMemStore())

	_, err := m.Get(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	_, err = m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestManagerEvictHook(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)

	var evicted []string
	m.OnEvict(func(token string) {
		evicted = append(evicted, token)
	})

	first, err := m.Create(context.Background(), &entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)
	second, err := m.Create(context.Background(), &entity.User{ID: 2, Username: "bob"})
	require.NoError(t, err)

	require.NoError(t, m.Destroy(context.Background(), first.Token()))
	m.Evict(second.Token())

	assert.Equal(t, []string{first.Token(), second.Token()}, evicted)
}

func TestManagerDestroy(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)

	sess, err := m.Create(context.Background(), &entity.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, m.Destroy(context.Background(), sess.Token()))

	_, err = m.Get(context.Background(), sess.Token())
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	assert.Empty(t, store.records)
	assert.Empty(t, m.Tokens())
}
