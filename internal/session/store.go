package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/grabshow/storefront/internal/entity"
)

// Store persists the identity record of a logged-in user in Redis,
// keyed under a fixed prefix. This is the localStorage analog of the
// source client: written on login/registration, read at restore,
// deleted on logout. Nothing beyond the plain user record is kept.
type Store struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewStore(client *redis.Client, keyPrefix string, ttl time.Duration) *Store {
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *Store) Save(ctx context.Context, token string, user *entity.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.keyPrefix+token, data, s.ttl).Err()
}

func (s *Store) Load(ctx context.Context, token string) (*entity.User, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, err
	}

	var user entity.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.keyPrefix+token).Err()
}

// Exists reports whether the identity record behind token is still
// persisted. The sweeper uses it to evict dead in-memory sessions.
func (s *Store) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, s.keyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
