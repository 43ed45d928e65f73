package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL is the sliding window for a session cookie. Every authenticated
// request pushes the expiry forward by this much.
const SessionTTL = 7 * 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// Session is the minimal user record kept against an opaque token.
type Session struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Store maps opaque session tokens to Sessions with a sliding TTL. It is
// injected rather than kept as a package singleton so tests can swap in the
// in-memory implementation.
type Store interface {
	Set(ctx context.Context, token string, sess Session, ttl time.Duration) error
	// Get returns the session and slides its TTL forward.
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
	Close() error
}

// NewToken returns a fresh opaque session token.
func NewToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

/* ===============================
   Redis implementation
=================================*/

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: SessionTTL,
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisStore) Set(ctx context.Context, token string, sess Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(token), raw, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, err
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, err
	}

	// sliding window
	_ = s.client.Expire(ctx, sessionKey(token), s.ttl).Err()
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
