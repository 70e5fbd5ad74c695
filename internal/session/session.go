// Package session keeps one calendar State per operator browser session.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/ariefcatur/chale-calendar.git/internal/controller"
	"github.com/ariefcatur/chale-calendar.git/internal/redisx"
	"github.com/redis/go-redis/v9"
	"sync"
	"time"
)

type Session struct {
	State   controller.State `json:"state"`
	Flash   []string         `json:"flash,omitempty"`
	Pending *Question        `json:"pending,omitempty"`
}

type QuestionKind string

const (
	QuestionConfirm QuestionKind = "confirm"
	QuestionPrompt  QuestionKind = "prompt"
)

// Question is a confirm or prompt the operator has not answered yet. The
// answer re-issues Method Action with confirm=yes or pick=N.
type Question struct {
	Kind    QuestionKind `json:"kind"`
	Message string       `json:"message"`
	Method  string       `json:"method"`
	Action  string       `json:"action"`
}

// TakeNotices returns the flash messages and pending question and clears
// them, so each is shown once.
func (s *Session) TakeNotices() ([]string, *Question) {
	flash, q := s.Flash, s.Pending
	s.Flash, s.Pending = nil, nil
	return flash, q
}

type Store interface {
	// Load returns (nil, nil) when the session does not exist or expired.
	Load(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, id string, s *Session) error
}

// MemoryStore is the single-process store used when no Redis is configured.
type MemoryStore struct {
	TTL time.Duration
	Now func() time.Time

	mu   sync.Mutex
	data map[string]memEntry
}

type memEntry struct {
	b       []byte
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{TTL: ttl, Now: time.Now, data: map[string]memEntry{}}
}

func (m *MemoryStore) Load(_ context.Context, id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	if m.TTL > 0 && m.Now().After(e.expires) {
		delete(m.data, id)
		return nil, nil
	}
	return decode(e.b)
}

func (m *MemoryStore) Save(_ context.Context, id string, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = map[string]memEntry{}
	}
	now := m.Now()
	for k, e := range m.data {
		if m.TTL > 0 && now.After(e.expires) {
			delete(m.data, k)
		}
	}
	m.data[id] = memEntry{b: b, expires: now.Add(m.TTL)}
	return nil
}

// RedisStore shares sessions between frontend instances.
type RedisStore struct {
	Redis *redis.Client
	TTL   time.Duration
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	b, err := r.Redis.Get(ctx, fmt.Sprintf(redisx.KeySession, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decode(b)
}

func (r *RedisStore) Save(ctx context.Context, id string, s *Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ttl := r.TTL
	if ttl <= 0 {
		ttl = redisx.TTLSession
	}
	if err := r.Redis.Set(ctx, fmt.Sprintf(redisx.KeySession, id), b, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func decode(b []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}
