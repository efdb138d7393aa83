package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Typing indicator windows. A signal is removed after typingExpiry but is
// only reported as active while younger than typingStale; the shorter check
// window is authoritative, the longer removal window bounds memory growth.
const (
	typingExpiry = 3 * time.Second
	typingStale  = 2 * time.Second
)

// TypingStore tracks directed "is typing" signals. Implementations are
// best-effort: losing state on restart is acceptable.
type TypingStore interface {
	Set(ctx context.Context, senderID, receiverID string) error
	IsTyping(ctx context.Context, senderID, receiverID string) (bool, error)
}

func typingKey(senderID, receiverID string) string {
	return senderID + ":" + receiverID
}

// MemoryTypingStore is the process-local implementation. It is only suitable
// for single-instance deployments; use RedisTypingStore behind a scale-out.
type MemoryTypingStore struct {
	mu      sync.Mutex
	signals map[string]time.Time

	expiry time.Duration
	stale  time.Duration
	now    func() time.Time
}

func NewMemoryTypingStore() *MemoryTypingStore {
	return &MemoryTypingStore{
		signals: make(map[string]time.Time),
		expiry:  typingExpiry,
		stale:   typingStale,
		now:     time.Now,
	}
}

func (s *MemoryTypingStore) Set(ctx context.Context, senderID, receiverID string) error {
	key := typingKey(senderID, receiverID)
	ts := s.now()
	s.mu.Lock()
	s.signals[key] = ts
	s.mu.Unlock()

	// removal only clears the entry if it was not refreshed in the meantime
	time.AfterFunc(s.expiry, func() {
		s.mu.Lock()
		if cur, ok := s.signals[key]; ok && !cur.After(ts) {
			delete(s.signals, key)
		}
		s.mu.Unlock()
	})
	return nil
}

func (s *MemoryTypingStore) IsTyping(ctx context.Context, senderID, receiverID string) (bool, error) {
	s.mu.Lock()
	ts, ok := s.signals[typingKey(senderID, receiverID)]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return s.now().Sub(ts) < s.stale, nil
}

// RedisTypingStore shares typing state across instances. The key TTL covers
// the removal window; the stored timestamp carries the staleness check.
type RedisTypingStore struct {
	client *redis.Client

	expiry time.Duration
	stale  time.Duration
	now    func() time.Time
}

func NewRedisTypingStore(client *redis.Client) *RedisTypingStore {
	return &RedisTypingStore{
		client: client,
		expiry: typingExpiry,
		stale:  typingStale,
		now:    time.Now,
	}
}

func (s *RedisTypingStore) key(senderID, receiverID string) string {
	return "typing:" + typingKey(senderID, receiverID)
}

func (s *RedisTypingStore) Set(ctx context.Context, senderID, receiverID string) error {
	ts := strconv.FormatInt(s.now().UnixMilli(), 10)
	return s.client.Set(ctx, s.key(senderID, receiverID), ts, s.expiry).Err()
}

func (s *RedisTypingStore) IsTyping(ctx context.Context, senderID, receiverID string) (bool, error) {
	val, err := s.client.Get(ctx, s.key(senderID, receiverID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, nil
	}
	return s.now().Sub(time.UnixMilli(ms)) < s.stale, nil
}
