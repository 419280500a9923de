package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/sepnoty/sepnoty_backend/models"
)

// OTPStore holds at most one pending verification record per phone number.
// Get returns (nil, nil) when no record exists.
type OTPStore interface {
	Save(ctx context.Context, record models.OTPRecord) error
	Get(ctx context.Context, phone string) (*models.OTPRecord, error)
	Delete(ctx context.Context, phone string) error
}

// MemoryOTPStore keeps OTP records in process memory. This matches
// single-instance deployments; the Redis store covers everything else.
type MemoryOTPStore struct {
	mu      sync.RWMutex
	records map[string]models.OTPRecord
}

func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		records: make(map[string]models.OTPRecord),
	}
}

func (s *MemoryOTPStore) Save(ctx context.Context, record models.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Phone] = record
	return nil
}

func (s *MemoryOTPStore) Get(ctx context.Context, phone string) (*models.OTPRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[phone]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

func (s *MemoryOTPStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, phone)
	return nil
}

// RedisOTPStore keeps OTP records in Redis under otp:<phone>. The key TTL
// matches the expiry window as a safety net; the service still performs the
// lazy expiry check on verification.
type RedisOTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisOTPStore(client *redis.Client, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{client: client, ttl: ttl}
}

func (s *RedisOTPStore) key(phone string) string {
	return fmt.Sprintf("otp:%s", phone)
}

func (s *RedisOTPStore) Save(ctx context.Context, record models.OTPRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP record: %w", err)
	}
	if err := s.client.Set(ctx, s.key(record.Phone), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Get(ctx context.Context, phone string) (*models.OTPRecord, error) {
	data, err := s.client.Get(ctx, s.key(phone)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("Redis error: %w", err)
	}

	var record models.OTPRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP record: %w", err)
	}
	return &record, nil
}

func (s *RedisOTPStore) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, s.key(phone)).Err(); err != nil {
		return fmt.Errorf("Redis error: %w", err)
	}
	return nil
}
