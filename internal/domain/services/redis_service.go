package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"hearttune-http-service/internal/infrastructure/config"
)

// liveHeartbeatKey holds the most recent heartbeat seen by any
// instance. One slot, no identity, overwritten on every write.
const liveHeartbeatKey = "heartbeat:live"

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	SetLiveHeartbeat(bpm int) error
	GetLiveHeartbeat() (int, error)
}

// RedisService handles Redis operations
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set stores a key-value pair with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get reads a value by key into dest
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Delete removes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// SetLiveHeartbeat overwrites the live heartbeat slot
func (s *RedisService) SetLiveHeartbeat(bpm int) error {
	return s.Client.Set(s.Ctx, liveHeartbeatKey, bpm, 0).Err()
}

// GetLiveHeartbeat reads the live heartbeat slot. A missing key reads
// as zero, matching a device that has not reported yet.
func (s *RedisService) GetLiveHeartbeat() (int, error) {
	val, err := s.Client.Get(s.Ctx, liveHeartbeatKey).Int()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}
