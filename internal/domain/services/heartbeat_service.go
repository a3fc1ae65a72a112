package services

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/internal/infrastructure/config"
)

// InterfaceHeartbeatService defines the heartbeat service interface
type InterfaceHeartbeatService interface {
	AddSample(childName, familyCode string, bpm int) error
	LatestSample(childName, familyCode string) (*models.Heartbeat, error)
	SetLive(bpm int)
	GetLive() int
}

// HeartbeatService stores heart-rate samples and tracks the live
// value. The live slot goes through Redis so multiple instances agree
// on it; when Redis is unreachable a process-local value stands in.
type HeartbeatService struct {
	DB     *gorm.DB
	Config *config.Config
	Redis  InterfaceRedisService

	mu        sync.RWMutex
	localLive int
}

// NewHeartbeatService creates a new heartbeat service
func NewHeartbeatService(db *gorm.DB, cfg *config.Config, redisService InterfaceRedisService) InterfaceHeartbeatService {
	return &HeartbeatService{
		DB:     db,
		Config: cfg,
		Redis:  redisService,
	}
}

// AddSample persists one heart-rate sample
func (s *HeartbeatService) AddSample(childName, familyCode string, bpm int) error {
	beat := models.Heartbeat{
		ChildName:  childName,
		FamilyCode: familyCode,
		Heartbeat:  bpm,
	}
	return s.DB.Create(&beat).Error
}

// LatestSample returns the newest sample for a child/code pair, or nil
// when none has been recorded yet
func (s *HeartbeatService) LatestSample(childName, familyCode string) (*models.Heartbeat, error) {
	var beat models.Heartbeat
	err := s.DB.Where("child_name = ? AND family_code = ?", childName, familyCode).
		Order("timestamp DESC").First(&beat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &beat, nil
}

// SetLive overwrites the live heartbeat slot
func (s *HeartbeatService) SetLive(bpm int) {
	s.mu.Lock()
	s.localLive = bpm
	s.mu.Unlock()

	if s.Redis != nil {
		if err := s.Redis.SetLiveHeartbeat(bpm); err != nil {
			config.Warning("failed to write live heartbeat to redis: %v", err)
		}
	}
}

// GetLive reads the live heartbeat slot
func (s *HeartbeatService) GetLive() int {
	if s.Redis != nil {
		if bpm, err := s.Redis.GetLiveHeartbeat(); err == nil {
			return bpm
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.localLive
}
