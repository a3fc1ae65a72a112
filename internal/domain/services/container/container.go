package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"hearttune-http-service/internal/domain/services"
	"hearttune-http-service/internal/infrastructure/config"
)

// ServiceContainer wires the dependency graph of all services
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// Auth
	jwtService services.InterfaceJWTService

	// Infrastructure services
	redisService services.InterfaceRedisService
	emailService services.InterfaceEmailService

	// Business services
	familyCodeService services.InterfaceFamilyCodeService
	accountService    services.InterfaceAccountService
	playlistService   services.InterfacePlaylistService
	heartbeatService  services.InterfaceHeartbeatService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("config is nil")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("redis ping failed: %v, continuing without a shared live heartbeat slot", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds every service
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)

	c.redisService = services.NewRedisService(c.config)
	c.emailService = services.NewEmailService(c.config)

	c.familyCodeService = services.NewFamilyCodeService(c.db)
	c.accountService = services.NewAccountService(c.db, c.config, c.familyCodeService)
	c.playlistService = services.NewPlaylistService(c.db, c.config)
	c.heartbeatService = services.NewHeartbeatService(c.db, c.config, c.redisService)
}

// GetService returns the service registered under name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "email":
		return c.emailService
	case "family_code":
		return c.familyCodeService
	case "account":
		return c.accountService
	case "playlist":
		return c.playlistService
	case "heartbeat":
		return c.heartbeatService
	default:
		return nil
	}
}

// ReplaceService swaps a service, used by tests to stub collaborators
func (c *ServiceContainer) ReplaceService(name string, svc interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "jwt":
		c.jwtService = svc.(services.InterfaceJWTService)
	case "redis":
		c.redisService = svc.(services.InterfaceRedisService)
	case "email":
		c.emailService = svc.(services.InterfaceEmailService)
	case "family_code":
		c.familyCodeService = svc.(services.InterfaceFamilyCodeService)
	case "account":
		c.accountService = svc.(services.InterfaceAccountService)
	case "playlist":
		c.playlistService = svc.(services.InterfacePlaylistService)
	case "heartbeat":
		c.heartbeatService = svc.(services.InterfaceHeartbeatService)
	}
}
