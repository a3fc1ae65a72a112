package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hearttune-http-service/internal/domain/models"
	"hearttune-http-service/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Playlist{},
		&models.Song{},
		&models.Heartbeat{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey: "test-secret",
		AppBaseURL:   "http://localhost:8080",
	}
}

func newTestAccountService(t *testing.T, db *gorm.DB) InterfaceAccountService {
	t.Helper()
	return NewAccountService(db, newTestConfig(), NewFamilyCodeService(db))
}
