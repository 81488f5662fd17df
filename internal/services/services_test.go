package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/soumacoisa/backend/internal/config"
	"github.com/soumacoisa/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection so every session sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.DailyEntry{}))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func newTestUser(t *testing.T, db *gorm.DB, email, tz string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "x",
		DisplayName:  "Test User",
		Timezone:     tz,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedEntry(t *testing.T, db *gorm.DB, userID uuid.UUID, date string, completed models.Completion, skipped bool) *models.DailyEntry {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	entry := &models.DailyEntry{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      datatypes.Date(day),
		Intention: "seeded for " + date,
		Completed: completed,
		Skipped:   skipped,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}
