package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("LM_TEST_VAR", "value")

	assert.Equal(t, "value", GetEnv("LM_TEST_VAR", "default"))
	assert.Equal(t, "default", GetEnv("LM_TEST_MISSING", "default"))
	assert.Equal(t, "", GetEnv("LM_TEST_MISSING"))
}

func TestGetEnvIntAndBool(t *testing.T) {
	t.Setenv("LM_TEST_INT", "42")
	t.Setenv("LM_TEST_BOOL", "true")
	t.Setenv("LM_TEST_BAD", "nope")

	assert.Equal(t, 42, GetEnvInt("LM_TEST_INT", 1))
	assert.Equal(t, 7, GetEnvInt("LM_TEST_BAD", 7))
	assert.True(t, GetEnvBool("LM_TEST_BOOL", false))
	assert.False(t, GetEnvBool("LM_TEST_BAD", false))
}

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ACCESS_TTL_HOURS", "2")

	LoadEnv()

	assert.Equal(t, "secret", JWTSecret)
	assert.Equal(t, 2*time.Hour, JWTAccessTTL)
	assert.Equal(t, "http://localhost:5173", FrontendOrigin)
	assert.Equal(t, 24*time.Hour, TokenCleanupTick)
}

func TestDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "lm")

	cfg := Database()
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "5432", cfg.Port)
	assert.Equal(t, "lm", cfg.User)
	assert.Equal(t, "disable", cfg.SSLMode)
}

func TestGormLoggerLogModeCopies(t *testing.T) {
	base := &GormLogger{LogLevel: gormLogger.Warn}
	silent := base.LogMode(gormLogger.Silent)

	assert.Equal(t, gormLogger.Warn, base.LogLevel)
	assert.Equal(t, gormLogger.Silent, silent.(*GormLogger).LogLevel)
}
