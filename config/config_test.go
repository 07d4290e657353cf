package config_test

import (
	"testing"
	"time"

	"github.com/PhatNguyen203/DevConnecting/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 1000*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 15, cfg.FailedLoginWindowMinutes)
	assert.Equal(t, 15, cfg.FailedLoginBlockMinutes)
	assert.Equal(t, 5, cfg.FailedLoginMaxAttempts)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("FAILED_LOGIN_WINDOW_MINUTES", "30")
	t.Setenv("FAILED_LOGIN_BLOCK_MINUTES", "60")
	t.Setenv("JWT_TTL_HOURS", "24")

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, 30, cfg.FailedLoginWindowMinutes)
	assert.Equal(t, 60, cfg.FailedLoginBlockMinutes)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}
