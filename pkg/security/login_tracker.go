package security

import (
	"context"
	"time"

	"github.com/PhatNguyen203/DevConnecting/pkg/redis"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before block
	AttemptWindow time.Duration // window for counting attempts
	BlockDuration time.Duration // how long to block after max attempts
}

// DefaultLoginTrackerConfig returns sensible defaults
func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker tracks failed login attempts and enforces temporary blocks.
// Without Redis it fails open: nothing is tracked and nobody is blocked.
type LoginTracker struct {
	config LoginTrackerConfig
}

func NewLoginTracker(config LoginTrackerConfig) *LoginTracker {
	return &LoginTracker{config: config}
}

// Redis key patterns
const (
	failLoginPrefix    = "fail:login:"
	blockedLoginPrefix = "blocked:login:"
)

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: current count after increment
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// IsBlocked reports whether the given email is currently blocked.
func (lt *LoginTracker) IsBlocked(ctx context.Context, email string) (bool, error) {
	client := redis.Client()
	if client == nil {
		return false, nil
	}

	exists, err := client.Exists(ctx, blockedLoginPrefix+email).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

// RecordFailure increments the failure counter for email and creates a block
// once the counter passes the configured maximum. Returns whether a block
// was just created.
func (lt *LoginTracker) RecordFailure(ctx context.Context, email string) (bool, error) {
	client := redis.Client()
	if client == nil {
		return false, nil
	}

	ttl := int(lt.config.AttemptWindow.Seconds())
	result, err := client.Eval(ctx, incrWithTTLScript, []string{failLoginPrefix + email}, ttl).Result()
	if err != nil {
		return false, err
	}

	count, _ := result.(int64)
	if int(count) < lt.config.MaxAttempts {
		return false, nil
	}

	err = client.Set(ctx, blockedLoginPrefix+email, time.Now().UTC().Format(time.RFC3339), lt.config.BlockDuration).Err()
	if err != nil {
		return false, err
	}
	return true, nil
}

// ClearFailures removes failure tracking for email after a successful login.
func (lt *LoginTracker) ClearFailures(ctx context.Context, email string) error {
	client := redis.Client()
	if client == nil {
		return nil
	}
	return client.Del(ctx, failLoginPrefix+email).Err()
}
