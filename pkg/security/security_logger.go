package security

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventLoginFailed        EventType = "login_failed"
	EventLoginBlocked       EventType = "login_blocked"
	EventLoginSuccess       EventType = "login_success"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
)

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *SecurityLogger

// InitSecurityLogger initializes the security logger with Zap
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
	defaultLogger = sl
	return sl
}

// DefaultLogger returns the last initialized security logger, or nil.
func DefaultLogger() *SecurityLogger {
	return defaultLogger
}

func (sl *SecurityLogger) log(event EventType, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event)),
		zap.Time("at", time.Now().UTC()),
	}
	sl.zapLogger.Info("security_event", append(base, fields...)...)
}

// LogLoginFailed records a failed authentication attempt. The email is
// masked before it reaches the log stream.
func (sl *SecurityLogger) LogLoginFailed(email, ip, userAgent, requestID string) {
	sl.log(EventLoginFailed,
		zap.String("subject", MaskEmail(email)),
		zap.String("ip", ip),
		zap.String("user_agent", userAgent),
		zap.String("request_id", requestID),
	)
}

func (sl *SecurityLogger) LogLoginBlocked(email, ip, requestID string) {
	sl.log(EventLoginBlocked,
		zap.String("subject", MaskEmail(email)),
		zap.String("ip", ip),
		zap.String("request_id", requestID),
	)
}

func (sl *SecurityLogger) LogLoginSuccess(email, ip, requestID string) {
	sl.log(EventLoginSuccess,
		zap.String("subject", MaskEmail(email)),
		zap.String("ip", ip),
		zap.String("request_id", requestID),
	)
}

func (sl *SecurityLogger) LogRateLimitTriggered(ip, userAgent, requestID, path string) {
	sl.log(EventRateLimitTriggered,
		zap.String("ip", ip),
		zap.String("user_agent", userAgent),
		zap.String("request_id", requestID),
		zap.String("path", path),
	)
}

func (sl *SecurityLogger) LogUnauthorizedAccess(ip, path, requestID, reason string) {
	sl.log(EventUnauthorizedAccess,
		zap.String("ip", ip),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.String("reason", reason),
	)
}

// Sync flushes buffered log entries.
func (sl *SecurityLogger) Sync() {
	_ = sl.zapLogger.Sync()
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
