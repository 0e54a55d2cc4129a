package http

import (
	"go.uber.org/zap"
)

// HTTPLogger receives every exchange made by a Client. URLs arrive with redacted parameters already masked.
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after a 2xx response has been read
	LogResponseSuccess(method, url string, httpStatus int, responseBytes int, latency int64)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx status
	LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string)               {}
func (noopLogger) LogResponseSuccess(string, string, int, int, int64)         {}
func (noopLogger) LogResponseError(string, string, int, string, int64, error) {}

// ZapHTTPLogger writes exchanges at debug level and failures at warn level.
type ZapHTTPLogger struct {
	logger *zap.Logger
	// MaxBodyLength truncates logged error bodies; 0 disables truncation.
	MaxBodyLength int
}

var _ HTTPLogger = (*ZapHTTPLogger)(nil)

func NewZapHTTPLogger(logger *zap.Logger) *ZapHTTPLogger {
	return &ZapHTTPLogger{logger: logger, MaxBodyLength: 512}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string) {
	l.logger.Debug("http request",
		zap.String("method", method),
		zap.String("url", url))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseBytes int, latency int64) {
	l.logger.Debug("http response",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int("response_bytes", responseBytes),
		zap.Int64("latency_ms", latency))
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency int64, err error) {
	l.logger.Warn("http response error",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response_body", l.truncate(responseBody)),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func (l *ZapHTTPLogger) truncate(s string) string {
	if l.MaxBodyLength > 0 && len(s) > l.MaxBodyLength {
		return s[:l.MaxBodyLength] + "..."
	}
	return s
}
