package logging

import "go.uber.org/zap"

// NewLogger returns a development-mode zap logger writing to stderr.
func NewLogger() *zap.SugaredLogger {
	logger, _ := zap.NewDevelopment()
	return logger.Sugar()
}
