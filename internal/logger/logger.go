package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// New builds the process logger: human-readable in development, JSON in
// production. Switched on API_ENV like the rest of the service.
func New() *zap.SugaredLogger {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("API_ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}
	return l.Sugar()
}
