package impl

import (
	"io"
	"log/slog"
	"time"

	"resale/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Store: &config.StoreConfig{Timeout: time.Second},
		Payment: &config.PaymentConfig{
			Currency:    "usd",
			MethodTypes: []string{"card"},
			Timeout:     time.Second,
		},
	}
}
