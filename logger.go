package itch

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("component", "itch")

// SetLogger allows setting a custom logger.
// Decode never logs; only Scanner and Directory do.
func SetLogger(l *slog.Logger) {
	logger = l
}
