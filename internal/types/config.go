package types

import (
	ierr "github.com/letybo/ordering/internal/errors"
	"github.com/samber/lo"
)

type RunMode string

const (
	// ModeLocal runs the API server against local dependencies and loads .env
	ModeLocal RunMode = "local"
	// ModeAPI runs just the API server
	ModeAPI RunMode = "api"
)

func (m RunMode) Validate() error {
	if !lo.Contains([]RunMode{ModeLocal, ModeAPI}, m) {
		return ierr.NewError("invalid run mode").
			WithHintf("Run mode must be one of %s or %s", ModeLocal, ModeAPI).
			Mark(ierr.ErrValidation)
	}
	return nil
}

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// StoreProvider selects the order store backing the service
type StoreProvider string

const (
	StoreProviderPostgres StoreProvider = "postgres"
	StoreProviderMemory   StoreProvider = "memory"
)
