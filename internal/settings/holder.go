// Package settings owns the resolved configuration for the lifetime of the
// process. The holder is populated exactly once during startup and handed by
// reference to every consumer, replacing ambient global state.
package settings

import (
	"errors"
	"sync"

	"git2edx/internal/config"
)

var (
	// ErrAlreadySealed indicates a second attempt to populate the holder.
	ErrAlreadySealed = errors.New("settings holder is already sealed")
	// ErrNotSealed indicates a read before startup populated the holder.
	ErrNotSealed = errors.New("settings holder has not been sealed yet")
)

// Holder guards the process-wide configuration. Reads are concurrent-safe;
// the single write happens during startup, before any consumer runs.
type Holder struct {
	mu  sync.RWMutex
	cfg *config.Config
}

// NewHolder returns an empty, unsealed holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Seal stores the resolved configuration. Sealing twice is a programming
// error and is rejected.
func (h *Holder) Seal(cfg *config.Config) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.cfg != nil {
		return ErrAlreadySealed
	}
	h.cfg = cfg
	return nil
}

// Config returns the sealed configuration.
func (h *Holder) Config() (*config.Config, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.cfg == nil {
		return nil, ErrNotSealed
	}
	return h.cfg, nil
}
