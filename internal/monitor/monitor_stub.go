//go:build !linux

package monitor

import (
	"context"
	"fmt"

	"github.com/genricoloni/musicard/internal/domain"
	"go.uber.org/zap"
)

// MprisMonitor stub for platforms without a session bus
type MprisMonitor struct {
	logger *zap.Logger
	events chan domain.MediaMetadata
}

// NewMprisMonitor creates a stub monitor that fails to start
func NewMprisMonitor(logger *zap.Logger) *MprisMonitor {
	events := make(chan domain.MediaMetadata)
	close(events)
	return &MprisMonitor{logger: logger, events: events}
}

// Start returns an error indicating player monitoring is not supported on this platform
func (m *MprisMonitor) Start(ctx context.Context) error {
	return fmt.Errorf("MPRIS monitoring is only supported on Linux systems")
}

// Events returns a closed channel since monitoring is not available
func (m *MprisMonitor) Events() <-chan domain.MediaMetadata {
	return m.events
}

// Stop is a no-op
func (m *MprisMonitor) Stop(ctx context.Context) error {
	return nil
}
