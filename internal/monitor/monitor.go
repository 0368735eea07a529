//go:build linux

package monitor

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/genricoloni/musicard/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	mprisPrefix   = "org.mpris.MediaPlayer2."
	playerPath    = "/org/mpris/MediaPlayer2"
	playerIface   = "org.mpris.MediaPlayer2.Player"
	propsIface    = "org.freedesktop.DBus.Properties"
	propsChanged  = propsIface + ".PropertiesChanged"
	seekedSignal  = playerIface + ".Seeked"
	ownerChanged  = "org.freedesktop.DBus.NameOwnerChanged"
	eventCapacity = 10
)

// MprisMonitor follows MPRIS players on the session bus and emits their now-playing state
type MprisMonitor struct {
	logger          *zap.Logger
	dial            func() (DBusClient, error)
	events          chan domain.MediaMetadata
	mu              sync.RWMutex
	running         bool
	cancel          context.CancelFunc
	conn            DBusClient
	lastDropWarning time.Time
	wg              sync.WaitGroup    // Tracks active producer goroutines
	playerNames     map[string]string // Unique bus name (:1.45) to well-known name
}

// NewMprisMonitor creates a monitor connected to the session bus on Start
func NewMprisMonitor(logger *zap.Logger) *MprisMonitor {
	return &MprisMonitor{
		logger: logger,
		dial: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
		events:      make(chan domain.MediaMetadata, eventCapacity),
		playerNames: make(map[string]string),
	}
}

// Start connects to the bus and blocks until ctx is cancelled or Stop is called
func (m *MprisMonitor) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return nil
	}
	m.running = true

	monitorCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.mu.Unlock()

	conn, err := m.dial()
	if err != nil {
		m.logger.Error("Failed to connect to session bus", zap.Error(err))
		m.mu.Lock()
		defer m.mu.Unlock()
		m.running = false
		m.cancel = nil
		cancel()
		return fmt.Errorf("session bus connection failed: %w", err)
	}

	// Stopped while connecting
	select {
	case <-monitorCtx.Done():
		if err := conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
		return monitorCtx.Err()
	default:
	}

	m.mu.Lock()
	m.conn = conn
	m.mu.Unlock()

	m.wg.Add(1)
	func() {
		defer m.wg.Done()
		if err := m.detectExistingPlayers(); err != nil {
			m.logger.Warn("Failed to detect existing players", zap.Error(err))
		}
	}()

	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(playerPath),
		dbus.WithMatchInterface(propsIface),
		dbus.WithMatchMember("PropertiesChanged"),
	); err != nil {
		m.logger.Error("Failed to add match signal", zap.Error(err))
		return fmt.Errorf("failed to add match signal: %w", err)
	}

	// Seeks and player lifecycle are optional; the card still follows track changes without them
	if err := conn.AddMatchSignal(
		dbus.WithMatchObjectPath(playerPath),
		dbus.WithMatchInterface(playerIface),
		dbus.WithMatchMember("Seeked"),
	); err != nil {
		m.logger.Warn("Failed to add Seeked match signal", zap.Error(err))
	}
	if err := conn.AddMatchSignal(
		dbus.WithMatchInterface("org.freedesktop.DBus"),
		dbus.WithMatchMember("NameOwnerChanged"),
	); err != nil {
		m.logger.Warn("Failed to add NameOwnerChanged match signal", zap.Error(err))
	}

	m.wg.Add(1)
	go m.monitorSignals(monitorCtx)

	m.logger.Info("Player monitor started")
	<-monitorCtx.Done()

	m.logger.Info("Player monitor stopped")
	return monitorCtx.Err()
}

// Stop cancels monitoring, waits for producers and closes the events channel
func (m *MprisMonitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return nil
	}
	if m.cancel != nil {
		m.cancel()
	}
	m.running = false
	m.mu.Unlock()

	// Producers must be gone before the channel closes
	m.wg.Wait()
	close(m.events)

	m.mu.Lock()
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			m.logger.Warn("Failed to close D-Bus connection", zap.Error(err))
		}
	}
	m.mu.Unlock()

	m.logger.Info("Player monitor shutdown complete")
	return nil
}

// Events returns a read-only channel that emits MediaMetadata
func (m *MprisMonitor) Events() <-chan domain.MediaMetadata {
	return m.events
}

// detectExistingPlayers maps and snapshots every player already on the bus
func (m *MprisMonitor) detectExistingPlayers() error {
	names, err := m.conn.ListNames()
	if err != nil {
		return fmt.Errorf("failed to list bus names: %w", err)
	}

	players := 0
	for _, name := range names {
		if !strings.HasPrefix(name, mprisPrefix) {
			continue
		}
		players++

		if unique, err := m.conn.GetNameOwner(name); err == nil {
			m.mu.Lock()
			m.playerNames[unique] = name
			m.mu.Unlock()
		}

		if err := m.fetchPlayerMetadata(name); err != nil {
			m.logger.Warn("Failed to fetch initial metadata",
				zap.String("player", name),
				zap.Error(err))
		}
	}

	m.logger.Info("Player detection complete", zap.Int("count", players))
	return nil
}

// fetchPlayerMetadata reads a player's full state and emits it.
// A player that exposes no metadata map is skipped without error.
func (m *MprisMonitor) fetchPlayerMetadata(bus string) error {
	variant, err := m.property(bus, "Metadata")
	if err != nil {
		return fmt.Errorf("failed to get metadata: %w", err)
	}
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		m.logger.Debug("Metadata variant is not a map, skipping", zap.String("player", bus))
		return nil
	}

	statusVariant, err := m.property(bus, "PlaybackStatus")
	if err != nil {
		return fmt.Errorf("failed to get playback status: %w", err)
	}
	status, ok := statusVariant.Value().(string)
	if !ok {
		return fmt.Errorf("invalid playback status format")
	}

	meta := m.parseMetadata(metadata, status)
	meta.Position = m.position(bus)
	m.emit(bus, meta)
	return nil
}

// monitorSignals dispatches bus signals until ctx is done
func (m *MprisMonitor) monitorSignals(ctx context.Context) {
	defer m.wg.Done()

	signals := make(chan *dbus.Signal, eventCapacity)
	m.conn.Signal(signals)

	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			if sig == nil {
				continue
			}
			switch sig.Name {
			case ownerChanged:
				m.handleNameOwnerChanged(sig)
			case seekedSignal:
				m.handleSeeked(sig)
			default:
				m.handleSignal(sig)
			}
		}
	}
}

// handleNameOwnerChanged keeps playerNames in step with players joining and leaving the bus
func (m *MprisMonitor) handleNameOwnerChanged(sig *dbus.Signal) {
	if len(sig.Body) < 3 {
		return
	}

	name, ok := sig.Body[0].(string)
	if !ok || !strings.HasPrefix(name, mprisPrefix) {
		return
	}
	oldOwner, _ := sig.Body[1].(string)
	newOwner, _ := sig.Body[2].(string)

	m.mu.Lock()
	if oldOwner != "" {
		delete(m.playerNames, oldOwner)
	}
	if newOwner != "" {
		m.playerNames[newOwner] = name
	}
	m.mu.Unlock()

	switch {
	case oldOwner == "" && newOwner != "":
		m.logger.Info("Player appeared", zap.String("player", name), zap.String("unique", newOwner))
		if err := m.fetchPlayerMetadata(name); err != nil {
			m.logger.Warn("Failed to fetch metadata from new player",
				zap.String("player", name),
				zap.Error(err))
		}
	case newOwner == "" && oldOwner != "":
		m.logger.Info("Player removed", zap.String("player", name), zap.String("unique", oldOwner))
	}
}

// handleSignal turns a PropertiesChanged signal on the player interface into an event.
// Properties missing from the signal are read back from the player.
func (m *MprisMonitor) handleSignal(sig *dbus.Signal) {
	if sig.Name != propsChanged || len(sig.Body) < 2 {
		return
	}
	if iface, ok := sig.Body[0].(string); !ok || iface != playerIface {
		return
	}
	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return
	}

	metadataVariant, hasMetadata := changed["Metadata"]
	statusVariant, hasStatus := changed["PlaybackStatus"]
	if !hasMetadata && !hasStatus {
		return
	}

	var (
		metadata map[string]dbus.Variant
		status   string
	)
	if hasMetadata {
		if metadata, ok = metadataVariant.Value().(map[string]dbus.Variant); !ok {
			m.logger.Warn("Invalid metadata format in signal, ignoring")
			return
		}
	} else if v, err := m.property(sig.Sender, "Metadata"); err == nil {
		metadata, _ = v.Value().(map[string]dbus.Variant)
	}

	if hasStatus {
		if status, ok = statusVariant.Value().(string); !ok {
			m.logger.Warn("Invalid playback status format in signal, ignoring")
			return
		}
	} else if v, err := m.property(sig.Sender, "PlaybackStatus"); err == nil {
		status, _ = v.Value().(string)
	}

	meta := m.parseMetadata(metadata, status)
	meta.Position = m.position(sig.Sender)
	m.emit(sig.Sender, meta)
}

// handleSeeked re-reads the player after a seek so the card's progress follows the jump
func (m *MprisMonitor) handleSeeked(sig *dbus.Signal) {
	if len(sig.Body) < 1 {
		return
	}
	micros, ok := microseconds(sig.Body[0])
	if !ok {
		return
	}

	v, err := m.property(sig.Sender, "Metadata")
	if err != nil {
		m.logger.Debug("Failed to read metadata after seek", zap.Error(err))
		return
	}
	metadata, ok := v.Value().(map[string]dbus.Variant)
	if !ok {
		return
	}

	var status string
	if sv, err := m.property(sig.Sender, "PlaybackStatus"); err == nil {
		status, _ = sv.Value().(string)
	}

	meta := m.parseMetadata(metadata, status)
	meta.Position = time.Duration(micros) * time.Microsecond
	m.emit(sig.Sender, meta)
}

// parseMetadata converts MPRIS metadata to domain model
func (m *MprisMonitor) parseMetadata(metadata map[string]dbus.Variant, status string) domain.MediaMetadata {
	var meta domain.MediaMetadata

	switch status {
	case "Playing":
		meta.Status = domain.StatusPlaying
	case "Paused":
		meta.Status = domain.StatusPaused
	default:
		meta.Status = domain.StatusStopped
	}

	if metadata == nil {
		return meta
	}

	if v, ok := metadata["xesam:title"]; ok {
		meta.Title, _ = v.Value().(string)
	}

	// xesam:artist is a list, some players send a plain string
	if v, ok := metadata["xesam:artist"]; ok {
		switch artists := v.Value().(type) {
		case []string:
			if len(artists) > 0 {
				meta.Artist = artists[0]
			}
		case string:
			meta.Artist = artists
		default:
			m.logger.Debug("Unexpected artist type in metadata",
				zap.String("type", fmt.Sprintf("%T", v.Value())))
		}
	}

	if v, ok := metadata["xesam:album"]; ok {
		meta.Album, _ = v.Value().(string)
	}

	if v, ok := metadata["mpris:artUrl"]; ok {
		meta.ArtUrl, _ = v.Value().(string)
	}

	if v, ok := metadata["mpris:length"]; ok {
		if micros, ok := microseconds(v.Value()); ok && micros > 0 {
			meta.Length = time.Duration(micros) * time.Microsecond
		}
	}

	return meta
}

// position reads the player's playback position. Players that do not expose it report zero.
func (m *MprisMonitor) position(bus string) time.Duration {
	v, err := m.property(bus, "Position")
	if err != nil {
		return 0
	}
	micros, ok := microseconds(v.Value())
	if !ok || micros < 0 {
		return 0
	}
	return time.Duration(micros) * time.Microsecond
}

func (m *MprisMonitor) property(bus, name string) (dbus.Variant, error) {
	return m.conn.GetProperty(bus, playerPath, playerIface+"."+name)
}

// emit sends without blocking; the consumer debounces, so dropped intermediate events are harmless
func (m *MprisMonitor) emit(bus string, meta domain.MediaMetadata) {
	select {
	case m.events <- meta:
		m.logger.Debug("Media change detected",
			zap.String("player", m.getPlayerName(bus)),
			zap.String("title", meta.Title),
			zap.String("artist", meta.Artist),
			zap.String("status", string(meta.Status)),
			zap.Duration("position", meta.Position),
			zap.Duration("length", meta.Length))
	default:
		m.logChannelFullWarning()
	}
}

// getPlayerName returns the well-known player name for a unique bus name
// Falls back to the unique name if no mapping exists
func (m *MprisMonitor) getPlayerName(uniqueName string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if wellKnown, ok := m.playerNames[uniqueName]; ok {
		return wellKnown
	}
	return uniqueName
}

// logChannelFullWarning logs at most once every five seconds
func (m *MprisMonitor) logChannelFullWarning() {
	m.mu.Lock()
	defer m.mu.Unlock()

	const warningInterval = 5 * time.Second
	now := time.Now()
	if now.Sub(m.lastDropWarning) >= warningInterval {
		m.logger.Warn("Events channel full, dropping metadata")
		m.lastDropWarning = now
	}
}

// microseconds normalizes the integer types players use for lengths and positions
func microseconds(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}
