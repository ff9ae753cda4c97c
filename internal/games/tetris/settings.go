package tetris

import (
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Package-level configuration shared by every new game instance.
// The CLI loads it once at startup; SSH sessions read it concurrently.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultTetrisConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.TetrisConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// CurrentConfig returns the configuration new games will use.
func CurrentConfig() config.TetrisConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}
