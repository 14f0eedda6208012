package storage

import (
	"fmt"

	"github.com/quasilyte/gdata"
)

// AppName names the per-user save area on disk.
const AppName = "orba-arcade"

// SaveArea is the per-user key/value save area used for local play: the
// local leaderboards and the player name live here.
type SaveArea struct {
	m *gdata.Manager
}

// OpenSaveArea opens the save area for appName.
func OpenSaveArea(appName string) (*SaveArea, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open save area: %w", err)
	}
	return &SaveArea{m: m}, nil
}

// LoadItem returns the stored bytes for key, or nil when nothing is stored.
func (a *SaveArea) LoadItem(key string) ([]byte, error) {
	data, err := a.m.LoadItem(key)
	if err != nil {
		return nil, fmt.Errorf("storage: load %s: %w", key, err)
	}
	return data, nil
}

// SaveItem replaces the bytes stored under key.
func (a *SaveArea) SaveItem(key string, data []byte) error {
	if err := a.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("storage: save %s: %w", key, err)
	}
	return nil
}
