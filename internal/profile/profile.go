// Package profile stores the display name attached to submitted scores.
package profile

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/orba-arcade/internal/leaderboard"
)

// Key is the global save-area key of the player name.
const Key = "orba_username"

// DefaultName is used until the player picks one.
const DefaultName = "Player 1"

// MaxNameLen bounds stored names; longer names are cut.
const MaxNameLen = 24

// Load returns the stored name, or DefaultName when none is stored, the
// stored value is blank, or the save area cannot be read.
func Load(kv leaderboard.KV) string {
	if kv == nil {
		return DefaultName
	}
	data, err := kv.LoadItem(Key)
	if err != nil {
		return DefaultName
	}
	name := Normalize(string(data))
	if name == "" {
		return DefaultName
	}
	return name
}

// Save stores name as the global player name. A blank name stores
// DefaultName.
func Save(kv leaderboard.KV, name string) error {
	name = Normalize(name)
	if name == "" {
		name = DefaultName
	}
	if err := kv.SaveItem(Key, []byte(name)); err != nil {
		return fmt.Errorf("profile: save name: %w", err)
	}
	return nil
}

// Normalize trims whitespace, drops control characters and cuts the name
// to MaxNameLen runes.
func Normalize(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLen {
		name = strings.TrimSpace(string(r[:MaxNameLen]))
	}
	return name
}
