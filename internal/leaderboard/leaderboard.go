// Package leaderboard keeps the ranked top scores of each game.
package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Capacity is the number of entries a board keeps per game.
const Capacity = 10

// Entry is one ranked score. Entries are never mutated once stored.
type Entry struct {
	Player    string `json:"username"`
	Score     int    `json:"score"`
	GameID    string `json:"gameId"`
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// Time returns the entry timestamp.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// Board is the persistence collaborator for ranked scores.
// Submit is not idempotent: two equal submissions produce two entries.
type Board interface {
	Submit(ctx context.Context, gameID, player string, score int) error
	Top(ctx context.Context, gameID string) ([]Entry, error)
}

// Insert appends e to list, sorts by score descending and truncates to
// Capacity. Equal scores keep their insertion order. The input slice is
// not modified.
func Insert(list []Entry, e Entry) []Entry {
	out := make([]Entry, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, e)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if len(out) > Capacity {
		out = out[:Capacity]
	}
	return out
}

// KV is a flat key/value save area.
type KV interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Key returns the save-area key of a game's board.
func Key(gameID string) string {
	return "leaderboard_" + gameID
}

// KVBoard stores each game's board as one JSON list under Key(gameID).
// It serializes its own read-modify-write cycles; other writers to the
// same save area are not coordinated.
type KVBoard struct {
	kv  KV
	now func() time.Time
	mu  sync.Mutex
}

// NewKVBoard creates a board over kv.
func NewKVBoard(kv KV) *KVBoard {
	return &KVBoard{kv: kv, now: time.Now}
}

// Submit records a score. The player name is trimmed.
func (b *KVBoard) Submit(ctx context.Context, gameID, player string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	list, err := b.load(gameID)
	if err != nil {
		return err
	}
	list = Insert(list, Entry{
		Player:    strings.TrimSpace(player),
		Score:     score,
		GameID:    gameID,
		Timestamp: b.now().UnixMilli(),
	})
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("leaderboard: encode %s: %w", gameID, err)
	}
	if err := b.kv.SaveItem(Key(gameID), data); err != nil {
		return fmt.Errorf("leaderboard: save %s: %w", gameID, err)
	}
	return nil
}

// Top returns the stored entries for a game, best first.
func (b *KVBoard) Top(ctx context.Context, gameID string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(gameID)
}

func (b *KVBoard) load(gameID string) ([]Entry, error) {
	data, err := b.kv.LoadItem(Key(gameID))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: load %s: %w", gameID, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var list []Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("leaderboard: decode %s: %w", gameID, err)
	}
	return list, nil
}

var _ Board = (*KVBoard)(nil)
