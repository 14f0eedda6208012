package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type memKV map[string][]byte

func (m memKV) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memKV) SaveItem(key string, data []byte) error {
	m[key] = append([]byte(nil), data...)
	return nil
}

type failKV struct{}

func (failKV) LoadItem(string) ([]byte, error) {
	return nil, nil
}

func (failKV) SaveItem(string, []byte) error {
	return errors.New("disk full")
}

func TestInsertTruncates(t *testing.T) {
	var list []Entry
	for i := 1; i <= 11; i++ {
		list = Insert(list, Entry{Player: "p", Score: i * 100})
	}

	if len(list) != Capacity {
		t.Fatalf("len = %d, want %d", len(list), Capacity)
	}
	for _, e := range list {
		if e.Score == 100 {
			t.Error("lowest score should have been dropped")
		}
	}
	for i := 1; i < len(list); i++ {
		if list[i].Score > list[i-1].Score {
			t.Errorf("not sorted at %d: %d > %d", i, list[i].Score, list[i-1].Score)
		}
	}
}

func TestInsertKeepsTieOrderAndInput(t *testing.T) {
	base := []Entry{{Player: "a", Score: 50}}
	out := Insert(base, Entry{Player: "b", Score: 50})

	if len(base) != 1 {
		t.Error("input slice modified")
	}
	if out[0].Player != "a" || out[1].Player != "b" {
		t.Errorf("tie order = %s,%s, want a,b", out[0].Player, out[1].Player)
	}

	// A score below a full board is not ranked.
	var full []Entry
	for i := 0; i < Capacity; i++ {
		full = Insert(full, Entry{Score: 1000})
	}
	if got := Insert(full, Entry{Player: "late", Score: 1}); got[Capacity-1].Player == "late" {
		t.Error("low score entered a full board")
	}
}

func TestKVBoardSubmitNotIdempotent(t *testing.T) {
	kv := memKV{}
	b := NewKVBoard(kv)
	b.now = func() time.Time { return time.UnixMilli(1700000000000) }
	ctx := context.Background()

	if err := b.Submit(ctx, "nebula", "Player 1", 420); err != nil {
		t.Fatal(err)
	}
	if err := b.Submit(ctx, "nebula", "Player 1", 420); err != nil {
		t.Fatal(err)
	}

	top, err := b.Top(ctx, "nebula")
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 {
		t.Errorf("entries = %d, want 2", len(top))
	}

	other, _ := b.Top(ctx, "prism")
	if len(other) != 0 {
		t.Error("boards are keyed per game")
	}
}

func TestKVBoardWireFormat(t *testing.T) {
	kv := memKV{}
	b := NewKVBoard(kv)
	b.now = func() time.Time { return time.UnixMilli(1700000000123) }

	if err := b.Submit(context.Background(), "echorealm", "  neo ", 9000); err != nil {
		t.Fatal(err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(kv["leaderboard_echorealm"], &raw); err != nil {
		t.Fatalf("stored value is not a JSON list: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("len = %d", len(raw))
	}
	e := raw[0]
	if e["username"] != "neo" || e["gameId"] != "echorealm" {
		t.Errorf("entry = %v", e)
	}
	if e["score"].(float64) != 9000 || e["timestamp"].(float64) != 1700000000123 {
		t.Errorf("entry = %v", e)
	}
}

func TestKVBoardErrors(t *testing.T) {
	b := NewKVBoard(failKV{})
	if err := b.Submit(context.Background(), "zenvoid", "p", 1); err == nil {
		t.Error("expected save error")
	}

	corrupt := memKV{"leaderboard_zenvoid": []byte("{not json")}
	if _, err := NewKVBoard(corrupt).Top(context.Background(), "zenvoid"); err == nil {
		t.Error("expected decode error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewKVBoard(memKV{}).Submit(ctx, "zenvoid", "p", 1); err == nil {
		t.Error("expected context error")
	}
}
