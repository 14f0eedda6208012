package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/orba-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string {
	return g.id
}

func (g stubGame) Title() string {
	return "Stub " + g.id
}

func (g stubGame) Blurb() string {
	return "a stub"
}

func (g stubGame) Reset(core.RuntimeConfig) {}

func (g stubGame) Step(core.Tick) core.StepResult {
	return core.StepResult{}
}

func (g stubGame) Render(*core.Screen) {}

func (g stubGame) State() core.GameState {
	return core.GameState{}
}

func init() {
	Register("zz-stub-b", func() Game { return stubGame{"zz-stub-b"} })
	Register("zz-stub-a", func() Game { return stubGame{"zz-stub-a"} })
}

func TestListSortedWithBlurbs(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("list not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	info, ok := Info("zz-stub-a")
	if !ok {
		t.Fatal("stub not registered")
	}
	if info.Title != "Stub zz-stub-a" || info.Blurb != "a stub" {
		t.Errorf("info = %+v", info)
	}
}

func TestCreate(t *testing.T) {
	g, err := Create("zz-stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz-stub-b" {
		t.Errorf("ID = %q", g.ID())
	}

	if _, err := Create("nope"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create unknown = %v, want ErrUnknownGame", err)
	}
	if Exists("nope") || !Exists("zz-stub-a") {
		t.Error("Exists disagrees with Register")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-stub-a", func() Game { return stubGame{"zz-stub-a"} })
}
