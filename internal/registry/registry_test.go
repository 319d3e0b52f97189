package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/turbine-climb/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub", "Stub Z", func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", "Stub A", func() Game { return &stubGame{id: "aa-stub"} })
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, "zz-stub")
		delete(entries, "aa-stub")
		mu.Unlock()
	})

	games := List()
	if len(games) != 2 || games[0].ID != "aa-stub" || games[1].Title != "Stub Z" {
		t.Errorf("List() = %+v, want aa-stub then zz-stub", games)
	}

	g1, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g2, _ := Create("aa-stub")
	if g1 == g2 {
		t.Error("Create returned a shared instance")
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", "Dup", func() Game { return &stubGame{} })
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, "dup-stub")
		mu.Unlock()
	})

	defer func() {
		if recover() == nil {
			t.Error("second Register did not panic")
		}
	}()
	Register("dup-stub", "Dup", func() Game { return &stubGame{} })
}
