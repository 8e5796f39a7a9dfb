package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/color-catch/internal/core"
)

type stubGame struct {
	id string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("expected both stubs to be registered")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("expected ID stub-a, got %q", g.ID())
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "stub-a" || info.ID == "stub-b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("expected title %q, got %q", "Stub "+info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "stub-b" || ids[1] != "stub-a" {
		t.Errorf("expected registration order [stub-b stub-a], got %v", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
	if Exists("no-such-game") {
		t.Error("expected unknown game to not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected duplicate registration to panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}
