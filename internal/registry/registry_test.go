package registry

import (
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })
	t.Cleanup(func() {
		unregister("zz_stub_a")
		unregister("zz_stub_b")
	})

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Error("Exists() reported wrong membership")
	}

	g, err := Create("zz_stub_a")
	if err != nil || g.ID() != "zz_stub_a" {
		t.Fatalf("Create() = %v, %v", g, err)
	}
	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}

	var seen []GameInfo
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			seen = append(seen, info)
		}
	}
	if len(seen) != 2 || seen[0].ID != "zz_stub_a" || seen[1].Title != "Stub zz_stub_b" {
		t.Errorf("List() = %v", seen)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	t.Cleanup(func() { unregister("zz_dup") })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
