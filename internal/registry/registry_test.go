package registry

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Controls() string { return "keys" }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Resize(int, int) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := indexOf(ids, "stub_a"), indexOf(ids, "stub_b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Fatalf("List() should be sorted and contain both stubs, got %v", ids)
	}
	if list[ia].Title != "Stub stub_a" || list[ia].Controls != "keys" {
		t.Errorf("metadata should come from the factory, got %+v", list[ia])
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create(stub_a) failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Create returned %q, expected stub_a", g.ID())
	}

	if !Exists("stub_b") || Exists("missing") {
		t.Error("Exists should report registered IDs only")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same ID twice should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
