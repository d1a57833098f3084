package stride

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stride-anim/stride/animation"
	"github.com/stride-anim/stride/player"
)

type captureHandler struct {
	messages []string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	h.messages = append(h.messages, r.Message)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *captureHandler) WithGroup(string) slog.Handler { return h }

func fullLibrary() *animation.Library {
	l := animation.NewLibrary()
	for _, id := range animation.AllPoses() {
		l.Add(id, animation.NewPose(id.FileName()))
	}
	return l
}

func TestSystemSpawnAndRemove(t *testing.T) {
	system := New(slog.Default(), animation.NewLibrary())

	p, err := system.Spawn(player.Config{})
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}
	if got, ok := system.Player(p.EntityID()); !ok || got != p {
		t.Fatal("spawned player should be retrievable by entity ID")
	}

	// No kinematic state yet: ticks must skip cleanly.
	system.Tick(0.02)
	if p.CurrentTick() != 0 {
		t.Fatalf("player without kinematics should not advance, got tick %d", p.CurrentTick())
	}

	system.Remove(p.EntityID())
	if _, ok := system.Player(p.EntityID()); ok {
		t.Fatal("removed player should be gone")
	}
	if !p.Closed() {
		t.Fatal("removed player should be closed")
	}
}

func TestSpawnWarnsOnIncompleteLibrary(t *testing.T) {
	capture := &captureHandler{}
	system := New(slog.New(capture), animation.NewLibrary())
	if _, err := system.Spawn(player.Config{}); err != nil {
		t.Fatalf("spawn failed: %v", err)
	}

	found := false
	for _, msg := range capture.messages {
		if msg == "spawning with incomplete pose library" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a warning for the empty pose library")
	}

	capture = &captureHandler{}
	system = New(slog.New(capture), fullLibrary())
	if _, err := system.Spawn(player.Config{}); err != nil {
		t.Fatalf("spawn failed: %v", err)
	}
	if len(capture.messages) != 0 {
		t.Fatalf("complete library should spawn quietly, got %v", capture.messages)
	}
}

func TestSystemClose(t *testing.T) {
	system := New(slog.Default(), animation.NewLibrary())
	p, _ := system.Spawn(player.Config{})
	system.Close()

	if !p.Closed() {
		t.Fatal("closing the system should close its players")
	}
	if _, ok := system.Player(p.EntityID()); ok {
		t.Fatal("closed system should hold no players")
	}
}
