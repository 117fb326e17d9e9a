package core

import (
	"sync"
	"testing"
)

func TestIntentsTakeConsumesEdges(t *testing.T) {
	var in Intents
	in.Press(ActionJump)
	in.Press(ActionPause)
	in.SetRight(true)

	f := in.Take()
	if !f.Has(ActionJump) || !f.Has(ActionPause) || !f.Has(ActionRight) {
		t.Fatalf("first Take() missing actions: %v", f.Actions)
	}

	f = in.Take()
	if f.Has(ActionJump) || f.Has(ActionPause) {
		t.Error("edge-triggered actions should be consumed by Take()")
	}
	if !f.Has(ActionRight) {
		t.Error("held movement should persist across frames")
	}

	in.SetRight(false)
	if in.Take().Has(ActionRight) {
		t.Error("released movement should not be reported")
	}
}

func TestIntentsViewport(t *testing.T) {
	var in Intents
	if in.Take().Viewport != nil {
		t.Fatal("no viewport change expected")
	}

	in.Resize(640, 480)
	in.Resize(1000, 600)
	f := in.Take()
	if f.Viewport == nil || *f.Viewport != (Size{W: 1000, H: 600}) {
		t.Fatalf("Viewport = %v, expected latest resize", f.Viewport)
	}
	if in.Take().Viewport != nil {
		t.Error("viewport change should be consumed")
	}
}

func TestIntentsQuitNotConsumed(t *testing.T) {
	var in Intents
	in.Press(ActionQuit)
	in.Take()
	if !in.Quitting() {
		t.Error("quit should remain raised after Take()")
	}
}

func TestIntentsConcurrentWriters(t *testing.T) {
	var in Intents
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				in.SetLeft(j%2 == 0)
				in.Press(ActionJump)
				in.Resize(i, j)
			}
		}(i)
	}
	for i := 0; i < 100; i++ {
		in.Take()
	}
	wg.Wait()
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Viewport = &Size{W: 1, H: 1}
	f.Clear()
	if f.Has(ActionJump) || f.Viewport != nil {
		t.Error("Clear should drop actions and viewport")
	}
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
}
