package animation

import (
	"slices"
	"testing"
)

func TestStartStopIdempotent(t *testing.T) {
	s := NewSet()
	if !s.Start("sitflooredge") {
		t.Fatal("expected first start to report a change")
	}
	if s.Start("sitflooredge") {
		t.Fatal("expected second start to be a no-op")
	}
	if !s.IsActive("sitflooredge") {
		t.Fatal("expected animation to be active")
	}
	if !s.Stop("sitflooredge") || s.Stop("sitflooredge") {
		t.Fatal("expected only the first stop to report a change")
	}
	if s.Start("") {
		t.Fatal("empty codes are never started")
	}
}

func TestActiveSorted(t *testing.T) {
	s := NewSet()
	s.Start("walk")
	s.Start("breakhand")
	s.Start("sneakidle")
	if got := s.Active(); !slices.Equal(got, []string{"breakhand", "sneakidle", "walk"}) {
		t.Fatalf("unexpected active animations %v", got)
	}
}
