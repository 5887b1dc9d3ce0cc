package stat

import (
	"errors"
	"math"
	"testing"

	"github.com/oomph-ac/playersim/oerror"
)

func TestWalkSpeedBlend(t *testing.T) {
	for _, order := range [][]string{{"armor", "buff"}, {"buff", "armor"}} {
		r := NewRegistry().Register("walkspeed", Multiplicative)
		values := map[string]float64{"armor": 0.9, "buff": 1.2}
		for _, src := range order {
			if err := r.SetSource("walkspeed", src, values[src]); err != nil {
				t.Fatal(err)
			}
		}
		v, err := r.Blended("walkspeed")
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(v-1.08) > 1e-9 {
			t.Fatalf("expected 1.08 for order %v, got %v", order, v)
		}
	}
}

func TestFlatSumOrderIndependent(t *testing.T) {
	values := []float64{0.1, 0.7, -0.3, 1e-3, 12.5}
	ids := []string{"a", "b", "c", "d", "e"}

	forward := NewRegistry().Register("loot", FlatSum)
	backward := NewRegistry().Register("loot", FlatSum)
	sum := 0.0
	for i := range ids {
		_ = forward.SetSource("loot", ids[i], values[i])
		j := len(ids) - 1 - i
		_ = backward.SetSource("loot", ids[j], values[j])
		sum += values[i]
	}

	a, _ := forward.Blended("loot")
	b, _ := backward.Blended("loot")
	if a != b {
		t.Fatalf("blend depends on insertion order: %v != %v", a, b)
	}
	if math.Abs(a-sum) > 1e-9 {
		t.Fatalf("expected sum %v, got %v", sum, a)
	}
}

func TestEmptyBases(t *testing.T) {
	r := NewRegistry().Register("walkspeed", Multiplicative).Register("repair", FlatSum)
	if v, _ := r.Blended("walkspeed"); v != 1 {
		t.Fatalf("expected multiplicative base 1, got %v", v)
	}
	if v, _ := r.Blended("repair"); v != 0 {
		t.Fatalf("expected flat base 0, got %v", v)
	}
}

func TestRemoveAndReAddRestores(t *testing.T) {
	r := NewRegistry().Register("walkspeed", Multiplicative)
	_ = r.SetSource("walkspeed", "armor", 0.9)
	_ = r.SetSource("walkspeed", "buff", 1.2)
	_ = r.SetSource("walkspeed", "slow", 0.85)
	before, _ := r.Blended("walkspeed")

	_ = r.RemoveSource("walkspeed", "buff")
	mid, _ := r.Blended("walkspeed")
	if mid == before {
		t.Fatal("expected blended value to change after removing a source")
	}

	_ = r.SetSource("walkspeed", "buff", 1.2)
	after, _ := r.Blended("walkspeed")
	if after != before {
		t.Fatalf("expected %v after re-adding, got %v", before, after)
	}
}

func TestReRegisterIsNoop(t *testing.T) {
	r := NewRegistry().Register("walkspeed", Multiplicative)
	_ = r.SetSource("walkspeed", "armor", 0.5)
	r.Register("walkspeed", FlatSum)

	if k, _ := r.Kind("walkspeed"); k != Multiplicative {
		t.Fatalf("expected kind to stay multiplicative, got %v", k)
	}
	if v, _ := r.Blended("walkspeed"); v != 0.5 {
		t.Fatalf("expected sources to survive re-registering, got %v", v)
	}
}

func TestNotRegistered(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Blended("walkspeed"); !errors.Is(err, oerror.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
	if err := r.SetSource("walkspeed", "armor", 1); !errors.Is(err, oerror.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
	if err := r.RemoveSource("walkspeed", "armor"); !errors.Is(err, oerror.ErrNotRegistered) {
		t.Fatalf("expected ErrNotRegistered, got %v", err)
	}
}

func TestCacheInvalidation(t *testing.T) {
	r := NewRegistry().Register("walkspeed", Multiplicative)
	_ = r.SetSource("walkspeed", "armor", 0.9)
	if v, _ := r.Blended("walkspeed"); v != 0.9 {
		t.Fatalf("expected 0.9, got %v", v)
	}
	_ = r.SetSource("walkspeed", "armor", 0.5)
	if v, _ := r.Blended("walkspeed"); v != 0.5 {
		t.Fatalf("expected cache to be invalidated, got %v", v)
	}
}

func TestSourcesInsertionOrder(t *testing.T) {
	r := NewRegistry().Register("walkspeed", Multiplicative)
	_ = r.SetSource("walkspeed", "z", 1)
	_ = r.SetSource("walkspeed", "a", 2)
	_ = r.SetSource("walkspeed", "z", 3)

	sources, _ := r.Sources("walkspeed")
	if len(sources) != 2 || sources[0].ID != "z" || sources[0].Value != 3 || sources[1].ID != "a" {
		t.Fatalf("unexpected sources %v", sources)
	}
}
