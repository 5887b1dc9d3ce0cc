package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

func TestSetAndGetBlock(t *testing.T) {
	w := New()
	w.SetBlock(df_cube.Pos{3, 64, -20}, block.Stone{}, nil)

	if _, ok := w.Block(df_cube.Pos{3, 64, -20}).(block.Stone); !ok {
		t.Fatalf("expected stone, got %T", w.Block(df_cube.Pos{3, 64, -20}))
	}
	if _, ok := w.Block(df_cube.Pos{3, 65, -20}).(block.Air); !ok {
		t.Fatal("expected unset position to hold air")
	}
	if _, ok := w.Block(df_cube.Pos{3, 100000, -20}).(block.Air); !ok {
		t.Fatal("expected out of bounds position to hold air")
	}

	w.SetBlock(df_cube.Pos{3, 64, -20}, block.Air{}, nil)
	if w.Chunks() != 0 {
		t.Fatalf("expected no chunks after clearing the only block, got %d", w.Chunks())
	}
}

func TestRemoveChunk(t *testing.T) {
	w := New()
	w.SetBlock(df_cube.Pos{1, 0, 1}, block.Stone{}, nil)
	w.SetBlock(df_cube.Pos{17, 0, 1}, block.Stone{}, nil)
	w.RemoveChunk(protocol.ChunkPos{0, 0})

	if _, ok := w.Block(df_cube.Pos{1, 0, 1}).(block.Air); !ok {
		t.Fatal("expected block in removed chunk to be gone")
	}
	if _, ok := w.Block(df_cube.Pos{17, 0, 1}).(block.Stone); !ok {
		t.Fatal("expected block in other chunk to stay")
	}
}

func TestIsColliding(t *testing.T) {
	w := New()
	w.SetBlock(df_cube.Pos{0, 0, 0}, block.Stone{}, nil)
	box := game.BoxFromDimensions(0.6, 1.8)

	if w.IsColliding(box, mgl32.Vec3{0.5, 1, 0.5}) {
		t.Fatal("standing on top of a block should not collide")
	}
	if !w.IsColliding(box, mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Fatal("expected box inside the block to collide")
	}
}

func TestBlockCollisions(t *testing.T) {
	w := New()
	boxes := w.BlockCollisions(block.Slab{Block: block.Stone{}}, cube.Pos{0, 0, 0})
	if len(boxes) != 1 || !game.Float32ApproxEq(boxes[0].Max().Y(), 0.5) {
		t.Fatalf("expected a single half block box, got %v", boxes)
	}
	if boxes := w.BlockCollisions(block.Water{Still: true, Depth: 8}, cube.Pos{}); len(boxes) != 0 {
		t.Fatalf("liquids have no collision, got %v", boxes)
	}
}

func TestLiquid(t *testing.T) {
	w := New()
	w.SetBlock(df_cube.Pos{0, 0, 0}, block.Water{Still: true, Depth: 8}, nil)
	if _, ok := w.Liquid(df_cube.Pos{0, 0, 0}); !ok {
		t.Fatal("expected water to be a liquid")
	}
	if _, ok := w.Liquid(df_cube.Pos{0, 1, 0}); ok {
		t.Fatal("expected air not to be a liquid")
	}
}
