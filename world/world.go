package world

import (
	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

// World is an in-memory block store implementing Provider. Blocks are grouped per chunk so that whole
// chunks can be dropped at once. Any position that was never set holds air.
type World struct {
	blocks map[protocol.ChunkPos]map[df_cube.Pos]world.Block

	deadlock.RWMutex
}

// New returns an empty World.
func New() *World {
	return &World{
		blocks: make(map[protocol.ChunkPos]map[df_cube.Pos]world.Block),
	}
}

// Block returns the block at the position passed.
func (w *World) Block(pos df_cube.Pos) world.Block {
	if cube.Pos(pos).OutOfBounds(cube.Range(world.Overworld.Range())) {
		return block.Air{}
	}

	w.RLock()
	defer w.RUnlock()

	if b, ok := w.blocks[chunkPosOf(pos)][pos]; ok {
		return b
	}
	return block.Air{}
}

// SetBlock sets the block at the position passed. Setting air removes the block.
func (w *World) SetBlock(pos df_cube.Pos, b world.Block, _ *world.SetOpts) {
	if cube.Pos(pos).OutOfBounds(cube.Range(world.Overworld.Range())) {
		return
	}
	chunkPos := chunkPosOf(pos)

	w.Lock()
	defer w.Unlock()

	if _, isAir := b.(block.Air); isAir || b == nil {
		delete(w.blocks[chunkPos], pos)
		return
	}
	if w.blocks[chunkPos] == nil {
		w.blocks[chunkPos] = make(map[df_cube.Pos]world.Block)
	}
	w.blocks[chunkPos][pos] = b
}

// Liquid returns the liquid at the position passed, if any.
func (w *World) Liquid(pos df_cube.Pos) (world.Liquid, bool) {
	l, ok := w.Block(pos).(world.Liquid)
	return l, ok
}

// RemoveChunk removes all blocks in the chunk passed.
func (w *World) RemoveChunk(pos protocol.ChunkPos) {
	w.Lock()
	delete(w.blocks, pos)
	w.Unlock()
}

// Chunks returns the amount of chunks holding at least one block.
func (w *World) Chunks() int {
	w.RLock()
	defer w.RUnlock()

	n := 0
	for _, c := range w.blocks {
		if len(c) > 0 {
			n++
		}
	}
	return n
}

// BlockCollisions ...
func (w *World) BlockCollisions(b world.Block, pos cube.Pos) []cube.BBox {
	return BlockCollisions(b, pos, w)
}

// IsColliding ...
func (w *World) IsColliding(box cube.BBox, pos mgl32.Vec3) bool {
	return IsColliding(box.Translate(pos), w)
}

func chunkPosOf(pos df_cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}
