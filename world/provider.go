package world

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Provider is the read-only view of the world the simulation queries. Implementations must be safe to call
// several times per tick and must not have side effects.
type Provider interface {
	// Block returns the block at the position passed.
	Block(pos df_cube.Pos) world.Block
	// BlockCollisions returns the collision boxes of the block passed, relative to its position.
	BlockCollisions(b world.Block, pos cube.Pos) []cube.BBox
	// IsColliding returns true if the box passed, translated to pos, intersects with any block collision box.
	IsColliding(box cube.BBox, pos mgl32.Vec3) bool
}
