package world

import (
	"iter"

	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/oerror"
)

// MaxSearchBlocks is the maximum amount of boxes a single search yields before reporting an error.
const MaxSearchBlocks = 1024

// BlockName returns the name of the block.
func BlockName(b world.Block) string {
	n, _ := b.EncodeBlock()
	return n
}

// BlockCollisions returns the collision boxes of the given block, relative to the block position.
func BlockCollisions(b world.Block, pos cube.Pos, src world.BlockSource) []cube.BBox {
	if _, isLiquid := b.(world.Liquid); isLiquid {
		return nil
	}
	switch BlockName(b) {
	case "minecraft:air", "minecraft:portal", "minecraft:end_portal", "minecraft:web":
		return nil
	case "minecraft:bed":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 9.0/16.0, 1)}
	case "minecraft:waterlily":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 1.0/64.0, 1)}
	case "minecraft:soul_sand":
		return []cube.BBox{cube.Box(0, 0, 0, 1, 7.0/8.0, 1)}
	case "minecraft:snow_layer":
		_, dat := b.EncodeBlock()
		height, ok := dat["height"].(int32)
		if !ok {
			return nil
		}
		return []cube.BBox{cube.Box(0, 0, 0, 1, float32(height)/8.0, 1)}
	case "minecraft:tallgrass", "minecraft:fern", "minecraft:large_fern", "minecraft:vine",
		"minecraft:red_mushroom", "minecraft:brown_mushroom", "minecraft:lever":
		return nil
	}

	dfBoxes := b.Model().BBox(df_cube.Pos(pos), src)
	boxes := make([]cube.BBox, len(dfBoxes))
	for i, bb := range dfBoxes {
		boxes[i] = game.DFBoxToCubeBox(bb)
	}
	return boxes
}

// GetNearbyBBoxes yields the block collision boxes, in world space, that intersect with the box passed.
func GetNearbyBBoxes(aabb cube.BBox, src world.BlockSource) iter.Seq2[error, cube.BBox] {
	return func(yield func(error, cube.BBox) bool) {
		boxCount := 0
		grown := aabb.Grow(0.5)
		min, max := grown.Min(), grown.Max()
		minX, minY, minZ := int(math32.Floor(min[0])), int(math32.Floor(min[1])), int(math32.Floor(min[2]))
		maxX, maxY, maxZ := int(math32.Ceil(max[0])), int(math32.Ceil(max[1])), int(math32.Ceil(max[2]))

		var err error
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				for z := minZ; z <= maxZ; z++ {
					pos := cube.Pos{x, y, z}
					b := src.Block(df_cube.Pos(pos))
					if _, isAir := b.(block.Air); isAir {
						continue
					}

					for _, box := range BlockCollisions(b, pos, src) {
						box = box.Translate(pos.Vec3())
						if !box.IntersectsWith(aabb) {
							continue
						}

						boxCount++
						if boxCount >= MaxSearchBlocks && err == nil {
							err = oerror.New("exceeded max search blocks (startPos=%v endPos=%v)", min, max)
						}
						if !yield(err, box) {
							return
						}
					}
				}
			}
		}
	}
}

// IsColliding returns true if the world-space box passed intersects with any block collision box.
func IsColliding(aabb cube.BBox, src world.BlockSource) bool {
	for range GetNearbyBBoxes(aabb, src) {
		return true
	}
	return false
}
