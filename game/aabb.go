package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
)

// DFBoxToCubeBox converts a dragonfly bounding box to a float32-cube bounding box.
func DFBoxToCubeBox(b df_cube.BBox) cube.BBox {
	return cube.Box(
		float32(b.Min().X()), float32(b.Min().Y()), float32(b.Min().Z()),
		float32(b.Max().X()), float32(b.Max().Y()), float32(b.Max().Z()),
	)
}

// BoxFromDimensions returns a box centered on the X and Z axis with its bottom at zero.
func BoxFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// WithHeight returns the box passed with its top moved so that it is height tall.
func WithHeight(b cube.BBox, height float32) cube.BBox {
	min, max := b.Min(), b.Max()
	return cube.Box(min[0], min[1], min[2], max[0], min[1]+height, max[2])
}

// BoxHeight returns the height of the box passed.
func BoxHeight(b cube.BBox) float32 {
	return b.Max().Y() - b.Min().Y()
}

// BoxWidth returns the width of the box passed on the X axis.
func BoxWidth(b cube.BBox) float32 {
	return b.Max().X() - b.Min().X()
}
