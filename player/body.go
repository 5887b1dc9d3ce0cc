package player

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
)

// Body holds the physical state of a player. Position, motion and the ground/liquid flags are written by
// the physics of the side that owns the player; eye position and box heights are written by the posture
// component.
type Body struct {
	Position mgl32.Vec3
	Motion   mgl32.Vec3

	// Yaw, Pitch and BodyYaw are in radians.
	Yaw, Pitch, BodyYaw float32
	yawLimits           [2]float32
	yawLimited          bool

	OnGround     bool
	FeetInLiquid bool
	Swimming     bool

	// LocalEyePos is the eye position relative to Position.
	LocalEyePos mgl32.Vec3
	// SelectionBox and CollisionBox are relative to Position.
	SelectionBox cube.BBox
	CollisionBox cube.BBox

	// CanStandUp is true if the player was not sneaking and had room to stand up the last time posture was
	// updated.
	CanStandUp bool
	// PositionVersion is increased every time the position is set by the authoritative side rather than by
	// physics.
	PositionVersion uint32
}

// newBody returns a standing Body for the profile passed.
func newBody(prof Profile) Body {
	box := game.BoxFromDimensions(prof.CollisionWidth, prof.CollisionHeight)
	return Body{
		LocalEyePos:  mgl32.Vec3{0, prof.EyeHeight, 0},
		SelectionBox: box,
		CollisionBox: box,
		CanStandUp:   true,
	}
}

// EyePosition returns the eye position in world space.
func (b *Body) EyePosition() mgl32.Vec3 {
	return b.Position.Add(b.LocalEyePos)
}

// SetYawLimits restricts BodyYaw to [min, max].
func (b *Body) SetYawLimits(min, max float32) {
	b.yawLimits = [2]float32{min, max}
	b.yawLimited = true
	b.BodyYaw = game.Clamp(b.BodyYaw, min, max)
}

// ClearYawLimits removes the restriction set by SetYawLimits.
func (b *Body) ClearYawLimits() {
	b.yawLimited = false
}

// YawLimits returns the limits of BodyYaw, if any are set.
func (b *Body) YawLimits() (min, max float32, ok bool) {
	return b.yawLimits[0], b.yawLimits[1], b.yawLimited
}

// LimitYaw clamps BodyYaw to the yaw limits, if set. A yaw that wrapped around ±π is clamped by its
// shortest distance to the limits.
func (b *Body) LimitYaw() {
	if !b.yawLimited {
		return
	}
	min, max := b.yawLimits[0], b.yawLimits[1]
	centre, half := (min+max)/2, (max-min)/2
	if d := game.AngleRadDistance(centre, b.BodyYaw); d < -half || d > half {
		b.BodyYaw = centre + game.Clamp(d, -half, half)
	}
}

// SelectionHeight returns the height of the selection box.
func (b *Body) SelectionHeight() float32 {
	return game.BoxHeight(b.SelectionBox)
}
