package game

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	Pi    = float32(math.Pi)
	TwoPi = 2 * Pi
)

// Approach moves current towards target by (target-current)*rate*dt, never passing the target. A non-positive
// dt leaves current unchanged.
func Approach(current, target, rate, dt float32) float32 {
	if dt <= 0 || current == target {
		return current
	}
	next := current + (target-current)*rate*dt
	if target > current {
		return math32.Min(next, target)
	}
	return math32.Max(next, target)
}

// WrapPhase wraps the phase passed into [0, 2π).
func WrapPhase(phase float32) float32 {
	phase = math32.Mod(phase, TwoPi)
	if phase < 0 {
		phase += TwoPi
	}
	// Mod may round up to exactly 2π for values just below it.
	if phase >= TwoPi {
		phase = 0
	}
	return phase
}

// StepHeight returns the height of the walk wave at the phase passed.
func StepHeight(phase, amplitude, offset float32) float32 {
	return -math32.Max(0, math32.Abs(math32.Sin(WalkCycleFrequency*phase)*amplitude)+offset)
}

// AngleRadDistance returns the signed shortest distance in radians from start to end, in [-π, π).
func AngleRadDistance(start, end float32) float32 {
	return math32.Mod(math32.Mod(end-start, TwoPi)+TwoPi+Pi, TwoPi) - Pi
}

// SnapCardinal rounds the yaw passed to the nearest multiple of 90 degrees.
func SnapCardinal(yaw float32) float32 {
	return math32.Round(yaw/(Pi/2)) * (Pi / 2)
}

// Clamp clamps v between min and max.
func Clamp(v, min, max float32) float32 {
	return math32.Max(min, math32.Min(v, max))
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// HorizontalLenSqr returns the squared length of the vector on the X and Z axis.
func HorizontalLenSqr(v mgl32.Vec3) float32 {
	return v[0]*v[0] + v[2]*v[2]
}
