package player

import (
	"slices"

	"github.com/oomph-ac/playersim/game"
)

// Profile is the static description of a kind of player entity. Fields left at their zero value are used as
// zero: a profile without an eye height results in an eye height of zero, never in an error.
type Profile struct {
	EyeHeight       float32
	CollisionWidth  float32
	CollisionHeight float32

	// RandomIdleAnimations are the animations one of which is played after standing idle for a while.
	RandomIdleAnimations []string
	// AuthoritativeHitAnimations are hit animations that may not be interrupted by the hand controller once
	// they have started.
	AuthoritativeHitAnimations []string

	// KeepContents stops the inventory from being dropped on death.
	KeepContents bool
	// DropArmourOnDeath makes protective gear drop on death.
	DropArmourOnDeath bool
}

// DefaultProfile returns the profile of a regular player.
func DefaultProfile() Profile {
	return Profile{
		EyeHeight:            game.DefaultEyeHeight,
		CollisionWidth:       game.DefaultCollisionWidth,
		CollisionHeight:      game.DefaultCollisionHeight,
		RandomIdleAnimations: []string{"idle-stretch", "idle-yawn", "idle-lookaround"},
	}
}

// IsAuthoritativeHit returns true if the hit animation passed may not be interrupted once started.
func (prof Profile) IsAuthoritativeHit(code string) bool {
	return slices.Contains(prof.AuthoritativeHitAnimations, code)
}
