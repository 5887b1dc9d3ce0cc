package player

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/message"
)

// Sounds plays sounds in the world around a player. Playing a sound never fails: unknown sounds are
// ignored by the implementation.
type Sounds interface {
	// PlaySoundAt plays a sound at a position, audible within rng blocks. If excludeSelf is true, the player
	// the sound originates from does not hear it.
	PlaySoundAt(sound string, pos mgl32.Vec3, excludeSelf bool, rng, volume float32)
}

// Voice makes a player say voice lines.
type Voice interface {
	Talk(t game.TalkType)
}

// Mount is an entity a player can ride.
type Mount interface {
	// EyePosition returns the eye position of a rider relative to the rider position, if the mount dictates
	// one.
	EyePosition() (mgl32.Vec3, bool)
	// Controls returns the controls of the mount, or nil if the rider controls itself.
	Controls() *ControlState
	// Dismount removes the player passed from the mount.
	Dismount(p *Player)
}

// Target is an entity a player may have selected with its cursor.
type Target interface {
	Position() mgl32.Vec3
	SelectionHeight() float32
	// IsPlayer returns true if the target is a player.
	IsPlayer() bool
	FloorSitting() bool
}

// Dropper spawns item entities in the world.
type Dropper interface {
	DropItem(pos mgl32.Vec3, s item.Stack)
}

// Sender sends messages to the other side of the simulation.
type Sender interface {
	WriteMessage(entityID uint64, m message.Message) error
}

// HandActions is notified when the hand action of a player is interrupted, so that whatever the hand was
// doing (eating, drawing a bow) can be cancelled.
type HandActions interface {
	// CanStop returns false if the action in progress refuses to be cancelled without force.
	CanStop(p *Player, use game.HandUse) bool
	Stopped(p *Player, use game.HandUse)
}

type nopSounds struct{}

func (nopSounds) PlaySoundAt(string, mgl32.Vec3, bool, float32, float32) {}

type nopVoice struct{}

func (nopVoice) Talk(game.TalkType) {}

type nopDropper struct{}

func (nopDropper) DropItem(mgl32.Vec3, item.Stack) {}
