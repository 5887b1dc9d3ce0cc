package player

import (
	"time"

	"github.com/oomph-ac/playersim/game"
)

// ControlState holds the movement and hand input of an entity.
type ControlState struct {
	TriesToMove  bool
	Sneak        bool
	Sprint       bool
	IsFlying     bool
	IsClimbing   bool
	Gliding      bool
	NoClip       bool
	DetachedMode bool
	FloorSitting bool

	HandUse        game.HandUse
	LeftMouseDown  bool
	RightMouseDown bool
	// UsingBegin is the time the current hand use began. It is zero if the hand is not in use.
	UsingBegin time.Time

	MovespeedMultiplier float32
}

// DefaultControls returns a ControlState with no input.
func DefaultControls() ControlState {
	return ControlState{MovespeedMultiplier: 1}
}

// Controls returns the display controls of the player. These are written by the input source of the player
// on the side that drives it, and mirror the authoritative controls elsewhere.
func (p *Player) Controls() *ControlState {
	return &p.controls
}

// AuthoritativeControls returns the controls decisions about the player are made with. They are never the
// same value as the display controls: SyncControls and SetAuthoritativeControls copy between the two.
func (p *Player) AuthoritativeControls() *ControlState {
	return &p.authControls
}

// SyncControls copies the display controls into the authoritative controls. It is called at the start of
// every tick on the side that drives the input of the player.
func (p *Player) SyncControls() {
	p.authControls = p.controls
}

// SetAuthoritativeControls replaces the authoritative controls with the state received from the side that
// drives the player, and mirrors it into the display controls.
func (p *Player) SetAuthoritativeControls(c ControlState) {
	p.authControls = c
	p.controls = c
}

// EffectiveControls returns the controls posture and locomotion are derived from: those of the mount if the
// player is riding one that provides controls, otherwise the authoritative controls.
func (p *Player) EffectiveControls() *ControlState {
	if p.mount != nil {
		if c := p.mount.Controls(); c != nil {
			return c
		}
	}
	return &p.authControls
}

// DrivesInput returns true if the input of the player originates on this side: the authoritative side
// receives input for every player, and the presentation side only for the local player.
func (p *Player) DrivesInput() bool {
	return p.side == SideAuthoritative || p.local
}
