package component

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/player"
)

// Posture is the discrete stance of a player that determines the target of its eye height and box height.
type Posture uint8

const (
	PostureStanding Posture = iota
	PostureSneaking
	PostureSitting
	PostureDead
	PostureSwimming
)

func (p Posture) String() string {
	switch p {
	case PostureStanding:
		return "standing"
	case PostureSneaking:
		return "sneaking"
	case PostureSitting:
		return "sitting"
	case PostureDead:
		return "dead"
	case PostureSwimming:
		return "swimming"
	}
	return "unknown"
}

// PostureTarget returns the stance for the controls passed and the multipliers applied to the eye height and
// box height of the profile in it. Floor sitting takes priority over sneaking, which takes priority over
// being dead.
func PostureTarget(controls *player.ControlState, canStandUp, alive, swimming bool) (posture Posture, eyeMul, boxMul float32) {
	switch {
	case controls.FloorSitting:
		return PostureSitting, game.FloorSitEyeMultiplier, game.FloorSitBoxMultiplier
	case (controls.Sneak || !canStandUp) && !controls.IsClimbing && !controls.IsFlying:
		return PostureSneaking, game.SneakEyeMultiplier, game.SneakBoxMultiplier
	case !alive:
		return PostureDead, game.DeadEyeMultiplier, game.DeadBoxMultiplier
	case swimming:
		return PostureSwimming, 1, 1
	}
	return PostureStanding, 1, 1
}

// PostureComponent moves the eye height and the box heights of a player towards the target of its stance.
type PostureComponent struct {
	mPlayer *player.Player
	posture Posture
}

// NewPostureComponent ...
func NewPostureComponent(p *player.Player) *PostureComponent {
	return &PostureComponent{mPlayer: p}
}

// Name ...
func (*PostureComponent) Name() string {
	return "posture"
}

// Posture returns the stance computed during the last update.
func (c *PostureComponent) Posture() Posture {
	return c.posture
}

// Tick updates the posture of players that are not updated every frame.
func (c *PostureComponent) Tick(dt float32) {
	if c.mPlayer.Framed() {
		return
	}
	c.update(dt)
}

// BeforeRender updates the posture of the local player on the presentation side.
func (c *PostureComponent) BeforeRender(dt float32) {
	c.update(dt)
}

func (c *PostureComponent) update(dt float32) {
	p := c.mPlayer
	body := p.Body()
	if p.GameMode() == game.GameModeSpectator {
		body.CanStandUp = true
		return
	}

	controls := p.EffectiveControls()
	body.CanStandUp = !controls.Sneak && c.canStandUp()

	var eyeMul, boxMul float32
	c.posture, eyeMul, boxMul = PostureTarget(controls, body.CanStandUp, p.Alive(), body.Swimming)

	prof := p.Profile()
	eyeTarget, boxTarget := prof.EyeHeight*eyeMul, prof.CollisionHeight*boxMul

	body.LocalEyePos[1] = game.Approach(body.LocalEyePos[1], eyeTarget, game.PostureApproachRate, dt)
	body.SelectionBox = game.WithHeight(body.SelectionBox, game.Approach(game.BoxHeight(body.SelectionBox), boxTarget, game.PostureApproachRate, dt))
	body.CollisionBox = game.WithHeight(body.CollisionBox, game.Approach(game.BoxHeight(body.CollisionBox), boxTarget, game.PostureApproachRate, dt))

	body.LocalEyePos[0], body.LocalEyePos[2] = 0, 0
	if m := p.Mount(); m != nil {
		if eye, ok := m.EyePosition(); ok {
			body.LocalEyePos = eye
		}
	}
}

// canStandUp returns false if the player would collide with a block above it when standing up. A player
// that is already stuck inside a block with its current box may always stand up.
func (c *PostureComponent) canStandUp() bool {
	p := c.mPlayer
	w := p.World()
	if w == nil {
		return true
	}
	body := p.Body()
	if w.IsColliding(body.SelectionBox, body.Position) {
		return true
	}

	min, max := body.SelectionBox.Min(), body.SelectionBox.Max()
	top := p.Profile().CollisionHeight
	if top <= min[1]+1 {
		return true
	}
	// The block below the feet is never in the way of standing up.
	standing := cube.Box(min[0], min[1]+1, min[2], max[0], top, max[2])
	return !w.IsColliding(standing, body.Position)
}
