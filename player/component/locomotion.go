package component

import (
	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/player"
	oworld "github.com/oomph-ac/playersim/world"
)

// LocomotionComponent advances the walk cycle of a player, bobs its view and plays its footsteps.
type LocomotionComponent struct {
	mPlayer *player.Player

	phase          float32
	stepHeight     float32
	prevStepHeight float32
	// rising is true while the step height went up during the last update.
	rising bool
	moving bool

	footsteps uint64

	wasOnGround bool
	airMotionY  float32
}

// NewLocomotionComponent ...
func NewLocomotionComponent(p *player.Player) *LocomotionComponent {
	return &LocomotionComponent{mPlayer: p, wasOnGround: true}
}

// Name ...
func (*LocomotionComponent) Name() string {
	return "locomotion"
}

// Phase returns the walk cycle phase, in [0, 2π).
func (c *LocomotionComponent) Phase() float32 {
	return c.phase
}

// StepHeight returns the height of the walk wave computed during the last update. It is never positive.
func (c *LocomotionComponent) StepHeight() float32 {
	return c.stepHeight
}

// Moving returns true if the player was walking during the last update.
func (c *LocomotionComponent) Moving() bool {
	return c.moving
}

// Footsteps returns the amount of footsteps taken since the component was created.
func (c *LocomotionComponent) Footsteps() uint64 {
	return c.footsteps
}

// Tick checks for landings and advances the walk cycle of players not updated every frame.
func (c *LocomotionComponent) Tick(dt float32) {
	c.checkImpact()
	if c.mPlayer.Framed() {
		return
	}
	c.update(dt)
}

// BeforeRender advances the walk cycle of the local player on the presentation side.
func (c *LocomotionComponent) BeforeRender(dt float32) {
	c.update(dt)
}

func (c *LocomotionComponent) update(dt float32) {
	p := c.mPlayer
	if p.GameMode() == game.GameModeSpectator {
		return
	}
	controls := p.EffectiveControls()
	body := p.Body()

	c.moving = controls.TriesToMove && game.HorizontalLenSqr(body.Motion) > game.MovingThreshold &&
		!controls.NoClip && !controls.DetachedMode && body.OnGround

	frequency := dt * controls.MovespeedMultiplier * p.WalkSpeedMultiplier()
	if controls.Sprint {
		frequency *= game.SprintPhaseFactor
	} else {
		frequency *= game.WalkPhaseFactor
	}
	if controls.Sneak {
		frequency *= game.SneakPhaseFactor
	}
	if c.moving {
		c.phase = game.WrapPhase(c.phase + frequency)
	} else {
		c.phase = 0
	}

	sneakDiv := game.WalkStepDivider
	if controls.Sneak {
		sneakDiv = game.SneakStepDivider
	}
	amplitude := float32(1)
	if body.FeetInLiquid {
		amplitude = game.LiquidAmplitude
	} else if controls.Sprint {
		amplitude += game.SprintAmplitude
	}
	amplitude /= 3 * sneakDiv
	c.stepHeight = game.StepHeight(c.phase, amplitude, game.StepOffset/sneakDiv)

	prefs := p.Preferences()
	if p.Side() == player.SidePresentation && prefs.ViewBobbing && prefs.FirstPerson {
		body.LocalEyePos[1] += c.stepHeight / 3 * dt * game.ViewBobScale
	}

	if c.moving {
		// A footstep is the lowest point of the wave: the step height stops falling and starts rising.
		if c.stepHeight > c.prevStepHeight {
			if !c.rising {
				c.footstep()
			}
			c.rising = true
		} else {
			c.rising = false
		}
	}
	c.prevStepHeight = c.stepHeight
}

func (c *LocomotionComponent) footstep() {
	c.footsteps++

	p := c.mPlayer
	w := p.World()
	if w == nil {
		return
	}
	body := p.Body()
	under, ok := blockUnder(w, body.Position, game.BoxWidth(body.CollisionBox)/2)
	feet := w.Block(feetPos(body.Position))

	volume := float32(1)
	if p.EffectiveControls().Sneak {
		volume = game.SneakStepVolume
	}
	excludeSelf := p.Side() == player.SideAuthoritative
	soundPos := body.Position.Add(mgl32.Vec3{0, 1, 0})

	if liq, isLiquid := feet.(world.Liquid); isLiquid {
		p.Sounds().PlaySoundAt(InsideSound(liq), soundPos, excludeSelf, game.FootstepSoundRange, volume)
	}
	if body.Swimming || !ok {
		return
	}
	if hasInsideSound(feet) && oworld.BlockName(feet) != oworld.BlockName(under) {
		p.Sounds().PlaySoundAt(WalkSound(under), soundPos, excludeSelf, game.FootstepSoundRange, volume*0.5)
		p.Sounds().PlaySoundAt(InsideSound(feet), soundPos, excludeSelf, game.FootstepSoundRange, volume)
	} else {
		p.Sounds().PlaySoundAt(WalkSound(under), soundPos, excludeSelf, game.FootstepSoundRange, volume)
	}
	p.Log().Debugf("footstep on %s", oworld.BlockName(under))
	p.FootStep(under)
}

// checkImpact plays the landing sound when the player hits the ground falling fast enough.
func (c *LocomotionComponent) checkImpact() {
	p := c.mPlayer
	body := p.Body()
	defer func() {
		c.wasOnGround = body.OnGround
		if !body.OnGround {
			c.airMotionY = body.Motion[1]
		}
	}()
	if c.wasOnGround || !body.OnGround {
		return
	}
	motionY := math32.Min(c.airMotionY, body.Motion[1])
	if p.GameMode() == game.GameModeSpectator || motionY >= game.ImpactMotionThreshold {
		return
	}

	if w := p.World(); w != nil && !body.Swimming {
		if under, ok := blockUnder(w, body.Position, game.BoxWidth(body.CollisionBox)/2); ok {
			p.Sounds().PlaySoundAt(WalkSound(under), body.Position, true, game.FootstepSoundRange, game.ImpactStepVolume)
		}
	}
	p.Impact(motionY)
}

// WalkSound returns the sound played when walking on the block passed.
func WalkSound(b world.Block) string {
	return "walk/" + oworld.BlockName(b)
}

// InsideSound returns the sound played when walking through the block passed.
func InsideSound(b world.Block) string {
	return "inside/" + oworld.BlockName(b)
}

func hasInsideSound(b world.Block) bool {
	switch b.(type) {
	case block.Air, world.Liquid:
		return false
	}
	return true
}

func feetPos(pos mgl32.Vec3) df_cube.Pos {
	return df_cube.Pos{int(math32.Floor(pos[0])), int(math32.Floor(pos[1] + 0.1)), int(math32.Floor(pos[2]))}
}

// blockUnder returns the block carrying an entity at pos. If the block right below the centre has no
// collision box, the blocks below the corners of the entity are tried, so that standing on the edge of a
// block still finds it.
func blockUnder(w oworld.Provider, pos mgl32.Vec3, halfWidth float32) (world.Block, bool) {
	y := int(math32.Floor(pos[1] - 0.1))
	offsets := [...][2]float32{{0, 0}, {-halfWidth, -halfWidth}, {halfWidth, -halfWidth}, {-halfWidth, halfWidth}, {halfWidth, halfWidth}}
	for _, off := range offsets {
		bp := df_cube.Pos{int(math32.Floor(pos[0] + off[0])), y, int(math32.Floor(pos[2] + off[1]))}
		b := w.Block(bp)
		if len(w.BlockCollisions(b, cube.Pos(bp))) > 0 {
			return b, true
		}
	}
	return nil, false
}
