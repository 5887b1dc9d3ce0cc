package component

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/player"
)

// AmbientAnimationComponent plays animations that are not driven by input: random idle animations after
// standing still for a while, and shielding the eyes from strong wind.
type AmbientAnimationComponent struct {
	mPlayer *player.Player

	idleSeconds  float32
	idleEligible bool

	strongWindSeconds float32
}

// NewAmbientAnimationComponent ...
func NewAmbientAnimationComponent(p *player.Player) *AmbientAnimationComponent {
	return &AmbientAnimationComponent{mPlayer: p}
}

// Name ...
func (*AmbientAnimationComponent) Name() string {
	return "ambient_animation"
}

// IdleEligible returns true if the player stood idle long enough during the last tick for a random idle
// animation to be drawn.
func (c *AmbientAnimationComponent) IdleEligible() bool {
	return c.idleEligible
}

// IdleSeconds returns the time the player has been standing idle.
func (c *AmbientAnimationComponent) IdleSeconds() float32 {
	return c.idleSeconds
}

// StrongWindSeconds returns the time the player has been exposed to strong wind.
func (c *AmbientAnimationComponent) StrongWindSeconds() float32 {
	return c.strongWindSeconds
}

// Tick ...
func (c *AmbientAnimationComponent) Tick(dt float32) {
	p := c.mPlayer
	if p.Side() == player.SidePresentation && !p.Local() {
		return
	}
	c.protectEyes(dt)
	c.idle(dt)
}

func (c *AmbientAnimationComponent) idle(dt float32) {
	p := c.mPlayer
	controls := p.Controls()
	if p.AuthoritativeControls().TriesToMove || controls.IsFlying || controls.Gliding || !p.Inventory().RightHand().Empty() {
		c.idleSeconds, c.idleEligible = 0, false
		return
	}

	c.idleSeconds += dt
	c.idleEligible = c.idleSeconds > game.IdleAnimationDelay
	anims := p.Profile().RandomIdleAnimations
	if !c.idleEligible || len(anims) == 0 {
		return
	}
	if p.Rand().Float64() < game.IdleAnimationChance {
		anim := anims[p.Rand().IntN(len(anims))]
		p.Animator().Start(anim)
		p.Log().Debugf("playing idle animation %s", anim)
		c.idleSeconds = 0
	}
}

// protectEyes makes the local player shield its eyes when it looks into a strong wind outside. Only the
// presentation side knows the weather at the player.
func (c *AmbientAnimationComponent) protectEyes(dt float32) {
	p := c.mPlayer
	if p.Side() != player.SidePresentation {
		return
	}
	env := p.Environment()
	body := p.Body()

	if WindDiscomfort(env) > game.StrongWindThreshold && !body.Swimming {
		c.strongWindSeconds += dt
	} else {
		c.strongWindSeconds = 0
	}

	windAngle := math32.Atan2(env.Wind[0], env.Wind[2])
	lookingIntoWind := math32.Abs(game.AngleRadDistance(windAngle, body.Yaw-game.Pi/2)) < game.WindFacingToleranceR
	outside := env.RainDistance < game.OutsideRainDistance

	if outside && lookingIntoWind && p.Inventory().RightHand().Empty() &&
		c.strongWindSeconds > game.StrongWindDuration && p.GameMode() != game.GameModeCreative {
		p.Animator().Start(game.AnimationProtectEyes)
		return
	}
	p.Animator().Stop(game.AnimationProtectEyes)
}

// WindDiscomfort returns how unpleasant the wind in the environment passed is, either because it carries
// sand in a dry climate or snow in a cold one.
func WindDiscomfort(env player.Environment) float32 {
	speed := env.Wind.Len()
	sandstorm := speed * (1 - env.WorldgenRainfall) * (1 - env.Rainfall)
	snowstorm := speed * env.Rainfall * math32.Max(0, (1-env.Temperature)/5)
	return math32.Max(sandstorm, snowstorm)
}
