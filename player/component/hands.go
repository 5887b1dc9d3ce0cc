package component

import (
	"github.com/oomph-ac/playersim/animation"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/player"
)

// heldMachine tracks the animation one hand is committed to. It only remembers what it started last, and
// compares that against what the hand should be doing now.
type heldMachine struct {
	active bool
	code   string
}

// changed returns true if the machine should restart: the hand started or stopped the action, or the
// animation of the action changed while it was running.
func (m *heldMachine) changed(now bool, code string) bool {
	return now != m.active || (m.active && code != m.code)
}

func (m *heldMachine) stop(a animation.Player) {
	if m.active {
		a.Stop(m.code)
	}
	m.active, m.code = false, ""
}

func (m *heldMachine) start(a animation.Player, code string) {
	if code == "" {
		return
	}
	a.Start(code)
	m.active, m.code = true, code
}

// update restarts the machine if it changed. It returns true if the machine was restarted.
func (m *heldMachine) update(a animation.Player, now bool, code string) bool {
	if !m.changed(now, code) {
		return false
	}
	m.stop(a)
	if now {
		m.start(a, code)
	}
	return true
}

// HandAnimationComponent plays the animations of the items a player holds and the hand actions it
// performs.
type HandAnimationComponent struct {
	mPlayer *player.Player

	use, hit, rightIdle, leftIdle heldMachine

	// forcedSneak is true while the sneak animation is played because the player has no room to stand.
	forcedSneak bool
}

// NewHandAnimationComponent ...
func NewHandAnimationComponent(p *player.Player) *HandAnimationComponent {
	return &HandAnimationComponent{mPlayer: p}
}

// Name ...
func (*HandAnimationComponent) Name() string {
	return "hand_animation"
}

// UseActive returns true if the right hand use animation is committed.
func (c *HandAnimationComponent) UseActive() bool {
	return c.use.active
}

// HitActive returns true if the right hand hit animation is committed.
func (c *HandAnimationComponent) HitActive() bool {
	return c.hit.active
}

// RightIdleActive ...
func (c *HandAnimationComponent) RightIdleActive() bool {
	return c.rightIdle.active
}

// LeftIdleActive ...
func (c *HandAnimationComponent) LeftIdleActive() bool {
	return c.leftIdle.active
}

// Tick evaluates every hand machine. Remote players on the presentation side are skipped: their
// animations are whatever the authoritative side sent.
func (c *HandAnimationComponent) Tick(float32) {
	p := c.mPlayer
	if p.Side() == player.SidePresentation && !p.Local() {
		return
	}
	a := p.Animator()
	controls := p.AuthoritativeControls()
	inv := p.Inventory()

	c.updateSneak(a, controls)

	right := inv.RightHand()
	useCode, hitCode, rightIdleCode := player.HeldAnimations(right)
	if right.Empty() {
		useCode = c.petAnimation(useCode)
	}
	_, _, leftIdleCode := player.HeldAnimations(inv.LeftHand())

	nowUse := controls.HandUse == game.HandUseBlockInteract || controls.HandUse == game.HandUseHeldItemInteract ||
		(controls.RightMouseDown && !controls.LeftMouseDown)
	nowHit := controls.HandUse == game.HandUseHeldItemAttack || controls.LeftMouseDown
	nowRightIdle := rightIdleCode != "" && !nowUse && !nowHit
	nowLeftIdle := leftIdleCode != ""

	c.use.update(a, nowUse, useCode)
	c.updateHit(a, nowHit, hitCode)
	c.rightIdle.update(a, nowRightIdle, rightIdleCode)
	c.leftIdle.update(a, nowLeftIdle, leftIdleCode)
}

// updateHit updates the hit machine. A running authoritative hit animation is left alone until it ends.
func (c *HandAnimationComponent) updateHit(a animation.Player, now bool, code string) {
	if !c.hit.changed(now, code) {
		return
	}
	if c.hit.active && c.mPlayer.Profile().IsAuthoritativeHit(c.hit.code) && a.IsActive(c.hit.code) {
		return
	}
	c.hit.stop(a)
	if now {
		c.hit.start(a, code)
	}
}

// updateSneak keeps the sneak animation playing while the player is not sneaking but has no room to stand.
func (c *HandAnimationComponent) updateSneak(a animation.Player, controls *player.ControlState) {
	forced := !controls.Sneak && !c.mPlayer.Body().CanStandUp
	if forced == c.forcedSneak {
		return
	}
	c.forcedSneak = forced
	if forced {
		a.Start(game.AnimationSneak)
	} else if !controls.Sneak {
		a.Stop(game.AnimationSneak)
	}
}

// petAnimation returns the use animation of an empty hand for the entity the player is looking at. Later
// rules override earlier ones.
func (c *HandAnimationComponent) petAnimation(code string) string {
	p := c.mPlayer
	t := p.SelectedEntity()
	if t == nil || t.Position().Sub(p.Position()).Len() > game.PetReach {
		return code
	}
	h := t.SelectionHeight()
	if h > game.PetLargeHeight {
		code = game.AnimationPetLarge
	}
	if h <= game.PetLargeHeight && p.Controls().Sneak {
		code = game.AnimationPetSmall
	}
	if t.IsPlayer() && !t.FloorSitting() {
		code = game.AnimationPetSeraph
	}
	return code
}
