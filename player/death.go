package player

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/message"
)

// DeathReason describes why a player died.
type DeathReason struct {
	Source string
	Time   time.Time
}

// DeathReason returns the reason of the last death, or nil if the player is alive.
func (p *Player) DeathReason() *DeathReason {
	return p.deathReason
}

// Die kills the player. Dying again before being revived does nothing. The inventory, and protective gear
// if the profile asks for it, are dropped at the end of the tick, so that anything handing an item back to
// the player during this tick does not get dropped along with it.
func (p *Player) Die(source string) {
	if p.side != SideAuthoritative {
		p.log.Warnf("Die() called on the presentation side, ignoring")
		return
	}
	if p.deathReason != nil {
		return
	}
	p.deathReason = &DeathReason{Source: source, Time: p.now()}
	p.alive = false

	p.TryStopHandAction(true)
	p.Unmount()
	p.intoxication = 0
	p.animator.Start(game.AnimationDie)

	pos := p.body.Position
	p.Defer(func() {
		if !p.CanSpawnNearby(game.EntityTypeItem, pos) {
			p.log.Debugf("item drops at %v were refused by a handler", pos)
			return
		}
		if !p.profile.KeepContents {
			for _, s := range p.inventory.Clear() {
				p.dropper.DropItem(pos, s)
			}
		}
		if p.profile.DropArmourOnDeath {
			for _, s := range p.inventory.ClearProtectiveGear() {
				p.dropper.DropItem(pos, s)
			}
		}
	})

	p.Send(&message.Death{})
	p.log.Infof("died (%s)", source)
}

// Revive brings the player back to life.
func (p *Player) Revive() {
	if p.side != SideAuthoritative {
		p.log.Warnf("Revive() called on the presentation side, ignoring")
		return
	}
	p.alive = true
	p.deathReason = nil
	p.lastReviveTime = p.now()
	p.animator.Stop(game.AnimationDie)

	p.Send(&message.Revive{})
	p.log.Infof("revived")
}

// SetAlive sets the liveness of the player as reported by the authoritative side.
func (p *Player) SetAlive(alive bool) {
	p.alive = alive
}

// TryStopHandAction stops whatever the hand of the player is doing. Without force, the action may refuse to
// stop, in which case false is returned.
func (p *Player) TryStopHandAction(force bool) bool {
	use := p.authControls.HandUse
	if use == game.HandUseNone {
		return true
	}
	if !force && p.hands != nil && !p.hands.CanStop(p, use) {
		return false
	}
	for _, c := range []*ControlState{&p.controls, &p.authControls} {
		c.HandUse = game.HandUseNone
		c.UsingBegin = time.Time{}
	}
	if p.hands != nil {
		p.hands.Stopped(p, use)
	}
	return true
}

// Talk makes the player say a voice line. Dead players only say their death line.
func (p *Player) Talk(t game.TalkType) {
	if t != game.TalkDeath && !p.alive {
		return
	}
	p.voice.Talk(t)
}

// Emote plays an emote animation and sends it to the other side.
func (p *Player) Emote(animation string) {
	p.animator.Start(animation)
	if t, ok := game.EmoteTalkType(animation); ok {
		p.Talk(t)
	}
	p.Send(&message.Emote{Animation: animation})
}

// PlayEntitySound plays a sound of the player. Hurt and death sounds are voice lines and are sent to the
// other side.
func (p *Player) PlayEntitySound(sound string) {
	t, ok := game.SoundTalkType(sound)
	if !ok {
		p.sounds.PlaySoundAt(sound, p.body.Position, false, game.FootstepSoundRange, 1)
		return
	}
	p.Talk(t)
	p.Send(&message.Talk{Type: t})
}

// Teleport moves the player to a position physics could not have moved it to and tells the other side.
func (p *Player) Teleport(pos mgl32.Vec3) {
	p.setPosition(pos)
	p.Send(&message.PositionSync{Position: pos})
	p.log.Debugf("teleported to %v", pos)
}

// ApplyPositionSync moves the player to the position received from the authoritative side.
func (p *Player) ApplyPositionSync(pos mgl32.Vec3) {
	p.setPosition(pos)
}

func (p *Player) setPosition(pos mgl32.Vec3) {
	p.body.Position = pos
	p.body.Motion = mgl32.Vec3{}
	p.body.PositionVersion++
}
