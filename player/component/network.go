package component

import (
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/player"
)

// NetworkComponent applies the messages the other side sent about a player. Messages only the
// authoritative side may send are dropped when they arrive on the authoritative side.
type NetworkComponent struct {
	mPlayer *player.Player
}

// NewNetworkComponent ...
func NewNetworkComponent(p *player.Player) *NetworkComponent {
	return &NetworkComponent{mPlayer: p}
}

// Name ...
func (*NetworkComponent) Name() string {
	return "network"
}

// HandleMessage ...
func (c *NetworkComponent) HandleMessage(m message.Message) bool {
	p := c.mPlayer
	a := p.Animator()

	switch m := m.(type) {
	case *message.Emote:
		a.Start(m.Animation)
		if t, ok := game.EmoteTalkType(m.Animation); ok {
			p.Talk(t)
		}
	case *message.SitEdgeToggle:
		if m.On {
			a.Stop(game.AnimationFloorSit)
			a.Start(game.AnimationEdgeSit)
		} else {
			a.Stop(game.AnimationEdgeSit)
		}
	case *message.Talk:
		p.Talk(m.Type)
	case *message.Revive:
		if !c.fromAuthority(m) {
			break
		}
		p.SetAlive(true)
		a.Stop(game.AnimationDie)
	case *message.Death:
		if !c.fromAuthority(m) {
			break
		}
		p.TryStopHandAction(true)
		p.SetAlive(false)
		a.Start(game.AnimationDie)
	case *message.PositionSync:
		if !c.fromAuthority(m) {
			break
		}
		p.ApplyPositionSync(m.Position)
	default:
		return false
	}
	return true
}

// fromAuthority returns false, and logs the message as dropped, if the player is on the authoritative side
// and can therefore not have received m from the authority.
func (c *NetworkComponent) fromAuthority(m message.Message) bool {
	if c.mPlayer.Side() == player.SideAuthoritative {
		c.mPlayer.Log().Warnf("dropped %s: only the authoritative side sends it", message.Name(m))
		return false
	}
	return true
}
