package component

import (
	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/player"
)

// EdgeSitComponent turns floor sitting into sitting on the edge of a block when the player sits right in
// front of a drop. It runs for the local player on the presentation side, which tells the authoritative
// side about every change.
type EdgeSitComponent struct {
	mPlayer *player.Player
}

// NewEdgeSitComponent ...
func NewEdgeSitComponent(p *player.Player) *EdgeSitComponent {
	return &EdgeSitComponent{mPlayer: p}
}

// Name ...
func (*EdgeSitComponent) Name() string {
	return "edge_sit"
}

// Tick ...
func (c *EdgeSitComponent) Tick(float32) {
	p := c.mPlayer
	if !p.Framed() {
		return
	}
	a := p.Animator()
	edgeActive := a.IsActive(game.AnimationEdgeSit)

	if !p.AuthoritativeControls().FloorSitting {
		a.Stop(game.AnimationFloorSit)
		if edgeActive {
			c.stop()
		}
		return
	}

	if c.CanEdgeSit() {
		a.Stop(game.AnimationFloorSit)
		if !edgeActive {
			c.start()
		}
		p.Body().LimitYaw()
		return
	}
	if edgeActive {
		c.stop()
	}
	a.Start(game.AnimationFloorSit)
}

func (c *EdgeSitComponent) start() {
	p := c.mPlayer
	p.Animator().Start(game.AnimationEdgeSit)
	p.Send(&message.SitEdgeToggle{On: true})

	body := p.Body()
	body.BodyYaw = game.SnapCardinal(body.BodyYaw)
	body.SetYawLimits(body.BodyYaw-game.EdgeSitYawLimit, body.BodyYaw+game.EdgeSitYawLimit)
	p.Log().Debugf("started sitting on edge (yaw=%.2f)", body.BodyYaw)
}

func (c *EdgeSitComponent) stop() {
	p := c.mPlayer
	p.Animator().Stop(game.AnimationEdgeSit)
	p.Send(&message.SitEdgeToggle{On: false})
	p.Body().ClearYawLimits()
	p.Log().Debugf("stopped sitting on edge")
}

// CanEdgeSit returns true if the player is sitting right in front of a drop: the cell in front of it offers
// no surface facing the player, the cell below that has nothing taller than half a block, and the block the
// player sits on is not replaceable.
func (c *EdgeSitComponent) CanEdgeSit() bool {
	p := c.mPlayer
	w := p.World()
	if w == nil {
		return false
	}
	body := p.Body()
	pos := body.Position

	yaw := body.Yaw
	if min, max, ok := body.YawLimits(); ok {
		yaw = (min + max) / 2
	}
	sin, cos := math32.Sin(yaw+game.Pi/2), math32.Cos(yaw+game.Pi/2)

	front := df_cube.Pos{int(math32.Floor(pos[0])), int(math32.Ceil(pos[1])), int(math32.Floor(pos[2]))}
	back := df_cube.Pos{
		int(math32.Floor(pos[0] + sin*game.EdgeSitBackOffset)),
		int(math32.Floor(pos[1] - 1)),
		int(math32.Floor(pos[2] + cos*game.EdgeSitBackOffset)),
	}
	frontBelow := front.Side(df_cube.FaceDown)

	face, ok := horizontalFace(back[0]-front[0], back[2]-front[2])
	if !ok {
		return false
	}
	if frontBlock := w.Block(front); frontBlock.Model().FaceSolid(front, face, w) {
		return false
	}
	for _, box := range w.BlockCollisions(w.Block(frontBelow), cube.Pos(frontBelow)) {
		if box.Max().Y() > game.EdgeSitMaxFrontHeight {
			return false
		}
	}
	_, replaceable := w.Block(back).(block.Replaceable)
	return !replaceable
}

// horizontalFace returns the face pointing along the horizontal normal passed. The normal must point along
// exactly one axis.
func horizontalFace(dx, dz int) (df_cube.Face, bool) {
	switch {
	case dx == 1 && dz == 0:
		return df_cube.FaceEast, true
	case dx == -1 && dz == 0:
		return df_cube.FaceWest, true
	case dx == 0 && dz == 1:
		return df_cube.FaceSouth, true
	case dx == 0 && dz == -1:
		return df_cube.FaceNorth, true
	}
	return 0, false
}
