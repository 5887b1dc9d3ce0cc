package player

import "github.com/go-gl/mathgl/mgl32"

// Snapshot is the state of a player as seen by other players during a tick. It is taken before any player
// of the tick runs, so that players never read each other while they are being ticked.
type Snapshot struct {
	RuntimeID uint64
	Pos       mgl32.Vec3
	Height    float32
	Sitting   bool
}

// Position ...
func (s Snapshot) Position() mgl32.Vec3 { return s.Pos }

// SelectionHeight ...
func (s Snapshot) SelectionHeight() float32 { return s.Height }

// IsPlayer ...
func (Snapshot) IsPlayer() bool { return true }

// FloorSitting ...
func (s Snapshot) FloorSitting() bool { return s.Sitting }

// Snapshot returns the current state of the player as a Target for other players.
func (p *Player) Snapshot() Snapshot {
	return Snapshot{
		RuntimeID: p.runtimeID,
		Pos:       p.body.Position,
		Height:    p.body.SelectionHeight(),
		Sitting:   p.controls.FloorSitting,
	}
}

// SelectPlayer makes the player look at the player with the runtime ID passed. The selected entity is
// resolved from snapshots by ResolveSelection before every tick.
func (p *Player) SelectPlayer(id uint64) {
	p.selectedID, p.selectsPlayer = id, true
	p.selected = nil
}

// SelectedPlayer returns the runtime ID of the player selected with SelectPlayer.
func (p *Player) SelectedPlayer() (uint64, bool) {
	return p.selectedID, p.selectsPlayer
}

// ResolveSelection updates the selected entity of a player selected with SelectPlayer from the snapshot
// returned by lookup. The selection is empty for the tick if lookup finds no snapshot. It must not be called
// while any player is being ticked.
func (p *Player) ResolveSelection(lookup func(id uint64) (Snapshot, bool)) {
	if !p.selectsPlayer {
		return
	}
	if s, ok := lookup(p.selectedID); ok {
		p.selected = s
	} else {
		p.selected = nil
	}
}
