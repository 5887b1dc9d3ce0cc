package player

import "github.com/oomph-ac/playersim/game"

// GameMode ...
func (p *Player) GameMode() game.GameMode {
	return p.gameMode
}

// SetGameMode ...
func (p *Player) SetGameMode(m game.GameMode) {
	p.gameMode = m
}

// ShouldReceiveDamage returns true if the player can be damaged. Healing always applies.
func (p *Player) ShouldReceiveDamage(heal bool) bool {
	if heal {
		return true
	}
	return p.alive && p.gameMode == game.GameModeSurvival
}

// CanIgnite returns false for players in creative or spectator mode.
func (p *Player) CanIgnite() bool {
	return p.gameMode == game.GameModeSurvival
}

// IsInteractable returns true if other entities can interact with the player.
func (p *Player) IsInteractable() bool {
	return p.gameMode != game.GameModeSpectator
}
