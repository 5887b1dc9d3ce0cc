package player

import "github.com/go-gl/mathgl/mgl32"

// Environment is the state of the world around a player that is not derived from blocks. It is sampled once
// per tick by the caller and handed to the player with SetEnvironment.
type Environment struct {
	Wind mgl32.Vec3
	// Rainfall is the current rainfall at the player, between 0 and 1.
	Rainfall float32
	// WorldgenRainfall is the rainfall of the climate at the player, between 0 and 1.
	WorldgenRainfall float32
	Temperature      float32
	// RainDistance is the distance from the eyes of the player to the highest block above it that
	// stops rain.
	RainDistance int
}

// Preferences are settings of the local player that only affect presentation.
type Preferences struct {
	ViewBobbing bool
	FirstPerson bool
}

// SetEnvironment sets the environment snapshot used for the next tick.
func (p *Player) SetEnvironment(env Environment) {
	p.env = env
}

// Environment returns the environment snapshot of the current tick.
func (p *Player) Environment() Environment {
	return p.env
}

// SetPreferences ...
func (p *Player) SetPreferences(prefs Preferences) {
	p.prefs = prefs
}

// Preferences ...
func (p *Player) Preferences() Preferences {
	return p.prefs
}
