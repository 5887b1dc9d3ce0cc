package player

import (
	"github.com/oomph-ac/playersim/assert"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/stat"
)

const (
	StatWalkSpeed = "walkspeed"
)

var multiplicativeStats = []string{
	"healingeffectivness",
	"maxhealthExtraPoints",
	StatWalkSpeed,
	"hungerrate",
	"rangedWeaponsAcc",
	"rangedWeaponsSpeed",
	"rangedWeaponsDamage",
	"meleeWeaponsDamage",
	"mechanicalsDamage",
	"animalLootDropRate",
	"forageDropRate",
	"wildCropDropRate",
	"vesselContentsDropRate",
	"oreDropRate",
	"rustyGearDropRate",
	"miningSpeedMul",
	"animalSeekingRange",
	"armorDurabilityLoss",
	"armorWalkSpeedAffectedness",
	"bowDrawingStrength",
	"animalHarvestingTime",
}

var flatSumStats = []string{
	"wholeVesselLootChance",
	"temporalGearTLRepairCost",
}

// DefaultStats returns a registry with every stat of a player registered.
func DefaultStats() *stat.Registry {
	r := stat.NewRegistry()
	for _, name := range multiplicativeStats {
		r.Register(name, stat.Multiplicative)
	}
	for _, name := range flatSumStats {
		r.Register(name, stat.FlatSum)
	}
	return r
}

// Stats returns the stat registry of the player.
func (p *Player) Stats() *stat.Registry {
	return p.stats
}

// Stat returns the blended value of a stat. Querying a stat that was never registered is a programmer error:
// it panics in strict mode and returns 0 otherwise.
func (p *Player) Stat(name string) float64 {
	v, err := p.stats.Blended(name)
	if !assert.NoError(err, "player %s", p.name) {
		return 0
	}
	return v
}

// WalkSpeed returns the walk speed stat settled at the start of the current tick.
func (p *Player) WalkSpeed() float32 {
	return p.walkSpeed
}

// WalkSpeedMultiplier returns the factor the walk speed of the player is multiplied with. Players that are
// not sneaking but have no room to stand up move at sneaking speed.
func (p *Player) WalkSpeedMultiplier() float32 {
	m := game.Clamp(p.walkSpeed, 0, game.MaxWalkSpeed)
	if !p.authControls.Sneak && !p.body.CanStandUp {
		m *= game.SneakSpeedMultiplier
	}
	return m
}

// settleStats reads the stats consumed during the tick, so that every component sees the same values.
func (p *Player) settleStats() {
	p.walkSpeed = float32(p.Stat(StatWalkSpeed))
}
