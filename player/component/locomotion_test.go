package component

import (
	"testing"

	dfworld "github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/player"
	"github.com/oomph-ac/playersim/world"
)

type stepRecorder struct {
	player.NopHandler
	blocks  []dfworld.Block
	impacts []float32
}

func (r *stepRecorder) HandleFootStep(_ *player.Player, b dfworld.Block) {
	r.blocks = append(r.blocks, b)
}

func (r *stepRecorder) HandleImpact(_ *player.Player, motionY float32) {
	r.impacts = append(r.impacts, motionY)
}

func walkingPlayer(w *world.World) (testPlayer, *LocomotionComponent) {
	p := newTestPlayer(player.SideAuthoritative, false, w)
	c := NewLocomotionComponent(p.Player)
	p.AddComponent(c)

	body := p.Body()
	body.Position = mgl32.Vec3{0.5, 0, 0.5}
	body.Motion = mgl32.Vec3{0.1, 0, 0}
	body.OnGround = true
	p.Controls().TriesToMove = true
	return p, c
}

func TestPhaseStaysInRange(t *testing.T) {
	p, c := walkingPlayer(stoneFloor())
	p.Controls().Sprint = true
	p.Controls().MovespeedMultiplier = 7.3

	for range 10000 {
		p.Tick(0.05)
		if ph := c.Phase(); ph < 0 || ph >= game.TwoPi {
			t.Fatalf("phase %v left [0, 2π)", ph)
		}
	}
}

func TestFootstepOncePerCycle(t *testing.T) {
	p, c := walkingPlayer(stoneFloor())
	rec := &stepRecorder{}
	p.Handle(rec)

	const (
		ticks = 1000
		dt    = float32(0.05)
	)
	for range ticks {
		p.Tick(dt)
	}
	// The step wave repeats every π/5.5 of phase.
	cycles := ticks * dt * game.WalkPhaseFactor / (game.Pi / game.WalkCycleFrequency)
	got := float32(c.Footsteps())
	if got < cycles-1 || got > cycles+1 {
		t.Fatalf("expected about %.1f footsteps, got %v", cycles, got)
	}
	if uint64(len(rec.blocks)) != c.Footsteps() {
		t.Fatalf("expected every footstep to reach subscribers, got %d of %d", len(rec.blocks), c.Footsteps())
	}
	if len(p.sounds.played) == 0 || p.sounds.played[0].sound != "walk/minecraft:stone" {
		t.Fatalf("expected stone walk sounds, got %v", p.sounds.played)
	}
}

func TestNoFootstepsBelowMovingThreshold(t *testing.T) {
	p, c := walkingPlayer(stoneFloor())
	p.Body().Motion = mgl32.Vec3{0.001, 0, 0.001}

	for range 200 {
		p.Tick(0.05)
	}
	if c.Footsteps() != 0 || c.Phase() != 0 || c.Moving() {
		t.Fatalf("expected no walk cycle, got %d footsteps at phase %v", c.Footsteps(), c.Phase())
	}
}

func TestPhaseResetsWhenStopping(t *testing.T) {
	p, c := walkingPlayer(stoneFloor())
	for range 7 {
		p.Tick(0.05)
	}
	if c.Phase() == 0 {
		t.Fatal("expected phase to advance while walking")
	}
	p.Body().OnGround = false
	p.Tick(0.05)
	if c.Phase() != 0 || c.StepHeight() != 0 {
		t.Fatalf("expected phase to reset in the air, got %v", c.Phase())
	}
}

func TestFootstepAtEdgeOfBlock(t *testing.T) {
	p, c := walkingPlayer(stoneFloor())
	// Only the corners of the entity are above the floor.
	p.Body().Position = mgl32.Vec3{4.2, 0, 0.5}
	for range 100 {
		p.Tick(0.05)
	}
	if c.Footsteps() == 0 || len(p.sounds.played) == 0 {
		t.Fatal("expected footsteps on the edge of the floor")
	}
}

func TestImpact(t *testing.T) {
	p, _ := walkingPlayer(stoneFloor())
	rec := &stepRecorder{}
	p.Handle(rec)
	body := p.Body()

	body.OnGround = false
	body.Motion = mgl32.Vec3{0, -0.6, 0}
	p.Tick(0.05)
	body.OnGround = true
	body.Motion = mgl32.Vec3{}
	p.Tick(0.05)

	if len(rec.impacts) != 1 || rec.impacts[0] != -0.6 {
		t.Fatalf("expected a single impact at -0.6, got %v", rec.impacts)
	}
	found := false
	for _, s := range p.sounds.played {
		if s.volume == game.ImpactStepVolume {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the landing sound to play")
	}

	body.OnGround = false
	body.Motion = mgl32.Vec3{0, -0.05, 0}
	p.Tick(0.05)
	body.OnGround = true
	p.Tick(0.05)
	if len(rec.impacts) != 1 {
		t.Fatalf("expected a soft landing not to count as impact, got %v", rec.impacts)
	}
}

func TestViewBobbing(t *testing.T) {
	p := newTestPlayer(player.SidePresentation, true, nil)
	c := NewLocomotionComponent(p.Player)
	p.AddComponent(c)
	p.SetPreferences(player.Preferences{ViewBobbing: true, FirstPerson: true})
	p.Body().OnGround = true
	p.Body().Motion = mgl32.Vec3{0.1, 0, 0}
	p.Controls().TriesToMove = true

	p.Tick(0.05)
	if c.Phase() != 0 {
		t.Fatal("expected the local player not to advance its walk cycle on ticks")
	}
	eye := p.Body().LocalEyePos[1]
	bobbed := false
	for range 20 {
		p.BeforeRender(0.05)
		if p.Body().LocalEyePos[1] < eye {
			bobbed = true
		}
	}
	if !bobbed {
		t.Fatal("expected the eye height to bob while walking")
	}
}
