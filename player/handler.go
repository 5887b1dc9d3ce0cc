package player

import (
	"slices"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/go-gl/mathgl/mgl32"
)

// Handler handles events of a player. Handlers are subscribed with Player.Handle and are removed when the
// unsubscribe function is called or the player is closed.
type Handler interface {
	// HandleFootStep is called every time the player puts down a foot while walking on the block passed.
	HandleFootStep(p *Player, b world.Block)
	// HandleImpact is called when the player lands with the vertical motion passed.
	HandleImpact(p *Player, motionY float32)
	// HandleCanSpawnNearby is called to check if an entity of the type passed may spawn at pos. Returning
	// false prevents the spawn.
	HandleCanSpawnNearby(p *Player, entityType string, pos mgl32.Vec3) bool
}

// NopHandler implements Handler without doing anything. It can be embedded to only implement some methods.
type NopHandler struct{}

func (NopHandler) HandleFootStep(*Player, world.Block)                   {}
func (NopHandler) HandleImpact(*Player, float32)                         {}
func (NopHandler) HandleCanSpawnNearby(*Player, string, mgl32.Vec3) bool { return true }

type subscription struct {
	h Handler
}

// Handle subscribes a handler to the events of the player. The function returned removes it again and may
// be called more than once.
func (p *Player) Handle(h Handler) (unsubscribe func()) {
	sub := &subscription{h: h}
	p.handlers = append(p.handlers, sub)
	return func() {
		p.handlers = slices.DeleteFunc(p.handlers, func(s *subscription) bool {
			return s == sub
		})
	}
}

// HandlerCount returns the amount of subscribed handlers.
func (p *Player) HandlerCount() int {
	return len(p.handlers)
}

// FootStep notifies the handlers of a footstep on the block passed.
func (p *Player) FootStep(b world.Block) {
	for _, sub := range slices.Clone(p.handlers) {
		sub.h.HandleFootStep(p, b)
	}
}

// Impact notifies the handlers of a landing with the vertical motion passed.
func (p *Player) Impact(motionY float32) {
	for _, sub := range slices.Clone(p.handlers) {
		sub.h.HandleImpact(p, motionY)
	}
}

// CanSpawnNearby returns true if no handler objects to an entity of the type passed spawning at pos.
func (p *Player) CanSpawnNearby(entityType string, pos mgl32.Vec3) bool {
	for _, sub := range slices.Clone(p.handlers) {
		if !sub.h.HandleCanSpawnNearby(p, entityType, pos) {
			return false
		}
	}
	return true
}
