package player

import "github.com/oomph-ac/playersim/message"

// Component is a behaviour attached to a player. What a component does is found out by checking which of
// the interfaces below it implements.
type Component interface {
	// Name returns a name identifying the component in logs.
	Name() string
}

// Ticker is a Component that runs every tick.
type Ticker interface {
	Component
	Tick(dt float32)
}

// FrameTicker is a Component that runs every rendered frame of the local player on the presentation side.
type FrameTicker interface {
	Component
	BeforeRender(dt float32)
}

// MessageHandler is a Component that handles messages from the other side. HandleMessage returns true if the
// message was consumed.
type MessageHandler interface {
	Component
	HandleMessage(m message.Message) bool
}

// Closer is a Component that must release resources when the player is closed.
type Closer interface {
	Component
	Close()
}

// AddComponent appends a component to the player. Components run in the order they were added.
func (p *Player) AddComponent(c Component) {
	p.components = append(p.components, c)
}

// Components returns the components of the player in the order they run.
func (p *Player) Components() []Component {
	return p.components
}

// ComponentOf returns the first component of the player with the type T.
func ComponentOf[T Component](p *Player) (T, bool) {
	for _, c := range p.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}
