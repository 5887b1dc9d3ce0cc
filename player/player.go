package player

import (
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/oomph-ac/playersim/animation"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/stat"
	"github.com/oomph-ac/playersim/world"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// Side is the side of the simulation a player instance lives on.
type Side uint8

const (
	// SideAuthoritative is the side whose decisions about physics, death and inventory are final.
	SideAuthoritative Side = iota
	// SidePresentation is the side that renders and predicts, and defers to the authoritative side.
	SidePresentation
)

func (s Side) String() string {
	if s == SidePresentation {
		return "presentation"
	}
	return "authoritative"
}

// Config holds the values a Player is created with. Collaborators left nil are replaced with no-op
// implementations.
type Config struct {
	RuntimeID uint64
	UUID      uuid.UUID
	Name      string
	Side      Side
	// Local is true for the player controlled by this process on the presentation side.
	Local   bool
	Profile Profile

	World    world.Provider
	Animator animation.Player
	Sounds   Sounds
	Voice    Voice
	Dropper  Dropper
	Sender   Sender
	Log      *logrus.Logger
	// Clock returns the current time. It defaults to time.Now.
	Clock func() time.Time
}

// Player is a player entity on one side of the simulation. Its methods are not safe for concurrent use,
// except for Deliver: a player is ticked by a single goroutine.
type Player struct {
	runtimeID uint64
	uuid      uuid.UUID
	name      string
	side      Side
	local     bool
	profile   Profile

	log  *logrus.Entry
	rand *rand.Rand
	now  func() time.Time

	world    world.Provider
	animator animation.Player
	sounds   Sounds
	voice    Voice
	dropper  Dropper
	sender   Sender
	hands    HandActions
	mount    Mount
	selected Target

	selectedID    uint64
	selectsPlayer bool

	stats     *stat.Registry
	walkSpeed float32

	body                   Body
	controls, authControls ControlState
	inventory              Inventory
	env                    Environment
	prefs                  Preferences
	gameMode               game.GameMode

	alive          bool
	deathReason    *DeathReason
	intoxication   float32
	lastReviveTime time.Time

	components []Component
	handlers   []*subscription

	inboxMu     sync.Mutex
	inbox       []message.Message
	inboxClosed bool

	deferred []func()

	recoverFunc func(p *Player, err any)

	tick   uint64
	closed bool
}

// New creates a player from the config passed. Components are added separately, usually by
// component.Register.
func New(conf Config) *Player {
	if conf.UUID == uuid.Nil {
		conf.UUID = uuid.New()
	}
	if conf.Log == nil {
		conf.Log = logrus.New()
		conf.Log.SetOutput(io.Discard)
	}
	if conf.Animator == nil {
		conf.Animator = animation.NewSet()
	}
	if conf.Sounds == nil {
		conf.Sounds = nopSounds{}
	}
	if conf.Voice == nil {
		conf.Voice = nopVoice{}
	}
	if conf.Dropper == nil {
		conf.Dropper = nopDropper{}
	}
	if conf.Clock == nil {
		conf.Clock = time.Now
	}

	seed := xxh3.Hash(conf.UUID[:])
	p := &Player{
		runtimeID: conf.RuntimeID,
		uuid:      conf.UUID,
		name:      conf.Name,
		side:      conf.Side,
		local:     conf.Local,
		profile:   conf.Profile,

		log: conf.Log.WithFields(logrus.Fields{
			"player": conf.Name,
			"side":   conf.Side.String(),
		}),
		rand: rand.New(rand.NewPCG(seed, conf.RuntimeID)),
		now:  conf.Clock,

		world:    conf.World,
		animator: conf.Animator,
		sounds:   conf.Sounds,
		voice:    conf.Voice,
		dropper:  conf.Dropper,
		sender:   conf.Sender,

		stats:     DefaultStats(),
		walkSpeed: 1,

		body:         newBody(conf.Profile),
		controls:     DefaultControls(),
		authControls: DefaultControls(),

		alive: true,
	}
	return p
}

// RuntimeID returns the ID the player is addressed with by messages.
func (p *Player) RuntimeID() uint64 {
	return p.runtimeID
}

// UUID ...
func (p *Player) UUID() uuid.UUID {
	return p.uuid
}

// Name ...
func (p *Player) Name() string {
	return p.name
}

// Side returns the side of the simulation the player lives on.
func (p *Player) Side() Side {
	return p.side
}

// Local returns true if the player is controlled by this process on the presentation side.
func (p *Player) Local() bool {
	return p.local
}

// Framed returns true if posture and locomotion of the player are updated every rendered frame rather than
// every tick.
func (p *Player) Framed() bool {
	return p.side == SidePresentation && p.local
}

// Profile ...
func (p *Player) Profile() Profile {
	return p.profile
}

// Log returns the logger of the player.
func (p *Player) Log() *logrus.Entry {
	return p.log
}

// Rand returns the random source of the player. It is seeded from the UUID of the player.
func (p *Player) Rand() *rand.Rand {
	return p.rand
}

// Now returns the current time of the clock of the player.
func (p *Player) Now() time.Time {
	return p.now()
}

// World returns the world the player is in. It may be nil.
func (p *Player) World() world.Provider {
	return p.world
}

// SetWorld ...
func (p *Player) SetWorld(w world.Provider) {
	p.world = w
}

// Animator returns the animation player of the player.
func (p *Player) Animator() animation.Player {
	return p.animator
}

// Sounds ...
func (p *Player) Sounds() Sounds {
	return p.sounds
}

// SetSender sets where the messages of the player are sent to. A nil sender drops them.
func (p *Player) SetSender(s Sender) {
	p.sender = s
}

// SetHandActions ...
func (p *Player) SetHandActions(h HandActions) {
	p.hands = h
}

// Mount returns the entity the player is riding, or nil.
func (p *Player) Mount() Mount {
	return p.mount
}

// SetMount ...
func (p *Player) SetMount(m Mount) {
	p.mount = m
}

// Unmount dismounts the player from whatever it is riding.
func (p *Player) Unmount() {
	if p.mount == nil {
		return
	}
	m := p.mount
	p.mount = nil
	m.Dismount(p)
}

// SelectedEntity returns the entity the player is looking at, or nil.
func (p *Player) SelectedEntity() Target {
	return p.selected
}

// SetSelectedEntity sets the entity the player is looking at. It replaces a selected player set with
// SelectPlayer.
func (p *Player) SetSelectedEntity(t Target) {
	p.selected = t
	p.selectsPlayer = false
}

// Body returns the physical state of the player.
func (p *Player) Body() *Body {
	return &p.body
}

// Inventory ...
func (p *Player) Inventory() *Inventory {
	return &p.inventory
}

// Position ...
func (p *Player) Position() mgl32.Vec3 {
	return p.body.Position
}

// FloorSitting returns true if the player is sitting on the floor.
func (p *Player) FloorSitting() bool {
	return p.controls.FloorSitting
}

// Alive ...
func (p *Player) Alive() bool {
	return p.alive
}

// Intoxication ...
func (p *Player) Intoxication() float32 {
	return p.intoxication
}

// SetIntoxication ...
func (p *Player) SetIntoxication(v float32) {
	p.intoxication = v
}

// LastReviveTime returns the time the player was last revived.
func (p *Player) LastReviveTime() time.Time {
	return p.lastReviveTime
}

// CurrentTick returns the amount of ticks the player has run.
func (p *Player) CurrentTick() uint64 {
	return p.tick
}

// SetRecoverFunc sets the function called when a tick of the player panics. It replaces the default, which
// logs the panic and reports it to sentry.
func (p *Player) SetRecoverFunc(f func(p *Player, err any)) {
	p.recoverFunc = f
}

// Defer queues a function that changes the world to run at the end of the current tick, after every
// component ran. Functions deferred while the queue is running run at the end of the next tick.
func (p *Player) Defer(f func()) {
	p.deferred = append(p.deferred, f)
}

// Tick runs a single tick of the player: it handles the messages received since the last tick, settles the
// stats, runs the components and finally the deferred functions. A panic is recovered so that the ticks of
// other players are not affected.
func (p *Player) Tick(dt float32) {
	defer p.recoverError()
	if p.closed {
		return
	}
	p.tick++

	p.handleInbox()
	if p.DrivesInput() {
		p.SyncControls()
	}
	p.settleStats()

	for _, c := range p.components {
		if t, ok := c.(Ticker); ok {
			t.Tick(dt)
		}
	}
	p.runDeferred()
}

// BeforeRender runs the frame tickers of the player. It is called every rendered frame for the local player
// on the presentation side and does nothing for other players.
func (p *Player) BeforeRender(dt float32) {
	defer p.recoverError()
	if p.closed || !p.Framed() {
		return
	}
	for _, c := range p.components {
		if t, ok := c.(FrameTicker); ok {
			t.BeforeRender(dt)
		}
	}
}

// Close removes the components and handlers of the player. A closed player no longer ticks or accepts
// messages.
func (p *Player) Close() {
	if p.closed {
		return
	}
	p.closed = true
	for _, c := range p.components {
		if cl, ok := c.(Closer); ok {
			cl.Close()
		}
	}
	p.components = nil
	p.handlers = nil
	p.deferred = nil

	p.inboxMu.Lock()
	p.inbox = nil
	p.inboxClosed = true
	p.inboxMu.Unlock()
}

// Closed ...
func (p *Player) Closed() bool {
	return p.closed
}

func (p *Player) runDeferred() {
	queue := p.deferred
	p.deferred = nil
	for _, f := range queue {
		f()
	}
}
