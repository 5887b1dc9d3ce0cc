package message

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

const (
	IDEmote uint32 = iota + 1
	IDSitEdgeToggle
	IDRevive
	IDDeath
	IDTalk
	IDPositionSync
)

// Message is a state change of an entity sent between the authoritative and the presentation side.
type Message interface {
	// ID returns the tag of the message on the wire. It never changes for a message type.
	ID() uint32
	// Marshal encodes or decodes the payload of the message, depending on the IO passed.
	Marshal(io protocol.IO)
}

// Pool maps message IDs to functions returning an empty message of that type.
var Pool = map[uint32]func() Message{
	IDEmote:         func() Message { return &Emote{} },
	IDSitEdgeToggle: func() Message { return &SitEdgeToggle{} },
	IDRevive:        func() Message { return &Revive{} },
	IDDeath:         func() Message { return &Death{} },
	IDTalk:          func() Message { return &Talk{} },
	IDPositionSync:  func() Message { return &PositionSync{} },
}

// Emote makes an entity play an animation, sent by either side.
type Emote struct {
	Animation string
}

func (*Emote) ID() uint32 { return IDEmote }

func (m *Emote) Marshal(io protocol.IO) {
	boundedString(io, &m.Animation, "animation")
}

// SitEdgeToggle mirrors the start or stop of sitting on the edge of a block.
type SitEdgeToggle struct {
	On bool
}

func (*SitEdgeToggle) ID() uint32 { return IDSitEdgeToggle }

func (m *SitEdgeToggle) Marshal(io protocol.IO) {
	strictBool(io, &m.On, "on")
}

// Revive is sent by the authoritative side when an entity is brought back to life.
type Revive struct{}

func (*Revive) ID() uint32 { return IDRevive }

func (*Revive) Marshal(protocol.IO) {}

// Death is sent by the authoritative side when an entity dies.
type Death struct{}

func (*Death) ID() uint32 { return IDDeath }

func (*Death) Marshal(protocol.IO) {}

// Talk makes an entity say a voice line.
type Talk struct {
	Type game.TalkType
}

func (*Talk) ID() uint32 { return IDTalk }

func (m *Talk) Marshal(io protocol.IO) {
	t := uint8(m.Type)
	io.Uint8(&t)
	m.Type = game.TalkType(t)
}

// PositionSync is sent by the authoritative side when it moves an entity somewhere the presentation side
// could not predict, such as a teleport.
type PositionSync struct {
	Position mgl32.Vec3
}

func (*PositionSync) ID() uint32 { return IDPositionSync }

func (m *PositionSync) Marshal(io protocol.IO) {
	io.Vec3(&m.Position)
}
