package message

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/oomph-ac/playersim/internal"
	"github.com/oomph-ac/playersim/oerror"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// Version is the version of the message encoding. It is written in every frame and must be bumped
// whenever the payload of any message changes.
const Version uint8 = 1

// Encode encodes a message for the entity with the runtime ID passed into a single frame.
func Encode(entityID uint64, m Message) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	defer internal.BufferPool.Put(buf)
	buf.Reset()

	header := &packet.Header{PacketID: m.ID()}
	_ = header.Write(buf)

	w := protocol.NewWriter(buf, 0)
	version := Version
	w.Uint8(&version)
	w.Varuint64(&entityID)
	m.Marshal(w)

	return bytes.Clone(buf.Bytes())
}

// Decode decodes a frame produced by Encode, returning the runtime ID of the entity it is addressed to and
// the message itself.
func Decode(data []byte) (entityID uint64, m Message, err error) {
	buf := bytes.NewBuffer(data)

	h := &packet.Header{}
	if err := h.Read(buf); err != nil {
		return 0, nil, oerror.New("read header: %w", oerror.ErrMalformedMessage)
	}
	f, ok := Pool[h.PacketID]
	if !ok {
		return 0, nil, oerror.New("message %d: %w", h.PacketID, oerror.ErrUnknownMessage)
	}

	// The reader panics on short or invalid data.
	defer func() {
		if v := recover(); v != nil {
			entityID, m = 0, nil
			err = oerror.New("decode message %d (%v): %w", h.PacketID, v, oerror.ErrMalformedMessage)
		}
	}()

	r := protocol.NewReader(fullReader{buf}, 0, true)
	var version uint8
	r.Uint8(&version)
	if version != Version {
		return 0, nil, oerror.New("got version %d, expected %d: %w", version, Version, oerror.ErrVersionMismatch)
	}
	r.Varuint64(&entityID)

	m = f()
	m.Marshal(r)
	if buf.Len() != 0 {
		return 0, nil, oerror.New("message %d has %d trailing bytes: %w", h.PacketID, buf.Len(), oerror.ErrMalformedMessage)
	}
	return entityID, m, nil
}

// fullReader fails reads that cannot fill the whole slice instead of returning a short read.
type fullReader struct {
	*bytes.Buffer
}

func (r fullReader) Read(p []byte) (int, error) {
	return io.ReadFull(r.Buffer, p)
}

// Name returns a readable name of the message passed, used in logs.
func Name(m Message) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", m), "*message.")
}
