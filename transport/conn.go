package transport

import (
	"sync"

	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/oerror"
)

// Conn carries messages between the two sides of the simulation. Messages written to a Conn are read by
// the other end in the order they were written.
type Conn interface {
	// WriteMessage sends a message addressed to the entity with the runtime ID passed.
	WriteMessage(entityID uint64, m message.Message) error
	// ReadMessage blocks until a message is received. It returns oerror.ErrClosed once the connection is
	// closed.
	ReadMessage() (entityID uint64, m message.Message, err error)
	Close() error
}

// Pipe returns two connected in-memory connections. Every message is encoded and decoded, so a pipe
// behaves the same as a network connection.
func Pipe() (*PipeConn, *PipeConn) {
	a, b := make(chan []byte, 256), make(chan []byte, 256)
	closed := make(chan struct{})
	once := &sync.Once{}
	return &PipeConn{in: a, out: b, closed: closed, once: once}, &PipeConn{in: b, out: a, closed: closed, once: once}
}

// PipeConn is one end of a Pipe.
type PipeConn struct {
	in, out chan []byte
	closed  chan struct{}
	once    *sync.Once
}

// WriteMessage ...
func (c *PipeConn) WriteMessage(entityID uint64, m message.Message) error {
	frame := message.Encode(entityID, m)
	select {
	case <-c.closed:
		return oerror.ErrClosed
	default:
	}
	select {
	case c.out <- frame:
		return nil
	case <-c.closed:
		return oerror.ErrClosed
	}
}

// ReadMessage ...
func (c *PipeConn) ReadMessage() (uint64, message.Message, error) {
	select {
	case frame := <-c.in:
		return message.Decode(frame)
	case <-c.closed:
		// Deliver anything written before the pipe was closed.
		select {
		case frame := <-c.in:
			return message.Decode(frame)
		default:
			return 0, nil, oerror.ErrClosed
		}
	}
}

// Close closes both ends of the pipe.
func (c *PipeConn) Close() error {
	c.once.Do(func() {
		close(c.closed)
	})
	return nil
}
