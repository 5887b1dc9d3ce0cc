package session

import (
	"context"
	"errors"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/playersim/assert"
	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/oerror"
	"github.com/oomph-ac/playersim/player"
	"github.com/oomph-ac/playersim/transport"
	"github.com/sirupsen/logrus"
)

// Session connects the players of one side to a transport: messages read from the connection are delivered
// to the player they are addressed to, and players send through the connection.
type Session struct {
	log    *logrus.Logger
	conn   transport.Conn
	lookup func(id uint64) *player.Player
}

// New creates a session reading from conn. lookup returns the player with a runtime ID, or nil if there is
// none.
func New(log *logrus.Logger, conn transport.Conn, lookup func(id uint64) *player.Player) *Session {
	return &Session{log: log, conn: conn, lookup: lookup}
}

// Sender returns the sender players of the session write their messages to.
func (s *Session) Sender() player.Sender {
	return s.conn
}

// Serve reads messages until the connection is closed or ctx is cancelled. Closing the connection is how
// Serve is stopped when ctx is cancelled.
func (s *Session) Serve(ctx context.Context) error {
	defer s.recoverError()

	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.Close()
	})
	defer stop()

	for {
		id, m, err := s.conn.ReadMessage()
		if err != nil {
			if errors.Is(err, oerror.ErrClosed) {
				s.log.Debug("session connection closed")
				return nil
			}
			if oerror.IsKind(err, oerror.KindProgrammer) {
				// Panics in strict mode. Otherwise a single bad frame does not take the session down.
				assert.NoError(err, "read message")
				s.log.Errorf("unable to read message: %v", err)
				continue
			}
			return err
		}

		p := s.lookup(id)
		if p == nil {
			s.log.Warnf("dropped %s for unknown entity %d", message.Name(m), id)
			continue
		}
		p.Deliver(m)
	}
}

// Close closes the connection of the session.
func (s *Session) Close() error {
	return s.conn.Close()
}

func (s *Session) recoverError() {
	v := recover()
	if v == nil {
		return
	}

	s.log.Errorf("session panic: %v", v)
	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "session")
	})
	if err, ok := v.(error); ok {
		hub.Recover(err)
	} else {
		hub.Recover(oerror.New("%v", v))
	}
	hub.Flush(time.Second * 5)
	_ = s.conn.Close()

	if assert.Strict() {
		panic(v)
	}
}
