package transport

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/oerror"
	"github.com/sirupsen/logrus"
)

// WSConn is a Conn over a websocket. Each message is sent as a single binary websocket message.
type WSConn struct {
	conn *websocket.Conn

	writeMu sync.Mutex
}

// Dial connects to a websocket transport served by a Handler.
func Dial(ctx context.Context, url string) (*WSConn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, oerror.Wrap(oerror.KindTransient, err, "dial %s", url)
	}
	return &WSConn{conn: conn}, nil
}

// WriteMessage ...
func (c *WSConn) WriteMessage(entityID uint64, m message.Message) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.WriteMessage(websocket.BinaryMessage, message.Encode(entityID, m)); err != nil {
		return oerror.Wrap(oerror.KindTransient, oerror.ErrClosed, "write %s: %v", message.Name(m), err)
	}
	return nil
}

// ReadMessage ...
func (c *WSConn) ReadMessage() (uint64, message.Message, error) {
	for {
		kind, payload, err := c.conn.ReadMessage()
		if err != nil {
			return 0, nil, oerror.Wrap(oerror.KindTransient, oerror.ErrClosed, "read: %v", err)
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		return message.Decode(payload)
	}
}

// Close sends a close frame and closes the underlying connection.
func (c *WSConn) Close() error {
	c.writeMu.Lock()
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.writeMu.Unlock()

	if err := c.conn.Close(); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
		return err
	}
	return nil
}

// Handler accepts websocket connections and hands them to a function as a Conn.
type Handler struct {
	log      *logrus.Logger
	accept   func(conn *WSConn)
	upgrader websocket.Upgrader
}

// NewHandler returns a Handler calling accept for every connection. accept is called on the goroutine of
// the HTTP request and may block for the lifetime of the connection.
func NewHandler(log *logrus.Logger, accept func(conn *WSConn)) *Handler {
	return &Handler{
		log:    log,
		accept: accept,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP ...
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warnf("websocket upgrade failed for %s: %v", r.RemoteAddr, err)
		return
	}
	h.accept(&WSConn{conn: conn})
}
