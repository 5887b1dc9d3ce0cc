package transport

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/oomph-ac/playersim/message"
	"github.com/oomph-ac/playersim/oerror"
	"github.com/sirupsen/logrus"
)

func TestPipeOrdered(t *testing.T) {
	a, b := Pipe()
	defer a.Close()

	sent := []message.Message{
		&message.SitEdgeToggle{On: true},
		&message.Emote{Animation: "nod"},
		&message.SitEdgeToggle{On: false},
	}
	for _, m := range sent {
		if err := a.WriteMessage(7, m); err != nil {
			t.Fatal(err)
		}
	}
	for i := range sent {
		id, m, err := b.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if id != 7 || m.ID() != sent[i].ID() {
			t.Fatalf("message %d: expected %s for entity 7, got %s for %d", i, message.Name(sent[i]), message.Name(m), id)
		}
	}
}

func TestPipeClose(t *testing.T) {
	a, b := Pipe()
	_ = a.WriteMessage(1, &message.Death{})
	_ = a.Close()

	if _, m, err := b.ReadMessage(); err != nil || m.ID() != message.IDDeath {
		t.Fatalf("expected pending message to be delivered after close, got %v %v", m, err)
	}
	if _, _, err := b.ReadMessage(); !errors.Is(err, oerror.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := b.WriteMessage(1, &message.Revive{}); !errors.Is(err, oerror.ErrClosed) {
		t.Fatalf("expected ErrClosed on write, got %v", err)
	}
}

func TestWebsocket(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	received := make(chan message.Message, 1)
	h := NewHandler(log, func(conn *WSConn) {
		defer conn.Close()
		_, m, err := conn.ReadMessage()
		if err != nil {
			return
		}
		received <- m
		_ = conn.WriteMessage(3, &message.Revive{})
	})
	srv := httptest.NewServer(h)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"))
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteMessage(3, &message.Emote{Animation: "laugh"}); err != nil {
		t.Fatal(err)
	}
	select {
	case m := <-received:
		if e, ok := m.(*message.Emote); !ok || e.Animation != "laugh" {
			t.Fatalf("unexpected message %#v", m)
		}
	case <-ctx.Done():
		t.Fatal("timed out waiting for the message")
	}

	id, m, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	if id != 3 || m.ID() != message.IDRevive {
		t.Fatalf("expected revive for entity 3, got %s for %d", message.Name(m), id)
	}
}
