package message

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/playersim/game"
	"github.com/oomph-ac/playersim/oerror"
)

func TestEncodeDecode(t *testing.T) {
	messages := []Message{
		&Emote{Animation: "wave"},
		&SitEdgeToggle{On: true},
		&Revive{},
		&Death{},
		&Talk{Type: game.TalkComplain},
		&PositionSync{Position: mgl32.Vec3{12.5, 70, -3.25}},
	}
	for i, m := range messages {
		id, got, err := Decode(Encode(uint64(1000+i), m))
		if err != nil {
			t.Fatalf("decode %s: %v", Name(m), err)
		}
		if id != uint64(1000+i) {
			t.Fatalf("expected entity %d, got %d", 1000+i, id)
		}
		if !reflect.DeepEqual(got, m) {
			t.Fatalf("expected %#v, got %#v", m, got)
		}
	}
}

func TestDecodeUnknownMessage(t *testing.T) {
	frame := Encode(1, &Death{})
	frame[0] = 99
	if _, _, err := Decode(frame); !errors.Is(err, oerror.ErrUnknownMessage) {
		t.Fatalf("expected ErrUnknownMessage, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	frame := Encode(1, &Emote{Animation: "facepalm"})
	if _, _, err := Decode(frame[:2]); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
	if _, _, err := Decode(nil); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for an empty frame, got %v", err)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	frame := append(Encode(1, &Revive{}), 0x01)
	if _, _, err := Decode(frame); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage, got %v", err)
	}
}

func TestDecodeVersionMismatch(t *testing.T) {
	frame := Encode(1, &Revive{})
	frame[1] = Version + 1
	if _, _, err := Decode(frame); !errors.Is(err, oerror.ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestDecodeTruncatedString(t *testing.T) {
	frame := Encode(1, &Emote{Animation: "wave"})
	if _, m, err := Decode(frame[:len(frame)-2]); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for a cut off string, got %#v (%v)", m, err)
	}
}

func TestDecodeOversizedString(t *testing.T) {
	frame := Encode(1, &Emote{})
	// Replace the empty length prefix with a varuint32 of 1<<28.
	frame = append(frame[:len(frame)-1], 0x80, 0x80, 0x80, 0x80, 0x01)
	if _, m, err := Decode(frame); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for an oversized string, got %#v (%v)", m, err)
	}

	long := Encode(1, &Emote{Animation: strings.Repeat("a", MaxStringLength)})
	if _, _, err := Decode(long); err != nil {
		t.Fatalf("expected a string of the maximum length to decode, got %v", err)
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	frame := Encode(1, &Emote{Animation: "ab"})
	frame[len(frame)-2], frame[len(frame)-1] = 0xff, 0xfe
	if _, _, err := Decode(frame); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for invalid utf-8, got %v", err)
	}
}

func TestDecodeInvalidBool(t *testing.T) {
	frame := Encode(1, &SitEdgeToggle{On: true})
	frame[len(frame)-1] = 2
	if _, _, err := Decode(frame); !errors.Is(err, oerror.ErrMalformedMessage) {
		t.Fatalf("expected ErrMalformedMessage for a bool of 2, got %v", err)
	}

	frame[len(frame)-1] = 0
	_, m, err := Decode(frame)
	if err != nil {
		t.Fatal(err)
	}
	if toggle := m.(*SitEdgeToggle); toggle.On {
		t.Fatal("expected a zero byte to decode as false")
	}
}
