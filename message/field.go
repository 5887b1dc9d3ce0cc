package message

import (
	"unicode/utf8"

	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// MaxStringLength is the maximum length in bytes of a string field.
const MaxStringLength = 256

// boundedString encodes a string the same way as protocol.IO.String, but refuses strings longer than
// MaxStringLength before allocating them and strings that are not valid UTF-8.
func boundedString(io protocol.IO, x *string, field string) {
	length := uint32(len(*x))
	io.Varuint32(&length)
	if length > MaxStringLength {
		io.InvalidValue(length, field+" length", "too long")
	}
	data := []byte(*x)
	if len(data) != int(length) {
		data = make([]byte, length)
	}
	for i := range data {
		io.Uint8(&data[i])
	}
	*x = string(data)
	if !utf8.ValidString(*x) {
		io.InvalidValue(*x, field, "not valid utf-8")
	}
}

// strictBool encodes a bool as a single byte that must be 0 or 1.
func strictBool(io protocol.IO, x *bool, field string) {
	var v uint8
	if *x {
		v = 1
	}
	io.Uint8(&v)
	if v > 1 {
		io.InvalidValue(v, field, "must be 0 or 1")
	}
	*x = v == 1
}
