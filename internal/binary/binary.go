// Package binary reads and writes fixed-width unsigned integers most
// significant byte first, regardless of the host byte order, using generics.
// Values go through the host's native layout and get byte-reversed when the
// endianness probe says the host is little-endian, so the wire form is
// identical on every machine.
package binary

import (
	stdbinary "encoding/binary"
	"fmt"
	"math/bits"

	"github.com/bearlytools/numenc/internal/hostorder"
	"golang.org/x/exp/constraints"
)

// Put writes any unsigned width into b, most significant byte first.
// b must hold at least the width of U; callers validate length.
func Put[U constraints.Unsigned](b []byte, v U) {
	switch any(v).(type) {
	case uint8:
		b[0] = byte(v)
		return
	case uint16:
		PutUint16(b, uint16(v))
		return
	case uint32:
		PutUint32(b, uint32(v))
		return
	case uint64:
		PutUint64(b, uint64(v))
		return
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", v))
}

// Get reads any unsigned width from b, treating b[0] as the most
// significant byte. b must hold at least the width of U.
func Get[U constraints.Unsigned](b []byte) U {
	var r U // This is only used for type detection.
	switch any(r).(type) {
	case uint8:
		return U(b[0])
	case uint16:
		return U(Uint16(b))
	case uint32:
		return U(Uint32(b))
	case uint64:
		return U(Uint64(b))
	}
	panic(fmt.Sprintf("unsupported type that passed the type constraint %T", r))
}

// PutUint16 writes v into b[:2], most significant byte first.
func PutUint16(b []byte, v uint16) {
	if hostorder.Little() {
		v = bits.ReverseBytes16(v)
	}
	stdbinary.NativeEndian.PutUint16(b, v)
}

// PutUint32 writes v into b[:4], most significant byte first.
func PutUint32(b []byte, v uint32) {
	if hostorder.Little() {
		v = bits.ReverseBytes32(v)
	}
	stdbinary.NativeEndian.PutUint32(b, v)
}

// PutUint64 writes v into b[:8], most significant byte first.
func PutUint64(b []byte, v uint64) {
	if hostorder.Little() {
		v = bits.ReverseBytes64(v)
	}
	stdbinary.NativeEndian.PutUint64(b, v)
}

// Uint16 reads b[:2] with b[0] as the most significant byte.
func Uint16(b []byte) uint16 {
	v := stdbinary.NativeEndian.Uint16(b)
	if hostorder.Little() {
		v = bits.ReverseBytes16(v)
	}
	return v
}

// Uint32 reads b[:4] with b[0] as the most significant byte.
func Uint32(b []byte) uint32 {
	v := stdbinary.NativeEndian.Uint32(b)
	if hostorder.Little() {
		v = bits.ReverseBytes32(v)
	}
	return v
}

// Uint64 reads b[:8] with b[0] as the most significant byte.
func Uint64(b []byte) uint64 {
	v := stdbinary.NativeEndian.Uint64(b)
	if hostorder.Little() {
		v = bits.ReverseBytes64(v)
	}
	return v
}
