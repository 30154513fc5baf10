package binary

import (
	"bytes"
	"testing"
)

// FuzzUint16 fuzzes the uint16 put/get round-trip.
func FuzzUint16(f *testing.F) {
	f.Add(uint16(0))
	f.Add(uint16(1))
	f.Add(uint16(0x0102))
	f.Add(uint16(0x8000))
	f.Add(uint16(0xFFFF))

	f.Fuzz(func(t *testing.T, v uint16) {
		b := make([]byte, 2)
		PutUint16(b, v)

		if got := Uint16(b); got != v {
			t.Errorf("FuzzUint16: round-trip failed: got %d, want %d", got, v)
		}
		// Byte 0 holds the high bits no matter the host order.
		if b[0] != byte(v>>8) {
			t.Errorf("FuzzUint16: byte 0 is %#x, want %#x", b[0], byte(v>>8))
		}
	})
}

// FuzzUint32 fuzzes the uint32 put/get round-trip.
func FuzzUint32(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(1))
	f.Add(uint32(0x01020304))
	f.Add(uint32(0x80000000))
	f.Add(uint32(0xFFFFFFFF))

	f.Fuzz(func(t *testing.T, v uint32) {
		b := make([]byte, 4)
		PutUint32(b, v)

		if got := Uint32(b); got != v {
			t.Errorf("FuzzUint32: round-trip failed: got %d, want %d", got, v)
		}
		if b[0] != byte(v>>24) {
			t.Errorf("FuzzUint32: byte 0 is %#x, want %#x", b[0], byte(v>>24))
		}
	})
}

// FuzzUint64 fuzzes the uint64 put/get round-trip.
func FuzzUint64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(0x0102030405060708))
	f.Add(uint64(1) << 63)
	f.Add(uint64(0xFFFFFFFFFFFFFFFF))

	f.Fuzz(func(t *testing.T, v uint64) {
		b := make([]byte, 8)
		PutUint64(b, v)

		if got := Uint64(b); got != v {
			t.Errorf("FuzzUint64: round-trip failed: got %d, want %d", got, v)
		}
		if b[0] != byte(v>>56) {
			t.Errorf("FuzzUint64: byte 0 is %#x, want %#x", b[0], byte(v>>56))
		}
	})
}

// FuzzUint64Order fuzzes the ordering property of the byte layout.
func FuzzUint64Order(f *testing.F) {
	f.Add(uint64(0), uint64(1))
	f.Add(uint64(255), uint64(256))
	f.Add(uint64(1)<<63-1, uint64(1)<<63)
	f.Add(uint64(0xFFFFFFFFFFFFFFFF), uint64(0))

	f.Fuzz(func(t *testing.T, a, b uint64) {
		ab := make([]byte, 8)
		bb := make([]byte, 8)
		PutUint64(ab, a)
		PutUint64(bb, b)

		cmp := bytes.Compare(ab, bb)
		switch {
		case a < b && cmp >= 0:
			t.Errorf("FuzzUint64Order: %d < %d but %x !< %x", a, b, ab, bb)
		case a == b && cmp != 0:
			t.Errorf("FuzzUint64Order: %d == %d but %x != %x", a, b, ab, bb)
		case a > b && cmp <= 0:
			t.Errorf("FuzzUint64Order: %d > %d but %x !> %x", a, b, ab, bb)
		}
	})
}
