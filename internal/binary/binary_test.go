package binary

import (
	"bytes"
	"testing"
)

func TestPutLayout(t *testing.T) {
	tests := []struct {
		desc string
		put  func(b []byte)
		want []byte
	}{
		{
			desc: "uint16 most significant byte first",
			put:  func(b []byte) { PutUint16(b, 0x0102) },
			want: []byte{0x01, 0x02},
		},
		{
			desc: "uint32 most significant byte first",
			put:  func(b []byte) { PutUint32(b, 0x01020304) },
			want: []byte{0x01, 0x02, 0x03, 0x04},
		},
		{
			desc: "uint64 most significant byte first",
			put:  func(b []byte) { PutUint64(b, 0x0102030405060708) },
			want: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		},
		{
			desc: "uint64 all bits",
			put:  func(b []byte) { PutUint64(b, 0xFFFFFFFFFFFFFFFF) },
			want: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		},
	}

	for _, test := range tests {
		got := make([]byte, len(test.want))
		test.put(got)
		if !bytes.Equal(got, test.want) {
			t.Errorf("TestPutLayout(%s): got %x, want %x", test.desc, got, test.want)
		}
	}
}

func TestGenericRoundTrip(t *testing.T) {
	b := make([]byte, 8)

	for _, v := range []uint8{0, 1, 127, 128, 255} {
		Put(b, v)
		if got := Get[uint8](b); got != v {
			t.Errorf("TestGenericRoundTrip(uint8 %d): got %d", v, got)
		}
	}
	for _, v := range []uint16{0, 1, 0x00FF, 0xFF00, 0xFFFF} {
		Put(b, v)
		if got := Get[uint16](b); got != v {
			t.Errorf("TestGenericRoundTrip(uint16 %d): got %d", v, got)
		}
	}
	for _, v := range []uint32{0, 1, 0x80000000, 0xFFFFFFFF} {
		Put(b, v)
		if got := Get[uint32](b); got != v {
			t.Errorf("TestGenericRoundTrip(uint32 %d): got %d", v, got)
		}
	}
	for _, v := range []uint64{0, 1, 1 << 63, 0xFFFFFFFFFFFFFFFF} {
		Put(b, v)
		if got := Get[uint64](b); got != v {
			t.Errorf("TestGenericRoundTrip(uint64 %d): got %d", v, got)
		}
	}
}

// Larger unsigned values must produce lexicographically larger bytes. This
// is the property the rest of the module builds on.
func TestLayoutPreservesOrder(t *testing.T) {
	vals := []uint64{0, 1, 255, 256, 65535, 65536, 1 << 32, 1<<63 - 1, 1 << 63, 0xFFFFFFFFFFFFFFFF}

	prev := make([]byte, 8)
	PutUint64(prev, vals[0])
	for _, v := range vals[1:] {
		cur := make([]byte, 8)
		PutUint64(cur, v)
		if bytes.Compare(prev, cur) >= 0 {
			t.Fatalf("TestLayoutPreservesOrder: %x not below %x", prev, cur)
		}
		prev = cur
	}
}
