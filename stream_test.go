package numenc

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamRoundTrip(t *testing.T) {
	buff := &bytes.Buffer{}

	require.NoError(t, WriteInt8(buff, -128))
	require.NoError(t, WriteInt16(buff, -1))
	require.NoError(t, WriteInt32(buff, math.MaxInt32))
	require.NoError(t, WriteInt64(buff, math.MinInt64))
	require.NoError(t, WriteUint8(buff, 255))
	require.NoError(t, WriteUint16(buff, 258))
	require.NoError(t, WriteUint32(buff, math.MaxUint32))
	require.NoError(t, WriteUint64(buff, 1))
	require.NoError(t, WriteFloat32(buff, -1.5))
	require.NoError(t, WriteFloat64(buff, 1231111.123034))

	// 1+2+4+8+1+2+4+8+4+8
	require.Equal(t, 42, buff.Len())

	i8, err := ReadInt8(buff)
	require.NoError(t, err)
	require.Equal(t, int8(-128), i8)

	i16, err := ReadInt16(buff)
	require.NoError(t, err)
	require.Equal(t, int16(-1), i16)

	i32, err := ReadInt32(buff)
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), i32)

	i64, err := ReadInt64(buff)
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), i64)

	u8, err := ReadUint8(buff)
	require.NoError(t, err)
	require.Equal(t, uint8(255), u8)

	u16, err := ReadUint16(buff)
	require.NoError(t, err)
	require.Equal(t, uint16(258), u16)

	u32, err := ReadUint32(buff)
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), u32)

	u64, err := ReadUint64(buff)
	require.NoError(t, err)
	require.Equal(t, uint64(1), u64)

	f32, err := ReadFloat32(buff)
	require.NoError(t, err)
	require.Equal(t, float32(-1.5), f32)

	f64, err := ReadFloat64(buff)
	require.NoError(t, err)
	require.Equal(t, 1231111.123034, f64)

	require.Zero(t, buff.Len())
}

func TestStreamShortRead(t *testing.T) {
	_, err := ReadInt64(bytes.NewReader([]byte{0x01, 0x02, 0x03}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadFloat32(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)
}

func TestStreamWireIsTyped(t *testing.T) {
	// The wire carries no tag: the caller must pair encoder and decoder.
	// Decoding an int32 stream as uint32 silently reads the flipped form.
	buff := &bytes.Buffer{}
	require.NoError(t, WriteInt32(buff, -1))

	u, err := ReadUint32(bytes.NewReader(buff.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint32(0x7FFFFFFF), u)
}
