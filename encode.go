package numenc

// This file holds all of our encoders, which turn native numeric values into
// their order-preserving byte form. The results can be read back with the
// Get*() functions.

import (
	"fmt"

	"github.com/bearlytools/numenc/internal/binary"
	"github.com/bearlytools/numenc/internal/xform"
	"github.com/pkg/errors"
)

// Int8 encodes v into 1 byte that sorts like the signed value.
func Int8(v int8) [1]byte {
	return [1]byte{xform.SignFlip(uint8(v))}
}

// Int16 encodes v into 2 bytes that sort like the signed value.
func Int16(v int16) [2]byte {
	var b [2]byte
	binary.PutUint16(b[:], xform.SignFlip(uint16(v)))
	return b
}

// Int32 encodes v into 4 bytes that sort like the signed value.
func Int32(v int32) [4]byte {
	var b [4]byte
	binary.PutUint32(b[:], xform.SignFlip(uint32(v)))
	return b
}

// Int64 encodes v into 8 bytes that sort like the signed value.
func Int64(v int64) [8]byte {
	var b [8]byte
	binary.PutUint64(b[:], xform.SignFlip(uint64(v)))
	return b
}

// Uint8 encodes v into 1 byte. Unsigned values sort correctly in their
// natural binary form, so no bit manipulation happens.
func Uint8(v uint8) [1]byte {
	return [1]byte{v}
}

// Uint16 encodes v into 2 bytes, most significant first.
func Uint16(v uint16) [2]byte {
	var b [2]byte
	binary.PutUint16(b[:], v)
	return b
}

// Uint32 encodes v into 4 bytes, most significant first.
func Uint32(v uint32) [4]byte {
	var b [4]byte
	binary.PutUint32(b[:], v)
	return b
}

// Uint64 encodes v into 8 bytes, most significant first.
func Uint64(v uint64) [8]byte {
	var b [8]byte
	binary.PutUint64(b[:], v)
	return b
}

// Float32 encodes v into 4 bytes that sort like the float. See the package
// doc for the -0.0 and NaN caveats.
func Float32(v float32) [4]byte {
	var b [4]byte
	binary.PutUint32(b[:], xform.OrderFloat32(v))
	return b
}

// Float64 encodes v into 8 bytes that sort like the float. See the package
// doc for the -0.0 and NaN caveats.
func Float64(v float64) [8]byte {
	var b [8]byte
	binary.PutUint64(b[:], xform.OrderFloat64(v))
	return b
}

// AppendInt8 appends the encoding of v to b.
func AppendInt8(b []byte, v int8) []byte {
	a := Int8(v)
	return append(b, a[:]...)
}

// AppendInt16 appends the encoding of v to b.
func AppendInt16(b []byte, v int16) []byte {
	a := Int16(v)
	return append(b, a[:]...)
}

// AppendInt32 appends the encoding of v to b.
func AppendInt32(b []byte, v int32) []byte {
	a := Int32(v)
	return append(b, a[:]...)
}

// AppendInt64 appends the encoding of v to b.
func AppendInt64(b []byte, v int64) []byte {
	a := Int64(v)
	return append(b, a[:]...)
}

// AppendUint8 appends the encoding of v to b.
func AppendUint8(b []byte, v uint8) []byte {
	return append(b, v)
}

// AppendUint16 appends the encoding of v to b.
func AppendUint16(b []byte, v uint16) []byte {
	a := Uint16(v)
	return append(b, a[:]...)
}

// AppendUint32 appends the encoding of v to b.
func AppendUint32(b []byte, v uint32) []byte {
	a := Uint32(v)
	return append(b, a[:]...)
}

// AppendUint64 appends the encoding of v to b.
func AppendUint64(b []byte, v uint64) []byte {
	a := Uint64(v)
	return append(b, a[:]...)
}

// AppendFloat32 appends the encoding of v to b.
func AppendFloat32(b []byte, v float32) []byte {
	a := Float32(v)
	return append(b, a[:]...)
}

// AppendFloat64 appends the encoding of v to b.
func AppendFloat64(b []byte, v float64) []byte {
	a := Float64(v)
	return append(b, a[:]...)
}

// Append encodes any Scalar value and appends it to b.
func Append[S Scalar](b []byte, v S) []byte {
	switch t := any(v).(type) {
	case int8:
		return AppendInt8(b, t)
	case int16:
		return AppendInt16(b, t)
	case int32:
		return AppendInt32(b, t)
	case int64:
		return AppendInt64(b, t)
	case uint8:
		return AppendUint8(b, t)
	case uint16:
		return AppendUint16(b, t)
	case uint32:
		return AppendUint32(b, t)
	case uint64:
		return AppendUint64(b, t)
	case float32:
		return AppendFloat32(b, t)
	case float64:
		return AppendFloat64(b, t)
	}
	panic(fmt.Sprintf("%T is a Scalar that isn't supported, meaning its a bug", v))
}

// PutInt8 writes the encoding of v into b[:1].
func PutInt8(b []byte, v int8) error {
	if err := fits(b, 1); err != nil {
		return err
	}
	b[0] = xform.SignFlip(uint8(v))
	return nil
}

// PutInt16 writes the encoding of v into b[:2].
func PutInt16(b []byte, v int16) error {
	if err := fits(b, 2); err != nil {
		return err
	}
	binary.PutUint16(b, xform.SignFlip(uint16(v)))
	return nil
}

// PutInt32 writes the encoding of v into b[:4].
func PutInt32(b []byte, v int32) error {
	if err := fits(b, 4); err != nil {
		return err
	}
	binary.PutUint32(b, xform.SignFlip(uint32(v)))
	return nil
}

// PutInt64 writes the encoding of v into b[:8].
func PutInt64(b []byte, v int64) error {
	if err := fits(b, 8); err != nil {
		return err
	}
	binary.PutUint64(b, xform.SignFlip(uint64(v)))
	return nil
}

// PutUint8 writes the encoding of v into b[:1].
func PutUint8(b []byte, v uint8) error {
	if err := fits(b, 1); err != nil {
		return err
	}
	b[0] = v
	return nil
}

// PutUint16 writes the encoding of v into b[:2].
func PutUint16(b []byte, v uint16) error {
	if err := fits(b, 2); err != nil {
		return err
	}
	binary.PutUint16(b, v)
	return nil
}

// PutUint32 writes the encoding of v into b[:4].
func PutUint32(b []byte, v uint32) error {
	if err := fits(b, 4); err != nil {
		return err
	}
	binary.PutUint32(b, v)
	return nil
}

// PutUint64 writes the encoding of v into b[:8].
func PutUint64(b []byte, v uint64) error {
	if err := fits(b, 8); err != nil {
		return err
	}
	binary.PutUint64(b, v)
	return nil
}

// PutFloat32 writes the encoding of v into b[:4].
func PutFloat32(b []byte, v float32) error {
	if err := fits(b, 4); err != nil {
		return err
	}
	binary.PutUint32(b, xform.OrderFloat32(v))
	return nil
}

// PutFloat64 writes the encoding of v into b[:8].
func PutFloat64(b []byte, v float64) error {
	if err := fits(b, 8); err != nil {
		return err
	}
	binary.PutUint64(b, xform.OrderFloat64(v))
	return nil
}

// fits validates b can hold width bytes before anything gets written.
func fits(b []byte, width int) error {
	if len(b) < width {
		return errors.Wrapf(ErrLength, "need %d bytes, have %d", width, len(b))
	}
	return nil
}
