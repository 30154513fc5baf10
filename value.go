package numenc

// This file holds the dynamic tier: encoders and decoders for callers that
// only know the numeric domain at runtime. Values travel through the widest
// native type of their class, so every kind narrower than 64 bits gets an
// explicit range check. Validation always runs before a byte is produced or
// consumed; a failed call returns nothing observable.

import (
	"math"

	"github.com/pkg/errors"
)

// EncodeInt encodes v as the signed integer kind k.
// Returns ErrKind if k is not a signed integer kind and ErrRange if v does
// not fit k.
func EncodeInt(k Kind, v int64) ([]byte, error) {
	switch k {
	case KInt8:
		if v < math.MinInt8 || v > math.MaxInt8 {
			return nil, errors.Wrapf(ErrRange, "expected 8-bit signed integer (range [-128, 127]), got %d", v)
		}
		b := Int8(int8(v))
		return b[:], nil
	case KInt16:
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, errors.Wrapf(ErrRange, "expected 16-bit signed integer (range [-32768, 32767]), got %d", v)
		}
		b := Int16(int16(v))
		return b[:], nil
	case KInt32:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, errors.Wrapf(ErrRange, "expected 32-bit signed integer (range [-2147483648, 2147483647]), got %d", v)
		}
		b := Int32(int32(v))
		return b[:], nil
	case KInt64:
		b := Int64(v)
		return b[:], nil
	}
	return nil, errors.Wrapf(ErrKind, "%v cannot hold a signed integer", k)
}

// EncodeUint encodes v as the unsigned integer kind k.
// Returns ErrKind if k is not an unsigned integer kind and ErrRange if v
// does not fit k.
func EncodeUint(k Kind, v uint64) ([]byte, error) {
	switch k {
	case KUint8:
		if v > math.MaxUint8 {
			return nil, errors.Wrapf(ErrRange, "expected 8-bit unsigned integer (range [0, 255]), got %d", v)
		}
		b := Uint8(uint8(v))
		return b[:], nil
	case KUint16:
		if v > math.MaxUint16 {
			return nil, errors.Wrapf(ErrRange, "expected 16-bit unsigned integer (range [0, 65535]), got %d", v)
		}
		b := Uint16(uint16(v))
		return b[:], nil
	case KUint32:
		if v > math.MaxUint32 {
			return nil, errors.Wrapf(ErrRange, "expected 32-bit unsigned integer (range [0, 4294967295]), got %d", v)
		}
		b := Uint32(uint32(v))
		return b[:], nil
	case KUint64:
		b := Uint64(v)
		return b[:], nil
	}
	return nil, errors.Wrapf(ErrKind, "%v cannot hold an unsigned integer", k)
}

// EncodeFloat encodes v as the float kind k.
// Returns ErrKind if k is not a float kind and ErrRange if a finite v
// overflows float32 for KFloat32. Infinities pass through; they are
// representable at both widths.
func EncodeFloat(k Kind, v float64) ([]byte, error) {
	switch k {
	case KFloat32:
		if !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
			return nil, errors.Wrapf(ErrRange, "expected 32-bit float, got %g which overflows", v)
		}
		b := Float32(float32(v))
		return b[:], nil
	case KFloat64:
		b := Float64(v)
		return b[:], nil
	}
	return nil, errors.Wrapf(ErrKind, "%v cannot hold a float", k)
}

// DecodeInt decodes b as the signed integer kind k, widened to int64.
func DecodeInt(k Kind, b []byte) (int64, error) {
	switch k {
	case KInt8:
		v, err := GetInt8(b)
		return int64(v), err
	case KInt16:
		v, err := GetInt16(b)
		return int64(v), err
	case KInt32:
		v, err := GetInt32(b)
		return int64(v), err
	case KInt64:
		return GetInt64(b)
	}
	return 0, errors.Wrapf(ErrKind, "%v cannot hold a signed integer", k)
}

// DecodeUint decodes b as the unsigned integer kind k, widened to uint64.
func DecodeUint(k Kind, b []byte) (uint64, error) {
	switch k {
	case KUint8:
		v, err := GetUint8(b)
		return uint64(v), err
	case KUint16:
		v, err := GetUint16(b)
		return uint64(v), err
	case KUint32:
		v, err := GetUint32(b)
		return uint64(v), err
	case KUint64:
		return GetUint64(b)
	}
	return 0, errors.Wrapf(ErrKind, "%v cannot hold an unsigned integer", k)
}

// DecodeFloat decodes b as the float kind k, widened to float64.
func DecodeFloat(k Kind, b []byte) (float64, error) {
	switch k {
	case KFloat32:
		v, err := GetFloat32(b)
		return float64(v), err
	case KFloat64:
		return GetFloat64(b)
	}
	return 0, errors.Wrapf(ErrKind, "%v cannot hold a float", k)
}
