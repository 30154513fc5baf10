package numenc

// This file holds all of our getters, which read the order-preserving byte
// form back into native values. Each getter requires its input to be exactly
// the encoded width; anything else fails with ErrLength before a byte is
// consumed.

import (
	"fmt"

	"github.com/bearlytools/numenc/internal/binary"
	"github.com/bearlytools/numenc/internal/xform"
	"github.com/pkg/errors"
)

// GetInt8 decodes a 1-byte encoding produced by Int8.
func GetInt8(b []byte) (int8, error) {
	if err := exact(b, 1, KInt8); err != nil {
		return 0, err
	}
	return int8(xform.SignFlip(b[0])), nil
}

// GetInt16 decodes a 2-byte encoding produced by Int16.
func GetInt16(b []byte) (int16, error) {
	if err := exact(b, 2, KInt16); err != nil {
		return 0, err
	}
	return int16(xform.SignFlip(binary.Uint16(b))), nil
}

// GetInt32 decodes a 4-byte encoding produced by Int32.
func GetInt32(b []byte) (int32, error) {
	if err := exact(b, 4, KInt32); err != nil {
		return 0, err
	}
	return int32(xform.SignFlip(binary.Uint32(b))), nil
}

// GetInt64 decodes an 8-byte encoding produced by Int64.
func GetInt64(b []byte) (int64, error) {
	if err := exact(b, 8, KInt64); err != nil {
		return 0, err
	}
	return int64(xform.SignFlip(binary.Uint64(b))), nil
}

// GetUint8 decodes a 1-byte encoding produced by Uint8.
func GetUint8(b []byte) (uint8, error) {
	if err := exact(b, 1, KUint8); err != nil {
		return 0, err
	}
	return b[0], nil
}

// GetUint16 decodes a 2-byte encoding produced by Uint16.
func GetUint16(b []byte) (uint16, error) {
	if err := exact(b, 2, KUint16); err != nil {
		return 0, err
	}
	return binary.Uint16(b), nil
}

// GetUint32 decodes a 4-byte encoding produced by Uint32.
func GetUint32(b []byte) (uint32, error) {
	if err := exact(b, 4, KUint32); err != nil {
		return 0, err
	}
	return binary.Uint32(b), nil
}

// GetUint64 decodes an 8-byte encoding produced by Uint64.
func GetUint64(b []byte) (uint64, error) {
	if err := exact(b, 8, KUint64); err != nil {
		return 0, err
	}
	return binary.Uint64(b), nil
}

// GetFloat32 decodes a 4-byte encoding produced by Float32.
func GetFloat32(b []byte) (float32, error) {
	if err := exact(b, 4, KFloat32); err != nil {
		return 0, err
	}
	return xform.UnorderFloat32(binary.Uint32(b)), nil
}

// GetFloat64 decodes an 8-byte encoding produced by Float64.
func GetFloat64(b []byte) (float64, error) {
	if err := exact(b, 8, KFloat64); err != nil {
		return 0, err
	}
	return xform.UnorderFloat64(binary.Uint64(b)), nil
}

// Get decodes b into any Scalar type.
func Get[S Scalar](b []byte) (S, error) {
	var r S // This is only used for type detection.
	switch any(r).(type) {
	case int8:
		v, err := GetInt8(b)
		return S(v), err
	case int16:
		v, err := GetInt16(b)
		return S(v), err
	case int32:
		v, err := GetInt32(b)
		return S(v), err
	case int64:
		v, err := GetInt64(b)
		return S(v), err
	case uint8:
		v, err := GetUint8(b)
		return S(v), err
	case uint16:
		v, err := GetUint16(b)
		return S(v), err
	case uint32:
		v, err := GetUint32(b)
		return S(v), err
	case uint64:
		v, err := GetUint64(b)
		return S(v), err
	case float32:
		v, err := GetFloat32(b)
		return S(v), err
	case float64:
		v, err := GetFloat64(b)
		return S(v), err
	}
	panic(fmt.Sprintf("%T is a Scalar that isn't supported, meaning its a bug", r))
}

// exact validates the input is exactly width bytes before anything decodes.
func exact(b []byte, width int, k Kind) error {
	if len(b) != width {
		return errors.Wrapf(ErrLength, "%v wants %d bytes, got %d", k, width, len(b))
	}
	return nil
}
