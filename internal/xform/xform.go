// Package xform holds the pure bit transforms that remap native numeric
// representations onto patterns whose unsigned order matches numeric order.
// The byte layout is someone else's problem: everything here works on whole
// unsigned integers, internal/binary gets them on the wire.
package xform

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// SignFlip XORs the top bit of v. Applied to a two's-complement pattern it
// remaps negative values (top bit 1 -> 0) below the non-negatives (0 -> 1)
// while leaving the magnitude bits alone, which is all it takes to make the
// pattern sort like the signed value. XOR makes it its own inverse, so the
// same call undoes the remap on decode.
func SignFlip[U constraints.Unsigned](v U) U {
	var shift uint
	switch any(v).(type) {
	case uint8:
		shift = 7
	case uint16:
		shift = 15
	case uint32:
		shift = 31
	case uint64:
		shift = 63
	default:
		panic(fmt.Sprintf("unsupported type that passed the type constraint %T", v))
	}
	return v ^ (U(1) << shift)
}

// OrderFloat64 maps v onto a 64-bit pattern whose unsigned order matches the
// numeric order of the floats. Non-negative values (the >= 0 test is true
// for -0.0, so both zeroes land on the same pattern) get the top bit set,
// which lifts them above every negative. Negative values get every bit
// complemented, which both clears the top bit and reverses their internal
// order so that more negative means smaller.
//
// NaN fails the >= 0 test and travels the complement branch; see the package
// doc in the root package for where that places it.
func OrderFloat64(v float64) uint64 {
	pattern := math.Float64bits(v)
	if v >= 0 {
		return pattern | (1 << 63)
	}
	return ^pattern
}

// UnorderFloat64 undoes OrderFloat64, keyed on the stored top bit.
func UnorderFloat64(pattern uint64) float64 {
	if pattern&(1<<63) != 0 {
		return math.Float64frombits(pattern ^ (1 << 63))
	}
	return math.Float64frombits(^pattern)
}

// OrderFloat32 is OrderFloat64 for 32-bit patterns.
func OrderFloat32(v float32) uint32 {
	pattern := math.Float32bits(v)
	if v >= 0 {
		return pattern | (1 << 31)
	}
	return ^pattern
}

// UnorderFloat32 undoes OrderFloat32.
func UnorderFloat32(pattern uint32) float32 {
	if pattern&(1<<31) != 0 {
		return math.Float32frombits(pattern ^ (1 << 31))
	}
	return math.Float32frombits(^pattern)
}
