// Package hostorder determines the byte order of the host machine once, at
// process start. The result is immutable afterwards, so unsynchronized reads
// from any number of goroutines are safe.
package hostorder

import "unsafe"

var little = probe()

// probe writes the 16-bit pattern 0x0001 and inspects the first byte in
// memory: 1 means the least significant byte comes first.
func probe() bool {
	pattern := uint16(0x0001)
	return *(*byte)(unsafe.Pointer(&pattern)) == 1
}

// Little reports whether the host stores integers least significant byte
// first.
func Little() bool {
	return little
}
