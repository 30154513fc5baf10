package numenc

// This file holds the stream tier: the same encodings over io.Writer and
// io.Reader. Reads use io.ReadFull, so a short stream surfaces as
// io.ErrUnexpectedEOF rather than a silent truncation.

import (
	"io"
)

// WriteInt8 writes the encoding of v to w.
func WriteInt8(w io.Writer, v int8) error {
	b := Int8(v)
	_, err := w.Write(b[:])
	return err
}

// WriteInt16 writes the encoding of v to w.
func WriteInt16(w io.Writer, v int16) error {
	b := Int16(v)
	_, err := w.Write(b[:])
	return err
}

// WriteInt32 writes the encoding of v to w.
func WriteInt32(w io.Writer, v int32) error {
	b := Int32(v)
	_, err := w.Write(b[:])
	return err
}

// WriteInt64 writes the encoding of v to w.
func WriteInt64(w io.Writer, v int64) error {
	b := Int64(v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint8 writes the encoding of v to w.
func WriteUint8(w io.Writer, v uint8) error {
	b := Uint8(v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint16 writes the encoding of v to w.
func WriteUint16(w io.Writer, v uint16) error {
	b := Uint16(v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint32 writes the encoding of v to w.
func WriteUint32(w io.Writer, v uint32) error {
	b := Uint32(v)
	_, err := w.Write(b[:])
	return err
}

// WriteUint64 writes the encoding of v to w.
func WriteUint64(w io.Writer, v uint64) error {
	b := Uint64(v)
	_, err := w.Write(b[:])
	return err
}

// WriteFloat32 writes the encoding of v to w.
func WriteFloat32(w io.Writer, v float32) error {
	b := Float32(v)
	_, err := w.Write(b[:])
	return err
}

// WriteFloat64 writes the encoding of v to w.
func WriteFloat64(w io.Writer, v float64) error {
	b := Float64(v)
	_, err := w.Write(b[:])
	return err
}

// ReadInt8 reads and decodes an int8 encoding from r.
func ReadInt8(r io.Reader) (int8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetInt8(b[:])
}

// ReadInt16 reads and decodes an int16 encoding from r.
func ReadInt16(r io.Reader) (int16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetInt16(b[:])
}

// ReadInt32 reads and decodes an int32 encoding from r.
func ReadInt32(r io.Reader) (int32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetInt32(b[:])
}

// ReadInt64 reads and decodes an int64 encoding from r.
func ReadInt64(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetInt64(b[:])
}

// ReadUint8 reads and decodes a uint8 encoding from r.
func ReadUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetUint8(b[:])
}

// ReadUint16 reads and decodes a uint16 encoding from r.
func ReadUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetUint16(b[:])
}

// ReadUint32 reads and decodes a uint32 encoding from r.
func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetUint32(b[:])
}

// ReadUint64 reads and decodes a uint64 encoding from r.
func ReadUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetUint64(b[:])
}

// ReadFloat32 reads and decodes a float32 encoding from r.
func ReadFloat32(r io.Reader) (float32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetFloat32(b[:])
}

// ReadFloat64 reads and decodes a float64 encoding from r.
func ReadFloat64(r io.Reader) (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return GetFloat64(b[:])
}
