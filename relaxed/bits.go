package relaxed

import (
	"encoding/binary"
	"math"
)

// Bit-level and byte-level conversions are per-width package functions:
// the result type differs between the two instantiations (uint64 vs
// uint32, [8]byte vs [4]byte), which a generic method cannot express.

// Bits returns the IEEE-754 binary representation of the held value,
// preserving NaN payload bits and the sign of zero.
func Bits(x F64) uint64 { return math.Float64bits(x.v) }

// Bits32 is Bits for the 32-bit instantiation.
func Bits32(x F32) uint32 { return math.Float32bits(x.v) }

// FromBits returns the wrapper holding the value the given IEEE-754 bits
// represent.
func FromBits(b uint64) F64 { return Wrap(math.Float64frombits(b)) }

// FromBits32 is FromBits for the 32-bit instantiation.
func FromBits32(b uint32) F32 { return Wrap(math.Float32frombits(b)) }

// BigEndianBytes returns the big-endian byte representation of the held
// value.
func BigEndianBytes(x F64) [8]byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], Bits(x))
	return b
}

// LittleEndianBytes returns the little-endian byte representation of the
// held value.
func LittleEndianBytes(x F64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], Bits(x))
	return b
}

// NativeEndianBytes returns the byte representation of the held value in
// the platform's byte order.
func NativeEndianBytes(x F64) [8]byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], Bits(x))
	return b
}

// FromBigEndianBytes returns the wrapper represented by big-endian bytes.
func FromBigEndianBytes(b [8]byte) F64 {
	return FromBits(binary.BigEndian.Uint64(b[:]))
}

// FromLittleEndianBytes returns the wrapper represented by little-endian
// bytes.
func FromLittleEndianBytes(b [8]byte) F64 {
	return FromBits(binary.LittleEndian.Uint64(b[:]))
}

// FromNativeEndianBytes returns the wrapper represented by bytes in the
// platform's byte order.
func FromNativeEndianBytes(b [8]byte) F64 {
	return FromBits(binary.NativeEndian.Uint64(b[:]))
}

// BigEndianBytes32 returns the big-endian byte representation of the held
// value.
func BigEndianBytes32(x F32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], Bits32(x))
	return b
}

// LittleEndianBytes32 returns the little-endian byte representation of
// the held value.
func LittleEndianBytes32(x F32) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], Bits32(x))
	return b
}

// NativeEndianBytes32 returns the byte representation of the held value
// in the platform's byte order.
func NativeEndianBytes32(x F32) [4]byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], Bits32(x))
	return b
}

// FromBigEndianBytes32 returns the wrapper represented by big-endian
// bytes.
func FromBigEndianBytes32(b [4]byte) F32 {
	return FromBits32(binary.BigEndian.Uint32(b[:]))
}

// FromLittleEndianBytes32 returns the wrapper represented by
// little-endian bytes.
func FromLittleEndianBytes32(b [4]byte) F32 {
	return FromBits32(binary.LittleEndian.Uint32(b[:]))
}

// FromNativeEndianBytes32 returns the wrapper represented by bytes in the
// platform's byte order.
func FromNativeEndianBytes32(b [4]byte) F32 {
	return FromBits32(binary.NativeEndian.Uint32(b[:]))
}
