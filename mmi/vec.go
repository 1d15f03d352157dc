// Package mmi implements the Emotion Engine multimedia instruction
// set as pure functions over 128-bit vector values: lane-wise
// arithmetic (wrapping and saturating), logic, compares, min/max and
// pack/unpack, with the per-lane semantics of the hardware tables.
//
// Every operation is stateless value-in/value-out. The stateful
// quadword funnel shift, which consumes the SA register, lives in
// package ee with the rest of the hidden-register protocol.
package mmi

// Vec128 is a 128-bit vector value carried as two 64-bit halves, Lo
// holding lanes 0..n/2-1 in little-endian lane order. A Vec128 has no
// intrinsic lane width; the operation applied to it fixes the view
// (16 bytes, 8 halfwords, 4 words or 2 doublewords), and switching
// views never transforms the value.
type Vec128 struct {
	Lo uint64
	Hi uint64
}

// FromBytes assembles a vector from 16 byte lanes, lane 0 first.
func FromBytes(b [16]byte) Vec128 {
	var v Vec128
	for i := 0; i < 8; i++ {
		v.Lo |= uint64(b[i]) << (8 * i)
		v.Hi |= uint64(b[i+8]) << (8 * i)
	}
	return v
}

// Bytes returns the 16 byte lanes, lane 0 first.
func (v Vec128) Bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v.Lo >> (8 * i))
		b[i+8] = byte(v.Hi >> (8 * i))
	}
	return b
}

// FromHalfwords assembles a vector from 8 halfword lanes.
func FromHalfwords(h [8]uint16) Vec128 {
	var v Vec128
	for i := 0; i < 4; i++ {
		v.Lo |= uint64(h[i]) << (16 * i)
		v.Hi |= uint64(h[i+4]) << (16 * i)
	}
	return v
}

// Halfwords returns the 8 halfword lanes.
func (v Vec128) Halfwords() [8]uint16 {
	var h [8]uint16
	for i := 0; i < 4; i++ {
		h[i] = uint16(v.Lo >> (16 * i))
		h[i+4] = uint16(v.Hi >> (16 * i))
	}
	return h
}

// FromWords assembles a vector from 4 word lanes.
func FromWords(w [4]uint32) Vec128 {
	return Vec128{
		Lo: uint64(w[0]) | uint64(w[1])<<32,
		Hi: uint64(w[2]) | uint64(w[3])<<32,
	}
}

// Words returns the 4 word lanes.
func (v Vec128) Words() [4]uint32 {
	return [4]uint32{
		uint32(v.Lo), uint32(v.Lo >> 32),
		uint32(v.Hi), uint32(v.Hi >> 32),
	}
}

// FromDwords assembles a vector from 2 doubleword lanes.
func FromDwords(lo, hi uint64) Vec128 {
	return Vec128{Lo: lo, Hi: hi}
}

// Splat8 broadcasts a byte into all 16 lanes.
func Splat8(b uint8) Vec128 {
	x := uint64(b)
	x |= x << 8
	x |= x << 16
	x |= x << 32
	return Vec128{Lo: x, Hi: x}
}

// Splat16 broadcasts a halfword into all 8 lanes.
func Splat16(h uint16) Vec128 {
	x := uint64(h)
	x |= x << 16
	x |= x << 32
	return Vec128{Lo: x, Hi: x}
}

// Splat32 broadcasts a word into all 4 lanes.
func Splat32(w uint32) Vec128 {
	x := uint64(w) | uint64(w)<<32
	return Vec128{Lo: x, Hi: x}
}
