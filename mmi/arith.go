package mmi

import "math"

// PADDB adds byte lanes with wraparound.
func PADDB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromBytes(r)
}

// PADDH adds halfword lanes with wraparound.
func PADDH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromHalfwords(r)
}

// PADDW adds word lanes with wraparound.
func PADDW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] + y[i]
	}
	return FromWords(r)
}

// PSUBB subtracts byte lanes with wraparound.
func PSUBB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromBytes(r)
}

// PSUBH subtracts halfword lanes with wraparound.
func PSUBH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromHalfwords(r)
}

// PSUBW subtracts word lanes with wraparound.
func PSUBW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		r[i] = x[i] - y[i]
	}
	return FromWords(r)
}

// PADDSB adds byte lanes as signed values with saturation.
func PADDSB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		r[i] = byte(satS8(int16(int8(x[i])) + int16(int8(y[i]))))
	}
	return FromBytes(r)
}

// PADDSH adds halfword lanes as signed values with saturation.
func PADDSH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		r[i] = uint16(satS16(int32(int16(x[i])) + int32(int16(y[i]))))
	}
	return FromHalfwords(r)
}

// PADDSW adds word lanes as signed values with saturation.
func PADDSW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		r[i] = uint32(satS32(int64(int32(x[i])) + int64(int32(y[i]))))
	}
	return FromWords(r)
}

// PSUBSB subtracts byte lanes as signed values with saturation.
func PSUBSB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		r[i] = byte(satS8(int16(int8(x[i])) - int16(int8(y[i]))))
	}
	return FromBytes(r)
}

// PSUBSH subtracts halfword lanes as signed values with saturation.
func PSUBSH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		r[i] = uint16(satS16(int32(int16(x[i])) - int32(int16(y[i]))))
	}
	return FromHalfwords(r)
}

// PSUBSW subtracts word lanes as signed values with saturation.
func PSUBSW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		r[i] = uint32(satS32(int64(int32(x[i])) - int64(int32(y[i]))))
	}
	return FromWords(r)
}

// PADDUB adds byte lanes as unsigned values with saturation.
func PADDUB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		s := uint16(x[i]) + uint16(y[i])
		if s > math.MaxUint8 {
			s = math.MaxUint8
		}
		r[i] = byte(s)
	}
	return FromBytes(r)
}

// PADDUH adds halfword lanes as unsigned values with saturation.
func PADDUH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		s := uint32(x[i]) + uint32(y[i])
		if s > math.MaxUint16 {
			s = math.MaxUint16
		}
		r[i] = uint16(s)
	}
	return FromHalfwords(r)
}

// PADDUW adds word lanes as unsigned values with saturation.
func PADDUW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		s := uint64(x[i]) + uint64(y[i])
		if s > math.MaxUint32 {
			s = math.MaxUint32
		}
		r[i] = uint32(s)
	}
	return FromWords(r)
}

// PSUBUB subtracts byte lanes as unsigned values, clamping at zero.
func PSUBUB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		if x[i] > y[i] {
			r[i] = x[i] - y[i]
		}
	}
	return FromBytes(r)
}

// PSUBUH subtracts halfword lanes as unsigned values, clamping at zero.
func PSUBUH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		if x[i] > y[i] {
			r[i] = x[i] - y[i]
		}
	}
	return FromHalfwords(r)
}

// PSUBUW subtracts word lanes as unsigned values, clamping at zero.
func PSUBUW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		if x[i] > y[i] {
			r[i] = x[i] - y[i]
		}
	}
	return FromWords(r)
}

// PABSH replaces halfword lanes with their absolute value; the
// minimum value saturates to the maximum.
func PABSH(a Vec128) Vec128 {
	x := a.Halfwords()
	var r [8]uint16
	for i := range r {
		v := int16(x[i])
		switch {
		case v == math.MinInt16:
			r[i] = math.MaxInt16
		case v < 0:
			r[i] = uint16(-v)
		default:
			r[i] = uint16(v)
		}
	}
	return FromHalfwords(r)
}

// PABSW replaces word lanes with their absolute value; the minimum
// value saturates to the maximum.
func PABSW(a Vec128) Vec128 {
	x := a.Words()
	var r [4]uint32
	for i := range r {
		v := int32(x[i])
		switch {
		case v == math.MinInt32:
			r[i] = math.MaxInt32
		case v < 0:
			r[i] = uint32(-v)
		default:
			r[i] = uint32(v)
		}
	}
	return FromWords(r)
}

func satS8(v int16) int8 {
	if v > math.MaxInt8 {
		return math.MaxInt8
	}
	if v < math.MinInt8 {
		return math.MinInt8
	}
	return int8(v)
}

func satS16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

func satS32(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
