package mmi

// PPACB packs the low byte of every halfword lane: the result's lower
// eight bytes come from b, the upper eight from a.
func PPACB(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [16]byte
	for i := 0; i < 8; i++ {
		r[i] = byte(y[i])
		r[i+8] = byte(x[i])
	}
	return FromBytes(r)
}

// PPACH packs the low halfword of every word lane: the result's lower
// four halfwords come from b, the upper four from a.
func PPACH(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [8]uint16
	for i := 0; i < 4; i++ {
		r[i] = uint16(y[i])
		r[i+4] = uint16(x[i])
	}
	return FromHalfwords(r)
}

// PPACW packs the even word lanes: the result's lower two words come
// from b, the upper two from a.
func PPACW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	return FromWords([4]uint32{y[0], y[2], x[0], x[2]})
}

// PEXTLB interleaves the lower eight byte lanes of both operands,
// b lanes in the even positions.
func PEXTLB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := 0; i < 8; i++ {
		r[2*i] = y[i]
		r[2*i+1] = x[i]
	}
	return FromBytes(r)
}

// PEXTUB interleaves the upper eight byte lanes of both operands.
func PEXTUB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := 0; i < 8; i++ {
		r[2*i] = y[i+8]
		r[2*i+1] = x[i+8]
	}
	return FromBytes(r)
}

// PEXTLH interleaves the lower four halfword lanes of both operands.
func PEXTLH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := 0; i < 4; i++ {
		r[2*i] = y[i]
		r[2*i+1] = x[i]
	}
	return FromHalfwords(r)
}

// PEXTUH interleaves the upper four halfword lanes of both operands.
func PEXTUH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := 0; i < 4; i++ {
		r[2*i] = y[i+4]
		r[2*i+1] = x[i+4]
	}
	return FromHalfwords(r)
}

// PEXTLW interleaves the lower two word lanes of both operands.
func PEXTLW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	return FromWords([4]uint32{y[0], x[0], y[1], x[1]})
}

// PEXTUW interleaves the upper two word lanes of both operands.
func PEXTUW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	return FromWords([4]uint32{y[2], x[2], y[3], x[3]})
}
