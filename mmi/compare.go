package mmi

// Compare results are lane masks: all-ones where the predicate holds,
// all-zeros where it does not.

// PCEQB compares byte lanes for equality.
func PCEQB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		if x[i] == y[i] {
			r[i] = 0xFF
		}
	}
	return FromBytes(r)
}

// PCEQH compares halfword lanes for equality.
func PCEQH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		if x[i] == y[i] {
			r[i] = 0xFFFF
		}
	}
	return FromHalfwords(r)
}

// PCEQW compares word lanes for equality.
func PCEQW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		if x[i] == y[i] {
			r[i] = 0xFFFFFFFF
		}
	}
	return FromWords(r)
}

// PCGTB compares byte lanes for signed greater-than.
func PCGTB(a, b Vec128) Vec128 {
	x, y := a.Bytes(), b.Bytes()
	var r [16]byte
	for i := range r {
		if int8(x[i]) > int8(y[i]) {
			r[i] = 0xFF
		}
	}
	return FromBytes(r)
}

// PCGTH compares halfword lanes for signed greater-than.
func PCGTH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		if int16(x[i]) > int16(y[i]) {
			r[i] = 0xFFFF
		}
	}
	return FromHalfwords(r)
}

// PCGTW compares word lanes for signed greater-than.
func PCGTW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		if int32(x[i]) > int32(y[i]) {
			r[i] = 0xFFFFFFFF
		}
	}
	return FromWords(r)
}

// PMAXH keeps the signed maximum of each halfword lane pair.
func PMAXH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		if int16(x[i]) > int16(y[i]) {
			r[i] = x[i]
		} else {
			r[i] = y[i]
		}
	}
	return FromHalfwords(r)
}

// PMINH keeps the signed minimum of each halfword lane pair.
func PMINH(a, b Vec128) Vec128 {
	x, y := a.Halfwords(), b.Halfwords()
	var r [8]uint16
	for i := range r {
		if int16(x[i]) < int16(y[i]) {
			r[i] = x[i]
		} else {
			r[i] = y[i]
		}
	}
	return FromHalfwords(r)
}

// PMAXW keeps the signed maximum of each word lane pair.
func PMAXW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		if int32(x[i]) > int32(y[i]) {
			r[i] = x[i]
		} else {
			r[i] = y[i]
		}
	}
	return FromWords(r)
}

// PMINW keeps the signed minimum of each word lane pair.
func PMINW(a, b Vec128) Vec128 {
	x, y := a.Words(), b.Words()
	var r [4]uint32
	for i := range r {
		if int32(x[i]) < int32(y[i]) {
			r[i] = x[i]
		} else {
			r[i] = y[i]
		}
	}
	return FromWords(r)
}
