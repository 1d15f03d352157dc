package mmi

// PAND is the 128-bit bitwise AND.
func PAND(a, b Vec128) Vec128 {
	return Vec128{Lo: a.Lo & b.Lo, Hi: a.Hi & b.Hi}
}

// POR is the 128-bit bitwise OR.
func POR(a, b Vec128) Vec128 {
	return Vec128{Lo: a.Lo | b.Lo, Hi: a.Hi | b.Hi}
}

// PXOR is the 128-bit bitwise XOR.
func PXOR(a, b Vec128) Vec128 {
	return Vec128{Lo: a.Lo ^ b.Lo, Hi: a.Hi ^ b.Hi}
}

// PNOR is the 128-bit bitwise NOR.
func PNOR(a, b Vec128) Vec128 {
	return Vec128{Lo: ^(a.Lo | b.Lo), Hi: ^(a.Hi | b.Hi)}
}
