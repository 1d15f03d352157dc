package ee

import "math"

// DivStart issues a signed 32-bit divide on the handle's pipeline and
// defines the pair: LO receives the quotient, HI the remainder, each
// sign-extended to 64 bits. The quotient rounds toward zero and the
// remainder takes the sign of the dividend.
//
// Two inputs are fixed by the hardware contract and never fault:
//
//   - rt == 0 defines an unspecified but well-formed pair. Callers
//     that care must test the divisor themselves, and should do so
//     after issuing the divide, not before: issue first for
//     throughput, then branch on the independent zero check.
//   - MIN32 / -1 defines quotient MIN32, remainder 0, with no
//     overflow fault.
//
// Divide latency is the longest in the integer core; interleaving a
// divide on the other pipeline, or independent ALU work, before the
// finish hides most of it.
func (a *Acc[A]) DivStart(rs, rt int32) {
	if rt == 0 {
		// Unspecified by contract. The model mirrors the common
		// hardware outcome so runs are reproducible.
		q := int32(-1)
		if rs < 0 {
			q = 1
		}
		a.define(sext32(uint64(uint32(q))), sext32(uint64(uint32(rs))))
		return
	}
	// 64-bit division cannot overflow for 32-bit operands, so
	// MIN32 / -1 truncates back to MIN32 with remainder 0.
	q := int64(rs) / int64(rt)
	r := int64(rs) % int64(rt)
	a.define(sext32(uint64(q)), sext32(uint64(r)))
}

// DivFinishLo observes the quotient. This is the synchronization
// point for the divide.
func (a *Acc[A]) DivFinishLo() int32 {
	lo, _ := a.observe()
	return int32(lo)
}

// DivFinishHi observes the remainder.
func (a *Acc[A]) DivFinishHi() int32 {
	_, hi := a.observe()
	return int32(hi)
}

// DivFinish observes quotient and remainder together.
func (a *Acc[A]) DivFinish() LoHi {
	lo, hi := a.observe()
	return LoHi{Lo: int32(lo), Hi: int32(hi)}
}

// Div composes DivStart and DivFinish. Not throughput-optimal; see
// DivStart.
func (a *Acc[A]) Div(rs, rt int32) LoHi {
	a.DivStart(rs, rt)
	return a.DivFinish()
}

// DivuStart issues an unsigned 32-bit divide: LO quotient, HI
// remainder. rt == 0 defines an unspecified but well-formed pair
// (modelled as an all-ones quotient with the dividend as remainder).
func (a *Acc[A]) DivuStart(rs, rt uint32) {
	if rt == 0 {
		a.define(sext32(uint64(math.MaxUint32)), sext32(uint64(rs)))
		return
	}
	a.define(sext32(uint64(rs/rt)), sext32(uint64(rs%rt)))
}

// DivuFinishLo observes the unsigned quotient.
func (a *Acc[A]) DivuFinishLo() uint32 {
	lo, _ := a.observe()
	return uint32(lo)
}

// DivuFinishHi observes the unsigned remainder.
func (a *Acc[A]) DivuFinishHi() uint32 {
	_, hi := a.observe()
	return uint32(hi)
}

// DivuFinish observes unsigned quotient and remainder together.
func (a *Acc[A]) DivuFinish() LoHiU {
	lo, hi := a.observe()
	return LoHiU{Lo: uint32(lo), Hi: uint32(hi)}
}

// Divu composes DivuStart and DivuFinish.
func (a *Acc[A]) Divu(rs, rt uint32) LoHiU {
	a.DivuStart(rs, rt)
	return a.DivuFinish()
}
