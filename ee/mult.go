package ee

// LoHi holds both halves of a finished signed multiply/divide.
type LoHi struct {
	Lo int32
	Hi int32
}

// LoHiU holds both halves of a finished unsigned multiply/divide.
type LoHiU struct {
	Lo uint32
	Hi uint32
}

// MultStart issues a signed 32x32->64 multiply on the handle's
// pipeline and defines the pair: LO receives the low 32 bits of the
// product, HI the high 32 bits, each sign-extended to 64 bits.
//
// The hardware completes the multiply asynchronously; the result is
// not guaranteed ready until several later instructions have issued.
// Observing it earlier stalls issue but never yields a wrong value.
// For throughput, interleave independent MultStart calls on both
// pipelines before finishing either.
func (a *Acc[A]) MultStart(rs, rt int32) {
	prod := int64(rs) * int64(rt)
	a.define(sext32(uint64(prod)), sext32(uint64(prod)>>32))
}

// MultFinishLo observes the low half of the product. This is the
// synchronization point for the multiply.
func (a *Acc[A]) MultFinishLo() int32 {
	lo, _ := a.observe()
	return int32(lo)
}

// MultFinishHi observes the high half of the product.
func (a *Acc[A]) MultFinishHi() int32 {
	_, hi := a.observe()
	return int32(hi)
}

// MultFinish observes both halves of the product.
func (a *Acc[A]) MultFinish() LoHi {
	lo, hi := a.observe()
	return LoHi{Lo: int32(lo), Hi: int32(hi)}
}

// Mult composes MultStart and MultFinish. Convenient, but not optimal
// for throughput: back-to-back independent multiplies should issue
// both starts before either finish to hide the pipeline latency.
func (a *Acc[A]) Mult(rs, rt int32) LoHi {
	a.MultStart(rs, rt)
	return a.MultFinish()
}

// MultuStart issues an unsigned 32x32->64 multiply and defines the
// pair with the halves of the product. As on the hardware, the 64-bit
// slots receive the 32-bit halves sign-extended even for the unsigned
// family; 32-bit finishes are unaffected.
func (a *Acc[A]) MultuStart(rs, rt uint32) {
	prod := uint64(rs) * uint64(rt)
	a.define(sext32(prod), sext32(prod>>32))
}

// MultuFinishLo observes the low half of the unsigned product.
func (a *Acc[A]) MultuFinishLo() uint32 {
	lo, _ := a.observe()
	return uint32(lo)
}

// MultuFinishHi observes the high half of the unsigned product.
func (a *Acc[A]) MultuFinishHi() uint32 {
	_, hi := a.observe()
	return uint32(hi)
}

// MultuFinish observes both halves of the unsigned product.
func (a *Acc[A]) MultuFinish() LoHiU {
	lo, hi := a.observe()
	return LoHiU{Lo: uint32(lo), Hi: uint32(hi)}
}

// Multu composes MultuStart and MultuFinish.
func (a *Acc[A]) Multu(rs, rt uint32) LoHiU {
	a.MultuStart(rs, rt)
	return a.MultuFinish()
}

// MaddStart issues a signed multiply-accumulate: the 64-bit product
// rs*rt is added to the accumulator formed from HI[31:0]||LO[31:0],
// and the pair is redefined with the halves of the sum. The current
// pair is observed through the handle, so a Madd chain may follow any
// defining call on the same handle.
func (a *Acc[A]) MaddStart(rs, rt int32) {
	lo, hi := a.observe()
	acc := int64(hi<<32 | uint64(uint32(lo)))
	sum := acc + int64(rs)*int64(rt)
	a.define(sext32(uint64(sum)), sext32(uint64(sum)>>32))
}

// MaddFinishLo observes the low half of the accumulated sum.
func (a *Acc[A]) MaddFinishLo() int32 {
	lo, _ := a.observe()
	return int32(lo)
}

// MaddFinishHi observes the high half of the accumulated sum.
func (a *Acc[A]) MaddFinishHi() int32 {
	_, hi := a.observe()
	return int32(hi)
}

// MaddFinish observes both halves of the accumulated sum.
func (a *Acc[A]) MaddFinish() LoHi {
	lo, hi := a.observe()
	return LoHi{Lo: int32(lo), Hi: int32(hi)}
}

// Madd composes MaddStart and MaddFinish.
func (a *Acc[A]) Madd(rs, rt int32) LoHi {
	a.MaddStart(rs, rt)
	return a.MaddFinish()
}

// MadduStart issues an unsigned multiply-accumulate over the same
// HI[31:0]||LO[31:0] accumulator.
func (a *Acc[A]) MadduStart(rs, rt uint32) {
	lo, hi := a.observe()
	acc := hi<<32 | uint64(uint32(lo))
	sum := acc + uint64(rs)*uint64(rt)
	a.define(sext32(sum), sext32(sum>>32))
}

// MadduFinishLo observes the low half of the unsigned accumulated sum.
func (a *Acc[A]) MadduFinishLo() uint32 {
	lo, _ := a.observe()
	return uint32(lo)
}

// MadduFinishHi observes the high half of the unsigned accumulated sum.
func (a *Acc[A]) MadduFinishHi() uint32 {
	_, hi := a.observe()
	return uint32(hi)
}

// MadduFinish observes both halves of the unsigned accumulated sum.
func (a *Acc[A]) MadduFinish() LoHiU {
	lo, hi := a.observe()
	return LoHiU{Lo: uint32(lo), Hi: uint32(hi)}
}

// Maddu composes MadduStart and MadduFinish.
func (a *Acc[A]) Maddu(rs, rt uint32) LoHiU {
	a.MadduStart(rs, rt)
	return a.MadduFinish()
}
