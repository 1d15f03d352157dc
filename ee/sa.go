package ee

import "github.com/IlRand0m/ps2intrin-sub000/mmi"

// ShiftAmount is the caller-owned shadow handle for the SA register,
// the hidden shift count consumed by the quadword funnel shift. As
// with Acc, the type parameter fixes the access mode at compile time
// and both modes expose the same surface.
//
// SA holds a bit count that is always a multiple of 8. The XOR of the
// defining call happens at definition time, not at use: SetByteCount
// and SetHalfwordCount mask and combine their operands immediately,
// and FunnelShift only reads the stored count.
//
// Hazard: the three issue slots before an SA-touching operation must
// not themselves touch SA, a hardware pipeline hazard kept as a
// documented precondition. Shadowed handles pad their own defining
// dance, and their FunnelShift reads only the shadow, so the window
// never closes on them. Direct-mode callers compose raw SA
// operations and must interpose SABarrier (or three independent
// operations) themselves; the timing scheduler flags violating
// sequences.
type ShiftAmount[A Access] struct {
	slot saSlot
}

// SAFor returns a handle for the SA register. The handle starts
// without a meaningful value; use Capture to adopt whatever a prior
// code path left in the real register.
func SAFor[A Access]() *ShiftAmount[A] {
	return &ShiftAmount[A]{}
}

// Capture loads the real SA register into the handle. No-op in
// direct mode.
func (s *ShiftAmount[A]) Capture() {
	var ac A
	ac.captureSA(&s.slot)
}

// Commit writes the handle's value back to the real SA register.
// No-op in direct mode.
func (s *ShiftAmount[A]) Commit() {
	var ac A
	ac.commitSA(&s.slot)
}

// SetByteCount defines SA as a byte shift count: the low four bits of
// variable XOR fixed, scaled to bits. Mirrors MTSAB rs, imm.
func (s *ShiftAmount[A]) SetByteCount(variable, fixed uint32) {
	var ac A
	ac.defineSA(&s.slot, uint64((variable^fixed)&0xF)*8)
}

// SetHalfwordCount defines SA as a halfword shift count: the low
// three bits of variable XOR fixed, scaled to bits. Mirrors MTSAH.
func (s *ShiftAmount[A]) SetHalfwordCount(variable, fixed uint32) {
	var ac A
	ac.defineSA(&s.slot, uint64((variable^fixed)&0x7)*16)
}

// Bits observes the stored shift amount in bits.
func (s *ShiftAmount[A]) Bits() uint64 {
	var ac A
	return ac.observeSA(&s.slot)
}

// FunnelShift concatenates upper||lower into a 256-bit value, shifts
// it right by SA and returns the low 128 bits. Mirrors QFSRV rd, rs,
// rt with rs as upper and rt as lower.
func (s *ShiftAmount[A]) FunnelShift(upper, lower mmi.Vec128) mmi.Vec128 {
	var ac A
	shift := int(ac.observeSA(&s.slot) / 8)

	lb, ub := lower.Bytes(), upper.Bytes()
	var cat [32]byte
	copy(cat[:16], lb[:])
	copy(cat[16:], ub[:])

	var r [16]byte
	for i := range r {
		r[i] = cat[i+shift]
	}
	return mmi.FromBytes(r)
}
