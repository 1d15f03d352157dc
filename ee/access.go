package ee

// accSlots is the shadow storage for one LO/HI pair: two 64-bit
// slots, meaningful only between the defining call that fills them
// and the next defining call on the same handle.
type accSlots struct {
	lo uint64
	hi uint64
}

// saSlot is the shadow storage for the SA register.
type saSlot struct {
	sa uint64
}

// Access selects where defining and observing calls land: the
// caller's shadow slots or the register bank directly. Exactly two
// variants exist, Shadowed and Direct; the unexported methods seal
// the interface so no third variant can be written outside this
// package. Every pipelined operation is implemented once, generically
// over Access, instead of once per mode.
type Access interface {
	defineAcc(p Pipeline, s *accSlots, lo, hi uint64)
	observeAcc(p Pipeline, s *accSlots) (lo, hi uint64)
	captureAcc(p Pipeline, s *accSlots)
	commitAcc(p Pipeline, s *accSlots)

	defineSA(s *saSlot, v uint64)
	observeSA(s *saSlot) uint64
	captureSA(s *saSlot)
	commitSA(s *saSlot)
}

// Shadowed routes every define and observe through the caller-owned
// shadow slots. A defining call still lands on the real registers,
// since the definition is a hardware instruction and must issue, but the
// old pair is saved first and restored after the new value has been
// observed into the shadow, so unrelated code that also uses the pair
// loses nothing.
type Shadowed struct{}

// Direct erases the shadow slots and acts straight on the register
// bank. The caller takes over cross-call persistence by convention;
// nothing at the language level can enforce it in this mode.
type Direct struct{}

func (Shadowed) defineAcc(p Pipeline, s *accSlots, lo, hi uint64) {
	// Save old, issue the definition, observe the defined value into
	// the shadow, restore old. The four steps must keep this order;
	// the atomic accesses in hwReadAcc/hwWriteAcc pin it.
	oldLo, oldHi := hwReadAcc(p)
	hwWriteAcc(p, lo, hi)
	s.lo, s.hi = hwReadAcc(p)
	hwWriteAcc(p, oldLo, oldHi)
}

func (Shadowed) observeAcc(_ Pipeline, s *accSlots) (lo, hi uint64) {
	return s.lo, s.hi
}

func (Shadowed) captureAcc(p Pipeline, s *accSlots) {
	s.lo, s.hi = hwReadAcc(p)
}

func (Shadowed) commitAcc(p Pipeline, s *accSlots) {
	hwWriteAcc(p, s.lo, s.hi)
}

func (Shadowed) defineSA(s *saSlot, v uint64) {
	// The save/issue/observe/restore dance clusters four SA accesses.
	// Padding on both sides keeps the three-slot hazard window clear
	// no matter what the caller issues around this definition.
	saPad()
	old := hw.sa.Load()
	hw.sa.Store(v)
	s.sa = hw.sa.Load()
	hw.sa.Store(old)
	saPad()
}

func (Shadowed) observeSA(s *saSlot) uint64 {
	return s.sa
}

func (Shadowed) captureSA(s *saSlot) {
	s.sa = hw.sa.Load()
}

func (Shadowed) commitSA(s *saSlot) {
	hw.sa.Store(s.sa)
}

func (Direct) defineAcc(p Pipeline, _ *accSlots, lo, hi uint64) {
	hwWriteAcc(p, lo, hi)
}

func (Direct) observeAcc(p Pipeline, _ *accSlots) (lo, hi uint64) {
	return hwReadAcc(p)
}

func (Direct) captureAcc(Pipeline, *accSlots) {}

func (Direct) commitAcc(Pipeline, *accSlots) {}

func (Direct) defineSA(_ *saSlot, v uint64) {
	hw.sa.Store(v)
}

func (Direct) observeSA(*saSlot) uint64 {
	return hw.sa.Load()
}

func (Direct) captureSA(*saSlot) {}

func (Direct) commitSA(*saSlot) {}
