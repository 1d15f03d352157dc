package ee

// Acc is the caller-owned shadow handle for one pipeline's LO/HI
// accumulator pair. The type parameter fixes the access mode at
// compile time; Acc[Shadowed] and Acc[Direct] expose the same call
// surface.
//
// A handle is bound to its pipeline at construction and carries no
// meaningful value until a defining call (a multiply/divide start,
// Define, or Capture) fills it. Reading a never-defined handle is a
// logic error whose result is unspecified, never a fault.
//
// A handle must be owned exclusively by one logical thread of
// pipeline ownership. Two call trees that each hold their own handle
// for the same pipeline compose safely in shadowed mode; in direct
// mode they share the real pair and must serialize by convention.
type Acc[A Access] struct {
	pipe  Pipeline
	slots accSlots
}

// AccFor returns a handle for the given pipeline's accumulator pair.
// The handle starts without a meaningful value; use Capture to take
// over whatever a prior code path left in the real registers.
func AccFor[A Access](p Pipeline) *Acc[A] {
	return &Acc[A]{pipe: p}
}

// Pipe reports which pipeline the handle is bound to.
func (a *Acc[A]) Pipe() Pipeline {
	return a.pipe
}

// Capture loads the real LO/HI pair into the handle, preserving
// whatever an uncontrolled code path left behind (context switch
// entry). In direct mode this is a no-op: the real pair already is
// the handle.
func (a *Acc[A]) Capture() {
	var ac A
	ac.captureAcc(a.pipe, &a.slots)
}

// Commit writes the handle's value back to the real LO/HI pair
// (context switch exit). No-op in direct mode.
func (a *Acc[A]) Commit() {
	var ac A
	ac.commitAcc(a.pipe, &a.slots)
}

// Define sets the pair to explicit 64-bit values, as by MTLO/MTHI.
func (a *Acc[A]) Define(lo, hi int64) {
	var ac A
	ac.defineAcc(a.pipe, &a.slots, uint64(lo), uint64(hi))
}

// DefineZero clears both slots of the pair.
func (a *Acc[A]) DefineZero() {
	a.Define(0, 0)
}

// Lo64 observes the LO slot at full 64-bit width, as by MFLO on a
// 64-bit destination.
func (a *Acc[A]) Lo64() int64 {
	var ac A
	lo, _ := ac.observeAcc(a.pipe, &a.slots)
	return int64(lo)
}

// Hi64 observes the HI slot at full 64-bit width.
func (a *Acc[A]) Hi64() int64 {
	var ac A
	_, hi := ac.observeAcc(a.pipe, &a.slots)
	return int64(hi)
}

// define is the shared entry point of every start operation.
func (a *Acc[A]) define(lo, hi uint64) {
	var ac A
	ac.defineAcc(a.pipe, &a.slots, lo, hi)
}

// observe is the shared entry point of every finish operation.
func (a *Acc[A]) observe() (lo, hi uint64) {
	var ac A
	return ac.observeAcc(a.pipe, &a.slots)
}

// sext32 sign-extends the low 32 bits of a value to 64 bits, the way
// the hardware writes 32-bit multiply/divide results into the 64-bit
// LO/HI slots.
func sext32(v uint64) uint64 {
	return uint64(int64(int32(v)))
}
