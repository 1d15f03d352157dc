// Package ee models the Emotion Engine R5900 integer-pipeline state
// that ordinary compiler dataflow cannot see: the LO/HI accumulator
// pair of each of the two multiply/divide pipelines, and the SA
// shift-amount register consumed by the quadword funnel shift.
//
// Callers never touch the register bank directly. Every operation
// takes a caller-owned shadow handle (Acc or ShiftAmount) whose type
// parameter selects one of two access modes:
//
//   - Shadowed: defining and observing calls move data through the
//     handle, preserving the real registers around every definition.
//     Safe across arbitrary intervening code.
//   - Direct: the handle is erased and calls act straight on the
//     register bank. Zero shadow overhead; cross-call persistence
//     becomes the caller's problem, by convention.
//
// Both modes share one implementation and one call shape; see Access.
package ee

import "sync/atomic"

// Pipeline identifies one of the two integer pipelines. Each pipeline
// owns its own LO/HI accumulator pair, so two multiply/divide
// operations can be in flight at once.
type Pipeline uint8

// The two pipelines of the R5900 integer core.
const (
	Pipe0 Pipeline = 0
	Pipe1 Pipeline = 1
)

// hardware is the process-wide register bank standing in for the real
// LO/HI pairs and the SA register. There is exactly one instance and
// it has no meaningful initial value, matching the hardware.
//
// All accesses go through sync/atomic. The atomics are not for
// software concurrency (the protocol is single-threaded by contract);
// they are the Go equivalent of volatile accesses: the
// save/issue/observe/restore sequence of shadowed mode must keep its
// program order and must never be elided as dead stores.
type hardware struct {
	lo [2]atomic.Uint64
	hi [2]atomic.Uint64
	sa atomic.Uint64

	// scratch receives the filler issues of SABarrier.
	scratch atomic.Uint64
}

var hw hardware

// hwReadAcc reads a pipeline's real LO/HI pair.
func hwReadAcc(p Pipeline) (lo, hi uint64) {
	return hw.lo[p].Load(), hw.hi[p].Load()
}

// hwWriteAcc writes a pipeline's real LO/HI pair.
func hwWriteAcc(p Pipeline, lo, hi uint64) {
	hw.lo[p].Store(lo)
	hw.hi[p].Store(hi)
}

// SABarrier issues three independent operations that neither read nor
// write the SA register. The funnel shift and the SA-defining moves
// require that the three preceding issue slots contain no SA
// operation (a hardware pipeline hazard, not a software invariant);
// calling SABarrier between two SA operations satisfies that window.
//
// Shadowed-mode handles pad their own definitions, so this matters to
// direct-mode callers composing raw SA operations.
func SABarrier() {
	saPad()
}

func saPad() {
	hw.scratch.Add(1)
	hw.scratch.Add(1)
	hw.scratch.Add(1)
}
