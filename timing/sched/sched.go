// Package sched analyzes issue sequences against the R5900 integer
// core model: it accounts for the asynchronous multiply/divide
// latency of both pipelines, detects the SA three-slot hazard window,
// and costs quadword memory slots through the cache model.
//
// The analyzer answers the scheduling questions the intrinsics layer
// documents but cannot enforce: how many cycles a finish loses when
// it trails its start too closely, and how much of the divide latency
// an interleaved sequence hides.
package sched

import (
	"github.com/IlRand0m/ps2intrin-sub000/insts"
	"github.com/IlRand0m/ps2intrin-sub000/timing/cache"
	"github.com/IlRand0m/ps2intrin-sub000/timing/latency"
)

// saWindow is the number of issue slots before an SA operation that
// must be free of SA operations.
const saWindow = 3

// Slot is one issue slot of an analyzed sequence. Addr is consulted
// for memory operations only.
type Slot struct {
	Op   insts.Op
	Addr uint64
}

// SlotReport describes how one slot issued.
type SlotReport struct {
	Op insts.Op
	// IssueCycle is the cycle the operation issued on.
	IssueCycle uint64
	// StallCycles is how long issue waited on a pipeline result.
	StallCycles uint64
	// SAHazard is true if the slot violated the SA hazard window.
	SAHazard bool
	// CacheMiss is true if a memory slot missed the data cache.
	CacheMiss bool
}

// Analysis is the result of analyzing a sequence.
type Analysis struct {
	Slots []SlotReport
	// Cycles is the total cycle count including stalls.
	Cycles uint64
	// Stalls is the total number of stall cycles.
	Stalls uint64
	// SAHazards counts slots that violated the SA window.
	SAHazards int
}

// Analyzer walks issue sequences against a timing table and an
// optional data cache model.
type Analyzer struct {
	table  *latency.Table
	dcache *cache.Cache
}

// AnalyzerOption is a functional option for configuring the Analyzer.
type AnalyzerOption func(*Analyzer)

// WithTable sets a custom latency table.
func WithTable(t *latency.Table) AnalyzerOption {
	return func(a *Analyzer) {
		a.table = t
	}
}

// WithDataCache attaches a data cache model for memory slots. Without
// one, every load is costed as a hit.
func WithDataCache(c *cache.Cache) AnalyzerOption {
	return func(a *Analyzer) {
		a.dcache = c
	}
}

// NewAnalyzer creates an analyzer with default R5900 timing.
func NewAnalyzer(opts ...AnalyzerOption) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.table == nil {
		a.table = latency.NewTable()
	}
	return a
}

// Analyze issues the sequence in order, one slot per cycle plus
// stalls, and reports per-slot and aggregate costs.
//
// An operation that observes a pipeline's LO/HI pair stalls until the
// defining operation's latency has elapsed; starts on the other
// pipeline and unrelated work issue freely in between, which is what
// makes interleaved start/start/finish/finish sequences cheaper than
// start/finish pairs.
func (a *Analyzer) Analyze(seq []Slot) Analysis {
	analysis := Analysis{
		Slots: make([]SlotReport, len(seq)),
	}

	cfg := a.table.Config()

	var cycle uint64
	// accReady holds, per pipeline, the cycle the pending result
	// becomes observable.
	var accReady [2]uint64

	for i, slot := range seq {
		report := SlotReport{Op: slot.Op}

		if pipe, ok := slot.Op.ReadsAcc(); ok {
			if accReady[pipe] > cycle {
				report.StallCycles = accReady[pipe] - cycle
				cycle = accReady[pipe]
			}
		}

		if slot.Op.TouchesSA() && a.saWindowViolated(seq, i) {
			report.SAHazard = true
			analysis.SAHazards++
			cycle += cfg.SAHazardPenalty
			report.StallCycles += cfg.SAHazardPenalty
		}

		report.IssueCycle = cycle
		issueCost := a.table.IssueLatency(slot.Op)

		switch {
		case slot.Op.IsLoad():
			issueCost = a.loadCost(slot.Addr, &report)
		case slot.Op.IsStore():
			a.storeCost(slot.Addr)
		}

		if pipe, ok := slot.Op.DefinesAcc(); ok {
			accReady[pipe] = cycle + issueCost
			// The start itself occupies one issue slot; the latency
			// runs in the background.
			issueCost = 1
		}

		cycle += issueCost
		analysis.Stalls += report.StallCycles
		analysis.Slots[i] = report
	}

	analysis.Cycles = cycle
	return analysis
}

// saWindowViolated reports whether any of the previous saWindow issue
// slots touched SA.
func (a *Analyzer) saWindowViolated(seq []Slot, i int) bool {
	for back := 1; back <= saWindow && i-back >= 0; back++ {
		if seq[i-back].Op.TouchesSA() {
			return true
		}
	}
	return false
}

func (a *Analyzer) loadCost(addr uint64, report *SlotReport) uint64 {
	cfg := a.table.Config()
	if cache.InScratchpad(addr) {
		return cfg.ScratchpadLatency
	}
	if a.dcache == nil {
		return cfg.CacheHitLatency
	}
	result := a.dcache.Read(addr)
	report.CacheMiss = !result.Hit
	return result.Latency
}

func (a *Analyzer) storeCost(addr uint64) {
	if a.dcache != nil && !cache.InScratchpad(addr) {
		a.dcache.Write(addr)
	}
}

// CheckSAWindow scans a sequence and returns the indices of SA
// operations that issue inside the three-slot window after another SA
// operation. A correct caller separates them with SABarrier or three
// independent operations.
func CheckSAWindow(seq []insts.Op) []int {
	var violations []int
	for i, op := range seq {
		if !op.TouchesSA() {
			continue
		}
		for back := 1; back <= saWindow && i-back >= 0; back++ {
			if seq[i-back].TouchesSA() {
				violations = append(violations, i)
				break
			}
		}
	}
	return violations
}
