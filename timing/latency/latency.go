// Package latency provides instruction timing for the R5900 integer
// core model: issue latencies per instruction class, configurable via
// TimingConfig.
package latency

import (
	"github.com/IlRand0m/ps2intrin-sub000/insts"
)

// Table provides instruction latency lookups.
type Table struct {
	config *TimingConfig
}

// NewTable creates a latency table with default R5900 timing values.
func NewTable() *Table {
	return &Table{
		config: DefaultTimingConfig(),
	}
}

// NewTableWithConfig creates a latency table with a custom timing
// configuration.
func NewTableWithConfig(config *TimingConfig) *Table {
	return &Table{
		config: config,
	}
}

// IssueLatency returns the issue-to-result latency in cycles for the
// given operation. For memory operations it returns the best case;
// the scheduler consults the cache model for the actual cost.
func (t *Table) IssueLatency(op insts.Op) uint64 {
	switch op.Kind() {
	case insts.KindMultiply:
		return t.config.MultiplyLatency
	case insts.KindDivide:
		return t.config.DivideLatency
	case insts.KindAccMove:
		return t.config.AccMoveLatency
	case insts.KindSA:
		return t.config.SALatency
	case insts.KindMMI:
		return t.config.MMILatency
	case insts.KindMemory:
		if op.IsStore() {
			return t.config.StoreLatency
		}
		return t.config.CacheHitLatency
	default:
		return 1
	}
}

// Config returns the current timing configuration.
func (t *Table) Config() *TimingConfig {
	return t.config
}
