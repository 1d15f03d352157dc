package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// TimingConfig holds cycle counts for the modelled instruction
// classes. Defaults follow the Emotion Engine R5900 integer core.
type TimingConfig struct {
	// MultiplyLatency is the issue-to-result latency of the
	// multiply and multiply-accumulate family. Default: 4 cycles.
	MultiplyLatency uint64 `json:"multiply_latency"`

	// DivideLatency is the issue-to-result latency of the divide
	// family, the longest in the integer core. Default: 37 cycles.
	DivideLatency uint64 `json:"divide_latency"`

	// AccMoveLatency is the latency of MFLO/MFHI/MTLO/MTHI once the
	// pipeline result is ready. Default: 1 cycle.
	AccMoveLatency uint64 `json:"acc_move_latency"`

	// SALatency is the latency of the SA moves and the funnel shift.
	// Default: 1 cycle.
	SALatency uint64 `json:"sa_latency"`

	// MMILatency is the latency of the lane-wise multimedia ALU
	// groups. Default: 1 cycle.
	MMILatency uint64 `json:"mmi_latency"`

	// SAHazardPenalty is the bubble inserted when an SA operation
	// issues inside the three-slot window after another SA
	// operation. Default: 3 cycles.
	SAHazardPenalty uint64 `json:"sa_hazard_penalty"`

	// CacheHitLatency is the data cache hit latency for quadword
	// loads. Default: 1 cycle.
	CacheHitLatency uint64 `json:"cache_hit_latency"`

	// CacheMissLatency is the quadword load latency on a data cache
	// miss to main memory. Default: 40 cycles.
	CacheMissLatency uint64 `json:"cache_miss_latency"`

	// ScratchpadLatency is the fixed quadword access latency of the
	// on-chip scratchpad RAM. Default: 1 cycle.
	ScratchpadLatency uint64 `json:"scratchpad_latency"`

	// StoreLatency is the quadword store issue latency
	// (fire-and-forget into the write buffer). Default: 1 cycle.
	StoreLatency uint64 `json:"store_latency"`
}

// DefaultTimingConfig returns a TimingConfig with R5900-based values.
func DefaultTimingConfig() *TimingConfig {
	return &TimingConfig{
		MultiplyLatency:   4,
		DivideLatency:     37,
		AccMoveLatency:    1,
		SALatency:         1,
		MMILatency:        1,
		SAHazardPenalty:   3,
		CacheHitLatency:   1,
		CacheMissLatency:  40,
		ScratchpadLatency: 1,
		StoreLatency:      1,
	}
}

// LoadConfig loads a TimingConfig from a JSON file. Fields absent
// from the file keep their defaults.
func LoadConfig(path string) (*TimingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read timing config file: %w", err)
	}

	config := DefaultTimingConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse timing config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes a TimingConfig to a JSON file.
func (c *TimingConfig) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize timing config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write timing config file: %w", err)
	}

	return nil
}

// Validate checks that all latency values are usable.
func (c *TimingConfig) Validate() error {
	if c.MultiplyLatency == 0 {
		return fmt.Errorf("multiply_latency must be > 0")
	}
	if c.DivideLatency == 0 {
		return fmt.Errorf("divide_latency must be > 0")
	}
	if c.AccMoveLatency == 0 {
		return fmt.Errorf("acc_move_latency must be > 0")
	}
	if c.SALatency == 0 {
		return fmt.Errorf("sa_latency must be > 0")
	}
	if c.MMILatency == 0 {
		return fmt.Errorf("mmi_latency must be > 0")
	}
	if c.CacheHitLatency == 0 {
		return fmt.Errorf("cache_hit_latency must be > 0")
	}
	if c.CacheMissLatency < c.CacheHitLatency {
		return fmt.Errorf("cache_miss_latency must be >= cache_hit_latency")
	}
	if c.ScratchpadLatency == 0 {
		return fmt.Errorf("scratchpad_latency must be > 0")
	}
	if c.StoreLatency == 0 {
		return fmt.Errorf("store_latency must be > 0")
	}
	return nil
}

// Clone returns a deep copy of the TimingConfig.
func (c *TimingConfig) Clone() *TimingConfig {
	clone := *c
	return &clone
}
