// Package cache models the Emotion Engine data cache on Akita cache
// directory components. The timing scheduler uses it to cost the
// quadword load/store slots of an analyzed instruction sequence.
package cache

import (
	akitacache "github.com/sarchlab/akita/v4/mem/cache"
)

// Config holds cache configuration parameters.
type Config struct {
	// Size in bytes
	Size int
	// Associativity (number of ways)
	Associativity int
	// BlockSize in bytes (cache line size)
	BlockSize int
	// HitLatency in cycles
	HitLatency uint64
	// MissLatency in cycles (includes the bus round trip)
	MissLatency uint64
}

// DefaultDataCacheConfig returns the R5900 data cache configuration:
// 8KB, 2-way, 64-byte lines, write-back.
func DefaultDataCacheConfig() Config {
	return Config{
		Size:          8 * 1024,
		Associativity: 2,
		BlockSize:     64,
		HitLatency:    1,
		MissLatency:   40,
	}
}

// DefaultInstructionCacheConfig returns the R5900 instruction cache
// configuration: 16KB, 2-way, 64-byte lines.
func DefaultInstructionCacheConfig() Config {
	return Config{
		Size:          16 * 1024,
		Associativity: 2,
		BlockSize:     64,
		HitLatency:    1,
		MissLatency:   40,
	}
}

// ScratchpadSize is the size of the on-chip scratchpad RAM, which
// sits beside the data cache and always answers in a fixed time.
const ScratchpadSize = 16 * 1024

// ScratchpadBase is the virtual base address of the scratchpad.
const ScratchpadBase uint64 = 0x70000000

// InScratchpad reports whether an address falls in the scratchpad
// window. Scratchpad accesses bypass the cache.
func InScratchpad(addr uint64) bool {
	return addr >= ScratchpadBase && addr < ScratchpadBase+ScratchpadSize
}

// AccessResult contains the result of a cache access.
type AccessResult struct {
	// Hit indicates whether the access was a cache hit.
	Hit bool
	// Latency is the number of cycles this access takes.
	Latency uint64
	// Evicted is true if a valid block was evicted.
	Evicted bool
	// EvictedAddr is the address of the evicted block (if Evicted).
	EvictedAddr uint64
	// Writeback is true if the evicted block was dirty.
	Writeback bool
}

// Cache is a write-back, write-allocate cache using Akita directory
// components for tag and replacement state. Only timing is modelled;
// the data itself lives with the caller.
type Cache struct {
	config    Config
	directory *akitacache.DirectoryImpl
	stats     Statistics
}

// Statistics holds cache performance statistics.
type Statistics struct {
	Reads      uint64
	Writes     uint64
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	Writebacks uint64
}

// New creates a cache with the given configuration.
func New(config Config) *Cache {
	numSets := config.Size / (config.Associativity * config.BlockSize)

	return &Cache{
		config: config,
		directory: akitacache.NewDirectory(
			numSets,
			config.Associativity,
			config.BlockSize,
			akitacache.NewLRUVictimFinder(),
		),
	}
}

// Config returns the cache configuration.
func (c *Cache) Config() Config {
	return c.config
}

// Stats returns cache statistics.
func (c *Cache) Stats() Statistics {
	return c.stats
}

// ResetStats clears cache statistics.
func (c *Cache) ResetStats() {
	c.stats = Statistics{}
}

// Read performs a timed cache read at the given address.
func (c *Cache) Read(addr uint64) AccessResult {
	c.stats.Reads++
	return c.access(addr, false)
}

// Write performs a timed cache write at the given address. The cache
// is write-allocate: a miss fetches the line before dirtying it.
func (c *Cache) Write(addr uint64) AccessResult {
	c.stats.Writes++
	return c.access(addr, true)
}

func (c *Cache) access(addr uint64, isWrite bool) AccessResult {
	blockAddr := c.blockAlign(addr)

	block := c.directory.Lookup(0, blockAddr)
	if block != nil && block.IsValid {
		c.stats.Hits++
		c.directory.Visit(block)
		if isWrite {
			block.IsDirty = true
		}
		return AccessResult{Hit: true, Latency: c.config.HitLatency}
	}

	c.stats.Misses++
	return c.handleMiss(blockAddr, isWrite)
}

func (c *Cache) handleMiss(blockAddr uint64, isWrite bool) AccessResult {
	result := AccessResult{
		Latency: c.config.MissLatency,
	}

	victim := c.directory.FindVictim(blockAddr)
	if victim == nil {
		return result
	}

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedAddr = victim.Tag
		if victim.IsDirty {
			c.stats.Writebacks++
			result.Writeback = true
		}
	}

	// Tag stores the block-aligned address.
	victim.Tag = blockAddr
	victim.IsValid = true
	victim.IsDirty = isWrite

	c.directory.Visit(victim)

	return result
}

// Invalidate marks the line holding addr as invalid, dropping dirty
// data without writeback.
func (c *Cache) Invalidate(addr uint64) {
	block := c.directory.Lookup(0, c.blockAlign(addr))
	if block != nil && block.IsValid {
		block.IsValid = false
		block.IsDirty = false
	}
}

// Flush writes back all dirty lines and invalidates everything.
func (c *Cache) Flush() {
	sets := c.directory.GetSets()
	for _, set := range sets {
		for _, block := range set.Blocks {
			if block.IsValid && block.IsDirty {
				c.stats.Writebacks++
			}
			block.IsValid = false
			block.IsDirty = false
		}
	}
}

// Reset invalidates all lines without writeback and clears stats.
func (c *Cache) Reset() {
	c.directory.Reset()
	c.stats = Statistics{}
}

func (c *Cache) blockAlign(addr uint64) uint64 {
	return (addr / uint64(c.config.BlockSize)) * uint64(c.config.BlockSize)
}
