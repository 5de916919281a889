package rbtree

import "fmt"

const (
	// DefaultBranchingBits is the number of index bits consumed per tree level
	// if a configuration does not set it. It yields nodes with 2 slots.
	DefaultBranchingBits = 1
	// MaxBranchingBits limits node fanout to 64 slots.
	MaxBranchingBits = 6
)

// Config configures a radix-balanced tree.
//
// The zero value is a valid configuration and selects DefaultBranchingBits.
type Config struct {
	// BranchingBits is B, the number of index bits per tree level.
	// Every node has 2^B slots.
	BranchingBits int
}

// NodeSize returns the number of slots per node for this configuration.
func (cfg Config) NodeSize() int {
	return 1 << cfg.normalized().BranchingBits
}

func (cfg Config) normalized() Config {
	if cfg.BranchingBits == 0 {
		cfg.BranchingBits = DefaultBranchingBits
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BranchingBits < 1 || cfg.BranchingBits > MaxBranchingBits {
		return fmt.Errorf("%w: branching bits must be in [1..%d], is %d",
			ErrInvalidConfig, MaxBranchingBits, cfg.BranchingBits)
	}
	return nil
}
