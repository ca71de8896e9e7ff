package bench

import (
	"errors"
	"time"
)

// Graph kinds.
const (
	KindHamiltonian    = "hamiltonian"
	KindNonHamiltonian = "non-hamiltonian"
)

// Algorithm labels.
const (
	AlgorithmEuler    = "euler"
	AlgorithmHamilton = "hamilton"
)

// Outcome labels.
const (
	OutcomeFound   = "found"
	OutcomeAbsent  = "absent"
	OutcomeTimeout = "timeout"
)

var (
	// ErrEmptyGrid is returned when no cell would be benchmarked.
	ErrEmptyGrid = errors.New("bench: empty benchmark grid")

	// ErrInvalidRepeat is returned for Repeat < 1.
	ErrInvalidRepeat = errors.New("bench: repeat must be at least 1")

	// ErrInvalidTimeout is returned for a non-positive Timeout.
	ErrInvalidTimeout = errors.New("bench: timeout must be positive")

	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("bench: unknown report format")
)

// Config describes the benchmark grid.
type Config struct {
	// HamiltonianNodes are the node counts for Hamiltonian graphs.
	HamiltonianNodes []int
	// NonHamiltonianNodes are the node counts for non-Hamiltonian graphs.
	NonHamiltonianNodes []int
	// HamiltonianSaturations are crossed with HamiltonianNodes.
	HamiltonianSaturations []float64
	// NonHamiltonianSaturation is used for every non-Hamiltonian cell.
	NonHamiltonianSaturation float64
	// Repeat is the number of graphs generated per cell.
	Repeat int
	// Timeout bounds every single Hamiltonian search.
	Timeout time.Duration
	// Seed is the root of all per-cell seeds.
	Seed int64
}

// DefaultConfig returns the reference grid: Hamiltonian graphs on 11..16
// nodes at 30% and 70%, non-Hamiltonian graphs on 10..20 (step 2) at 50%.
func DefaultConfig() Config {
	return Config{
		HamiltonianNodes:         []int{11, 12, 13, 14, 15, 16},
		NonHamiltonianNodes:      []int{10, 12, 14, 16, 18, 20},
		HamiltonianSaturations:   []float64{30, 70},
		NonHamiltonianSaturation: 50,
		Repeat:                   1,
		Timeout:                  30 * time.Second,
		Seed:                     1,
	}
}

func (c Config) validate() error {
	if c.Repeat < 1 {
		return ErrInvalidRepeat
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	hamCells := len(c.HamiltonianNodes) * len(c.HamiltonianSaturations)
	if hamCells+len(c.NonHamiltonianNodes) == 0 {
		return ErrEmptyGrid
	}
	return nil
}

// Row aggregates all repetitions of one cell.
type Row struct {
	Graph      string  `yaml:"graph" json:"graph"`
	Nodes      int     `yaml:"nodes" json:"nodes"`
	Saturation float64 `yaml:"saturation" json:"saturation"`
	Edges      int     `yaml:"edges" json:"edges"`
	Runs       int     `yaml:"runs" json:"runs"`

	EulerFound int           `yaml:"euler_found" json:"euler_found"`
	EulerMean  time.Duration `yaml:"euler_mean" json:"euler_mean_ns"`

	HamiltonFound    int           `yaml:"hamilton_found" json:"hamilton_found"`
	HamiltonAbsent   int           `yaml:"hamilton_absent" json:"hamilton_absent"`
	HamiltonTimeouts int           `yaml:"hamilton_timeouts" json:"hamilton_timeouts"`
	HamiltonMean     time.Duration `yaml:"hamilton_mean" json:"hamilton_mean_ns"`
	MeanExpansions   int           `yaml:"mean_expansions" json:"mean_expansions"`

	// Mismatches counts conclusive searches that contradict the generator's
	// guarantee.
	Mismatches int `yaml:"mismatches" json:"mismatches"`
}

// Inconclusive reports whether any search of the row timed out.
func (r Row) Inconclusive() bool { return r.HamiltonTimeouts > 0 }

// Report is the result of Runner.Run.
type Report struct {
	Seed    int64         `yaml:"seed" json:"seed"`
	Timeout time.Duration `yaml:"timeout" json:"timeout_ns"`
	Rows    []Row         `yaml:"rows" json:"rows"`
}
