package builder

// Canonical constructor names, used to prefix errors.
const (
	methodHamiltonian    = "Hamiltonian"
	methodNonHamiltonian = "NonHamiltonian"
	methodCycle          = "Cycle"
	methodComplete       = "Complete"
	methodRandomCycle    = "RandomCycle"
	methodFillRandom     = "FillRandom"
	methodIsolateAndFill = "IsolateAndFill"
)

// MinCycleNodes is the smallest size of a simple cycle without loops or multi-edges.
const MinCycleNodes = 3

// Saturation bounds, in percent of C(n,2).
const (
	MinSaturation = 0.0
	MaxSaturation = 100.0
)

// Reference saturation sets.
var (
	// HamiltonianSaturations are the densities accepted by Hamiltonian by default.
	HamiltonianSaturations = []float64{30, 70}

	// NonHamiltonianSaturations are the densities accepted by NonHamiltonian by default.
	NonHamiltonianSaturations = []float64{50}
)
