// Package bench times the cycle finders on generated graphs.
//
// A Runner walks a grid of (graph kind, node count, saturation) cells. For
// every cell and repetition it generates a graph with builder, times
// euler.FindCycle and hamilton.FindCycleContext under a per-call deadline,
// and aggregates the outcomes into one Row.
//
// Every timed call is also recorded in a private Prometheus registry
// (duration histogram plus outcome counters) which can be dumped in the
// text exposition format with WriteMetrics.
//
// Seeds are derived per cell and repetition from Config.Seed, so two runs
// with the same Config generate the same graphs.
//
// Hamiltonian searches that hit the deadline are counted as timeouts; they
// are inconclusive and never reported as "no cycle".
package bench
