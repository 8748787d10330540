// Package annealkit is a library for stochastic local search and multistart
// metaheuristics: an adaptive simulated-annealing controller, a family of
// pluggable annealing schedules, a shared progress-tracker / cooperative
// cancellation protocol, and multistart / parallel-multistart / timed
// orchestrators built on top of them.
//
// Consumers supply a problem (github.com/katalvlaran/annealkit.Problem),
// and reusable operators (Mutation, Initializer, and optionally a
// HillClimber), and get back a best-so-far solution under a run-length or
// wall-clock budget.
//
// Concrete cost functions, candidate containers (permutations, bit vectors,
// real vectors), RNG algorithms, concrete mutation/crossover operators,
// constructive heuristics, and hill climbers themselves are deliberately
// external collaborators, not part of this module; see the subpackages:
//
//	xrand/     — splittable random streams, shared by every stateful operator
//	tracker/   — the shared, thread-safe progress tracker
//	schedule/  — the annealing schedule variants
//	annealsa/  — the single-worker simulated-annealing driver
//	restart/   — restart scheduling and the Multistarter
//	parallel/  — fixed-size worker-pool orchestrators over many Multistarters
package annealkit
