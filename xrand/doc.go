// Package xrand provides the splittable random-number stream used by every
// stateful, "splittable" component in annealkit (schedules, mutations,
// initializers, searches): a *Source that can be deterministically derived
// into an independent child stream via Split, so that two goroutines never
// share a *rand.Rand.
//
// The derivation technique is the one lvlath/tsp uses internally to hand
// out independent per-worker streams for multi-start heuristics
// (deriveSeed/deriveRNG, a SplitMix64 avalanche over a parent draw mixed
// with a monotonic stream counter): this package is that same technique,
// generalized into its own reusable type instead of a private helper.
package xrand
