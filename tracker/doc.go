// Package tracker implements ProgressTracker, the single, thread-safe
// record of the best-found solution shared across all workers of one
// parallel search, plus the cooperative stop / found-best control flags
// that let one worker's breakthrough end every peer worker's run.
//
// ProgressTracker never takes a lock visible to callers: best-solution
// replacement is a pointer swap guarded by a compare-and-swap retry loop
// (atomic.Pointer), and found/stopped are independent atomic.Bool values,
// matching the "lock-free atomics (preferred)" guidance for this module's
// one genuinely shared mutable object.
package tracker
