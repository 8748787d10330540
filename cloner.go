package annealkit

import "github.com/katalvlaran/annealkit/tracker"

// Cloner is the deep-copy capability required of every candidate solution
// type used with this module: each worker exclusively owns its current
// candidate, and the shared ProgressTracker exclusively owns its best
// snapshot, taken via Clone on every improving update.
//
// It is an alias of tracker.Cloner so that tracker (which cannot import
// this package without creating an import cycle — Metaheuristic in
// engine.go refers to *tracker.ProgressTracker) and this package share one
// definition instead of two structurally-identical-but-distinct
// interfaces.
type Cloner[T any] = tracker.Cloner[T]
