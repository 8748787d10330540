package annealkit

import "errors"

// Sentinel errors shared across annealkit's subpackages. Package-local
// constructors additionally declare their own sentinels for
// construction-time validation (invalid temperature, invalid thread
// count, ...); these are the ones that can surface from more than one
// package.
var (
	// ErrNilProblem indicates a nil Problem was supplied where one is
	// mandatory.
	ErrNilProblem = errors.New("annealkit: nil problem")

	// ErrNilMutation indicates a nil Mutation was supplied where one is
	// mandatory.
	ErrNilMutation = errors.New("annealkit: nil mutation")

	// ErrNilInitializer indicates a nil Initializer was supplied where
	// one is mandatory.
	ErrNilInitializer = errors.New("annealkit: nil initializer")

	// ErrClosed is returned by Optimize on an orchestrator after Close
	// has been called.
	ErrClosed = errors.New("annealkit: orchestrator is closed")

	// ErrTrackerMismatch indicates that workers supplied to a parallel
	// orchestrator do not all share the same problem and/or tracker
	// reference, violating §4.6's construction-time requirement.
	ErrTrackerMismatch = errors.New("annealkit: workers must share one problem and one tracker")
)
