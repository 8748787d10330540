// Package schedule implements the AnnealingSchedule contract and its
// eight variants: exponential cooling, linear cooling, logarithmic
// cooling, parameter-free exponential and linear variants, and the
// classic, optimized, and self-tuning forms of the Modified Lam schedule.
//
// Every variant shares one acceptance rule (accept unconditionally when
// neighborCost <= currentCost; otherwise accept with Boltzmann probability
// exp((currentCost-neighborCost)/t) against a uniform draw), applied in
// common.go, and differs only in how its internal temperature/statistics
// evolve between iterations. The controller (annealsa.Driver) never
// inspects which variant it was given.
package schedule
