// Package annealsa implements the single-worker simulated-annealing
// driver: the loop that ties together a problem, a splittable mutation
// operator, an initializer, an annealing schedule, and a shared progress
// tracker, with an optional hill-climber post-processing step.
package annealsa
