// Package parallel implements the parallel orchestrators: a fixed-size
// pool of worker searches run concurrently via golang.org/x/sync/errgroup,
// coordinated entirely through the workers' shared tracker. ParallelMetaheuristic
// runs one optimize call per worker and keeps the lowest-cost result;
// ParallelMultistarter does the same over each worker's own Multistarter;
// TimedParallelMultistarter additionally runs a channerics-driven ticker
// that samples the shared tracker on a fixed interval and stops every
// worker once the time budget or the proven optimum is reached.
package parallel
