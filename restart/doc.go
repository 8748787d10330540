// Package restart implements restart-length scheduling and the
// Multistarter orchestrator: a sequence of independent restarts of an
// inner search, each budgeted by the next length the RestartSchedule
// produces, keeping the best result across all restarts.
package restart
