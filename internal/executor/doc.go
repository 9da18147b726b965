// Package executor applies a plan's moves to the filesystem one action at a
// time. The first failure aborts the run; completed moves are never rolled
// back.
package executor
