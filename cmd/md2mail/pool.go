package main

import "runtime"

// maxAutoWorkers caps the worker count chosen automatically.
const maxAutoWorkers = 8

// resolvePoolSize determines the number of conversion workers.
// Priority: explicit setting > GOMAXPROCS-based calculation.
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > maxAutoWorkers {
		return maxAutoWorkers
	}
	return n
}
