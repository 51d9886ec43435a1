package bench

import "time"

// Stats is the shape of a populated tree.
type Stats struct {
	Size  int
	Depth int
}

// Timings holds the wall-clock duration of a single call of each operation.
type Timings struct {
	Insert time.Duration
	Size   time.Duration
	Depth  time.Duration
	Search time.Duration
}

// Measure returns how long fn took to run once.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
