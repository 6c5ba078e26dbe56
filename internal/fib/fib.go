// Package fib computes Fibonacci numbers with an iterative loop.
// Values are uint64 and wrap silently past fib(93).
package fib

import "time"

// Fibonacci returns the nth Fibonacci number, 1-based, with fib(1) = fib(2) = 1.
// Fibonacci(0) returns 1: the accumulation loop never runs.
func Fibonacci(n uint) uint64 {
	if n == 1 || n == 2 {
		return 1
	}

	var a, b uint64 = 1, 1
	for i := uint(3); i <= n; i++ {
		a, b = b, a+b
	}

	return b
}

// Repeat calls Fibonacci(n) runs times and returns the last value.
// It returns 0 when runs is 0.
func Repeat(n, runs uint) uint64 {
	var result uint64
	for i := uint(0); i < runs; i++ {
		result = Fibonacci(n)
	}
	return result
}

// Measurement is the outcome of a timed Repeat.
type Measurement struct {
	N       uint
	Runs    uint
	Value   uint64
	Elapsed time.Duration
}

// PerRun is the mean time of a single call. Zero when nothing ran.
func (m Measurement) PerRun() time.Duration {
	if m.Runs == 0 {
		return 0
	}
	return m.Elapsed / time.Duration(m.Runs)
}

// Measure runs Repeat and records how long the whole loop took.
func Measure(n, runs uint) Measurement {
	start := time.Now()
	value := Repeat(n, runs)
	return Measurement{
		N:       n,
		Runs:    runs,
		Value:   value,
		Elapsed: time.Since(start),
	}
}
