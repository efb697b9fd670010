// Package workload provides the CPU-bound computations driven by the demo:
// a compensated sum of the Basel series, which converges to pi*pi/6, and
// its split into per-goroutine shares.
package workload

import (
	"fmt"
	"math"
)

// Basel accumulates terms 1/n² of the Basel series with Kahan
// compensation. The zero value is an empty sum.
type Basel struct {
	sum float64
	c   float64 // running compensation
}

// Add adds the term 1/n².
func (b *Basel) Add(n int64) {
	f := float64(n)
	y := 1/(f*f) + b.c
	t := b.sum + y
	b.c = y - (t - b.sum)
	b.sum = t
}

// Sum returns the sum of the terms added so far.
func (b *Basel) Sum() float64 {
	return b.sum
}

// Pi returns the estimate of pi given by the terms added so far.
func (b *Basel) Pi() float64 {
	return math.Sqrt(6 * b.sum)
}

// Pi estimates pi from the sum of the Basel series s.
func Pi(s float64) float64 {
	return math.Sqrt(6 * s)
}

// Share is a range of terms [First, Last] summed by one goroutine.
type Share struct {
	First, Last int64
}

// Len returns the number of terms of the share.
func (s Share) Len() int64 {
	return s.Last - s.First + 1
}

// Split divides the terms 1..n into k contiguous shares. The last share
// takes the remainder.
func Split(n int64, k int) ([]Share, error) {
	if k <= 0 {
		return nil, fmt.Errorf("invalid number of shares: %d", k)
	}
	if n < 0 {
		return nil, fmt.Errorf("invalid number of terms: %d", n)
	}
	size := n / int64(k)
	shares := make([]Share, k)
	for i := range shares {
		shares[i] = Share{First: int64(i)*size + 1, Last: int64(i+1) * size}
	}
	shares[k-1].Last = n
	return shares, nil
}
