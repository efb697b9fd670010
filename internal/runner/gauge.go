package runner

// Gauge tracks an integer metric (current, peak, average).
// Not concurrency-safe.
type Gauge struct {
	Current  int   // last recorded value
	Peak     int   // highest ever recorded value
	totalSum int64 // sum of all values logged
	nSamples int64 // number of calls to Log()
}

// Log records one sample and updates Peak / average.
func (g *Gauge) Log(v int) {
	g.Current = v
	if v > g.Peak {
		g.Peak = v
	}
	g.totalSum += int64(v)
	g.nSamples++
}

// Avg returns the rounded arithmetic mean of all samples.
func (g *Gauge) Avg() int {
	if g.nSamples == 0 {
		return 0
	}
	return int(float64(g.totalSum)/float64(g.nSamples) + 0.5)
}

// Samples returns the number of recorded samples.
func (g *Gauge) Samples() int64 {
	return g.nSamples
}
