package statistics

import (
	"math"
	"math/rand"
	"sort"
)

// ConfidenceInterval is the result of a bootstrap confidence interval over a
// set of per-run values (sender utilities, RPLs).
type ConfidenceInterval struct {
	Lower           float64 `json:"lower"`
	Upper           float64 `json:"upper"`
	Mean            float64 `json:"mean"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Resamples       int     `json:"resamples"`
}

// DefaultResamples is the number of bootstrap resamples.
const DefaultResamples = 10000

// BootstrapCI computes a percentile-method bootstrap confidence interval over
// values. confidenceLevel is in (0, 1), e.g. 0.95. With fewer than 2 values
// the interval degenerates to the mean and Resamples is 0.
func BootstrapCI(values []float64, confidenceLevel float64) ConfidenceInterval {
	return BootstrapCIWithSeed(values, confidenceLevel, -1)
}

// BootstrapCIWithSeed is BootstrapCI with a fixed seed for reproducible
// output. A negative seed uses a non-deterministic source.
func BootstrapCIWithSeed(values []float64, confidenceLevel float64, seed int64) ConfidenceInterval {
	n := len(values)
	if n < 2 {
		m := Mean(values)
		return ConfidenceInterval{
			Lower:           m,
			Upper:           m,
			Mean:            m,
			ConfidenceLevel: confidenceLevel,
		}
	}

	src := seed
	if src < 0 {
		src = rand.Int63()
	}
	rng := rand.New(rand.NewSource(src))

	resampleMeans := make([]float64, DefaultResamples)
	scratch := make([]float64, n)
	for i := range resampleMeans {
		for j := range scratch {
			scratch[j] = values[rng.Intn(n)]
		}
		resampleMeans[i] = Mean(scratch)
	}
	sort.Float64s(resampleMeans)

	alpha := 1.0 - confidenceLevel
	lo := int(math.Floor(alpha / 2.0 * DefaultResamples))
	hi := int(math.Floor((1.0 - alpha/2.0) * DefaultResamples))
	if hi >= DefaultResamples {
		hi = DefaultResamples - 1
	}

	return ConfidenceInterval{
		Lower:           resampleMeans[lo],
		Upper:           resampleMeans[hi],
		Mean:            Mean(values),
		ConfidenceLevel: confidenceLevel,
		Resamples:       DefaultResamples,
	}
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev returns the population standard deviation.
func StdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0.0
	}
	m := Mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - m
		variance += d * d
	}
	return math.Sqrt(variance / float64(n))
}
