// Package synth generates the budget and actuals fact tables. All
// randomness flows through a single seeded Sampler so that a fixed seed
// reproduces the dataset byte for byte.
package synth

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler wraps one seeded PCG source behind the distribution draws the
// synthesizers need. Never construct distributions with their own sources;
// every draw must consume from the shared stream.
type Sampler struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewSampler creates a sampler seeded deterministically from the given seed
func NewSampler(seed uint64) *Sampler {
	src := rand.NewPCG(seed, seed)
	return &Sampler{src: src, r: rand.New(src)}
}

// Float64 draws a uniform value in [0, 1)
func (s *Sampler) Float64() float64 {
	return s.r.Float64()
}

// Uniform draws from the uniform distribution on [min, max)
func (s *Sampler) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: s.src}.Rand()
}

// Normal draws from the normal distribution N(mu, sigma)
func (s *Sampler) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.src}.Rand()
}

// Poisson draws a count from the Poisson distribution with the given mean
func (s *Sampler) Poisson(lambda float64) int {
	return int(distuv.Poisson{Lambda: lambda, Src: s.src}.Rand())
}

// ClampedPoisson draws a Poisson count clamped to [min, max]
func (s *Sampler) ClampedPoisson(lambda float64, min, max int) int {
	n := s.Poisson(lambda)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// Dirichlet draws n weights from the symmetric Dirichlet distribution with
// unit concentration. The weights are non-negative and sum to 1.
func (s *Sampler) Dirichlet(n int) []float64 {
	if n == 1 {
		return []float64{1.0}
	}
	alpha := make([]float64, n)
	for i := range alpha {
		alpha[i] = 1.0
	}
	return distmv.NewDirichlet(alpha, s.src).Rand(nil)
}

// IntN draws a uniform integer in [0, n)
func (s *Sampler) IntN(n int) int {
	return s.r.IntN(n)
}

// SampleStrings draws k distinct values from items without replacement.
// The input is not modified. k larger than len(items) returns everything.
func (s *Sampler) SampleStrings(items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	picked := make([]string, 0, k)
	for _, idx := range s.r.Perm(len(items))[:k] {
		picked = append(picked, items[idx])
	}
	return picked
}

// Round2 rounds an amount to two decimal places
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
