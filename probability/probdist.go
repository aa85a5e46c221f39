// Copyright 2024 Fantom Foundation
// This file is part of Tally, a toolkit for frequency and probability distributions
//
// Tally is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tally is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Tally. If not, see <http://www.gnu.org/licenses/>.

// Package probability counts discrete samples and derives probability
// estimates from the counts.
//
// A FreqDist records how often each sample occurred. A ProbDist assigns a
// probability to every sample; it is either derived from a FreqDist (MLE,
// Lidstone, Witten-Bell, simple Good-Turing, exponential rank model) or
// given analytically (uniform, random, dictionary). Shared behaviour such
// as log-probabilities and sampling is provided by free functions that
// only use the ProbDist interface.
package probability

import (
	"fmt"
	"math"
	"sort"
)

// ProbDist is a probability distribution over samples of type T.
// Implementations are immutable after construction and safe for concurrent reads.
type ProbDist[T comparable] interface {
	// Prob returns the probability of a sample in [0,1]; it is zero
	// for samples outside the distribution's support.
	Prob(sample T) float64

	// Max returns a sample with the greatest probability. The flag is
	// false if the distribution has no samples.
	Max() (T, bool)

	// Samples returns the samples with nonzero probability. The order is
	// fixed for a distribution instance.
	Samples() []T
}

// Discounter is implemented by distributions that discount observed counts.
type Discounter interface {
	// Discount returns the ratio by which counts are discounted on average.
	Discount() float64
}

// Normalizer is implemented by distributions whose samples do not always
// carry the whole probability mass.
type Normalizer interface {
	// SumToOne reports whether the probabilities of Samples() sum to one.
	SumToOne() bool
}

// LogProb returns the base-2 logarithm of the probability of a sample.
// ErrUndefinedProbability is returned for samples with zero probability.
func LogProb[T comparable](d ProbDist[T], sample T) (float64, error) {
	p := d.Prob(sample)
	if p <= 0.0 {
		return 0.0, fmt.Errorf("LogProb: sample %v: %w", sample, ErrUndefinedProbability)
	}
	return math.Log2(p), nil
}

// Discount returns the discount of a distribution, zero if it applies none.
func Discount[T comparable](d ProbDist[T]) float64 {
	if dc, ok := d.(Discounter); ok {
		return dc.Discount()
	}
	return 0.0
}

// SumToOne reports whether the probabilities of the distribution's samples sum to one.
func SumToOne[T comparable](d ProbDist[T]) bool {
	if n, ok := d.(Normalizer); ok {
		return n.SumToOne()
	}
	return true
}

// Generate draws a sample with probability Prob(sample). It walks the
// samples in their fixed order subtracting probabilities from a uniform
// value until the remainder drops to zero. If rounding lets the walk run
// out of samples, a uniformly chosen sample is returned instead.
func Generate[T comparable](d ProbDist[T], src Source) (T, error) {
	samples := d.Samples()
	if len(samples) == 0 {
		var zero T
		return zero, fmt.Errorf("Generate: %w", ErrEmptyDistribution)
	}
	p := src.Float64()
	for _, s := range samples {
		p -= d.Prob(s)
		if p <= 0.0 {
			return s, nil
		}
	}
	return samples[src.Intn(len(samples))], nil
}

// Entropy returns the base-2 entropy over the distribution's samples.
func Entropy[T comparable](d ProbDist[T]) float64 {
	h := 0.0
	for _, s := range d.Samples() {
		if p := d.Prob(s); p > 0.0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// SortedSamples returns the samples of a distribution by descending
// probability; equal probabilities keep the distribution's sample order.
func SortedSamples[T comparable](d ProbDist[T]) []T {
	samples := d.Samples()
	probs := make(map[T]float64, len(samples))
	for _, s := range samples {
		probs[s] = d.Prob(s)
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return probs[samples[i]] > probs[samples[j]]
	})
	return samples
}
