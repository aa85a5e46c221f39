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

package probability

import (
	"fmt"

	"github.com/Fantom-foundation/Tally/probability/exponential"
)

// ExponentialProbDist models the rank-frequency curve of a frequency
// distribution with a truncated exponential distribution. Samples are
// ranked by descending count and the sample of rank i out of B receives
// the mass of the interval [i/B, (i+1)/B).
type ExponentialProbDist[T comparable] struct {
	lambda float64
	ranked []T           // samples by descending count
	probs  map[T]float64 // mass per sample
}

// NewExponentialProbDist fits lambda to the rank ECDF of a frequency distribution.
func NewExponentialProbDist[T comparable](fd *FreqDist[T]) (*ExponentialProbDist[T], error) {
	if fd.N() == 0 {
		return nil, fmt.Errorf("NewExponentialProbDist: no observations: %w", ErrEmptyDistribution)
	}
	lambda, err := exponential.ApproximateLambda(fd.NewFreqDistJSON().ECdf)
	if err != nil {
		return nil, fmt.Errorf("NewExponentialProbDist: %w", err)
	}
	entries := fd.MostCommon(0)
	b := float64(len(entries))
	d := &ExponentialProbDist[T]{
		lambda: lambda,
		ranked: make([]T, len(entries)),
		probs:  make(map[T]float64, len(entries)),
	}
	for i, e := range entries {
		d.ranked[i] = e.Sample
		d.probs[e.Sample] = exponential.Mass(lambda, float64(i)/b, float64(i+1)/b)
	}
	return d, nil
}

// Lambda returns the fitted decay parameter.
func (d *ExponentialProbDist[T]) Lambda() float64 {
	return d.lambda
}

func (d *ExponentialProbDist[T]) Prob(sample T) float64 {
	return d.probs[sample]
}

// Max returns the most common sample, which holds the first rank.
func (d *ExponentialProbDist[T]) Max() (T, bool) {
	if len(d.ranked) == 0 {
		var zero T
		return zero, false
	}
	return d.ranked[0], true
}

// Samples returns the samples by rank.
func (d *ExponentialProbDist[T]) Samples() []T {
	samples := make([]T, len(d.ranked))
	copy(samples, d.ranked)
	return samples
}

// SampleRank draws a sample by inverting the fitted CDF over the ranks.
func (d *ExponentialProbDist[T]) SampleRank(u exponential.Uniform) (T, error) {
	if len(d.ranked) == 0 {
		var zero T
		return zero, fmt.Errorf("SampleRank: %w", ErrEmptyDistribution)
	}
	return d.ranked[exponential.DiscreteSample(u, d.lambda, len(d.ranked))], nil
}
