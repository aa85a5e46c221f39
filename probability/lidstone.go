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
	"math"
)

// LidstoneProbDist adds gamma to the count of every bin before
// normalizing: P(s) = (c(s) + gamma) / (N + bins*gamma).
// Laplace (gamma = 1) and expected likelihood (gamma = 0.5) estimates are
// special cases.
type LidstoneProbDist[T comparable] struct {
	fd      *FreqDist[T]
	gamma   float64
	bins    int
	divisor float64
}

// NewLidstoneProbDist creates a Lidstone estimate of a frequency distribution.
// The number of bins counts the possible samples including the unseen
// ones; zero selects fd.B().
func NewLidstoneProbDist[T comparable](fd *FreqDist[T], gamma float64, bins int) (*LidstoneProbDist[T], error) {
	if gamma < 0.0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("NewLidstoneProbDist: invalid gamma (%v): %w", gamma, ErrValue)
	}
	if bins == 0 {
		bins = fd.B()
	}
	if bins == 0 {
		return nil, fmt.Errorf("NewLidstoneProbDist: at least one bin required: %w", ErrValue)
	}
	if bins < fd.B() {
		return nil, fmt.Errorf("NewLidstoneProbDist: number of bins (%v) below number of observed samples (%v): %w", bins, fd.B(), ErrValue)
	}
	divisor := float64(fd.N()) + float64(bins)*gamma
	if divisor == 0.0 {
		// no observations and no smoothing: every probability is zero
		gamma = 0.0
		divisor = 1.0
	}
	return &LidstoneProbDist[T]{
		fd:      fd.Clone(),
		gamma:   gamma,
		bins:    bins,
		divisor: divisor,
	}, nil
}

// NewLaplaceProbDist creates a Lidstone estimate with gamma = 1.
func NewLaplaceProbDist[T comparable](fd *FreqDist[T], bins int) (*LidstoneProbDist[T], error) {
	return NewLidstoneProbDist(fd, 1.0, bins)
}

// NewELEProbDist creates the expected likelihood estimate, a Lidstone estimate with gamma = 0.5.
func NewELEProbDist[T comparable](fd *FreqDist[T], bins int) (*LidstoneProbDist[T], error) {
	return NewLidstoneProbDist(fd, 0.5, bins)
}

// Gamma returns the constant added to each count.
func (d *LidstoneProbDist[T]) Gamma() float64 {
	return d.gamma
}

// Bins returns the number of possible samples.
func (d *LidstoneProbDist[T]) Bins() int {
	return d.bins
}

// Prob returns the smoothed probability. Unseen samples are assumed to
// belong to one of the unobserved bins; without unobserved bins they are
// outside the support.
func (d *LidstoneProbDist[T]) Prob(sample T) float64 {
	c := d.fd.Count(sample)
	if c == 0 && d.bins == d.fd.B() {
		return 0.0
	}
	return (float64(c) + d.gamma) / d.divisor
}

func (d *LidstoneProbDist[T]) Max() (T, bool) {
	return d.fd.Max()
}

// Samples returns the observed samples.
func (d *LidstoneProbDist[T]) Samples() []T {
	return d.fd.Keys()
}

func (d *LidstoneProbDist[T]) Discount() float64 {
	gb := d.gamma * float64(d.bins)
	if gb == 0.0 {
		return 0.0
	}
	return gb / (float64(d.fd.N()) + gb)
}

// SumToOne is true if every bin was observed.
func (d *LidstoneProbDist[T]) SumToOne() bool {
	return d.bins == d.fd.B()
}
