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

import "fmt"

// MLEProbDist is the maximum likelihood estimate of a frequency
// distribution: the probability of a sample is its relative frequency.
type MLEProbDist[T comparable] struct {
	fd *FreqDist[T]
}

// NewMLEProbDist creates the maximum likelihood estimate of a frequency
// distribution. The counts are copied; a distribution without
// observations is refused.
func NewMLEProbDist[T comparable](fd *FreqDist[T]) (*MLEProbDist[T], error) {
	if fd.N() == 0 {
		return nil, fmt.Errorf("NewMLEProbDist: no observations: %w", ErrEmptyDistribution)
	}
	return &MLEProbDist[T]{fd: fd.Clone()}, nil
}

// FreqDist returns a copy of the counts the estimate is based on.
func (d *MLEProbDist[T]) FreqDist() *FreqDist[T] {
	return d.fd.Clone()
}

func (d *MLEProbDist[T]) Prob(sample T) float64 {
	return d.fd.Freq(sample)
}

func (d *MLEProbDist[T]) Max() (T, bool) {
	return d.fd.Max()
}

func (d *MLEProbDist[T]) Samples() []T {
	return d.fd.Keys()
}
