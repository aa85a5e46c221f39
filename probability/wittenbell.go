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

// WittenBellProbDist reserves the probability mass T/(N+T) for unseen
// samples, where T is the number of observed bins, and spreads it evenly
// over the Z = bins - T unseen bins. Seen samples get c/(N+T).
type WittenBellProbDist[T comparable] struct {
	fd    *FreqDist[T]
	t     float64 // number of observed bins
	z     float64 // number of unseen bins
	n     float64 // number of observations
	pZero float64 // probability of a single unseen sample
}

// NewWittenBellProbDist creates a Witten-Bell estimate. Zero bins selects fd.B().
func NewWittenBellProbDist[T comparable](fd *FreqDist[T], bins int) (*WittenBellProbDist[T], error) {
	if bins == 0 {
		bins = fd.B()
	}
	if bins < fd.B() {
		return nil, fmt.Errorf("NewWittenBellProbDist: number of bins (%v) below number of observed samples (%v): %w", bins, fd.B(), ErrValue)
	}
	d := &WittenBellProbDist[T]{
		fd: fd.Clone(),
		t:  float64(fd.B()),
		z:  float64(bins - fd.B()),
		n:  float64(fd.N()),
	}
	switch {
	case d.n == 0 && d.z == 0:
		return nil, fmt.Errorf("NewWittenBellProbDist: no observations and no bins: %w", ErrEmptyDistribution)
	case d.n == 0:
		d.pZero = 1.0 / d.z
	case d.z > 0:
		d.pZero = d.t / (d.z * (d.n + d.t))
	}
	return d, nil
}

func (d *WittenBellProbDist[T]) Prob(sample T) float64 {
	c := d.fd.Count(sample)
	if c == 0 {
		return d.pZero
	}
	return float64(c) / (d.n + d.t)
}

func (d *WittenBellProbDist[T]) Max() (T, bool) {
	return d.fd.Max()
}

// Samples returns the observed samples.
func (d *WittenBellProbDist[T]) Samples() []T {
	return d.fd.Keys()
}

// SumToOne is false since part of the mass belongs to unseen samples.
func (d *WittenBellProbDist[T]) SumToOne() bool {
	return false
}
