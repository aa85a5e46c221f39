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

// UniformProbDist assigns the same probability to each sample of a fixed
// support and zero to every other sample.
type UniformProbDist[T comparable] struct {
	support []T            // distinct samples in construction order
	index   map[T]struct{} // membership of the support
}

// NewUniformProbDist creates a uniform distribution over the distinct
// samples given. An empty support yields a distribution without samples.
func NewUniformProbDist[T comparable](samples []T) *UniformProbDist[T] {
	d := &UniformProbDist[T]{
		support: []T{},
		index:   make(map[T]struct{}, len(samples)),
	}
	for _, s := range samples {
		if _, ok := d.index[s]; ok {
			continue
		}
		d.index[s] = struct{}{}
		d.support = append(d.support, s)
	}
	return d
}

func (d *UniformProbDist[T]) Prob(sample T) float64 {
	if _, ok := d.index[sample]; !ok {
		return 0.0
	}
	return 1.0 / float64(len(d.support))
}

// Max returns the first sample of the support since all are equally probable.
func (d *UniformProbDist[T]) Max() (T, bool) {
	if len(d.support) == 0 {
		var zero T
		return zero, false
	}
	return d.support[0], true
}

func (d *UniformProbDist[T]) Samples() []T {
	samples := make([]T, len(d.support))
	copy(samples, d.support)
	return samples
}
