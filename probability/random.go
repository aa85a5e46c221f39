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

// RandomProbDist assigns each sample a probability drawn from a
// continuous uniform distribution and normalized to sum to one.
type RandomProbDist[T comparable] struct {
	samples []T
	probs   map[T]float64
	max     T
}

// NewRandomProbDist creates a random distribution over the distinct samples.
func NewRandomProbDist[T comparable](samples []T, src Source) (*RandomProbDist[T], error) {
	support := NewUniformProbDist(samples).Samples()
	if len(support) == 0 {
		return nil, fmt.Errorf("NewRandomProbDist: at least one sample required: %w", ErrValue)
	}

	weights := make([]float64, len(support))
	total := 0.0
	for i := range weights {
		weights[i] = src.Float64()
		total += weights[i]
	}
	if total == 0.0 {
		for i := range weights {
			weights[i] = 1.0
		}
		total = float64(len(weights))
	}
	sum := 0.0
	largest := 0
	for i := range weights {
		weights[i] /= total
		sum += weights[i]
		if weights[i] > weights[largest] {
			largest = i
		}
	}
	// the rounding residue is far below the largest weight
	weights[largest] -= sum - 1.0

	d := &RandomProbDist[T]{
		samples: support,
		probs:   make(map[T]float64, len(support)),
	}
	best := -1.0
	for i, s := range support {
		d.probs[s] = weights[i]
		if weights[i] > best {
			best = weights[i]
			d.max = s
		}
	}
	return d, nil
}

func (d *RandomProbDist[T]) Prob(sample T) float64 {
	return d.probs[sample]
}

func (d *RandomProbDist[T]) Max() (T, bool) {
	return d.max, true
}

func (d *RandomProbDist[T]) Samples() []T {
	samples := make([]T, len(d.samples))
	copy(samples, d.samples)
	return samples
}
