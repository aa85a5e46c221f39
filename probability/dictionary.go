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

// pmfEps is the tolerance for the total of an explicit probability table.
const pmfEps = 1e-9

// Weighted is a sample with a probability or an unnormalized weight.
type Weighted[T comparable] struct {
	Sample T
	Weight float64
}

// DictionaryProbDist is a distribution given by an explicit table.
type DictionaryProbDist[T comparable] struct {
	samples []T // samples with nonzero probability in table order
	probs   map[T]float64
}

// NewDictionaryProbDist creates a distribution from a table. Without
// normalization every weight must be a probability and the total must be
// one. With normalization weights must be non-negative and are divided by
// their total; a zero total yields the uniform distribution. Repeated
// samples accumulate their weights.
func NewDictionaryProbDist[T comparable](table []Weighted[T], normalize bool) (*DictionaryProbDist[T], error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("NewDictionaryProbDist: empty table: %w", ErrValue)
	}
	order := []T{}
	probs := map[T]float64{}
	total := 0.0
	for _, w := range table {
		if w.Weight < 0.0 || math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) {
			return nil, fmt.Errorf("NewDictionaryProbDist: invalid weight (%v) of sample %v: %w", w.Weight, w.Sample, ErrValue)
		}
		if !normalize && w.Weight > 1.0 {
			return nil, fmt.Errorf("NewDictionaryProbDist: invalid probability (%v) of sample %v: %w", w.Weight, w.Sample, ErrValue)
		}
		if _, ok := probs[w.Sample]; !ok {
			order = append(order, w.Sample)
		}
		probs[w.Sample] += w.Weight
		total += w.Weight
	}

	if normalize {
		if total == 0.0 {
			for _, s := range order {
				probs[s] = 1.0 / float64(len(order))
			}
		} else {
			for _, s := range order {
				probs[s] /= total
			}
		}
	} else if math.Abs(total-1.0) > pmfEps {
		return nil, fmt.Errorf("NewDictionaryProbDist: total is not one (%v): %w", total, ErrValue)
	}

	d := &DictionaryProbDist[T]{probs: map[T]float64{}}
	for _, s := range order {
		if p := probs[s]; p > 0.0 {
			d.samples = append(d.samples, s)
			d.probs[s] = p
		}
	}
	return d, nil
}

func (d *DictionaryProbDist[T]) Prob(sample T) float64 {
	return d.probs[sample]
}

func (d *DictionaryProbDist[T]) Max() (T, bool) {
	var best T
	bestP := 0.0
	for _, s := range d.samples {
		if p := d.probs[s]; p > bestP {
			best, bestP = s, p
		}
	}
	return best, bestP > 0.0
}

func (d *DictionaryProbDist[T]) Samples() []T {
	samples := make([]T, len(d.samples))
	copy(samples, d.samples)
	return samples
}
