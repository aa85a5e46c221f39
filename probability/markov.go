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

	"github.com/Fantom-foundation/Tally/probability/stationary"
)

// TransitionMatrix turns a conditional frequency distribution over states
// into a row-stochastic matrix. The states are the conditions followed by
// the samples not seen as a condition, in order of first observation.
// Rows are maximum likelihood estimates; states without successors jump
// to every state with equal probability.
func TransitionMatrix[T comparable](cfd *ConditionalFreqDist[T, T]) ([]T, [][]float64) {
	states := cfd.Conditions()
	index := make(map[T]int, len(states))
	for i, s := range states {
		index[s] = i
	}
	for _, c := range cfd.Conditions() {
		fd, _ := cfd.FreqDist(c)
		for _, s := range fd.Keys() {
			if _, ok := index[s]; !ok {
				index[s] = len(states)
				states = append(states, s)
			}
		}
	}

	n := len(states)
	M := make([][]float64, n)
	for i, s := range states {
		M[i] = make([]float64, n)
		fd, ok := cfd.FreqDist(s)
		if !ok || fd.N() == 0 {
			for j := range M[i] {
				M[i][j] = 1.0 / float64(n)
			}
			continue
		}
		for _, e := range fd.List() {
			M[i][index[e.Sample]] = float64(e.Count) / float64(fd.N())
		}
	}
	return states, M
}

// NewStationaryProbDist returns the long-run distribution of the Markov
// chain whose transitions are counted by cfd, e.g., a bigram distribution.
func NewStationaryProbDist[T comparable](cfd *ConditionalFreqDist[T, T]) (*DictionaryProbDist[T], error) {
	states, M := TransitionMatrix(cfd)
	if len(states) == 0 {
		return nil, fmt.Errorf("NewStationaryProbDist: no transitions: %w", ErrEmptyDistribution)
	}
	pi, err := stationary.ComputeDistribution(M)
	if err != nil {
		return nil, fmt.Errorf("NewStationaryProbDist: %w", err)
	}
	table := make([]Weighted[T], len(states))
	for i, s := range states {
		table[i] = Weighted[T]{s, pi[i]}
	}
	return NewDictionaryProbDist(table, true)
}
