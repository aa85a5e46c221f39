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

package stationary

import (
	"math"
	"testing"
)

// checkStationaryDistribution tests the stationary distribution of a
// uniform chain whose transition probability is 1/n for n states.
func checkStationaryDistribution(t *testing.T, n int) {
	A := make([][]float64, n)
	for i := 0; i < n; i++ {
		A[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			A[i][j] = 1.0 / float64(n)
		}
	}
	eps := 1e-3
	dist, err := ComputeDistribution(A)
	if err != nil {
		t.Fatalf("Failed to compute stationary distribution. Error: %v", err)
	}
	for i := 0; i < n; i++ {
		if dist[i] < 0.0 || dist[i] > 1.0 {
			t.Fatalf("Not a probability in distribution.")
		}
		if math.Abs(dist[i]-1.0/float64(n)) > eps {
			t.Fatalf("Failed to compute sufficiently precise stationary distribution.")
		}
	}
}

// TestStationaryDistribution of uniform chains.
func TestStationaryDistribution(t *testing.T) {
	for n := 2; n < 10; n++ {
		checkStationaryDistribution(t, n)
	}
}

// TestStationaryDistributionTwoStates checks a chain with a known solution.
func TestStationaryDistributionTwoStates(t *testing.T) {
	A := [][]float64{
		{0.9, 0.1},
		{0.5, 0.5},
	}
	dist, err := ComputeDistribution(A)
	if err != nil {
		t.Fatalf("Failed to compute stationary distribution. Error: %v", err)
	}
	if math.Abs(dist[0]-5.0/6.0) > 1e-6 || math.Abs(dist[1]-1.0/6.0) > 1e-6 {
		t.Fatalf("unexpected stationary distribution %v", dist)
	}
}

// TestStationaryDistributionInvalid checks that non-stochastic matrices are rejected.
func TestStationaryDistributionInvalid(t *testing.T) {
	cases := map[string][][]float64{
		"empty":    {},
		"ragged":   {{1.0}, {0.5, 0.5}},
		"row sum":  {{0.5, 0.4}, {0.5, 0.5}},
		"negative": {{1.5, -0.5}, {0.5, 0.5}},
	}
	for name, M := range cases {
		if _, err := ComputeDistribution(M); err == nil {
			t.Fatalf("case %v: expected an error", name)
		}
	}
}
