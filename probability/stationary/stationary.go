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

// Package stationary computes the long-run state distribution of a Markov chain.
package stationary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	estimationEps = 1e-9 // epsilon for eigenvalues and row sums
)

// CheckStochastic checks that M is square with non-negative rows summing to one.
func CheckStochastic(M [][]float64) error {
	n := len(M)
	for i, row := range M {
		if len(row) != n {
			return fmt.Errorf("row %v has %v columns; expected %v", i, len(row), n)
		}
		total := 0.0
		for _, x := range row {
			if x < 0.0 || math.IsNaN(x) {
				return fmt.Errorf("invalid transition probability (%v) in row %v", x, i)
			}
			total += x
		}
		if math.Abs(total-1.0) > estimationEps {
			return fmt.Errorf("row %v sums to %v", i, total)
		}
	}
	return nil
}

// ComputeDistribution computes the stationary distribution of a row-stochastic
// matrix, i.e., the left eigenvector of eigenvalue one normalized to sum to one.
func ComputeDistribution(M [][]float64) ([]float64, error) {
	n := len(M)
	if n == 0 {
		return nil, fmt.Errorf("empty transition matrix")
	}
	if err := CheckStochastic(M); err != nil {
		return nil, err
	}

	// flatten matrix for gonum
	elements := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		elements = append(elements, M[i]...)
	}
	a := mat.NewDense(n, n, elements)

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenLeft); !ok {
		return nil, fmt.Errorf("eigen-value decomposition failed")
	}

	// the eigenvalue one is not necessarily the first one
	k := -1
	for i, v := range eig.Values(nil) {
		if math.Abs(real(v)-1.0) < estimationEps && math.Abs(imag(v)) < estimationEps {
			k = i
			break
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("eigen-decomposition failed; no eigenvalue of one found")
	}

	var ev mat.CDense
	eig.LeftVectorsTo(&ev)

	total := complex128(0)
	for i := 0; i < n; i++ {
		total += ev.At(i, k)
	}
	if math.Abs(imag(total)) > estimationEps || real(total) == 0.0 {
		return nil, fmt.Errorf("eigen-decomposition failed; eigen-vector cannot be normalized")
	}

	stationary := make([]float64, n)
	for i := 0; i < n; i++ {
		stationary[i] = math.Abs(real(ev.At(i, k)) / real(total))
	}
	return stationary, nil
}
