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

// Package exponential models rank-frequency decay with the exponential
// distribution truncated to [0,1]. Ranks are normalized to [0,1] and the
// cumulative frequency of the most common samples follows
// Cdf(lambda, x) = (1 - e^(-lambda x)) / (1 - e^(-lambda)).
package exponential

import (
	"fmt"
	"math"
)

const (
	estimationEps   = 1e-9   // epsilon for the bisection
	approxMaxSteps  = 10000  // maximum number of bisection steps
	approxInfLambda = 1.0    // lower bound of the lambda search
	approxSupLambda = 1000.0 // upper bound of the lambda search
	dLseEps         = 1e-6   // step of the numerical derivative of the LSE
)

// Uniform provides uniform random values in [0,1).
type Uniform interface {
	Float64() float64
}

// Cdf is the cumulative distribution function of the truncated exponential distribution.
func Cdf(lambda float64, x float64) float64 {
	return (math.Exp(-lambda*x) - 1.0) / (math.Exp(-lambda) - 1.0)
}

// Mass returns the probability of the interval [from, to) with from <= to in [0,1].
func Mass(lambda float64, from, to float64) float64 {
	return Cdf(lambda, to) - Cdf(lambda, from)
}

// Quantile is the inverse CDF for probability p.
func Quantile(lambda float64, p float64) float64 {
	return math.Log(p*math.Exp(-lambda)-p+1) / -lambda
}

// DiscreteSample draws a rank between 0 and n-1.
func DiscreteSample(u Uniform, lambda float64, n int) int {
	rank := int(float64(n) * Quantile(lambda, u.Float64()))
	if rank >= n {
		rank = n - 1
	}
	return rank
}

// lse is the least square error of the CDF against the points.
func lse(lambda float64, points [][2]float64) float64 {
	err := 0.0
	for _, p := range points {
		err += math.Pow(Cdf(lambda, p[0])-p[1], 2)
	}
	return err
}

// dLSE is the numerical derivative of the least square error in lambda.
func dLSE(lambda float64, points [][2]float64) float64 {
	errL := lse(lambda-dLseEps, points)
	errR := lse(lambda+dLseEps, points)
	return (errR - errL) / dLseEps
}

// ApproximateLambda finds the lambda whose CDF fits the points best in the
// least squares sense by bisecting on the sign of the error's derivative.
func ApproximateLambda(points [][2]float64) (float64, error) {
	left := approxInfLambda
	right := approxSupLambda
	for i := 0; i < approxMaxSteps; i++ {
		mid := (right + left) / 2.0
		if dLSE(mid, points) > 0.0 {
			right = mid
		} else {
			left = mid
		}
		if math.Abs(right-left) < estimationEps {
			return mid, nil
		}
	}
	return 0.0, fmt.Errorf("ApproximateLambda: failed to converge after %v steps", approxMaxSteps)
}
