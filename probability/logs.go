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
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxLogDiff is the largest gap between two base-2 logarithms for which
// the smaller term is still added (log2(100)).
var maxLogDiff = math.Log2(100)

// AddLogs returns log2(x+y) for logx = log2(x) and logy = log2(y) without
// computing x and y. If the logarithms are further apart than maxLogDiff
// the smaller term is dropped and the larger logarithm is returned.
func AddLogs(logx, logy float64) float64 {
	if math.IsInf(logx, -1) && math.IsInf(logy, -1) {
		return math.Inf(-1)
	}
	if logx < logy-maxLogDiff {
		return logy
	}
	if logy < logx-maxLogDiff {
		return logx
	}
	base := math.Min(logx, logy)
	return base + math.Log2(math.Exp2(logx-base)+math.Exp2(logy-base))
}

// SumLogs returns the base-2 logarithm of the sum of 2^l over all l in logs.
// The sum of no terms is zero, so an empty slice yields -Inf.
func SumLogs(logs []float64) float64 {
	if len(logs) == 0 {
		return math.Inf(-1)
	}
	// change of base for the natural log-sum-exp
	scaled := make([]float64, len(logs))
	copy(scaled, logs)
	floats.Scale(math.Ln2, scaled)
	return floats.LogSumExp(scaled) / math.Ln2
}
