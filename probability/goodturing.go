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
	"sort"

	"gonum.org/v1/gonum/stat"
)

// confidenceFactor is the z-value of the 95% confidence interval used to
// decide when smoothed estimates replace the Turing estimates.
const confidenceFactor = 1.96

// SimpleGoodTuringProbDist is the simple Good-Turing estimate of Gale and
// Sampson. The frequency of frequencies table is smoothed by a line
// log(Zr) = a + b*log(r) where Zr averages Nr over the gap to the
// neighboring frequencies. Small counts use the Turing estimate
// r* = (r+1) N(r+1)/N(r) until it agrees with the smoothed one within the
// confidence interval. The mass N1/N is given to unseen samples.
type SimpleGoodTuringProbDist[T comparable] struct {
	fd        *FreqDist[T]
	nr        map[uint64]int // frequency of frequencies
	bins      int
	slope     float64
	intercept float64
	switchAt  float64 // smallest count using smoothed estimates
	renormal  float64 // scales seen probabilities to 1 - P(unseen)
}

// NewSimpleGoodTuringProbDist creates a simple Good-Turing estimate. The
// number of bins must exceed fd.B(); zero selects fd.B()+1. Counts made
// of hapaxes only are refused with ErrValue, since the unseen samples
// would receive the whole probability mass.
func NewSimpleGoodTuringProbDist[T comparable](fd *FreqDist[T], bins int) (*SimpleGoodTuringProbDist[T], error) {
	if fd.N() == 0 {
		return nil, fmt.Errorf("NewSimpleGoodTuringProbDist: no observations: %w", ErrEmptyDistribution)
	}
	if bins == 0 {
		bins = fd.B() + 1
	}
	if bins <= fd.B() {
		return nil, fmt.Errorf("NewSimpleGoodTuringProbDist: number of bins (%v) must exceed number of observed samples (%v): %w", bins, fd.B(), ErrValue)
	}
	d := &SimpleGoodTuringProbDist[T]{
		fd:   fd.Clone(),
		nr:   fd.FreqOfFreqs(),
		bins: bins,
	}
	r, nr := d.frequencyTable()
	d.findBestFit(r, nr)
	d.findSwitch(r, nr)
	d.renormalize(r, nr)
	if d.renormal <= 0.0 {
		return nil, fmt.Errorf("NewSimpleGoodTuringProbDist: no probability mass left for observed samples: %w", ErrValue)
	}
	return d, nil
}

// frequencyTable returns the observed counts r in ascending order with their Nr.
func (d *SimpleGoodTuringProbDist[T]) frequencyTable() ([]float64, []float64) {
	keys := make([]uint64, 0, len(d.nr))
	for k := range d.nr {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	r := make([]float64, len(keys))
	nr := make([]float64, len(keys))
	for i, k := range keys {
		r[i] = float64(k)
		nr[i] = float64(d.nr[k])
	}
	return r, nr
}

// findBestFit fits the line through (log r, log Zr).
func (d *SimpleGoodTuringProbDist[T]) findBestFit(r, nr []float64) {
	zr := make([]float64, len(r))
	for j := range r {
		i := 0.0
		if j > 0 {
			i = r[j-1]
		}
		var k float64
		if j == len(r)-1 {
			k = 2*r[j] - i
		} else {
			k = r[j+1]
		}
		zr[j] = 2.0 * nr[j] / (k - i)
	}
	logR := make([]float64, len(r))
	logZr := make([]float64, len(r))
	for j := range r {
		logR[j] = math.Log(r[j])
		logZr[j] = math.Log(zr[j])
	}
	// a single point has no slope
	if len(r) < 2 {
		d.slope = 0.0
		d.intercept = stat.Mean(logZr, nil)
		return
	}
	d.intercept, d.slope = stat.LinearRegression(logR, logZr, nil, false)
}

// findSwitch determines the count from which on smoothed estimates are used.
func (d *SimpleGoodTuringProbDist[T]) findSwitch(r, nr []float64) {
	for i := range r {
		if i == len(r)-1 || r[i]+1 != r[i+1] {
			d.switchAt = r[i]
			return
		}
		smoothed := (r[i] + 1) * d.SmoothedNr(r[i]+1) / d.SmoothedNr(r[i])
		turing := (r[i] + 1) * nr[i+1] / nr[i]
		std := math.Sqrt(variance(r[i], nr[i], nr[i+1]))
		if math.Abs(turing-smoothed) <= confidenceFactor*std {
			d.switchAt = r[i]
			return
		}
	}
}

// variance of the Turing estimate for count r.
func variance(r, nr, nr1 float64) float64 {
	return (r + 1.0) * (r + 1.0) * (nr1 / (nr * nr)) * (1.0 + nr1/nr)
}

func (d *SimpleGoodTuringProbDist[T]) renormalize(r, nr []float64) {
	probCov := 0.0
	for j := range r {
		probCov += nr[j] * d.probMeasure(uint64(r[j]))
	}
	if probCov != 0.0 {
		d.renormal = (1.0 - d.probMeasure(0)) / probCov
	}
}

// probMeasure returns the unnormalized probability r*/N of a sample seen count times.
func (d *SimpleGoodTuringProbDist[T]) probMeasure(count uint64) float64 {
	n := float64(d.fd.N())
	if count == 0 {
		return float64(d.nr[1]) / n
	}
	r := float64(count)
	var er, er1 float64
	if r < d.switchAt {
		er = float64(d.nr[count])
		er1 = float64(d.nr[count+1])
	} else {
		er = d.SmoothedNr(r)
		er1 = d.SmoothedNr(r + 1)
	}
	return (r + 1) * er1 / er / n
}

// SmoothedNr returns the fitted frequency of frequencies for count r.
func (d *SimpleGoodTuringProbDist[T]) SmoothedNr(r float64) float64 {
	return math.Exp(d.intercept + d.slope*math.Log(r))
}

// Slope returns the slope of the fitted log-log line.
func (d *SimpleGoodTuringProbDist[T]) Slope() float64 {
	return d.slope
}

// Intercept returns the intercept of the fitted log-log line.
func (d *SimpleGoodTuringProbDist[T]) Intercept() float64 {
	return d.intercept
}

// ReliableFit reports whether the fitted slope is below -1. Otherwise the
// smoothed estimates do not decay and the probabilities are unreliable.
func (d *SimpleGoodTuringProbDist[T]) ReliableFit() bool {
	return d.slope < -1.0
}

// Prob returns the estimate for a sample. Unseen samples share N1/N
// evenly across the unseen bins.
func (d *SimpleGoodTuringProbDist[T]) Prob(sample T) float64 {
	count := d.fd.Count(sample)
	p := d.probMeasure(count)
	if count == 0 {
		return p / float64(d.bins-d.fd.B())
	}
	return p * d.renormal
}

func (d *SimpleGoodTuringProbDist[T]) Max() (T, bool) {
	return d.fd.Max()
}

// Samples returns the observed samples.
func (d *SimpleGoodTuringProbDist[T]) Samples() []T {
	return d.fd.Keys()
}

// Discount returns the mass moved from seen to unseen samples as estimated by the fit.
func (d *SimpleGoodTuringProbDist[T]) Discount() float64 {
	return d.SmoothedNr(1) / float64(d.fd.N())
}

// SumToOne is true if no hapaxes were observed, so no mass moves to unseen samples.
func (d *SimpleGoodTuringProbDist[T]) SumToOne() bool {
	return d.nr[1] == 0
}
