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
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

// TestUniformProbDist checks the probabilities of a uniform distribution.
func TestUniformProbDist(t *testing.T) {
	d := NewUniformProbDist([]string{"a", "b", "c", "d", "b"})
	if len(d.Samples()) != 4 {
		t.Fatalf("duplicate samples must be removed: %v", d.Samples())
	}
	if p := d.Prob("a"); p != 0.25 {
		t.Fatalf("expected 0.25, got %v", p)
	}
	if p := d.Prob("z"); p != 0.0 {
		t.Fatalf("expected 0, got %v", p)
	}
	sum := 0.0
	for _, s := range d.Samples() {
		sum += d.Prob(s)
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Fatalf("probabilities sum to %v", sum)
	}
	if max, ok := d.Max(); !ok || max != "a" {
		t.Fatalf("expected maximum a, got %v", max)
	}
}

// TestUniformProbDistEmpty checks a distribution without support.
func TestUniformProbDistEmpty(t *testing.T) {
	d := NewUniformProbDist[int](nil)
	if _, ok := d.Max(); ok {
		t.Fatalf("empty distribution must not have a maximum")
	}
	if d.Prob(1) != 0.0 || len(d.Samples()) != 0 {
		t.Fatalf("empty distribution must not assign probability")
	}
}

// TestUniformGenerate checks with a chi-squared test that generated
// samples follow a uniform distribution.
func TestUniformGenerate(t *testing.T) {
	const (
		numSteps = 100000
		alpha    = 0.001
	)
	samples := []string{"a", "b", "c", "d"}
	d := NewUniformProbDist(samples)
	src := NewSource(1)
	counts := NewFreqDist[string]()
	for i := 0; i < numSteps; i++ {
		s, err := Generate[string](d, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts.Add(s)
	}

	expected := float64(numSteps) / float64(len(samples))
	chi2 := 0.0
	for _, s := range samples {
		err := float64(counts.Count(s)) - expected
		chi2 += err * err / expected
		if math.Abs(counts.Freq(s)-0.25) > 0.01 {
			t.Fatalf("sample %v: frequency %v deviates from 0.25", s, counts.Freq(s))
		}
	}
	df := len(samples) - 1
	chi2Critical := distuv.ChiSquared{K: float64(df), Src: nil}.Quantile(1.0 - alpha)
	if chi2 > chi2Critical {
		t.Fatalf("generated samples are not uniform (chi2=%v, critical=%v)", chi2, chi2Critical)
	}
}
