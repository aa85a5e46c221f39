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
	"errors"
	"math"
	"testing"

	"go.uber.org/mock/gomock"
)

// TestLogProb checks base-2 logarithms and undefined probabilities.
func TestLogProb(t *testing.T) {
	d := NewUniformProbDist([]string{"a", "b", "c", "d"})
	lp, err := LogProb[string](d, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lp != -2.0 {
		t.Fatalf("expected -2, got %v", lp)
	}
	if _, err := LogProb[string](d, "z"); !errors.Is(err, ErrUndefinedProbability) {
		t.Fatalf("expected ErrUndefinedProbability, got %v", err)
	}
}

// TestGenerateWalk checks that the uniform value selects a sample by walking the samples.
func TestGenerateWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	src.EXPECT().Float64().Return(0.3)

	d := NewUniformProbDist([]string{"a", "b", "c", "d"})
	s, err := Generate[string](d, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "b" {
		t.Fatalf("expected b, got %v", s)
	}
}

// TestGenerateFallback checks the uniform fallback when the samples do not carry all mass.
func TestGenerateFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)
	gomock.InOrder(
		src.EXPECT().Float64().Return(0.9),
		src.EXPECT().Intn(2).Return(1),
	)

	d, err := NewLidstoneProbDist(NewFreqDist("a", "b"), 1.0, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Generate[string](d, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "b" {
		t.Fatalf("expected b, got %v", s)
	}
}

// TestGenerateEmpty checks that nothing is drawn from an empty distribution.
func TestGenerateEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := NewMockSource(ctrl)

	d := NewUniformProbDist([]string{})
	if _, err := Generate[string](d, src); !errors.Is(err, ErrEmptyDistribution) {
		t.Fatalf("expected ErrEmptyDistribution, got %v", err)
	}
}

// TestGenerateFrequencies draws many samples from an MLE estimate.
func TestGenerateFrequencies(t *testing.T) {
	d, err := NewMLEProbDist(NewFreqDist(fruits...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := NewSource(7)
	counts := NewFreqDist[string]()
	for i := 0; i < 50000; i++ {
		s, err := Generate[string](d, src)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts.Add(s)
	}
	for _, s := range d.Samples() {
		if math.Abs(counts.Freq(s)-d.Prob(s)) > 0.01 {
			t.Fatalf("sample %v: expected frequency %v, got %v", s, d.Prob(s), counts.Freq(s))
		}
	}
}

// TestDefaults checks the discount and normalization of plain distributions.
func TestDefaults(t *testing.T) {
	d := NewUniformProbDist([]int{1, 2, 3})
	if Discount[int](d) != 0.0 {
		t.Fatalf("uniform distribution must not discount")
	}
	if !SumToOne[int](d) {
		t.Fatalf("uniform distribution must sum to one")
	}
}

// TestEntropy checks the entropy of simple distributions.
func TestEntropy(t *testing.T) {
	if h := Entropy[int](NewUniformProbDist([]int{1, 2, 3, 4, 5, 6, 7, 8})); math.Abs(h-3.0) > 1e-12 {
		t.Fatalf("expected entropy 3, got %v", h)
	}
	if h := Entropy[int](NewUniformProbDist([]int{1})); h != 0.0 {
		t.Fatalf("expected entropy 0, got %v", h)
	}
}

// TestSortedSamples checks the order by descending probability.
func TestSortedSamples(t *testing.T) {
	d, err := NewMLEProbDist(NewFreqDist("x", "y", "y", "z", "y", "z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := SortedSamples[string](d)
	expected := []string{"y", "z", "x"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

// TestLockedSource checks that a locked source is usable from several goroutines.
func TestLockedSource(t *testing.T) {
	src := NewLockedSource(3)
	done := make(chan bool)
	for i := 0; i < 4; i++ {
		go func() {
			for j := 0; j < 1000; j++ {
				if u := src.Float64(); u < 0.0 || u >= 1.0 {
					t.Errorf("value out of range: %v", u)
				}
				if k := src.Intn(5); k < 0 || k >= 5 {
					t.Errorf("index out of range: %v", k)
				}
			}
			done <- true
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}

// TestSourceSeed checks that equal seeds produce equal sequences.
func TestSourceSeed(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sources with equal seeds diverged")
		}
	}
}
