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
	"encoding/json"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var fruits = []string{"apple", "banana", "apple", "apple", "pineapple"}

// TestFreqDistFruits counts a small sequence of words.
func TestFreqDistFruits(t *testing.T) {
	fd := NewFreqDist[string]()
	fd.Init(fruits...)

	assert.Equal(t, uint64(5), fd.N())
	assert.Equal(t, 3, fd.B())
	assert.ElementsMatch(t, []string{"banana", "pineapple"}, fd.Hapaxes())
	assert.Contains(t, fd.List(), Entry[string]{"apple", 3})
	assert.ElementsMatch(t, []string{"apple", "banana", "pineapple"}, fd.Keys())
	assert.InDelta(t, 0.6, fd.Freq("apple"), 1e-12)
	assert.Equal(t, 0.0, fd.Freq("cherry"))

	max, ok := fd.Max()
	assert.True(t, ok)
	assert.Equal(t, "apple", max)
}

// TestFreqDistSimple1 counts a single occurrence of an item.
func TestFreqDistSimple1(t *testing.T) {
	fd := NewFreqDist[int]()
	if fd.Exists(100) {
		t.Fatalf("Counting failed")
	}
	fd.Add(100)
	if !fd.Exists(100) || fd.Count(100) != 1 {
		t.Fatalf("Counting failed")
	}
}

// TestFreqDistAddChains checks that Add returns the distribution.
func TestFreqDistAddChains(t *testing.T) {
	fd := NewFreqDist[string]()
	fd.Add("a").Add("b").Add("a")
	if fd.Count("a") != 2 || fd.Count("b") != 1 || fd.N() != 3 {
		t.Fatalf("chained adds were not counted: %v", fd.List())
	}
}

// TestFreqDistZeroValue checks that the zero value is an empty distribution.
func TestFreqDistZeroValue(t *testing.T) {
	var fd FreqDist[string]
	if fd.N() != 0 || fd.B() != 0 {
		t.Fatalf("zero value must be empty")
	}
	fd.Add("x")
	if fd.Count("x") != 1 {
		t.Fatalf("zero value must accept samples")
	}
}

// TestFreqDistEmpty checks the well-defined results of an empty distribution.
func TestFreqDistEmpty(t *testing.T) {
	fd := NewFreqDist[string]()
	if _, ok := fd.Max(); ok {
		t.Fatalf("empty distribution must not have a maximum")
	}
	if f := fd.Freq("a"); f != 0.0 {
		t.Fatalf("frequency in empty distribution must be zero, got %v", f)
	}
	if len(fd.Hapaxes()) != 0 || len(fd.List()) != 0 || len(fd.RNr(1)) != 0 {
		t.Fatalf("empty distribution must not list entries")
	}
}

// TestFreqDistRandomCounts feeds random multisets and checks N and B.
func TestFreqDistRandomCounts(t *testing.T) {
	rg := rand.New(rand.NewSource(99))
	for round := 0; round < 20; round++ {
		n := rg.Intn(500)
		samples := make([]int, n)
		distinct := map[int]int{}
		for i := range samples {
			samples[i] = rg.Intn(50)
			distinct[samples[i]]++
		}
		fd := NewFreqDist(samples...)
		if fd.N() != uint64(n) {
			t.Fatalf("expected N=%v, got %v", n, fd.N())
		}
		if fd.B() != len(distinct) {
			t.Fatalf("expected B=%v, got %v", len(distinct), fd.B())
		}
		hapaxes := map[int]bool{}
		for _, h := range fd.Hapaxes() {
			hapaxes[h] = true
		}
		for s, c := range distinct {
			if (c == 1) != hapaxes[s] {
				t.Fatalf("sample %v with count %v misclassified as hapax", s, c)
			}
			if fd.Count(s) != uint64(c) {
				t.Fatalf("sample %v: expected count %v, got %v", s, c, fd.Count(s))
			}
		}
	}
}

// TestFreqDistAddCount checks bulk increments and that zero is not stored.
func TestFreqDistAddCount(t *testing.T) {
	fd := NewFreqDist[string]()
	fd.AddCount("a", 0)
	if fd.Exists("a") || fd.B() != 0 {
		t.Fatalf("a zero count must not be stored")
	}
	fd.AddCount("a", 5).AddCount("b", 2)
	if fd.Count("a") != 5 || fd.N() != 7 {
		t.Fatalf("unexpected counts %v", fd.List())
	}
}

// TestFreqDistRNr checks the selection of entries by count.
func TestFreqDistRNr(t *testing.T) {
	fd := NewFreqDist("a", "b", "b", "c", "c", "d", "d", "d")
	assert.Equal(t, []Entry[string]{{"b", 2}, {"c", 2}}, fd.RNr(2))
	assert.Equal(t, []Entry[string]{{"a", 1}}, fd.RNr(1))
	assert.Empty(t, fd.RNr(4))
	assert.Equal(t, 2, fd.Nr(2))
	assert.Equal(t, 0, fd.Nr(7))
	assert.Equal(t, map[uint64]int{1: 1, 2: 2, 3: 1}, fd.FreqOfFreqs())
}

// TestFreqDistMostCommon checks the order of the most common entries.
func TestFreqDistMostCommon(t *testing.T) {
	fd := NewFreqDist("x", "y", "y", "z", "z", "w")
	assert.Equal(t, []Entry[string]{{"y", 2}, {"z", 2}}, fd.MostCommon(2))
	all := fd.MostCommon(0)
	assert.Len(t, all, 4)
	assert.Equal(t, Entry[string]{"x", 1}, all[2])
	assert.Equal(t, Entry[string]{"w", 1}, all[3])
}

// TestFreqDistMaxTies checks that a tied maximum is a true maximizer.
func TestFreqDistMaxTies(t *testing.T) {
	fd := NewFreqDist("b", "a", "a", "b", "c")
	max, ok := fd.Max()
	if !ok || fd.Count(max) != 2 {
		t.Fatalf("expected a sample with count 2, got %v", max)
	}
}

// TestFreqDistCloneMerge checks that clones are independent and merges add counts.
func TestFreqDistCloneMerge(t *testing.T) {
	fd := NewFreqDist(fruits...)
	clone := fd.Clone()
	clone.Add("cherry")
	if fd.Exists("cherry") || fd.N() != 5 {
		t.Fatalf("modifying a clone changed the original")
	}
	fd.Merge(clone)
	assert.Equal(t, uint64(11), fd.N())
	assert.Equal(t, uint64(6), fd.Count("apple"))
	assert.Equal(t, uint64(1), fd.Count("cherry"))
}

// TestFreqDistJSON tests the ECDF output of a distribution.
func TestFreqDistJSON(t *testing.T) {
	fd := NewFreqDist[int]()
	jOut, err := json.Marshal(fd.produceJSON(4))
	if err != nil {
		t.Fatalf("Marshalling failed to produce distribution")
	}
	expected := `{"n":0,"total":0,"ecdf":[]}`
	if string(jOut) != expected {
		t.Fatalf("case 0: produced wrong JSON output (%v)", string(jOut))
	}

	for i := 1; i <= 10; i++ {
		fd.Add(i)
	}
	fd.Add(1)
	fd.Add(10)

	// Case 1: fewer points than bins, every second rank is plotted
	out := fd.produceJSON(4)
	if out.NumKeys != 10 || out.Total != 12 {
		t.Fatalf("case 1: wrong number of keys or total (%v, %v)", out.NumKeys, out.Total)
	}
	expectedECdf := [][2]float64{{0, 0}, {0.15, 4.0 / 12}, {0.35, 6.0 / 12}, {0.55, 8.0 / 12}, {0.75, 10.0 / 12}, {0.95, 1}, {1, 1}}
	checkECdf(t, expectedECdf, out.ECdf)

	// Case 2: more points than bins, every rank is plotted
	out = fd.produceJSON(100)
	if len(out.ECdf) != 12 {
		t.Fatalf("case 2: expected 12 points, got %v", len(out.ECdf))
	}
	if math.Abs(out.ECdf[1][1]-2.0/12) > 1e-12 || math.Abs(out.ECdf[10][1]-1.0) > 1e-12 {
		t.Fatalf("case 2: wrong cumulative values %v", out.ECdf)
	}
	for i := 1; i < len(out.ECdf); i++ {
		if out.ECdf[i][0] <= out.ECdf[i-1][0] || out.ECdf[i][1] < out.ECdf[i-1][1]-1e-12 {
			t.Fatalf("case 2: ECDF must not decrease at point %v", i)
		}
	}
}

func checkECdf(t *testing.T, expected, got [][2]float64) {
	t.Helper()
	if len(expected) != len(got) {
		t.Fatalf("expected %v points, got %v", len(expected), len(got))
	}
	for i := range expected {
		if math.Abs(expected[i][0]-got[i][0]) > 1e-12 || math.Abs(expected[i][1]-got[i][1]) > 1e-12 {
			t.Fatalf("point %v: expected %v, got %v", i, expected[i], got[i])
		}
	}
}

// TestFreqDistWriteJSON writes the ECDF to a file and reads it back.
func TestFreqDistWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecdf.json")
	out := NewFreqDist(fruits...).NewFreqDistJSON()
	if err := out.WriteJSON(path); err != nil {
		t.Fatalf("failed to write JSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read JSON: %v", err)
	}
	var in FreqDistJSON
	if err := json.Unmarshal(data, &in); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if in.NumKeys != 3 || in.Total != 5 {
		t.Fatalf("unexpected ECDF header %v %v", in.NumKeys, in.Total)
	}
	checkECdf(t, out.ECdf, in.ECdf)

	if err := out.WriteJSON(filepath.Join(t.TempDir(), "missing", "ecdf.json")); err == nil {
		t.Fatalf("expected an error for a missing directory")
	}
}
