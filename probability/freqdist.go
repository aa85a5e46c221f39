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
	"fmt"
	"os"
	"sort"
)

// numDistributionPoints is the maximal number of inner points of an exported ECDF.
const numDistributionPoints = 100

// Entry is a sample together with its count.
type Entry[T comparable] struct {
	Sample T
	Count  uint64
}

// FreqDist records how often each sample has been observed.
// A FreqDist has a single writer; concurrent use must be synchronized by the caller.
type FreqDist[T comparable] struct {
	freq  map[T]uint64 // counts per sample, never zero
	order []T          // samples in order of first observation
	total uint64       // sum of all counts
}

// FreqDistJSON is the JSON output of a FreqDist.
type FreqDistJSON struct {
	NumKeys int          `json:"n"`     // number of bins
	Total   uint64       `json:"total"` // number of observed outcomes
	ECdf    [][2]float64 `json:"ecdf"`  // empirical cumulative distribution over ranks
}

// NewFreqDist creates a frequency distribution holding the given samples.
func NewFreqDist[T comparable](samples ...T) *FreqDist[T] {
	f := &FreqDist[T]{freq: map[T]uint64{}}
	f.Init(samples...)
	return f
}

// Init counts every sample of the sequence once.
func (f *FreqDist[T]) Init(samples ...T) {
	for _, sample := range samples {
		f.AddCount(sample, 1)
	}
}

// Add counts a single sample and returns the distribution for chaining.
func (f *FreqDist[T]) Add(sample T) *FreqDist[T] {
	return f.AddCount(sample, 1)
}

// AddCount increments the count of a sample by n.
func (f *FreqDist[T]) AddCount(sample T, n uint64) *FreqDist[T] {
	if n == 0 {
		return f
	}
	if f.freq == nil {
		f.freq = map[T]uint64{}
	}
	if _, ok := f.freq[sample]; !ok {
		f.order = append(f.order, sample)
	}
	f.freq[sample] += n
	f.total += n
	return f
}

// Merge adds all counts of other to the distribution.
func (f *FreqDist[T]) Merge(other *FreqDist[T]) {
	for _, sample := range other.order {
		f.AddCount(sample, other.freq[sample])
	}
}

// Count returns how often a sample was observed.
func (f *FreqDist[T]) Count(sample T) uint64 {
	return f.freq[sample]
}

// Exists checks whether a sample was observed.
func (f *FreqDist[T]) Exists(sample T) bool {
	_, ok := f.freq[sample]
	return ok
}

// N returns the total number of observed outcomes.
func (f *FreqDist[T]) N() uint64 {
	return f.total
}

// B returns the number of bins, i.e., distinct samples with a nonzero count.
func (f *FreqDist[T]) B() int {
	return len(f.order)
}

// Hapaxes returns the samples observed exactly once.
func (f *FreqDist[T]) Hapaxes() []T {
	hapaxes := []T{}
	for _, sample := range f.order {
		if f.freq[sample] == 1 {
			hapaxes = append(hapaxes, sample)
		}
	}
	return hapaxes
}

// Freq returns the relative frequency of a sample, or zero if nothing was observed.
func (f *FreqDist[T]) Freq(sample T) float64 {
	if f.total == 0 {
		return 0.0
	}
	return float64(f.freq[sample]) / float64(f.total)
}

// Max returns the sample with the highest count. Among equal counts the
// earliest observed sample wins. The flag is false for an empty distribution.
func (f *FreqDist[T]) Max() (T, bool) {
	var best T
	bestCount := uint64(0)
	for _, sample := range f.order {
		if c := f.freq[sample]; c > bestCount {
			best, bestCount = sample, c
		}
	}
	return best, bestCount > 0
}

// RNr returns all entries whose count equals r.
func (f *FreqDist[T]) RNr(r uint64) []Entry[T] {
	entries := []Entry[T]{}
	for _, sample := range f.order {
		if c := f.freq[sample]; c == r {
			entries = append(entries, Entry[T]{sample, c})
		}
	}
	return entries
}

// Nr returns the number of bins with count r.
func (f *FreqDist[T]) Nr(r uint64) int {
	nr := 0
	for _, c := range f.freq {
		if c == r {
			nr++
		}
	}
	return nr
}

// FreqOfFreqs returns the frequency of frequencies, mapping each
// observed count r to the number of bins Nr with that count.
func (f *FreqDist[T]) FreqOfFreqs() map[uint64]int {
	table := map[uint64]int{}
	for _, c := range f.freq {
		table[c]++
	}
	return table
}

// List returns all entries in order of first observation.
func (f *FreqDist[T]) List() []Entry[T] {
	entries := make([]Entry[T], 0, len(f.order))
	for _, sample := range f.order {
		entries = append(entries, Entry[T]{sample, f.freq[sample]})
	}
	return entries
}

// Keys returns all samples in order of first observation.
func (f *FreqDist[T]) Keys() []T {
	keys := make([]T, len(f.order))
	copy(keys, f.order)
	return keys
}

// MostCommon returns the n entries with the highest counts in descending
// order; ties keep the order of first observation. For n <= 0 all entries are returned.
func (f *FreqDist[T]) MostCommon(n int) []Entry[T] {
	entries := f.List()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Clone returns an independent copy of the distribution.
func (f *FreqDist[T]) Clone() *FreqDist[T] {
	c := &FreqDist[T]{
		freq:  make(map[T]uint64, len(f.freq)),
		order: make([]T, len(f.order)),
		total: f.total,
	}
	copy(c.order, f.order)
	for sample, count := range f.freq {
		c.freq[sample] = count
	}
	return c
}

// produceJSON computes the rank ECDF with at most numPoints inner points.
func (f *FreqDist[T]) produceJSON(numPoints int) FreqDistJSON {
	entries := f.MostCommon(0)
	numKeys := len(entries)
	ECdf := [][2]float64{}

	// if no data-points, nothing to plot
	if numKeys > 0 {
		// distance of points in the ECDF
		d := numKeys / numPoints
		if d < 1 {
			d = 1
		}

		sumP := float64(0.0)
		// correction term of Kahan's sum; accumulated probabilities may be tiny
		cP := float64(0.0)

		ECdf = append(ECdf, [2]float64{0.0, 0.0})
		ctr := 1
		for i := 0; i < numKeys; i++ {
			p := float64(entries[i].Count) / float64(f.total)
			x := (float64(i) + 0.5) / float64(numKeys)

			yP := p - cP
			tP := sumP + yP
			cP = (tP - sumP) - yP
			sumP = tP

			// only every d-th rank becomes a point
			if ctr < d {
				ctr++
			} else {
				ECdf = append(ECdf, [2]float64{x, sumP})
				ctr = 1
			}
		}
		ECdf = append(ECdf, [2]float64{1.0, 1.0})
	}

	return FreqDistJSON{
		NumKeys: numKeys,
		Total:   f.total,
		ECdf:    ECdf,
	}
}

// NewFreqDistJSON computes the rank ECDF of the distribution.
func (f *FreqDist[T]) NewFreqDistJSON() FreqDistJSON {
	return f.produceJSON(numDistributionPoints)
}

// WriteJSON writes the ECDF to a file in JSON format.
func (j *FreqDistJSON) WriteJSON(filename string) error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("WriteJSON: cannot encode ECDF; %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("WriteJSON: cannot write %v; %w", filename, err)
	}
	return nil
}
