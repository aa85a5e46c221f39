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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Tabulate writes the n most common samples as a table of rank, sample,
// count and cumulative relative frequency. For n <= 0 all samples are written.
func (f *FreqDist[T]) Tabulate(w io.Writer, n int) error {
	if f.total == 0 {
		return fmt.Errorf("Tabulate: %w", ErrEmptyDistribution)
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Rank", "Sample", "Count", "Cumulative"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	cumulative := uint64(0)
	for i, e := range f.MostCommon(n) {
		cumulative += e.Count
		tbl.Append([]string{
			strconv.Itoa(i + 1),
			fmt.Sprint(e.Sample),
			strconv.FormatUint(e.Count, 10),
			strconv.FormatFloat(float64(cumulative)/float64(f.total), 'f', 4, 64),
		})
	}
	tbl.Render()
	return nil
}

// TabulateProbDist writes the samples of a distribution with their probabilities,
// most probable first; at most n rows are written if n > 0.
func TabulateProbDist[T comparable](w io.Writer, d ProbDist[T], n int) error {
	samples := SortedSamples(d)
	if len(samples) == 0 {
		return fmt.Errorf("TabulateProbDist: %w", ErrEmptyDistribution)
	}
	if n > 0 && n < len(samples) {
		samples = samples[:n]
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Rank", "Sample", "Probability", "Log2"})
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

	for i, s := range samples {
		logp := "-"
		if lp, err := LogProb(d, s); err == nil {
			logp = strconv.FormatFloat(lp, 'f', 4, 64)
		}
		tbl.Append([]string{
			strconv.Itoa(i + 1),
			fmt.Sprint(s),
			strconv.FormatFloat(d.Prob(s), 'g', 6, 64),
			logp,
		})
	}
	tbl.Render()
	return nil
}
