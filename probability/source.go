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

//go:generate mockgen -source source.go -destination source_mocks.go -package probability

import (
	"math/rand"
	"sync"
)

// Source provides the random numbers for sampling. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform value in [0.0,1.0).
	Float64() float64
	// Intn returns a uniform value in [0,n).
	Intn(n int) int
}

// NewSource creates a seeded random source for use by a single goroutine.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// lockedSource serializes access to a random generator.
type lockedSource struct {
	mu sync.Mutex
	rg *rand.Rand
}

// NewLockedSource creates a seeded random source that can be shared by goroutines.
func NewLockedSource(seed int64) Source {
	return &lockedSource{rg: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rg.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rg.Intn(n)
}
