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

	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize is the number of per-condition estimates kept by a ConditionalProbDist.
const DefaultCacheSize = 1024

// ConditionalFreqDist holds one frequency distribution per condition,
// e.g., the distribution of the words following a given word.
type ConditionalFreqDist[C comparable, T comparable] struct {
	dists      map[C]*FreqDist[T]
	conditions []C // conditions in order of first observation
}

// NewConditionalFreqDist creates an empty conditional frequency distribution.
func NewConditionalFreqDist[C comparable, T comparable]() *ConditionalFreqDist[C, T] {
	return &ConditionalFreqDist[C, T]{dists: map[C]*FreqDist[T]{}}
}

// NewBigramFreqDist counts for every symbol the symbols that follow it.
func NewBigramFreqDist[T comparable](symbols []T) *ConditionalFreqDist[T, T] {
	cfd := NewConditionalFreqDist[T, T]()
	for i := 0; i+1 < len(symbols); i++ {
		cfd.Add(symbols[i], symbols[i+1])
	}
	return cfd
}

// Add counts a sample under a condition.
func (c *ConditionalFreqDist[C, T]) Add(condition C, sample T) *ConditionalFreqDist[C, T] {
	fd, ok := c.dists[condition]
	if !ok {
		fd = NewFreqDist[T]()
		c.dists[condition] = fd
		c.conditions = append(c.conditions, condition)
	}
	fd.Add(sample)
	return c
}

// Conditions returns the conditions in order of first observation.
func (c *ConditionalFreqDist[C, T]) Conditions() []C {
	conditions := make([]C, len(c.conditions))
	copy(conditions, c.conditions)
	return conditions
}

// FreqDist returns the distribution of a condition. It is owned by the
// conditional distribution and must not be modified.
func (c *ConditionalFreqDist[C, T]) FreqDist(condition C) (*FreqDist[T], bool) {
	fd, ok := c.dists[condition]
	return fd, ok
}

// N returns the number of observations over all conditions.
func (c *ConditionalFreqDist[C, T]) N() uint64 {
	n := uint64(0)
	for _, fd := range c.dists {
		n += fd.N()
	}
	return n
}

// Clone returns an independent copy.
func (c *ConditionalFreqDist[C, T]) Clone() *ConditionalFreqDist[C, T] {
	clone := &ConditionalFreqDist[C, T]{
		dists:      make(map[C]*FreqDist[T], len(c.dists)),
		conditions: make([]C, len(c.conditions)),
	}
	copy(clone.conditions, c.conditions)
	for cond, fd := range c.dists {
		clone.dists[cond] = fd.Clone()
	}
	return clone
}

// Estimator derives a probability distribution from a frequency distribution.
type Estimator[T comparable] func(fd *FreqDist[T]) (ProbDist[T], error)

// MLE returns an estimator producing maximum likelihood estimates.
func MLE[T comparable]() Estimator[T] {
	return func(fd *FreqDist[T]) (ProbDist[T], error) {
		d, err := NewMLEProbDist(fd)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Lidstone returns an estimator producing Lidstone estimates.
func Lidstone[T comparable](gamma float64, bins int) Estimator[T] {
	return func(fd *FreqDist[T]) (ProbDist[T], error) {
		d, err := NewLidstoneProbDist(fd, gamma, bins)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Laplace returns an estimator producing Laplace estimates.
func Laplace[T comparable](bins int) Estimator[T] {
	return Lidstone[T](1.0, bins)
}

// ELE returns an estimator producing expected likelihood estimates.
func ELE[T comparable](bins int) Estimator[T] {
	return Lidstone[T](0.5, bins)
}

// WittenBell returns an estimator producing Witten-Bell estimates.
func WittenBell[T comparable](bins int) Estimator[T] {
	return func(fd *FreqDist[T]) (ProbDist[T], error) {
		d, err := NewWittenBellProbDist(fd, bins)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// SimpleGoodTuring returns an estimator producing simple Good-Turing estimates.
func SimpleGoodTuring[T comparable](bins int) Estimator[T] {
	return func(fd *FreqDist[T]) (ProbDist[T], error) {
		d, err := NewSimpleGoodTuringProbDist(fd, bins)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Exponential returns an estimator fitting the exponential rank model.
func Exponential[T comparable]() Estimator[T] {
	return func(fd *FreqDist[T]) (ProbDist[T], error) {
		d, err := NewExponentialProbDist(fd)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// Names of the estimators known to NewEstimator.
const (
	MLEName              = "mle"
	LidstoneName         = "lidstone"
	LaplaceName          = "laplace"
	ELEName              = "ele"
	WittenBellName       = "witten-bell"
	SimpleGoodTuringName = "good-turing"
	ExponentialName      = "exponential"
)

// EstimatorNames lists the names accepted by NewEstimator.
var EstimatorNames = []string{MLEName, LidstoneName, LaplaceName, ELEName, WittenBellName, SimpleGoodTuringName, ExponentialName}

// NewEstimator resolves an estimator by name. Gamma is only used by the
// Lidstone estimator and bins by the smoothing estimators.
func NewEstimator[T comparable](name string, gamma float64, bins int) (Estimator[T], error) {
	switch name {
	case MLEName:
		return MLE[T](), nil
	case LidstoneName:
		return Lidstone[T](gamma, bins), nil
	case LaplaceName:
		return Laplace[T](bins), nil
	case ELEName:
		return ELE[T](bins), nil
	case WittenBellName:
		return WittenBell[T](bins), nil
	case SimpleGoodTuringName:
		return SimpleGoodTuring[T](bins), nil
	case ExponentialName:
		return Exponential[T](), nil
	default:
		return nil, fmt.Errorf("NewEstimator: unknown estimator %q: %w", name, ErrValue)
	}
}

// ConditionalProbDist derives one probability distribution per condition
// of a conditional frequency distribution. Estimates are built on first
// use and kept in a bounded LRU cache.
type ConditionalProbDist[C comparable, T comparable] struct {
	cfd       *ConditionalFreqDist[C, T]
	estimator Estimator[T]
	cache     *lru.Cache
}

// NewConditionalProbDist creates a conditional probability distribution.
// The counts are copied. A cache size below one selects DefaultCacheSize.
func NewConditionalProbDist[C comparable, T comparable](cfd *ConditionalFreqDist[C, T], estimator Estimator[T], cacheSize int) (*ConditionalProbDist[C, T], error) {
	if estimator == nil {
		return nil, fmt.Errorf("NewConditionalProbDist: missing estimator: %w", ErrValue)
	}
	if cacheSize < 1 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("NewConditionalProbDist: %w", err)
	}
	return &ConditionalProbDist[C, T]{
		cfd:       cfd.Clone(),
		estimator: estimator,
		cache:     cache,
	}, nil
}

// Conditions returns the conditions with a distribution.
func (c *ConditionalProbDist[C, T]) Conditions() []C {
	return c.cfd.Conditions()
}

// Get returns the distribution of a condition. ErrEmptyDistribution is
// returned for conditions that were never observed.
func (c *ConditionalProbDist[C, T]) Get(condition C) (ProbDist[T], error) {
	if d, ok := c.cache.Get(condition); ok {
		return d.(ProbDist[T]), nil
	}
	fd, ok := c.cfd.FreqDist(condition)
	if !ok {
		return nil, fmt.Errorf("ConditionalProbDist: unknown condition %v: %w", condition, ErrEmptyDistribution)
	}
	d, err := c.estimator(fd)
	if err != nil {
		return nil, fmt.Errorf("ConditionalProbDist: condition %v: %w", condition, err)
	}
	c.cache.Add(condition, d)
	return d, nil
}

// Prob returns the probability of a sample given a condition, zero for unknown conditions.
func (c *ConditionalProbDist[C, T]) Prob(condition C, sample T) float64 {
	d, err := c.Get(condition)
	if err != nil {
		return 0.0
	}
	return d.Prob(sample)
}
