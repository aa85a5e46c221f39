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

import "errors"

// Error kinds returned by this package. Callers match them with errors.Is;
// the returned errors wrap them with the failing operation and its detail.
var (
	// ErrRead is reported by symbol readers feeding a distribution.
	ErrRead = errors.New("read error")

	// ErrValue is reported for malformed constructor arguments.
	ErrValue = errors.New("value error")

	// ErrUndefinedProbability is reported when the logarithm of a zero probability is requested.
	ErrUndefinedProbability = errors.New("undefined log-probability")

	// ErrEmptyDistribution is reported when a distribution has no samples to offer.
	ErrEmptyDistribution = errors.New("empty distribution")
)
