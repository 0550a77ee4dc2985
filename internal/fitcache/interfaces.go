/*
Copyright 2025 The easelcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fitcache

import (
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// Resolver computes a fit for paper dimensions and orientation.
// *easel.Resolver satisfies it.
type Resolver interface {
	ResolveFit(paperWidth, paperHeight float64, isLandscape bool) core.FitResult
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(paperWidth, paperHeight float64, isLandscape bool) core.FitResult

// ResolveFit calls f.
func (f ResolverFunc) ResolveFit(paperWidth, paperHeight float64, isLandscape bool) core.FitResult {
	return f(paperWidth, paperHeight, isLandscape)
}

// Reader provides read-only access to the fit cache.
type Reader interface {
	// Get returns the stored fit for key without resolving. Lookups never change
	// an entry's eviction position.
	Get(key Key) (core.FitResult, bool)

	// Keys returns the cached keys in insertion order, oldest first.
	Keys() []Key

	// Len returns the number of cached entries.
	Len() int

	// Capacity returns the maximum number of entries.
	Capacity() int
}

// Writer provides write access to the fit cache.
type Writer interface {
	// Put stores a fit. Inserting a new key into a full cache evicts the oldest key first;
	// overwriting an existing key keeps its position.
	Put(key Key, fit core.FitResult)

	// Purge removes every entry.
	Purge()
}

// ReadWriter combines both read and write access to the cache.
type ReadWriter interface {
	Reader
	Writer

	// GetCachedFit returns the fit for the inputs, resolving and inserting it on a miss.
	GetCachedFit(paperWidth, paperHeight float64, isLandscape bool) core.FitResult
}
