// Package php implements the PHP value model.
//
// This package contains:
//   - Value, a tagged dynamic value with PHP weak-typing conversions
//   - Alias (PHP references) and Blob (mutable strings)
//   - Dictionary, the ordered copy-on-write hash table behind arrays
//   - Array, the value-semantics handle over a Dictionary
//   - Loose and strict comparison and the comparer suite used by sorts
//   - Object, Class and Instance, the minimal object model comparisons need
//
// Mutation is single-threaded per holder. Reference counts are atomic so
// an unmodified Dictionary can be shared between goroutines; every write
// clones a shared table first.
package php
