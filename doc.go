// Package dictionary implements an in-memory associative container: a
// mapping from keys to values with average-constant-time lookup, insertion,
// and deletion, preserving the insertion order of currently live entries.
//
// # Design
//
// The table follows a split representation. Live key/value records are
// held in a dense, append-only entry vector; a separately allocated,
// power-of-two-sized hash index maps hash slots to positions in that
// vector. Lookup starts at hash&(size-1) in the hash index, walks a
// deterministic perturbed probe sequence, and on a non-negative slot
// dereferences into the entry vector to compare keys. Deleting an entry
// writes a tombstone into its hash index slot but never compacts the
// entry vector, so positions recorded elsewhere stay valid.
//
// # Quick start
//
//	d := dictionary.New[float64, string]()
//	d.Insert(1.0, "a")
//	v, ok := d.Get(1.0)
//
// # Concurrency
//
// A Dictionary offers no internal synchronization. Concurrent use from
// multiple goroutines without external locking is undefined; callers
// needing that must wrap a Dictionary with their own mutex.
package dictionary

// MINSIZE is the smallest capacity a hash index is ever allocated at.
const MINSIZE = 8

// PERTURB_SHIFT mixes in high hash bits across successive probes.
const PERTURB_SHIFT = 5

// MIN_NUM_ENT is the free-slot count a freshly created empty dictionary
// starts with, mirroring the constant of the same name in the original
// C implementation this package's semantics are grounded on.
const MIN_NUM_ENT = 5

// HASH_BITS is the modulus width used by Float64Hasher.
const HASH_BITS = 61
