// hash.go: the external hash contract, generalized over key type so
// Dictionary never reaches for key equality/hash logic beyond what a
// Hasher and Go's comparable constraint provide.
package dictionary

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hasher computes a deterministic, pure 64-bit hash for a key of type K.
// Per the external hash contract, a Hasher must never return the all-ones
// sentinel literally; Hash implementations in this package funnel their
// result through remapSentinel so no caller needs to know about it.
type Hasher[K any] interface {
	Hash(key K) uint64
}

const hashModulus = (uint64(1) << HASH_BITS) - 1
const hashInf = 314159
const hashNaN = 0

// remapSentinel implements the "-1 is reserved" rule: the hash value
// ^uint64(0) is never produced by a Hasher in this package, since the
// all-ones pattern (-1) is reserved by the hash contract.
func remapSentinel(h uint64) uint64 {
	if h == ^uint64(0) {
		return ^uint64(0) - 1
	}
	return h
}

// Float64Hasher hashes IEEE-754 doubles, reimplementing the
// mantissa/exponent decomposition from original_source/hashes.h
// (hash_double) bit-for-bit: process 28 mantissa bits at a time modulo
// 2^61-1, fold in the exponent, apply the sign last.
type Float64Hasher struct{}

// Hash implements Hasher[float64].
func (Float64Hasher) Hash(v float64) uint64 {
	if math.IsNaN(v) {
		return hashNaN
	}
	if math.IsInf(v, 0) {
		if v > 0 {
			return remapSentinel(hashInf)
		}
		return remapSentinel(-uint64(hashInf))
	}

	m, e := math.Frexp(v)
	negative := false
	if m < 0 {
		negative = true
		m = -m
	}

	var x uint64
	for m != 0 {
		x = ((x << 28) & hashModulus) | (x >> (HASH_BITS - 28))
		m *= 268435456.0 // 2**28
		e -= 28
		y := uint64(m)
		m -= float64(y)
		x += y
		if x >= hashModulus {
			x -= hashModulus
		}
	}

	if e >= 0 {
		e = e % HASH_BITS
	} else {
		e = HASH_BITS - 1 - ((-1 - e) % HASH_BITS)
	}
	x = ((x << uint(e)) & hashModulus) | (x >> (HASH_BITS - uint(e)))

	if negative {
		x = -x
	}
	return remapSentinel(x)
}

// Int64Hasher hashes integer keys with the rotate-by-4 mixer
// original_source/hashes.h uses for raw pointers (hash_pointer), applied
// to a plain integer domain since Go keys are ordinary values, not
// addresses: the key is rotated right by 4, so its low four bits move to
// the top of the word and the initial slot comes from bits 4 and up.
type Int64Hasher struct{}

// Hash implements Hasher[int64].
func (Int64Hasher) Hash(key int64) uint64 {
	y := uint64(key)
	y = (y >> 4) | (y << (64 - 4))
	return remapSentinel(y)
}

// StringHasher hashes string keys with xxHash, the hashing library this
// module's teacher package already depends on for its own key domain.
type StringHasher struct{}

// Hash implements Hasher[string].
func (StringHasher) Hash(key string) uint64 {
	return remapSentinel(xxhash.Sum64String(key))
}

// Byter is an optional capability: keys that implement it can be hashed
// generically via BytesHasher instead of requiring a bespoke Hasher.
type Byter interface {
	Bytes() []byte
}

// BytesHasher hashes any key exposing Bytes() []byte, folding the primary
// xxHash digest through the golden-ratio mixer schraf-collections uses in
// FixedBlockKey.FromString to spread a 64-bit digest across a composite
// key's full domain.
type BytesHasher[K Byter] struct{}

// Hash implements Hasher[K] for any K satisfying Byter.
func (BytesHasher[K]) Hash(key K) uint64 {
	h := xxhash.Sum64(key.Bytes())
	h2 := h ^ (h >> 33)
	h2 *= 0x9e3779b97f4a7c15
	h2 ^= h2 >> 33
	return remapSentinel(h2)
}
