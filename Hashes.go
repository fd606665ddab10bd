package Go_Sets

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Identity uses an integer as its own hash, so the home index of k is k mod capacity.
// Placement is fully predictable, which makes it the hash of choice for tests and demos.
func Identity[K constraints.Integer](k K) uint {
	return uint(k)
}

// XXString hashes s with xxhash64. The result doesn't depend on a process seed.
func XXString(s string) uint {
	return uint(xxhash.Sum64String(s))
}

// Mem returns a hash function over the memory of E using seed.
// E must not contain pointers, strings, slices, maps or interfaces: only the headers of those would be hashed.
func Mem[E any](seed Hasher) func(E) uint {
	return func(e E) uint {
		return seed.HashMem(unsafe.Pointer(&e), unsafe.Sizeof(e))
	}
}
