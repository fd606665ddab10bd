package Go_Sets

import (
	"math/bits"
	_ "runtime"
	"unsafe"
)

//go:linkname rtHash runtime.memhash
//go:noescape
func rtHash(ptr unsafe.Pointer, seed uint, len uintptr) uint

//go:linkname rtHash64 runtime.memhash64
//go:noescape
func rtHash64(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtHash32 runtime.memhash32
//go:noescape
func rtHash32(ptr unsafe.Pointer, seed uint) uint

//go:linkname rtStrHash runtime.strhash
//go:noescape
func rtStrHash(ptr unsafe.Pointer, seed uint) uint

// Hasher is a seed for the runtime hash functions, create it using Hasher(seed). The receivers are thread-safe, but the memory contents aren't read in a thread-safe way, so only use it on synchronized memory.
type Hasher uint

// HashMem hashes the memory contents in the range [addr, addr+size) as bytes.
func (u Hasher) HashMem(addr unsafe.Pointer, size uintptr) uint {
	switch size {
	case 0:
		return uint(u)
	case 4:
		return rtHash32(addr, uint(u))
	case 8:
		return rtHash64(addr, uint(u))
	}
	return rtHash(addr, uint(u), size)
}

// HashBytes hashes the given byte slice.
func (u Hasher) HashBytes(b []byte) uint {
	if len(b) == 0 {
		return uint(u)
	}
	return u.HashMem(unsafe.Pointer(unsafe.SliceData(b)), uintptr(len(b)))
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	if bits.UintSize == 32 {
		return rtHash32(unsafe.Pointer(&v), uint(u))
	}
	return rtHash64(unsafe.Pointer(&v), uint(u))
}

// HashString directly hashes a string, it's faster than HashMem on the string's bytes.
func (u Hasher) HashString(v string) uint {
	return rtStrHash(unsafe.Pointer(&v), uint(u))
}
