package HashSet

import (
	"fmt"
	"strings"

	Go_Sets "github.com/g-m-twostay/go-sets"
	"go.uber.org/zap"
)

const initCap = 8

// table is the slot table and the bucket registry, always of the same length.
// hashes[i] caches the full hash of the resident of slot i.
type table[E comparable] struct {
	slots   []E
	hashes  []uint
	used    Go_Sets.BitArray
	records []record[E]
}

func newTable[E comparable](c int) table[E] {
	return table[E]{slots: make([]E, c), hashes: make([]uint, c), used: Go_Sets.NewBitArray(c), records: make([]record[E], c)}
}

func (u *table[E]) home(hash uint) int {
	return int(hash % uint(len(u.slots)))
}

// free slots have no resident and no record.
func (u *table[E]) free(i int) bool {
	return !u.used.Get(i) && !u.records[i].present()
}

func (u *table[E]) fill(i int, e E, hash uint) {
	u.slots[i] = e
	u.hashes[i] = hash
	u.used.Up(i)
	u.records[i].push(e)
}

// probe for a free slot at i0+1, i0-1, i0+2, i0-2... without wrapping. Returns -1 if there is none.
func (u *table[E]) probe(i0 int) int {
	for d, n := 1, len(u.slots); d < n; d++ {
		if i := i0 + d; i < n && u.free(i) {
			return i
		}
		if i := i0 - d; i >= 0 && u.free(i) {
			return i
		}
	}
	return -1
}

// place e, which must not be in the table. Nothing is modified when it returns false.
func (u *table[E]) place(e E, hash uint) bool {
	i0 := u.home(hash)
	if u.free(i0) {
		u.fill(i0, e, hash)
		return true
	}
	i1 := u.probe(i0)
	if i1 < 0 {
		return false
	}
	u.records[i0].push(e)
	u.fill(i1, e, hash)
	return true
}

// locate the slot where e resides, searching outward from i0 in probe order. Returns -1 if e isn't resident anywhere.
func (u *table[E]) locate(e E, i0 int) int {
	if u.used.Get(i0) && u.slots[i0] == e {
		return i0
	}
	for d, n := 1, len(u.slots); d < n; d++ {
		if i := i0 + d; i < n && u.used.Get(i) && u.slots[i] == e {
			return i
		}
		if i := i0 - d; i >= 0 && u.used.Get(i) && u.slots[i] == e {
			return i
		}
	}
	return -1
}

func (u *table[E]) evict(i int) {
	var zero E
	u.slots[i] = zero
	u.hashes[i] = 0
	u.used.Down(i)
}

// HashSet is an open addressing set that keeps a bucket record per index for membership tests.
// Keys stay in the slot they were placed in until the set is rehashed, so Index and iteration order are reproducible.
// It's not safe for concurrent use.
type HashSet[E comparable] struct {
	table[E]
	hash func(E) uint
	sz   uint
	log  *zap.Logger
}

// New empty HashSet of capacity 8 that hashes keys with hash.
func New[E comparable](hash func(E) uint, opts ...Option) *HashSet[E] {
	if hash == nil {
		panic(ErrNilHash)
	}
	c := newConfig(opts)
	return &HashSet[E]{table: newTable[E](initCap), hash: hash, log: c.log}
}

// From creates a HashSet and puts keys into it in order.
func From[E comparable](hash func(E) uint, keys []E, opts ...Option) *HashSet[E] {
	u := New[E](hash, opts...)
	for _, e := range keys {
		u.Put(e)
	}
	return u
}

// Has e in the set.
func (u *HashSet[E]) Has(e E) bool {
	return u.records[u.home(u.hash(e))].has(e)
}

// Put e into the set. Returns true if e wasn't present.
func (u *HashSet[E]) Put(e E) bool {
	hash := u.hash(e)
	if u.records[u.home(hash)].has(e) {
		return false
	}
	if 3*(u.sz+1) > 2*uint(len(u.slots)) {
		u.rehash(3*(u.sz+1), "load")
	}
	if !u.place(e, hash) {
		u.rehash(max(3*(u.sz+1), uint(len(u.slots))), "probe")
		u.place(e, hash)
	}
	u.sz++
	return true
}

// Remove e from the set. Returns true if e was present.
func (u *HashSet[E]) Remove(e E) bool {
	i0 := u.home(u.hash(e))
	if !u.records[i0].has(e) {
		return false
	}
	i := u.locate(e, i0)
	if i < 0 {
		return false
	}
	u.evict(i)
	u.records[i].drop(e)
	if i != i0 {
		u.records[i0].drop(e)
	}
	u.sz--
	return true
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Len is Size as an int.
func (u *HashSet[E]) Len() int {
	return int(u.sz)
}

func (u *HashSet[E]) Empty() bool {
	return u.sz == 0
}

// Capacity is the length of the slot table.
func (u *HashSet[E]) Capacity() int {
	return len(u.slots)
}

// HomeOf e under the current capacity. e needn't be in the set.
func (u *HashSet[E]) HomeOf(e E) int {
	return u.home(u.hash(e))
}

// Index returns the resident of slot i, ok is false for an empty slot.
// i must be in [0, Capacity()), otherwise the error wraps ErrOutOfRange.
func (u *HashSet[E]) Index(i int) (e E, ok bool, err error) {
	if i < 0 || i >= len(u.slots) {
		err = fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(u.slots))
		return
	}
	if u.used.Get(i) {
		e, ok = u.slots[i], true
	}
	return
}

// Take the resident of the lowest occupied slot. Returns zero value if the set is empty.
func (u *HashSet[E]) Take() (e E) {
	if i := u.used.Next(0); i > -1 {
		e = u.slots[i]
	}
	return
}

// Clear the set back to an empty table of capacity 8.
func (u *HashSet[E]) Clear() {
	u.table = newTable[E](initCap)
	u.sz = 0
}

// String lists the keys in iteration order, like HashSet([0 1 2]).
func (u *HashSet[E]) String() string {
	var sb strings.Builder
	sb.WriteString("HashSet([")
	first := true
	u.Range(func(e E) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, e)
		return true
	})
	sb.WriteString("])")
	return sb.String()
}
