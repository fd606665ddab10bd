package HashSet

import (
	"errors"
	"fmt"
)

var ErrCorrupt = errors.New("hashset: corrupt")

// Verify checks every bookkeeping invariant of the set and returns the first violation found.
func (u *HashSet[E]) Verify() error {
	n := len(u.slots)
	if len(u.hashes) != n || len(u.records) != n || u.used.Len() < n {
		return fmt.Errorf("%w: table lengths differ", ErrCorrupt)
	}
	if c := u.used.Count(); c != int(u.sz) {
		return fmt.Errorf("%w: %d occupied slots, size %d", ErrCorrupt, c, u.sz)
	}
	if 3*u.sz > 2*uint(n) {
		return fmt.Errorf("%w: load %d/%d above 2/3", ErrCorrupt, u.sz, n)
	}
	for i := u.used.Next(0); i > -1; i = u.used.Next(i + 1) {
		if i >= n {
			return fmt.Errorf("%w: slot %d beyond capacity %d", ErrCorrupt, i, n)
		}
		e := u.slots[i]
		if h := u.hash(e); h != u.hashes[i] {
			return fmt.Errorf("%w: slot %d has cached hash %d, want %d", ErrCorrupt, i, u.hashes[i], h)
		}
		if r := u.records[i]; !r.present() || r[0] != e {
			return fmt.Errorf("%w: record %d doesn't start with its resident %v", ErrCorrupt, i, e)
		}
		if i0 := u.home(u.hashes[i]); !u.records[i0].has(e) {
			return fmt.Errorf("%w: %v at slot %d is missing from its home record %d", ErrCorrupt, e, i, i0)
		}
	}
	for j, r := range u.records {
		for x, e := range r {
			if record[E](r[x+1:]).has(e) {
				return fmt.Errorf("%w: %v listed twice in record %d", ErrCorrupt, e, j)
			}
			if u.used.Get(j) && u.slots[j] == e {
				continue
			}
			if i0 := u.home(u.hash(e)); i0 != j {
				return fmt.Errorf("%w: %v in record %d neither resides there nor hashes there", ErrCorrupt, e, j)
			}
			if u.locate(e, j) < 0 {
				return fmt.Errorf("%w: %v in record %d resides nowhere", ErrCorrupt, e, j)
			}
		}
	}
	return nil
}

// Corrupt returns whether the bookkeeping of the set is inconsistent.
func (u *HashSet[E]) Corrupt() bool {
	return u.Verify() != nil
}
