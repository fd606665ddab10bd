package HashSet

import "iter"

// Range calls f on the keys in increasing slot order. Stops when f returns false.
// The set must not be modified during the call.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i := u.used.Next(0); i > -1; i = u.used.Next(i + 1) {
		if !f(u.slots[i]) {
			return
		}
	}
}

// All keys in increasing slot order. Each call starts a fresh traversal.
func (u *HashSet[E]) All() iter.Seq[E] {
	return u.Range
}

// Slots yields the occupied slot indexes with their residents, in increasing order.
func (u *HashSet[E]) Slots() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i := u.used.Next(0); i > -1; i = u.used.Next(i + 1) {
			if !yield(i, u.slots[i]) {
				return
			}
		}
	}
}

// Iter returns a closure f acting like an iterator over the keys in slot order: e, ok = f().
// e is meaningful only if ok is true; once ok is false f is exhausted.
func (u *HashSet[E]) Iter() func() (E, bool) {
	i, done := -1, false
	return func() (e E, ok bool) {
		if done {
			return
		}
		if i = u.used.Next(i + 1); i < 0 {
			done = true
			return
		}
		return u.slots[i], true
	}
}
