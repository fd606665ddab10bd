package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

// PutAll puts every element of src into dst. Returns how many were new to dst.
func PutAll[E any](dst, src Set[E]) (n uint) {
	src.Range(func(e E) bool {
		if dst.Put(e) {
			n++
		}
		return true
	})
	return
}

// RemoveAll removes every element of src from dst. Returns how many were removed.
// src and dst must not be the same set.
func RemoveAll[E any](dst, src Set[E]) (n uint) {
	src.Range(func(e E) bool {
		if dst.Remove(e) {
			n++
		}
		return true
	})
	return
}

// RetainAll removes from dst every element that isn't in keep. Returns how many were removed.
func RetainAll[E any](dst, keep Set[E]) uint {
	var drop []E
	dst.Range(func(e E) bool {
		if !keep.Has(e) {
			drop = append(drop, e)
		}
		return true
	})
	for _, e := range drop {
		dst.Remove(e)
	}
	return uint(len(drop))
}

// Subset reports whether every element of a is in b.
func Subset[E any](a, b Set[E]) bool {
	if a.Size() > b.Size() {
		return false
	}
	in := true
	a.Range(func(e E) bool {
		in = b.Has(e)
		return in
	})
	return in
}

// Eq reports whether a and b hold the same elements.
func Eq[E any](a, b Set[E]) bool {
	return a.Size() == b.Size() && Subset(a, b)
}

// Filter puts the elements of src that satisfy f into dst and returns dst.
func Filter[E any](src, dst Set[E], f func(E) bool) Set[E] {
	src.Range(func(e E) bool {
		if f(e) {
			dst.Put(e)
		}
		return true
	})
	return dst
}
