package HashSet

// record is a bucket record: the keys associated with one index of the table.
// The first key is the resident of that index if the record was created by a placement there;
// keys appended after it hash to that index but reside elsewhere. An empty record means no record.
type record[E comparable] []E

func (r record[E]) present() bool {
	return len(r) != 0
}

func (r record[E]) has(e E) bool {
	for _, k := range r {
		if k == e {
			return true
		}
	}
	return false
}

func (r *record[E]) push(e E) {
	*r = append(*r, e)
}

// drop the first occurrence of e. The backing array is released once the record is empty.
func (r *record[E]) drop(e E) {
	s := *r
	for i, k := range s {
		if k == e {
			copy(s[i:], s[i+1:])
			var zero E
			s[len(s)-1] = zero
			s = s[:len(s)-1]
			break
		}
	}
	if len(s) == 0 {
		s = nil
	}
	*r = s
}
