package HashSet

import "go.uber.org/zap"

// rehash every resident, in slot order, into a fresh table of capacity c using the cached hashes.
// The new table is swapped in only after it's complete.
func (u *HashSet[E]) rehash(c uint, cause string) {
	t := newTable[E](int(c))
	for i := u.used.Next(0); i > -1; i = u.used.Next(i + 1) {
		t.place(u.slots[i], u.hashes[i]) //a fresh table only has records at occupied slots, this can't fail.
	}
	from := len(u.slots)
	u.table = t
	u.log.Debug("hashset rehashed",
		zap.Int("from", from),
		zap.Int("to", len(t.slots)),
		zap.Uint("size", u.sz),
		zap.String("cause", cause))
}
