package comparisons

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
	Go_Sets "github.com/g-m-twostay/go-sets"
	"github.com/g-m-twostay/go-sets/Sets/HashSet"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
)

// compares HashSet with the native map, https://github.com/alphadose/haxmap, https://github.com/cornelk/hashmap,
// https://github.com/emirpasic/gods, https://github.com/google/btree and https://github.com/petar/GoLLRB.
const (
	elementNum = 1 << 12
	keyRange   = 1 << 10
	opNum      = 1 << 14
)

type op struct {
	key int
	put bool
}

func script(seed int64) []op {
	r := rand.New(rand.NewSource(seed))
	ops := make([]op, opNum)
	for i := range ops {
		ops[i] = op{r.Intn(keyRange), r.Intn(3) != 0}
	}
	return ops
}

// every implementation is run through the same script; they must all agree on membership at the end.
func TestCmp_Membership(t *testing.T) {
	S := HashSet.New[int](Go_Sets.Identity[int])
	hx := haxmap.New[int, struct{}]()
	cm := hashmap.New[int, struct{}]()
	gs := hashset.New()
	ts := treeset.NewWithIntComparator()
	bt := btree.NewOrderedG[int](16)
	lr := llrb.New()
	for _, o := range script(1) {
		if o.put {
			S.Put(o.key)
			hx.Set(o.key, struct{}{})
			cm.Set(o.key, struct{}{})
			gs.Add(o.key)
			ts.Add(o.key)
			bt.ReplaceOrInsert(o.key)
			lr.ReplaceOrInsert(llrb.Int(o.key))
		} else {
			S.Remove(o.key)
			hx.Del(o.key)
			cm.Del(o.key)
			gs.Remove(o.key)
			ts.Remove(o.key)
			bt.Delete(o.key)
			lr.Delete(llrb.Int(o.key))
		}
	}
	for k := 0; k < keyRange; k++ {
		has := S.Has(k)
		_, hxHas := hx.Get(k)
		_, cmHas := cm.Get(k)
		assert.Equal(t, hxHas, has, "haxmap disagrees on %d", k)
		assert.Equal(t, cmHas, has, "hashmap disagrees on %d", k)
		assert.Equal(t, gs.Contains(k), has, "gods hashset disagrees on %d", k)
		assert.Equal(t, bt.Has(k), has, "btree disagrees on %d", k)
		assert.Equal(t, lr.Has(llrb.Int(k)), has, "llrb disagrees on %d", k)
	}
	assert.Equal(t, gs.Size(), S.Len())
	assert.Equal(t, lr.Len(), S.Len())

	sorted := make([]int, 0, S.Len())
	for _, v := range ts.Values() {
		sorted = append(sorted, v.(int))
	}
	var got []int
	bt.Ascend(func(k int) bool {
		got = append(got, k)
		return true
	})
	assert.Equal(t, sorted, got)
	assert.NoError(t, S.Verify())
}

func BenchmarkHashSet_Put(b *testing.B) {
	for range b.N {
		S := HashSet.New[int](Go_Sets.Identity[int])
		for i := range elementNum {
			S.Put(i)
		}
	}
}

func BenchmarkHashSetXX_Put(b *testing.B) {
	keys := make([]string, elementNum)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	b.ResetTimer()
	for range b.N {
		S := HashSet.New[string](Go_Sets.XXString)
		for _, k := range keys {
			S.Put(k)
		}
	}
}

func BenchmarkMap_Put(b *testing.B) {
	for range b.N {
		M := make(map[int]struct{})
		for i := range elementNum {
			M[i] = struct{}{}
		}
	}
}

func BenchmarkHaxMap_Put(b *testing.B) {
	for range b.N {
		M := haxmap.New[int, struct{}]()
		for i := range elementNum {
			M.Set(i, struct{}{})
		}
	}
}

func BenchmarkHashMap_Put(b *testing.B) {
	for range b.N {
		M := hashmap.New[int, struct{}]()
		for i := range elementNum {
			M.Set(i, struct{}{})
		}
	}
}

func BenchmarkGods_Put(b *testing.B) {
	for range b.N {
		M := hashset.New()
		for i := range elementNum {
			M.Add(i)
		}
	}
}

func BenchmarkBTree_Put(b *testing.B) {
	for range b.N {
		M := btree.NewOrderedG[int](16)
		for i := range elementNum {
			M.ReplaceOrInsert(i)
		}
	}
}

func BenchmarkLLRB_Put(b *testing.B) {
	for range b.N {
		M := llrb.New()
		for i := range elementNum {
			M.ReplaceOrInsert(llrb.Int(i))
		}
	}
}

func BenchmarkHashSet_Has(b *testing.B) {
	S := HashSet.New[int](Go_Sets.Identity[int])
	for i := range elementNum {
		S.Put(i)
	}
	b.ResetTimer()
	for range b.N {
		for i := range elementNum {
			if !S.Has(i) {
				b.Error("key doesn't exist", i)
			}
		}
	}
}

func BenchmarkMap_Has(b *testing.B) {
	M := make(map[int]struct{}, elementNum)
	for i := range elementNum {
		M[i] = struct{}{}
	}
	b.ResetTimer()
	for range b.N {
		for i := range elementNum {
			if _, ok := M[i]; !ok {
				b.Error("key doesn't exist", i)
			}
		}
	}
}

func BenchmarkHaxMap_Has(b *testing.B) {
	M := haxmap.New[int, struct{}]()
	for i := range elementNum {
		M.Set(i, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for i := range elementNum {
			if _, ok := M.Get(i); !ok {
				b.Error("key doesn't exist", i)
			}
		}
	}
}

func BenchmarkHashMap_Has(b *testing.B) {
	M := hashmap.New[int, struct{}]()
	for i := range elementNum {
		M.Set(i, struct{}{})
	}
	b.ResetTimer()
	for range b.N {
		for i := range elementNum {
			if _, ok := M.Get(i); !ok {
				b.Error("key doesn't exist", i)
			}
		}
	}
}

func BenchmarkHashSet_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		S := HashSet.New[int](Go_Sets.Identity[int])
		for i := range elementNum {
			S.Put(i)
		}
		b.StartTimer()
		for i := range elementNum {
			S.Remove(i)
		}
		if !S.Empty() {
			b.Error("set isn't empty")
		}
	}
}

func BenchmarkMap_Remove(b *testing.B) {
	for range b.N {
		b.StopTimer()
		M := make(map[int]struct{}, elementNum)
		for i := range elementNum {
			M[i] = struct{}{}
		}
		b.StartTimer()
		for i := range elementNum {
			delete(M, i)
		}
	}
}

func BenchmarkHashSet_Script(b *testing.B) {
	ops := script(2)
	b.ResetTimer()
	for range b.N {
		S := HashSet.New[int](Go_Sets.Identity[int])
		for _, o := range ops {
			if o.put {
				S.Put(o.key)
			} else {
				S.Remove(o.key)
			}
		}
	}
}

func BenchmarkMap_Script(b *testing.B) {
	ops := script(2)
	b.ResetTimer()
	for range b.N {
		M := make(map[int]struct{})
		for _, o := range ops {
			if o.put {
				M[o.key] = struct{}{}
			} else {
				delete(M, o.key)
			}
		}
	}
}
