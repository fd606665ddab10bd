package Go_Sets

import (
	"math/bits"
)

// NewBitArray that can hold at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

type BitArray struct {
	bits []uint
}

// Len is the number of addressable bits, rounded up to a whole word.
func (u BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Count of bits that are up.
func (u BitArray) Count() (n int) {
	for _, w := range u.bits {
		n += bits.OnesCount(w)
	}
	return
}

// Next returns the smallest index >= i whose bit is up, or -1 if there is none.
func (u BitArray) Next(i int) int {
	if i < 0 {
		i = 0
	}
	w := i / bits.UintSize
	if w >= len(u.bits) {
		return -1
	}
	if cur := u.bits[w] >> (i % bits.UintSize); cur != 0 {
		return i + bits.TrailingZeros(cur)
	}
	for w++; w < len(u.bits); w++ {
		if u.bits[w] != 0 {
			return w*bits.UintSize + bits.TrailingZeros(u.bits[w])
		}
	}
	return -1
}

// Reset puts every bit down.
func (u BitArray) Reset() {
	clear(u.bits)
}
