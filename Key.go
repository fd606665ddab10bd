package Go_Sets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyKind tags which field of a Key is meaningful.
type KeyKind byte

const (
	IntKey KeyKind = iota
	PairKey
	StrKey
)

func (k KeyKind) String() string {
	switch k {
	case IntKey:
		return "int"
	case PairKey:
		return "pair"
	case StrKey:
		return "string"
	}
	return "KeyKind(" + strconv.Itoa(int(k)) + ")"
}

var ErrBadKey = errors.New("bad key")

// Key is a comparable tagged variant holding an integer, a coordinate pair or a string.
// Only the fields selected by Kind are set, so == compares keys correctly. The zero value is Int(0).
type Key struct {
	Kind KeyKind
	X, Y int
	S    string
}

func Int(v int) Key {
	return Key{Kind: IntKey, X: v}
}

func Pair(x, y int) Key {
	return Key{Kind: PairKey, X: x, Y: y}
}

func Str(s string) Key {
	return Key{Kind: StrKey, S: s}
}

// Hash of k. Integers hash to themselves; pairs and strings go through xxhash.
func (k Key) Hash() uint {
	switch k.Kind {
	case PairKey:
		var b [16]byte
		binary.LittleEndian.PutUint64(b[:8], uint64(k.X))
		binary.LittleEndian.PutUint64(b[8:], uint64(k.Y))
		return uint(xxhash.Sum64(b[:]))
	case StrKey:
		return XXString(k.S)
	}
	return Identity(k.X)
}

func (k Key) String() string {
	switch k.Kind {
	case PairKey:
		return "(" + strconv.Itoa(k.X) + "," + strconv.Itoa(k.Y) + ")"
	case StrKey:
		return strconv.Quote(k.S)
	}
	return strconv.Itoa(k.X)
}

// ParseKey resolves the variant of s once: an integer literal is an IntKey, "x,y" (parentheses optional) is a PairKey,
// a double-quoted literal or any other text is a StrKey.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, fmt.Errorf("%w: empty", ErrBadKey)
	}
	if s[0] == '"' {
		v, err := strconv.Unquote(s)
		if err != nil {
			return Key{}, fmt.Errorf("%w: %s: %v", ErrBadKey, s, err)
		}
		return Str(v), nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return Int(v), nil
	}
	if inner := strings.TrimSuffix(strings.TrimPrefix(s, "("), ")"); strings.Count(inner, ",") == 1 {
		a, b, _ := strings.Cut(inner, ",")
		x, errX := strconv.Atoi(strings.TrimSpace(a))
		y, errY := strconv.Atoi(strings.TrimSpace(b))
		if errX == nil && errY == nil {
			return Pair(x, y), nil
		}
	}
	return Str(s), nil
}
