// Package rank converts lists of relevant-document rank positions into the
// run and qrels structures used for evaluation.
package rank

import (
	"strconv"

	"github.com/pkg/errors"
)

// UnseenValue is the integer encoding of an unseen rank.
const UnseenValue = -1

// Rank is the position of a known relevant document in a ranking. A rank is
// either observed at a 1-based position, or unseen: the document is relevant
// but did not appear within the ranking.
type Rank struct {
	position int
}

// Unseen is a relevant document that was not observed in the ranking.
var Unseen = Rank{}

// Observed creates a rank for a document observed at the 1-based position p.
func Observed(p int) Rank {
	if p < 1 {
		return Unseen
	}
	return Rank{position: p}
}

// FromInt converts the integer encoding of a rank. Positive values are
// observed positions and -1 is unseen; anything else is an error.
func FromInt(v int) (Rank, error) {
	switch {
	case v >= 1:
		return Rank{position: v}, nil
	case v == UnseenValue:
		return Unseen, nil
	default:
		return Unseen, errors.Errorf("invalid rank %d", v)
	}
}

// Position returns the observed position and true, or zero and false when the
// rank is unseen.
func (r Rank) Position() (int, bool) {
	return r.position, r.position > 0
}

// IsUnseen reports whether the rank is unseen.
func (r Rank) IsUnseen() bool {
	return r.position <= 0
}

// Int returns the integer encoding of the rank.
func (r Rank) Int() int {
	if r.IsUnseen() {
		return UnseenValue
	}
	return r.position
}

func (r Rank) String() string {
	return strconv.Itoa(r.Int())
}

// List is the ranks of the relevant documents for a single query.
type List []Rank

// FromInts converts the integer encoding of a list of ranks.
func FromInts(values ...int) (List, error) {
	l := make(List, len(values))
	for i, v := range values {
		r, err := FromInt(v)
		if err != nil {
			return nil, errors.Wrapf(err, "rank %d", i)
		}
		l[i] = r
	}
	return l, nil
}

// MustFromInts is like FromInts but panics on invalid input.
func MustFromInts(values ...int) List {
	l, err := FromInts(values...)
	if err != nil {
		panic(err)
	}
	return l
}

// Ints returns the integer encoding of the list.
func (l List) Ints() []int {
	v := make([]int, len(l))
	for i, r := range l {
		v[i] = r.Int()
	}
	return v
}

// Mask returns a copy of the list where every observed rank worse than cutoff
// is unseen. A cutoff less than one disables masking.
func (l List) Mask(cutoff int) List {
	masked := make(List, len(l))
	copy(masked, l)
	if cutoff < 1 {
		return masked
	}
	for i, r := range masked {
		if p, ok := r.Position(); ok && p > cutoff {
			masked[i] = Unseen
		}
	}
	return masked
}

// MaxRank is the deepest observed position in the list, clamped to cutoff
// when cutoff is at least one. The list is expected to be masked already.
func (l List) MaxRank(cutoff int) int {
	deepest := 0
	for _, r := range l {
		if p, ok := r.Position(); ok && p > deepest {
			deepest = p
		}
	}
	if cutoff >= 1 && deepest > cutoff {
		deepest = cutoff
	}
	return deepest
}

// CountUnseen counts the unseen ranks in the list.
func (l List) CountUnseen() int {
	n := 0
	for _, r := range l {
		if r.IsUnseen() {
			n++
		}
	}
	return n
}

// Contains reports whether p is an observed position in the list.
func (l List) Contains(p int) bool {
	for _, r := range l {
		if q, ok := r.Position(); ok && q == p {
			return true
		}
	}
	return false
}
