package fleet

import (
	"fmt"
	"slices"
	"strings"
)

// Fleet is a multiset of ship kinds.
type Fleet struct {
	kinds []Kind
}

func New(kinds ...Kind) *Fleet {
	return &Fleet{kinds: slices.Clone(kinds)}
}

// Default is the reference fleet: the carrier, one each of five, four and
// two, and two threes.
func Default() *Fleet {
	return New(Nine, Five, Four, Three, Three, Two)
}

// ParseFleet reads a comma separated list of kinds, e.g. "nine,three,3".
func ParseFleet(s string) (*Fleet, error) {
	var kinds []Kind
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		k, err := ParseKind(part)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("empty fleet")
	}
	return New(kinds...), nil
}

func (f *Fleet) Len() int {
	return len(f.kinds)
}

func (f *Fleet) Empty() bool {
	return len(f.kinds) == 0
}

// Kinds returns every ship, duplicates included.
func (f *Fleet) Kinds() []Kind {
	return slices.Clone(f.kinds)
}

// Distinct returns each remaining kind once, in catalog order.
func (f *Fleet) Distinct() []Kind {
	distinct := slices.Clone(f.kinds)
	slices.Sort(distinct)
	return slices.Compact(distinct)
}

// Remove takes one ship of kind k out of the fleet.
func (f *Fleet) Remove(k Kind) bool {
	i := slices.Index(f.kinds, k)
	if i < 0 {
		return false
	}
	f.kinds = slices.Delete(f.kinds, i, i+1)
	return true
}

// Cells is the total number of cells the fleet occupies.
func (f *Fleet) Cells() (n int) {
	for _, k := range f.kinds {
		n += k.Size()
	}
	return
}

func (f *Fleet) Clone() *Fleet {
	return New(f.kinds...)
}

// Fleet implements [fmt.Stringer]
func (f *Fleet) String() string {
	names := make([]string, len(f.kinds))
	for i, k := range f.kinds {
		names[i] = strings.ToLower(k.String())
	}
	return strings.Join(names, ",")
}
