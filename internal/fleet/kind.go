// Package fleet holds the ship catalog, the two orientations of each ship
// and the multiset of ships still afloat.
package fleet

import (
	"fmt"
	"strings"

	"github.com/vancomm/battleship-solver/internal/grid"
)

type Kind uint8

// Catalog order. Every list of kinds produced by this package follows it.
const (
	Nine Kind = iota // the cross-armed carrier
	Five
	Four
	Three
	Two
	kindCount
)

type kindInfo struct {
	name    string
	offsets []grid.Point
	height  int
	width   int
}

// Ships are laid out sideways; all but Nine are straight lines.
var catalog = [kindCount]kindInfo{
	Nine: {
		name: "NINE",
		offsets: []grid.Point{
			{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4},
			{0, 1}, {2, 1}, {0, 3}, {2, 3},
		},
		height: 3, width: 5,
	},
	Five: {
		name:    "FIVE",
		offsets: []grid.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
		height:  1, width: 5,
	},
	Four: {
		name:    "FOUR",
		offsets: []grid.Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		height:  1, width: 4,
	},
	Three: {
		name:    "THREE",
		offsets: []grid.Point{{0, 0}, {0, 1}, {0, 2}},
		height:  1, width: 3,
	},
	Two: {
		name:    "TWO",
		offsets: []grid.Point{{0, 0}, {0, 1}},
		height:  1, width: 2,
	},
}

// Kinds returns the whole catalog.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := range kindCount {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k Kind) Valid() bool {
	return k < kindCount
}

// Kind implements [fmt.Stringer]
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].name
}

// Offsets returns a copy of the canonical cell offsets.
func (k Kind) Offsets() []grid.Point {
	offsets := make([]grid.Point, len(catalog[k].offsets))
	copy(offsets, catalog[k].offsets)
	return offsets
}

// Bounds returns the canonical bounding box as height, width.
func (k Kind) Bounds() (height, width int) {
	return catalog[k].height, catalog[k].width
}

// Size is the number of cells the ship occupies.
func (k Kind) Size() int {
	return len(catalog[k].offsets)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid ship kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind accepts a catalog name in any case or the ship's cell count.
func ParseKind(s string) (Kind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k := range kindCount {
		if catalog[k].name == s || fmt.Sprint(len(catalog[k].offsets)) == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown ship kind %q", s)
}
