package solver

import "fmt"

// Status is what the solver knows about a cell.
type Status uint8

const (
	Unknown Status = iota // never shot at
	Water                 // a miss, or known empty next to a sunk ship
	Hit                   // ship cell of a ship not yet confirmed sunk
	Sunk                  // ship cell of a confirmed sunk ship
)

// Status implements [fmt.Stringer]
func (s Status) String() string {
	switch s {
	case Unknown:
		return "*"
	case Water:
		return "."
	case Hit:
		return "X"
	case Sunk:
		return "x"
	default:
		return "!"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if s > Sunk {
		return nil, fmt.Errorf("invalid status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "*":
		*s = Unknown
	case ".":
		*s = Water
	case "X":
		*s = Hit
	case "x":
		*s = Sunk
	default:
		return fmt.Errorf("invalid status %q", text)
	}
	return nil
}

// Mode tells whether the solver is looking for a ship or finishing one.
type Mode uint8

const (
	Searching Mode = iota
	Finishing
)

// Mode implements [fmt.Stringer]
func (m Mode) String() string {
	if m == Finishing {
		return "finishing"
	}
	return "searching"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "searching":
		*m = Searching
	case "finishing":
		*m = Finishing
	default:
		return fmt.Errorf("invalid mode %q", text)
	}
	return nil
}
