package domain

import (
	"strings"
	"unicode"
)

// Room represents a bookable site/room from the Newbook catalog
type Room struct {
	SiteName string
}

// IsOverflow returns true if the room is auxiliary overflow inventory
// (name contains the overflow marker, case-insensitive)
func (r *Room) IsOverflow() bool {
	return IsOverflowName(r.SiteName)
}

// IsOverflowName reports whether a raw site name refers to overflow inventory
func IsOverflowName(name string) bool {
	return strings.Contains(strings.ToLower(name), OverflowMarker)
}

// NaturalCompare compares two room names case-insensitively with
// numeric-aware ordering, so "Room 2" sorts before "Room 10".
// Returns -1, 0 or 1 in the manner of strings.Compare.
func NaturalCompare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]

		if unicode.IsDigit(ca) && unicode.IsDigit(cb) {
			// Compare whole digit runs as numbers
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}

			na := strings.TrimLeft(string(ra[si:i]), "0")
			nb := strings.TrimLeft(string(rb[sj:j]), "0")

			if len(na) != len(nb) {
				if len(na) < len(nb) {
					return -1
				}
				return 1
			}
			if na != nb {
				if na < nb {
					return -1
				}
				return 1
			}
			continue
		}

		la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	default:
		return 0
	}
}
