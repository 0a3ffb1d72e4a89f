package models

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ControlIDLess orders control identifiers the way a framework document does:
// "6.1.1" before "6.10", "A.8.9" before "A.8.12", "CC2.1" before "CC10.1".
// Identifiers are split into alternating alphabetic and numeric segments;
// numeric segments compare as numbers, alphabetic ones lexicographically, and
// numeric segments sort before alphabetic ones so clauses precede annexes.
func ControlIDLess(a, b string) bool {
	as := splitControlID(StripTenantSuffix(a))
	bs := splitControlID(StripTenantSuffix(b))

	for i := 0; i < len(as) && i < len(bs); i++ {
		an, aIsNum := segmentValue(as[i])
		bn, bIsNum := segmentValue(bs[i])

		switch {
		case aIsNum && bIsNum:
			if an != bn {
				return an < bn
			}
		case aIsNum != bIsNum:
			return aIsNum
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c < 0
			}
		}
	}

	return len(as) < len(bs)
}

// SortControls sorts per-tenant controls in place by their public identifier.
func SortControls(controls []Control) {
	sort.Slice(controls, func(i, j int) bool {
		return ControlIDLess(controls[i].ControlID, controls[j].ControlID)
	})
}

func splitControlID(id string) []string {
	var segments []string
	var current strings.Builder
	var currentIsDigit bool

	flush := func() {
		if current.Len() > 0 {
			segments = append(segments, current.String())
			current.Reset()
		}
	}

	for _, r := range id {
		switch {
		case unicode.IsDigit(r):
			if current.Len() > 0 && !currentIsDigit {
				flush()
			}
			currentIsDigit = true
			current.WriteRune(r)
		case unicode.IsLetter(r):
			if current.Len() > 0 && currentIsDigit {
				flush()
			}
			currentIsDigit = false
			current.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return segments
}

func segmentValue(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
