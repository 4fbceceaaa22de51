package viewport

import (
	"strings"

	"github.com/dshills/sheetview/internal/parse"
)

// NavigationList is an ordered queue of navigations. Duplicates are
// allowed. NavigationList is an immutable value type.
type NavigationList struct {
	navigations []Navigation
}

// EmptyNavigationList holds no navigations.
var EmptyNavigationList = NavigationList{}

// NewNavigationList creates a list holding navigations in order.
func NewNavigationList(navigations ...Navigation) NavigationList {
	if len(navigations) == 0 {
		return EmptyNavigationList
	}
	return NavigationList{navigations: append([]Navigation(nil), navigations...)}
}

// Len returns the number of navigations.
func (l NavigationList) Len() int {
	return len(l.navigations)
}

// IsEmpty returns true when the list holds nothing.
func (l NavigationList) IsEmpty() bool {
	return len(l.navigations) == 0
}

// At returns the i'th navigation.
func (l NavigationList) At(i int) Navigation {
	return l.navigations[i]
}

// All returns a copy of the navigations.
func (l NavigationList) All() []Navigation {
	return append([]Navigation(nil), l.navigations...)
}

// Append returns a new list with navigations added at the end.
func (l NavigationList) Append(navigations ...Navigation) NavigationList {
	if len(navigations) == 0 {
		return l
	}
	out := make([]Navigation, 0, len(l.navigations)+len(navigations))
	out = append(out, l.navigations...)
	return NavigationList{navigations: append(out, navigations...)}
}

// Equal reports whether both lists hold equal navigations in the same
// order.
func (l NavigationList) Equal(other NavigationList) bool {
	if len(l.navigations) != len(other.navigations) {
		return false
	}
	for i, n := range l.navigations {
		if n != other.navigations[i] {
			return false
		}
	}
	return true
}

// Text returns the navigations in canonical form separated by commas.
func (l NavigationList) Text() string {
	parts := make([]string, len(l.navigations))
	for i, n := range l.navigations {
		parts[i] = n.Text()
	}
	return strings.Join(parts, ",")
}

// String implements fmt.Stringer.
func (l NavigationList) String() string {
	return l.Text()
}

// ParseNavigationList parses comma separated navigations. The empty string
// is the empty list. Error offsets refer to text.
func ParseNavigationList(text string) (NavigationList, error) {
	if text == "" {
		return EmptyNavigationList, nil
	}
	s := parse.NewScanner(text)
	var navigations []Navigation
	for {
		start := s.Pos()
		n, err := ParseNavigation(s.Until(','))
		if err != nil {
			return EmptyNavigationList, parse.Remap(err, text, start)
		}
		navigations = append(navigations, n)
		if !s.Consume(",") {
			break
		}
	}
	return NavigationList{navigations: navigations}, nil
}

// Compact removes navigations that have no effect on the final state.
//
// A select discards everything queued before it. Then, scanning left to
// right, each navigation is removed together with the first later
// navigation that cancels it, such as "left" followed by "right".
// Compact is idempotent.
func (l NavigationList) Compact() NavigationList {
	count := len(l.navigations)
	if count == 0 {
		return EmptyNavigationList
	}

	removed := make([]bool, count)
	left := count
	for i, n := range l.navigations {
		if !n.IsClearPrevious() {
			continue
		}
		for j := 0; j < i; j++ {
			if !removed[j] {
				removed[j] = true
				left--
			}
		}
	}

	for i := 0; i < count; i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < count; j++ {
			if removed[j] || !l.navigations[i].IsOpposite(l.navigations[j]) {
				continue
			}
			removed[i], removed[j] = true, true
			left -= 2
			if left == 0 {
				return EmptyNavigationList
			}
			break
		}
	}

	if left == count {
		return l
	}
	out := make([]Navigation, 0, left)
	for i, n := range l.navigations {
		if !removed[i] {
			out = append(out, n)
		}
	}
	return NavigationList{navigations: out}
}
