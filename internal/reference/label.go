package reference

import "fmt"

// maxLabelLength bounds label names.
const maxLabelLength = 255

// Label is a named reference such as "Totals".
type Label struct {
	name string
}

// NewLabel validates name and creates a label.
func NewLabel(name string) (Label, error) {
	if err := checkLabel(name); err != nil {
		return Label{}, err
	}
	return Label{name: name}, nil
}

// Name returns the label name.
func (l Label) Name() string {
	return l.name
}

// Kind implements Selection.
func (Label) Kind() Kind {
	return KindLabel
}

// String returns the label name.
func (l Label) String() string {
	return l.name
}

func checkLabel(name string) error {
	if name == "" {
		return fmt.Errorf("empty label")
	}
	if len(name) > maxLabelLength {
		return fmt.Errorf("label longer than %d characters", maxLabelLength)
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case isLetter(c) || c == '_':
		case i > 0 && (isDigit(c) || c == '.'):
		default:
			return fmt.Errorf("invalid label character %q at %d", c, i)
		}
	}
	return nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
