package anchor

import (
	"fmt"
	"strings"
)

// Kind selects the interpolation used between anchors.
type Kind int

const (
	KindLinear Kind = iota + 1
	KindQuadratic
	KindCubic
)

var kindNames = map[Kind]string{
	KindLinear:    "linear",
	KindQuadratic: "quadratic",
	KindCubic:     "cubic",
}

// Degree returns the spline degree of the kind (1, 2 or 3), or 0 if unknown.
func (k Kind) Degree() int {
	switch k {
	case KindLinear:
		return 1
	case KindQuadratic:
		return 2
	case KindCubic:
		return 3
	default:
		return 0
	}
}

// MinAnchors returns the number of distinct anchors the kind needs.
func (k Kind) MinAnchors() int {
	return k.Degree() + 1
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts "linear", "quadratic" or "cubic" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("anchor: unknown interpolation kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("anchor: invalid kind %d", int(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = v

	return nil
}
