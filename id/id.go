package id

import (
	"strings"
)

// Id is a non-empty identifier drawn from the host identifier grammar: it is
// used as a Scalar Map key and as an OpDef let-binding name. Ids are
// total-ordered by their string form.
type Id string

// ParseId validates s against the identifier grammar and returns it as an Id.
// The grammar accepts ASCII letters, digits, underscore and hyphen, and must
// not begin with a digit (so an Id can never be confused with a bare
// number literal in the wire format).
func ParseId(s string) (Id, error) {
	if s == "" {
		return "", Errorf("identifier must not be empty")
	}
	if s[0] >= '0' && s[0] <= '9' {
		return "", Errorf("identifier %q must not begin with a digit", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_', c == '-':
			continue
		default:
			return "", Errorf("identifier %q contains invalid character %q", s, c)
		}
	}
	return Id(s), nil
}

// String returns the bare identifier text (no "$" or "/" decoration).
func (i Id) String() string { return string(i) }

// Less reports whether i sorts before other, giving Id its total order.
func (i Id) Less(other Id) bool { return i < other }

// IdRef is an Id tagged with a leading "$", scoping it to a value bound
// earlier in the current evaluation context. Its wire form is "$name".
type IdRef struct {
	id Id
}

// NewIdRef wraps id as an IdRef.
func NewIdRef(i Id) IdRef { return IdRef{id: i} }

// ParseIdRef parses the "$name" wire form of an IdRef.
func ParseIdRef(s string) (IdRef, error) {
	if !strings.HasPrefix(s, "$") || len(s) < 2 {
		return IdRef{}, Errorf("invalid IdRef %q: must begin with '$' and name an id", s)
	}
	i, err := ParseId(s[1:])
	if err != nil {
		return IdRef{}, Errorf("invalid IdRef %q: %s", s, err)
	}
	return IdRef{id: i}, nil
}

// Id returns the underlying identifier.
func (r IdRef) Id() Id { return r.id }

// String returns the "$name" wire form.
func (r IdRef) String() string { return "$" + string(r.id) }
