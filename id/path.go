package id

import (
	"strings"
)

// PathSegment is a single component of a Path. Unlike Id, a PathSegment may
// contain dots (e.g. a version number "1.0.0" inside a Link), since it is
// also used to represent the segments of an absolute Link.
type PathSegment string

// ParsePathSegment validates s as a single path component: non-empty, and
// containing no '/' (which would make it two segments, not one).
func ParsePathSegment(s string) (PathSegment, error) {
	if s == "" {
		return "", Errorf("path segment must not be empty")
	}
	if strings.ContainsAny(s, "/") {
		return "", Errorf("path segment %q must not contain '/'", s)
	}
	if strings.TrimSpace(s) != s {
		return "", Errorf("path segment %q must not contain leading/trailing whitespace", s)
	}
	return PathSegment(s), nil
}

func (s PathSegment) String() string { return string(s) }

// Less gives PathSegment the total order Dir needs for deterministic
// sibling iteration.
func (s PathSegment) Less(other PathSegment) bool { return s < other }

// Path is an ordered sequence of PathSegments, e.g. the parsed form of
// "/a/b/c".
type Path []PathSegment

// String renders the Path back to its "/a/b/c" wire form. An empty Path
// renders as "/".
func (p Path) String() string {
	if len(p) == 0 {
		return "/"
	}
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = string(seg)
	}
	return "/" + strings.Join(parts, "/")
}

// Equal reports whether p and other contain the same segments in the same
// order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// ParsePath parses a "/a/b/c" style absolute path (or "" / "/" for the empty
// path) into its segments.
func ParsePath(s string) (Path, error) {
	if s == "" || s == "/" {
		return Path{}, nil
	}
	if !strings.HasPrefix(s, "/") {
		return nil, Errorf("path %q must begin with '/'", s)
	}
	trimmed := s[1:]
	if trimmed == "" {
		return nil, Errorf("path %q must contain at least one segment", s)
	}
	rawSegs := strings.Split(trimmed, "/")
	segs := make(Path, 0, len(rawSegs))
	for _, raw := range rawSegs {
		seg, err := ParsePathSegment(raw)
		if err != nil {
			return nil, Errorf("invalid path %q: %s", s, err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// ParseRoutePath parses a "/a/b"-style mount path for use with a Dir router.
// It rejects empty or whitespace-only input and a trailing slash with an
// empty final segment (e.g. "/a/").
func ParseRoutePath(s string) (Path, error) {
	if strings.TrimSpace(s) == "" {
		return nil, Errorf("route paths must not be empty")
	}
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, Errorf("route paths must contain at least one segment")
	}
	rawSegs := strings.Split(trimmed, "/")
	segs := make(Path, 0, len(rawSegs))
	for _, raw := range rawSegs {
		seg, err := ParsePathSegment(raw)
		if err != nil {
			return nil, Errorf("invalid route segment %q: %s", raw, err)
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// Link is an absolute path, treated as an opaque string: the textual form
// is defined by the caller's path library, not reinterpreted here beyond
// requiring a leading '/'. Because of that requirement, host-qualified
// links (e.g. "http://host/a") are not accepted by ParseLink.
type Link string

// ParseLink validates that s looks like an absolute path and returns it as
// a Link.
func ParseLink(s string) (Link, error) {
	if s == "" {
		return "", Errorf("link must not be empty")
	}
	if !strings.HasPrefix(s, "/") {
		return "", Errorf("link %q must be an absolute path", s)
	}
	return Link(s), nil
}

func (l Link) String() string { return string(l) }

// Subject is the target of an Op: either a concrete Link, or a scoped
// reference (IdRef) plus a suffix Path. Its wire form is the Link's string,
// or "$id" / "$id/a/b" for a scoped reference.
type Subject struct {
	link   Link
	ref    IdRef
	suffix Path
	isRef  bool
}

// SubjectFromLink wraps a concrete Link as a Subject.
func SubjectFromLink(l Link) Subject { return Subject{link: l} }

// SubjectFromRef wraps a scoped IdRef plus suffix Path as a Subject.
func SubjectFromRef(r IdRef, suffix Path) Subject {
	return Subject{ref: r, suffix: suffix, isRef: true}
}

// IsRef reports whether this Subject is a scoped reference rather than a
// concrete Link.
func (s Subject) IsRef() bool { return s.isRef }

// Link returns the concrete Link this Subject wraps. Only valid when
// IsRef() is false.
func (s Subject) Link() Link { return s.link }

// Ref returns the IdRef and suffix Path this Subject wraps. Only valid when
// IsRef() is true.
func (s Subject) Ref() (IdRef, Path) { return s.ref, s.suffix }

// String renders the Subject back to its wire form.
func (s Subject) String() string {
	if !s.isRef {
		return string(s.link)
	}
	if len(s.suffix) == 0 {
		return s.ref.String()
	}
	return s.ref.String() + s.suffix.String()
}

// SubjectFromString parses the string form of a Subject: if s begins with
// '$' it is a scoped reference (optionally followed by a suffix path),
// otherwise the entire string is parsed as a Link.
func SubjectFromString(s string) (Subject, error) {
	if strings.HasPrefix(s, "$") {
		if i := strings.IndexByte(s, '/'); i >= 0 {
			idPart, pathPart := s[:i], s[i:]
			ref, err := ParseIdRef(idPart)
			if err != nil {
				return Subject{}, err
			}
			suffix, err := ParsePath(pathPart)
			if err != nil {
				return Subject{}, err
			}
			return SubjectFromRef(ref, suffix), nil
		}
		ref, err := ParseIdRef(s)
		if err != nil {
			return Subject{}, err
		}
		return SubjectFromRef(ref, nil), nil
	}

	link, err := ParseLink(s)
	if err != nil {
		return Subject{}, err
	}
	return SubjectFromLink(link), nil
}
