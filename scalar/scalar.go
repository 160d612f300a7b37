package scalar

// Scalar is the IR's tagged union: a leaf Value, a TCRef, an inline OpDef,
// an ordered Map, or a Tuple. It is a closed set of five variants, mirrored
// here as an interface implemented only by the types in this file so the
// codec's type switches stay exhaustive.
type Scalar interface {
	isScalar()
}

// ValueScalar wraps a leaf Value.
type ValueScalar struct {
	Value Value
}

func (ValueScalar) isScalar() {}

// RefScalar wraps a TCRef.
type RefScalar struct {
	Ref TCRef
}

func (RefScalar) isScalar() {}

// OpScalar wraps an inline OpDef.
type OpScalar struct {
	Op OpDef
}

func (OpScalar) isScalar() {}

// MapScalar wraps an ordered Id->Scalar map.
type MapScalar struct {
	Map Map[Scalar]
}

func (MapScalar) isScalar() {}

// TupleScalar wraps an ordered sequence.
type TupleScalar struct {
	Tuple []Scalar
}

func (TupleScalar) isScalar() {}

// Default is the zero Scalar: a None value, matching the Rust source's
// Scalar::default().
func Default() Scalar { return ValueScalar{Value: NoneValue()} }

// FromTCRef wraps a TCRef in a Scalar.
func FromTCRef(r TCRef) Scalar { return RefScalar{Ref: r} }

// FromOpDef wraps an OpDef in a Scalar.
func FromOpDef(op OpDef) Scalar { return OpScalar{Op: op} }

// Walk returns a pre-order iterator over s and its descendants: s itself
// first, then children in declaration order, recursing into Map values and
// Tuple elements.
func Walk(s Scalar) *ScalarWalk {
	return newScalarWalk(s)
}

// WalkTCRef filters Walk(s) down to the Scalar::Ref nodes, returning their
// unwrapped TCRefs.
func WalkTCRef(s Scalar) []TCRef {
	var refs []TCRef
	w := Walk(s)
	for w.Next() {
		if ref, ok := w.Value().(RefScalar); ok {
			refs = append(refs, ref.Ref)
		}
	}
	return refs
}
