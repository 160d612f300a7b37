// Package scalar defines the IR's tagged value algebra: Scalar, Value,
// OpRef, OpDef and TCRef, plus the reserved path labels the wire codec uses
// to classify them and the pre-order walk used to inspect a Scalar tree.
package scalar

import "github.com/TinyChain-Inc/tc-ir/id"

func label(segments ...string) id.Path {
	path := make(id.Path, len(segments))
	for i, s := range segments {
		path[i] = id.PathSegment(s)
	}
	return path
}

// Reserved path labels recognized by the wire codec. These mirror the
// v1 reference encoding's typed envelopes and must stay reconstructable
// from their string form, since the labels themselves are part of the
// wire contract, not an implementation detail.
var (
	ScalarRefPrefix  = label("state", "scalar", "ref")
	OpRefPrefix      = label("state", "scalar", "ref", "op")
	OpDefPrefix      = label("state", "scalar", "op")
	ScalarMapLabel   = label("state", "scalar", "map")
	ScalarTupleLabel = label("state", "scalar", "tuple")

	ValueNoneLabel   = label("state", "scalar", "value", "none")
	ValueNumberLabel = label("state", "scalar", "value", "number")
	ValueStringLabel = label("state", "scalar", "value", "string")
	ValueLinkLabel   = label("state", "scalar", "value", "link")

	OpRefGetLabel    = label("state", "scalar", "ref", "op", "get")
	OpRefPutLabel    = label("state", "scalar", "ref", "op", "put")
	OpRefPostLabel   = label("state", "scalar", "ref", "op", "post")
	OpRefDeleteLabel = label("state", "scalar", "ref", "op", "delete")

	OpDefGetLabel    = label("state", "scalar", "op", "get")
	OpDefPutLabel    = label("state", "scalar", "op", "put")
	OpDefPostLabel   = label("state", "scalar", "op", "post")
	OpDefDeleteLabel = label("state", "scalar", "op", "delete")

	TCRefIfLabel      = label("state", "scalar", "ref", "if")
	TCRefCondLabel    = label("state", "scalar", "ref", "cond")
	TCRefWhileLabel   = label("state", "scalar", "ref", "while")
	TCRefForEachLabel = label("state", "scalar", "ref", "for_each")
)

// ValueLabelType classifies a parsed path as one of the four Value type
// labels, or reports ok=false if it names none of them.
func ValueLabelType(path id.Path) (kind ValueKind, ok bool) {
	switch {
	case path.Equal(ValueNoneLabel):
		return ValueNone, true
	case path.Equal(ValueNumberLabel):
		return ValueNumberKind, true
	case path.Equal(ValueStringLabel):
		return ValueStringKind, true
	case path.Equal(ValueLinkLabel):
		return ValueLinkKind, true
	default:
		return 0, false
	}
}

// OpDefLabelType classifies a parsed path as one of the four OpDef verb
// labels, or reports ok=false if it names none of them.
func OpDefLabelType(path id.Path) (class OpDefClass, ok bool) {
	switch {
	case path.Equal(OpDefGetLabel):
		return ClassGet, true
	case path.Equal(OpDefPutLabel):
		return ClassPut, true
	case path.Equal(OpDefPostLabel):
		return ClassPost, true
	case path.Equal(OpDefDeleteLabel):
		return ClassDelete, true
	default:
		return 0, false
	}
}

// ReservedLabels returns the string form of every label the wire codec
// recognizes as a typed envelope. A Link subject whose string happens to
// equal one of these is ambiguous with the label system: Decode resolves
// the ambiguity in favor of the label (matching original crate behavior).
// DecodeStrict resolves a single-key object the same way, and rejects only
// an object with two or more keys that contains one of these labels.
func ReservedLabels() []string {
	return []string{
		ValueNoneLabel.String(), ValueNumberLabel.String(), ValueStringLabel.String(), ValueLinkLabel.String(),
		OpDefGetLabel.String(), OpDefPutLabel.String(), OpDefPostLabel.String(), OpDefDeleteLabel.String(),
		TCRefIfLabel.String(), TCRefCondLabel.String(), TCRefWhileLabel.String(), TCRefForEachLabel.String(),
		OpRefDeleteLabel.String(),
	}
}

// IsControlFlowLabel reports whether path names one of the TCRef
// control-flow labels or the explicit delete-op label, both of which are
// decoded by the tcref map-entry decoder rather than the generic subject
// heuristic.
func IsControlFlowLabel(path id.Path) bool {
	switch {
	case path.Equal(TCRefIfLabel), path.Equal(TCRefCondLabel),
		path.Equal(TCRefWhileLabel), path.Equal(TCRefForEachLabel),
		path.Equal(OpRefDeleteLabel):
		return true
	default:
		return false
	}
}
