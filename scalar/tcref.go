package scalar

import "github.com/TinyChain-Inc/tc-ir/id"

// TCRef is the reference variant of Scalar: a named ref, an op ref, or one
// of the control-flow forms.
type TCRef interface {
	isTCRef()
}

// OpCall wraps an OpRef as a TCRef.
type OpCall struct {
	Op OpRef
}

func (OpCall) isTCRef() {}

// NamedRef is a reference to a value bound earlier in the current
// evaluation scope, e.g. "$self".
type NamedRef struct {
	Ref id.IdRef
}

func (NamedRef) isTCRef() {}

// IfRef is a conditional reference: both branches are values, always
// materialized, and the kernel selects one based on Cond. Cond must itself
// be a TCRef; a literal condition is rejected at decode time.
type IfRef struct {
	Cond   TCRef
	Then   Scalar
	OrElse Scalar
}

func (IfRef) isTCRef() {}

// CondRef is a lazy conditional reference: Then and OrElse are OpDefs, and
// the kernel executes only the branch selected by Cond.
type CondRef struct {
	Cond   TCRef
	Then   OpDef
	OrElse OpDef
}

func (CondRef) isTCRef() {}

// WhileRef is a loop reference: repeatedly resolve Closure while Cond holds,
// threading State through each iteration.
type WhileRef struct {
	Cond    Scalar
	Closure Scalar
	State   Scalar
}

func (WhileRef) isTCRef() {}

// ForEachRef applies Op to each item of Items, binding the current element
// to ItemName.
type ForEachRef struct {
	Items    Scalar
	Op       Scalar
	ItemName id.Id
}

func (ForEachRef) isTCRef() {}
