package scalar

// ScalarWalk is a pre-order, stack-based traversal of a Scalar tree: the
// root first, then its children in declaration order, depth-first.
type ScalarWalk struct {
	stack   []Scalar
	current Scalar
}

func newScalarWalk(root Scalar) *ScalarWalk {
	return &ScalarWalk{stack: []Scalar{root}}
}

// Next advances the walk, returning false once exhausted.
func (w *ScalarWalk) Next() bool {
	if len(w.stack) == 0 {
		return false
	}

	next := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.current = next

	switch v := next.(type) {
	case MapScalar:
		keys := v.Map.Keys()
		for i := len(keys) - 1; i >= 0; i-- {
			value, _ := v.Map.Get(keys[i])
			w.stack = append(w.stack, value)
		}
	case TupleScalar:
		for i := len(v.Tuple) - 1; i >= 0; i-- {
			w.stack = append(w.stack, v.Tuple[i])
		}
	}

	return true
}

// Value returns the Scalar produced by the most recent call to Next.
func (w *ScalarWalk) Value() Scalar { return w.current }

// Collect drains the walk into a slice, root first.
func (w *ScalarWalk) Collect() []Scalar {
	var out []Scalar
	for w.Next() {
		out = append(out, w.Value())
	}
	return out
}

// WalkOpDefScalars chains a pre-order Walk across every binding value in
// def's form, in binding order.
func WalkOpDefScalars(def OpDef) []Scalar {
	var out []Scalar
	for _, binding := range def.Form() {
		out = append(out, Walk(binding.Value).Collect()...)
	}
	return out
}
