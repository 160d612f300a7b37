package codec

import (
	"encoding/json"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

// Encode renders s as the canonical wire form: Map keys in ascending
// order, Value::Link wrapped in its typed envelope, and every other shape
// exactly as Decode accepts it.
func Encode(s scalar.Scalar) ([]byte, error) {
	tree, err := scalarToAny(s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(tree)
}

func scalarToAny(s scalar.Scalar) (any, error) {
	switch v := s.(type) {
	case scalar.ValueScalar:
		return valueToAny(v.Value)
	case scalar.RefScalar:
		return tcrefToAny(v.Ref)
	case scalar.OpScalar:
		return opdefToAny(v.Op)
	case scalar.MapScalar:
		return mapScalarToAny(v.Map)
	case scalar.TupleScalar:
		out := make([]any, len(v.Tuple))
		for i, item := range v.Tuple {
			enc, err := scalarToAny(item)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	default:
		return nil, id.Errorf("unknown Scalar variant %T", s)
	}
}

func valueToAny(v scalar.Value) (any, error) {
	switch v.Kind() {
	case scalar.ValueNone:
		return nil, nil
	case scalar.ValueNumberKind:
		n, _ := v.Number()
		return n, nil
	case scalar.ValueStringKind:
		s, _ := v.Str()
		return s, nil
	case scalar.ValueLinkKind:
		l, _ := v.Link()
		return map[string]any{scalar.ValueLinkLabel.String(): l.String()}, nil
	default:
		return nil, id.Errorf("unknown Value kind")
	}
}

func mapScalarToAny(m scalar.Map[scalar.Scalar]) (any, error) {
	out := make(map[string]any, m.Len())
	var err error
	m.Range(func(k id.Id, v scalar.Scalar) {
		if err != nil {
			return
		}
		var enc any
		enc, err = scalarToAny(v)
		if err != nil {
			return
		}
		out[k.String()] = enc
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func tcrefToAny(r scalar.TCRef) (any, error) {
	switch v := r.(type) {
	case scalar.OpCall:
		return opRefToAny(v.Op)
	case scalar.NamedRef:
		return map[string]any{v.Ref.String(): []any{}}, nil
	case scalar.IfRef:
		cond, err := scalarToAny(scalar.FromTCRef(v.Cond))
		if err != nil {
			return nil, err
		}
		then, err := scalarToAny(v.Then)
		if err != nil {
			return nil, err
		}
		orElse, err := scalarToAny(v.OrElse)
		if err != nil {
			return nil, err
		}
		return map[string]any{scalar.TCRefIfLabel.String(): []any{cond, then, orElse}}, nil
	case scalar.CondRef:
		cond, err := scalarToAny(scalar.FromTCRef(v.Cond))
		if err != nil {
			return nil, err
		}
		then, err := opdefToAny(v.Then)
		if err != nil {
			return nil, err
		}
		orElse, err := opdefToAny(v.OrElse)
		if err != nil {
			return nil, err
		}
		return map[string]any{scalar.TCRefCondLabel.String(): []any{cond, then, orElse}}, nil
	case scalar.WhileRef:
		cond, err := scalarToAny(v.Cond)
		if err != nil {
			return nil, err
		}
		closure, err := scalarToAny(v.Closure)
		if err != nil {
			return nil, err
		}
		state, err := scalarToAny(v.State)
		if err != nil {
			return nil, err
		}
		return map[string]any{scalar.TCRefWhileLabel.String(): []any{cond, closure, state}}, nil
	case scalar.ForEachRef:
		items, err := scalarToAny(v.Items)
		if err != nil {
			return nil, err
		}
		op, err := scalarToAny(v.Op)
		if err != nil {
			return nil, err
		}
		return map[string]any{scalar.TCRefForEachLabel.String(): []any{items, op, v.ItemName.String()}}, nil
	default:
		return nil, id.Errorf("unknown TCRef variant %T", r)
	}
}

func opRefToAny(op scalar.OpRef) (any, error) {
	switch v := op.(type) {
	case scalar.OpGet:
		key, err := scalarToAny(v.Key)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Target.String(): []any{key}}, nil
	case scalar.OpPut:
		key, err := scalarToAny(v.Key)
		if err != nil {
			return nil, err
		}
		value, err := scalarToAny(v.Value)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Target.String(): []any{key, value}}, nil
	case scalar.OpPost:
		params, err := mapScalarToAny(v.Params)
		if err != nil {
			return nil, err
		}
		return map[string]any{v.Target.String(): params}, nil
	case scalar.OpDelete:
		key, err := scalarToAny(v.Key)
		if err != nil {
			return nil, err
		}
		return map[string]any{scalar.OpRefDeleteLabel.String(): []any{v.Target.String(), key}}, nil
	default:
		return nil, id.Errorf("unknown OpRef variant %T", op)
	}
}

func opdefToAny(op scalar.OpDef) (any, error) {
	bindings, err := bindingsToAny(op.Form())
	if err != nil {
		return nil, err
	}

	switch v := op.(type) {
	case scalar.OpDefGet:
		return map[string]any{scalar.OpDefGetLabel.String(): []any{v.KeyName.String(), bindings}}, nil
	case scalar.OpDefPut:
		return map[string]any{scalar.OpDefPutLabel.String(): []any{v.KeyName.String(), v.ValueName.String(), bindings}}, nil
	case scalar.OpDefPost:
		return map[string]any{scalar.OpDefPostLabel.String(): bindings}, nil
	case scalar.OpDefDelete:
		return map[string]any{scalar.OpDefDeleteLabel.String(): []any{v.KeyName.String(), bindings}}, nil
	default:
		return nil, id.Errorf("unknown OpDef variant %T", op)
	}
}

func bindingsToAny(bindings []scalar.Binding) ([]any, error) {
	out := make([]any, len(bindings))
	for i, b := range bindings {
		val, err := scalarToAny(b.Value)
		if err != nil {
			return nil, err
		}
		out[i] = []any{b.Name.String(), val}
	}
	return out, nil
}
