package codec

import (
	"encoding/json"
	"strings"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

// decodeTCRefMapEntry decodes a TCRef from an already-consumed map key:
// the four control-flow labels, a "$"-prefixed named/op reference, or the
// generic OpRef fallback. Order matches the decoder's disambiguation
// rules: control-flow label, then "$"-id, then subject/link.
func decodeTCRefMapEntry(key string, dec *json.Decoder) (scalar.TCRef, error) {
	var path id.Path
	var pathOK bool
	if strings.HasPrefix(key, "/") {
		if p, err := id.ParsePath(key); err == nil {
			path, pathOK = p, true
		}
	}

	switch {
	case pathOK && path.Equal(scalar.TCRefIfLabel):
		items, err := decodeScalarArray(dec, 3)
		if err != nil {
			return nil, err
		}
		condRef, ok := items[0].(scalar.RefScalar)
		if !ok {
			return nil, id.Errorf("invalid If ref condition: expected a ref")
		}
		if err := drainAndClose(dec); err != nil {
			return nil, err
		}
		return scalar.IfRef{Cond: condRef.Ref, Then: items[1], OrElse: items[2]}, nil

	case pathOK && path.Equal(scalar.TCRefCondLabel):
		if err := expectDelim(dec, '['); err != nil {
			return nil, err
		}
		condScalar, err := decodeScalar(dec)
		if err != nil {
			return nil, err
		}
		thenDef, err := decodeOpDefValue(dec)
		if err != nil {
			return nil, err
		}
		orElseDef, err := decodeOpDefValue(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, ']'); err != nil {
			return nil, err
		}
		condRef, ok := condScalar.(scalar.RefScalar)
		if !ok {
			return nil, id.Errorf("invalid CondOp condition: expected a ref")
		}
		if err := drainAndClose(dec); err != nil {
			return nil, err
		}
		return scalar.CondRef{Cond: condRef.Ref, Then: thenDef, OrElse: orElseDef}, nil

	case pathOK && path.Equal(scalar.TCRefWhileLabel):
		items, err := decodeScalarArray(dec, 3)
		if err != nil {
			return nil, err
		}
		if err := drainAndClose(dec); err != nil {
			return nil, err
		}
		return scalar.WhileRef{Cond: items[0], Closure: items[1], State: items[2]}, nil

	case pathOK && path.Equal(scalar.TCRefForEachLabel):
		items, err := decodeScalarArray(dec, 3)
		if err != nil {
			return nil, err
		}
		nameScalar, ok := items[2].(scalar.ValueScalar)
		if !ok {
			return nil, id.Errorf("invalid ForEach item_name: expected a string")
		}
		nameStr, ok := nameScalar.Value.Str()
		if !ok {
			return nil, id.Errorf("invalid ForEach item_name: expected a string")
		}
		itemName, err := id.ParseId(nameStr)
		if err != nil {
			return nil, err
		}
		if err := drainAndClose(dec); err != nil {
			return nil, err
		}
		return scalar.ForEachRef{Items: items[0], Op: items[1], ItemName: itemName}, nil
	}

	if strings.HasPrefix(key, "$") {
		args, err := decodeOpArgs(dec)
		if err != nil {
			return nil, err
		}
		if !args.isMap && len(args.seq) == 0 {
			ref, err := id.ParseIdRef(key)
			if err != nil {
				return nil, err
			}
			if err := drainAndClose(dec); err != nil {
				return nil, err
			}
			return scalar.NamedRef{Ref: ref}, nil
		}
		subject, err := id.SubjectFromString(key)
		if err != nil {
			return nil, err
		}
		op, err := opArgsToOpRef(subject, args)
		if err != nil {
			return nil, err
		}
		if err := drainAndClose(dec); err != nil {
			return nil, err
		}
		return scalar.OpCall{Op: op}, nil
	}

	op, err := decodeOpRefMapEntry(key, dec)
	if err != nil {
		return nil, err
	}
	return scalar.OpCall{Op: op}, nil
}
