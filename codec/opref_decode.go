package codec

import (
	"encoding/json"
	"strings"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

// decodeOpRefMapEntry decodes an OpRef from an already-consumed map key,
// recognizing the four explicit "/state/scalar/ref/op/{verb}" labels for
// decoder tolerance, falling back to the generic subject+args heuristic.
// It drains and closes the enclosing map before returning.
func decodeOpRefMapEntry(key string, dec *json.Decoder) (scalar.OpRef, error) {
	var path id.Path
	var pathOK bool
	if strings.HasPrefix(key, "/") {
		if p, err := id.ParsePath(key); err == nil {
			path, pathOK = p, true
		}
	}

	var op scalar.OpRef
	var err error

	switch {
	case pathOK && path.Equal(scalar.OpRefGetLabel):
		op, err = decodeGetRefValue(dec)
	case pathOK && path.Equal(scalar.OpRefPutLabel):
		op, err = decodePutRefValue(dec)
	case pathOK && path.Equal(scalar.OpRefPostLabel):
		op, err = decodePostRefValue(dec)
	case pathOK && path.Equal(scalar.OpRefDeleteLabel):
		op, err = decodeDeleteRefValue(dec)
	default:
		var subject id.Subject
		subject, err = id.SubjectFromString(key)
		if err == nil {
			var args opArgs
			args, err = decodeOpArgs(dec)
			if err == nil {
				op, err = opArgsToOpRef(subject, args)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	if err := drainAndClose(dec); err != nil {
		return nil, err
	}
	return op, nil
}

func decodeGetRefValue(dec *json.Decoder) (scalar.OpRef, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	subject, err := decodeSubjectElement(dec)
	if err != nil {
		return nil, err
	}
	key, err := decodeScalar(dec)
	if err != nil {
		return nil, err
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return scalar.OpGet{Target: subject, Key: key}, nil
}

func decodePutRefValue(dec *json.Decoder) (scalar.OpRef, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	subject, err := decodeSubjectElement(dec)
	if err != nil {
		return nil, err
	}
	key, err := decodeScalar(dec)
	if err != nil {
		return nil, err
	}
	value, err := decodeScalar(dec)
	if err != nil {
		return nil, err
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return scalar.OpPut{Target: subject, Key: key, Value: value}, nil
}

func decodePostRefValue(dec *json.Decoder) (scalar.OpRef, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	subject, err := decodeSubjectElement(dec)
	if err != nil {
		return nil, err
	}
	params, err := decodeParamsMap(dec)
	if err != nil {
		return nil, err
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return scalar.OpPost{Target: subject, Params: params}, nil
}

func decodeDeleteRefValue(dec *json.Decoder) (scalar.OpRef, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	subject, err := decodeSubjectElement(dec)
	if err != nil {
		return nil, err
	}
	key, err := decodeScalar(dec)
	if err != nil {
		return nil, err
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, err
	}
	return scalar.OpDelete{Target: subject, Key: key}, nil
}
