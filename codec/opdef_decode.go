package codec

import (
	"encoding/json"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

// decodeOpDefMapEntry decodes the verb-specific tuple form following an
// already-consumed OpDef label key, then drains and closes the enclosing
// map.
func decodeOpDefMapEntry(class scalar.OpDefClass, dec *json.Decoder) (scalar.OpDef, error) {
	var def scalar.OpDef

	switch class {
	case scalar.ClassGet, scalar.ClassDelete:
		if err := expectDelim(dec, '['); err != nil {
			return nil, err
		}
		keyName, err := decodeIdElement(dec)
		if err != nil {
			return nil, err
		}
		bindings, err := decodeBindingsArray(dec)
		if err != nil {
			return nil, err
		}
		if _, err := dec.Token(); err != nil { // outer ']'
			return nil, err
		}
		if class == scalar.ClassGet {
			def = scalar.OpDefGet{KeyName: keyName, Bindings: bindings}
		} else {
			def = scalar.OpDefDelete{KeyName: keyName, Bindings: bindings}
		}

	case scalar.ClassPut:
		if err := expectDelim(dec, '['); err != nil {
			return nil, err
		}
		keyName, err := decodeIdElement(dec)
		if err != nil {
			return nil, err
		}
		valueName, err := decodeIdElement(dec)
		if err != nil {
			return nil, err
		}
		bindings, err := decodeBindingsArray(dec)
		if err != nil {
			return nil, err
		}
		if _, err := dec.Token(); err != nil { // outer ']'
			return nil, err
		}
		def = scalar.OpDefPut{KeyName: keyName, ValueName: valueName, Bindings: bindings}

	case scalar.ClassPost:
		bindings, err := decodeBindingsArray(dec)
		if err != nil {
			return nil, err
		}
		def = scalar.OpDefPost{Bindings: bindings}

	default:
		return nil, id.Errorf("unknown OpDef class")
	}

	if err := drainAndClose(dec); err != nil {
		return nil, err
	}
	return def, nil
}

// decodeOpDefValue decodes a standalone OpDef: a map whose first key names
// its verb label; any further keys are drained and ignored. Used where an OpDef is nested inside another
// value (e.g. a CondOp's then/or_else branch) rather than being the
// Scalar's own top-level map.
func decodeOpDefValue(dec *json.Decoder) (scalar.OpDef, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	keyTok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	key, ok := keyTok.(string)
	if !ok {
		return nil, id.Errorf("expected an Op definition type, got %T", keyTok)
	}
	path, err := id.ParsePath(key)
	if err != nil {
		return nil, id.Errorf("expected an Op definition type, e.g. %q", scalar.OpDefGetLabel)
	}
	class, ok := scalar.OpDefLabelType(path)
	if !ok {
		return nil, id.Errorf("expected an Op definition type, e.g. %q", scalar.OpDefGetLabel)
	}
	return decodeOpDefMapEntry(class, dec)
}

func decodeBindingsArray(dec *json.Decoder) ([]scalar.Binding, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	var out []scalar.Binding
	for dec.More() {
		b, err := decodeBindingPair(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if _, err := dec.Token(); err != nil { // ']'
		return nil, err
	}
	return out, nil
}

func decodeBindingPair(dec *json.Decoder) (scalar.Binding, error) {
	if err := expectDelim(dec, '['); err != nil {
		return scalar.Binding{}, err
	}
	name, err := decodeIdElement(dec)
	if err != nil {
		return scalar.Binding{}, err
	}
	value, err := decodeScalar(dec)
	if err != nil {
		return scalar.Binding{}, err
	}
	if err := expectDelim(dec, ']'); err != nil {
		return scalar.Binding{}, err
	}
	return scalar.Binding{Name: name, Value: value}, nil
}
