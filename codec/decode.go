// Package codec implements the prefix-sensitive JSON wire format described
// by the v1-compatible dialect: a single recursive decoder that classifies
// single-key maps by inspecting the key, then the argument shape, and a
// matching encoder that produces exactly the shapes the decoder accepts.
package codec

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

// Decode parses data as a single Scalar value.
func Decode(data []byte) (scalar.Scalar, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	s, err := decodeScalar(dec)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decodeScalar(dec *json.Decoder) (scalar.Scalar, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeScalarMap(dec)
		case '[':
			items, err := decodeScalarSeqBody(dec)
			if err != nil {
				return nil, err
			}
			return scalar.TupleScalar{Tuple: items}, nil
		default:
			return nil, id.Errorf("unexpected JSON delimiter %q", t)
		}
	case nil:
		return scalar.ValueScalar{Value: scalar.NoneValue()}, nil
	case bool:
		return scalar.ValueScalar{Value: scalar.BoolValue(t)}, nil
	case json.Number:
		return scalar.ValueScalar{Value: scalar.NumberValue(t)}, nil
	case string:
		return scalar.ValueScalar{Value: scalar.StringValue(t)}, nil
	default:
		return nil, id.Errorf("unexpected JSON token %T", tok)
	}
}

// decodeScalarSeqBody decodes the elements of a JSON array whose opening
// '[' has already been consumed, and consumes the closing ']'.
func decodeScalarSeqBody(dec *json.Decoder) ([]scalar.Scalar, error) {
	var items []scalar.Scalar
	for dec.More() {
		item, err := decodeScalar(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // ']'
		return nil, err
	}
	return items, nil
}

// decodeScalarArray decodes a JSON array of exactly n Scalars.
func decodeScalarArray(dec *json.Decoder, n int) ([]scalar.Scalar, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, err
	}
	items, err := decodeScalarSeqBody(dec)
	if err != nil {
		return nil, err
	}
	if len(items) != n {
		return nil, id.Errorf("expected %d elements, got %d", n, len(items))
	}
	return items, nil
}

// decodeScalarMap implements the decoder's map-classification rules. The
// opening '{' has already been consumed; decodeScalarMap consumes the
// matching closing '}' before returning.
func decodeScalarMap(dec *json.Decoder) (scalar.Scalar, error) {
	if !dec.More() {
		if _, err := dec.Token(); err != nil { // '}'
			return nil, err
		}
		return scalar.MapScalar{Map: scalar.NewMap[scalar.Scalar]()}, nil
	}

	keyTok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	key, ok := keyTok.(string)
	if !ok {
		return nil, id.Errorf("expected a Scalar map key, got %T", keyTok)
	}

	if strings.HasPrefix(key, "/") {
		if path, perr := id.ParsePath(key); perr == nil {
			if kind, ok := scalar.ValueLabelType(path); ok {
				val, err := decodeTypedValue(kind, dec)
				if err != nil {
					return nil, err
				}
				if err := drainAndClose(dec); err != nil {
					return nil, err
				}
				return scalar.ValueScalar{Value: val}, nil
			}

			if class, ok := scalar.OpDefLabelType(path); ok {
				def, err := decodeOpDefMapEntry(class, dec)
				if err != nil {
					return nil, err
				}
				return scalar.OpScalar{Op: def}, nil
			}

			if scalar.IsControlFlowLabel(path) {
				ref, err := decodeTCRefMapEntry(key, dec)
				if err != nil {
					return nil, err
				}
				return scalar.RefScalar{Ref: ref}, nil
			}
		}

		args, err := decodeOpArgs(dec)
		if err != nil {
			return nil, err
		}
		if !args.isMap && len(args.seq) == 0 {
			if link, lerr := id.ParseLink(key); lerr == nil {
				if err := drainAndClose(dec); err != nil {
					return nil, err
				}
				return scalar.ValueScalar{Value: scalar.LinkValue(link)}, nil
			}
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
		return scalar.RefScalar{Ref: scalar.OpCall{Op: op}}, nil
	}

	if strings.HasPrefix(key, "$") {
		ref, err := decodeTCRefMapEntry(key, dec)
		if err != nil {
			return nil, err
		}
		return scalar.RefScalar{Ref: ref}, nil
	}

	out := scalar.NewMap[scalar.Scalar]()
	firstID, err := id.ParseId(key)
	if err != nil {
		return nil, err
	}
	firstVal, err := decodeScalar(dec)
	if err != nil {
		return nil, err
	}
	out.Insert(firstID, firstVal)

	for dec.More() {
		kTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		k, ok := kTok.(string)
		if !ok {
			return nil, id.Errorf("expected a Scalar map key, got %T", kTok)
		}
		kid, err := id.ParseId(k)
		if err != nil {
			return nil, err
		}
		if _, exists := out.Get(kid); exists {
			return nil, id.Errorf("duplicate map key %q", k)
		}
		v, err := decodeScalar(dec)
		if err != nil {
			return nil, err
		}
		out.Insert(kid, v)
	}
	if _, err := dec.Token(); err != nil { // '}'
		return nil, err
	}
	return scalar.MapScalar{Map: out}, nil
}

func decodeTypedValue(kind scalar.ValueKind, dec *json.Decoder) (scalar.Value, error) {
	switch kind {
	case scalar.ValueNone:
		var ignored json.RawMessage
		if err := dec.Decode(&ignored); err != nil {
			return scalar.Value{}, err
		}
		return scalar.NoneValue(), nil
	case scalar.ValueNumberKind:
		tok, err := dec.Token()
		if err != nil {
			return scalar.Value{}, err
		}
		switch v := tok.(type) {
		case json.Number:
			return scalar.NumberValue(v), nil
		case bool:
			return scalar.BoolValue(v), nil
		default:
			return scalar.Value{}, id.Errorf("expected a number, got %T", tok)
		}
	case scalar.ValueStringKind:
		tok, err := dec.Token()
		if err != nil {
			return scalar.Value{}, err
		}
		s, ok := tok.(string)
		if !ok {
			return scalar.Value{}, id.Errorf("expected a string, got %T", tok)
		}
		return scalar.StringValue(s), nil
	case scalar.ValueLinkKind:
		tok, err := dec.Token()
		if err != nil {
			return scalar.Value{}, err
		}
		s, ok := tok.(string)
		if !ok {
			return scalar.Value{}, id.Errorf("expected a link string, got %T", tok)
		}
		link, err := id.ParseLink(s)
		if err != nil {
			return scalar.Value{}, err
		}
		return scalar.LinkValue(link), nil
	default:
		return scalar.Value{}, id.Errorf("unknown value label kind")
	}
}

// drainAndClose ignores any remaining key/value pairs in the current map
// (tolerating trailing garbage in single-entry envelopes) and consumes the
// closing '}'.
func drainAndClose(dec *json.Decoder) error {
	for dec.More() {
		if _, err := dec.Token(); err != nil { // key
			return err
		}
		var ignored json.RawMessage
		if err := dec.Decode(&ignored); err != nil { // value
			return err
		}
	}
	_, err := dec.Token() // '}'
	return err
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return id.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func decodeIdElement(dec *json.Decoder) (id.Id, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", id.Errorf("expected an identifier, got %T", tok)
	}
	return id.ParseId(s)
}

func decodeSubjectElement(dec *json.Decoder) (id.Subject, error) {
	tok, err := dec.Token()
	if err != nil {
		return id.Subject{}, err
	}
	s, ok := tok.(string)
	if !ok {
		return id.Subject{}, id.Errorf("expected a subject string, got %T", tok)
	}
	return id.SubjectFromString(s)
}

func decodeParamsMapBody(dec *json.Decoder) (scalar.Map[scalar.Scalar], error) {
	m := scalar.NewMap[scalar.Scalar]()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return m, err
		}
		k, ok := keyTok.(string)
		if !ok {
			return m, id.Errorf("expected a parameter name, got %T", keyTok)
		}
		kid, err := id.ParseId(k)
		if err != nil {
			return m, err
		}
		val, err := decodeScalar(dec)
		if err != nil {
			return m, err
		}
		m.Insert(kid, val)
	}
	return m, nil
}

func decodeParamsMap(dec *json.Decoder) (scalar.Map[scalar.Scalar], error) {
	if err := expectDelim(dec, '{'); err != nil {
		return scalar.Map[scalar.Scalar]{}, err
	}
	m, err := decodeParamsMapBody(dec)
	if err != nil {
		return m, err
	}
	if _, err := dec.Token(); err != nil { // '}'
		return m, err
	}
	return m, nil
}

// opArgs is the internal "sequence or map" intermediate used to decode both
// OpRef and TCRef argument shapes.
type opArgs struct {
	seq   []scalar.Scalar
	m     scalar.Map[scalar.Scalar]
	isMap bool
}

func decodeOpArgs(dec *json.Decoder) (opArgs, error) {
	tok, err := dec.Token()
	if err != nil {
		return opArgs{}, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return opArgs{}, id.Errorf("expected OpRef args (a sequence or map), got %T", tok)
	}

	switch delim {
	case '[':
		items, err := decodeScalarSeqBody(dec)
		if err != nil {
			return opArgs{}, err
		}
		return opArgs{seq: items}, nil
	case '{':
		m, err := decodeParamsMapBody(dec)
		if err != nil {
			return opArgs{}, err
		}
		if _, err := dec.Token(); err != nil { // '}'
			return opArgs{}, err
		}
		return opArgs{m: m, isMap: true}, nil
	default:
		return opArgs{}, id.Errorf("expected OpRef args (a sequence or map), got %q", delim)
	}
}

func opArgsToOpRef(subject id.Subject, args opArgs) (scalar.OpRef, error) {
	if args.isMap {
		return scalar.OpPost{Target: subject, Params: args.m}, nil
	}
	switch len(args.seq) {
	case 1:
		return scalar.OpGet{Target: subject, Key: args.seq[0]}, nil
	case 2:
		return scalar.OpPut{Target: subject, Key: args.seq[0], Value: args.seq[1]}, nil
	default:
		return nil, id.Errorf("invalid OpRef params (expected 1 or 2 elements, got %d)", len(args.seq))
	}
}
