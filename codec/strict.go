package codec

import (
	"encoding/json"

	"github.com/TinyChain-Inc/tc-ir/scalar"
	"github.com/TinyChain-Inc/tc-ir/validate"
)

// DecodeStrict checks data's top-level object keys against the decoder's
// reserved labels (scalar.ReservedLabels) before classification, then
// decodes normally. Unlike Decode, a top-level object with two or more keys,
// one of which exactly equals a reserved "/state/scalar/..." label, is
// rejected rather than silently reinterpreted as a typed envelope.
// Single-key objects and "$"-prefixed keys are not checked.
func DecodeStrict(data []byte) (scalar.Scalar, error) {
	if err := validate.RejectReservedKeys(json.RawMessage(data)); err != nil {
		return nil, err
	}
	return Decode(data)
}
