// Package validate compiles and runs JSON-Schema checks against raw wire
// payloads, for callers that want to reject malformed requests before they
// reach the scalar decoder. It is additive: codec.Decode never requires a
// schema, and validate holds no IR semantics of its own.
package validate

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

// CompileSchema compiles a JSON Schema document into a reusable *jsonschema.Schema.
func CompileSchema(name string, schemaDoc []byte) (*jsonschema.Schema, error) {
	var doc any
	if err := json.Unmarshal(schemaDoc, &doc); err != nil {
		return nil, id.Errorf("unmarshal schema %q: %s", name, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, id.Errorf("add schema resource %q: %s", name, err)
	}
	schema, err := c.Compile(name)
	if err != nil {
		return nil, id.Errorf("compile schema %q: %s", name, err)
	}
	return schema, nil
}

// Scalar validates raw (a Scalar's wire-form JSON) against schema before it
// reaches the codec's decoder. A nil schema always passes.
func Scalar(schema *jsonschema.Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return id.Errorf("unmarshal payload for validation: %s", err)
	}

	if err := schema.Validate(payload); err != nil {
		return id.BadRequest.Err("schema validation failed: %s", err)
	}
	return nil
}

// RejectReservedKeys guards against a genuine Scalar::Map (more than one
// key, so it cannot be a single-entry typed envelope) that happens to
// contain a key exactly matching one of the codec's reserved labels. Decode
// dispatches purely on the first JSON key it reads, so if that key is a
// reserved label the rest of the object is silently drained as "trailing
// envelope garbage" and lost — even though the caller intended a multi-key
// Map. This check rejects that payload outright instead of letting Decode
// silently drop the other entries.
func RejectReservedKeys(raw json.RawMessage) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		// Not an object; nothing to check at this level.
		return nil
	}
	if len(obj) < 2 {
		return nil
	}
	for key := range obj {
		for _, reserved := range scalar.ReservedLabels() {
			if key == reserved {
				return id.BadRequest.Err("map key %q collides with the reserved label %q and would be misclassified as a single-entry envelope", key, reserved)
			}
		}
	}
	return nil
}
