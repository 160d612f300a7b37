package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyChain-Inc/tc-ir/codec"
	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

func mustId(t *testing.T, s string) id.Id {
	t.Helper()
	v, err := id.ParseId(s)
	require.NoError(t, err)
	return v
}

func roundTrip(t *testing.T, s scalar.Scalar) scalar.Scalar {
	t.Helper()
	data, err := codec.Encode(s)
	require.NoError(t, err)
	out, err := codec.Decode(data)
	require.NoError(t, err)
	return out
}

// S4 — Scalar map: nested maps round-trip, and a bottom-level bool decodes
// back as the number-shaped boolean dialect.
func TestScalarMapRoundTrip(t *testing.T) {
	inner := scalar.NewMap[scalar.Scalar]()
	inner.Insert(mustId(t, "signed"), scalar.ValueScalar{Value: scalar.BoolValue(true)})
	inner.Insert(mustId(t, "bits"), scalar.ValueScalar{Value: scalar.NumberValue(json.Number("16"))})

	outer := scalar.NewMap[scalar.Scalar]()
	outer.Insert(mustId(t, "dtype"), scalar.ValueScalar{Value: scalar.StringValue("f32")})
	outer.Insert(mustId(t, "encoding"), scalar.MapScalar{Map: inner})

	s := scalar.MapScalar{Map: outer}
	out := roundTrip(t, s)

	m, ok := out.(scalar.MapScalar)
	require.True(t, ok)
	enc, ok := m.Map.Get(mustId(t, "encoding"))
	require.True(t, ok)
	encMap, ok := enc.(scalar.MapScalar)
	require.True(t, ok)
	signed, ok := encMap.Map.Get(mustId(t, "signed"))
	require.True(t, ok)
	vs, ok := signed.(scalar.ValueScalar)
	require.True(t, ok)
	assert.Equal(t, scalar.ValueNumberKind, vs.Value.Kind())
	n, _ := vs.Value.Number()
	assert.Equal(t, json.Number("1"), n)
}

// S5 — an OpRef GET by Link-shaped subject decodes to Scalar::Ref(Op(Get)).
func TestOpRefGetDecodesAsRef(t *testing.T) {
	out, err := codec.Decode([]byte(`{"/lib/acme/foo/1.0.0": [null]}`))
	require.NoError(t, err)

	ref, ok := out.(scalar.RefScalar)
	require.True(t, ok)
	call, ok := ref.Ref.(scalar.OpCall)
	require.True(t, ok)
	get, ok := call.Op.(scalar.OpGet)
	require.True(t, ok)
	assert.False(t, get.Target.IsRef())
	assert.Equal(t, id.Link("/lib/acme/foo/1.0.0"), get.Target.Link())
	assert.Equal(t, scalar.Default(), get.Key)
}

// S6 — empty-sequence args with a link-shaped key decode as a plain link
// value, not an OpRef.
func TestEmptySequenceLinkIsValue(t *testing.T) {
	out, err := codec.Decode([]byte(`{"/lib/acme/foo/1.0.0": []}`))
	require.NoError(t, err)

	vs, ok := out.(scalar.ValueScalar)
	require.True(t, ok)
	assert.Equal(t, scalar.ValueLinkKind, vs.Value.Kind())
	link, _ := vs.Value.Link()
	assert.Equal(t, id.Link("/lib/acme/foo/1.0.0"), link)
}

// S7 — While round-trips to the exact labeled-array wire shape.
func TestWhileRoundTrip(t *testing.T) {
	w := scalar.WhileRef{
		Cond:    scalar.ValueScalar{Value: scalar.NumberValue(json.Number("1"))},
		Closure: scalar.ValueScalar{Value: scalar.StringValue("step")},
		State:   scalar.ValueScalar{Value: scalar.NumberValue(json.Number("7"))},
	}
	s := scalar.FromTCRef(w)

	data, err := codec.Encode(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"/state/scalar/ref/while": [1, "step", 7]}`, string(data))

	out, err := codec.Decode(data)
	require.NoError(t, err)
	ref, ok := out.(scalar.RefScalar)
	require.True(t, ok)
	got, ok := ref.Ref.(scalar.WhileRef)
	require.True(t, ok)
	assert.Equal(t, w, got)
}

func TestDecoderToleratesTrailingKeysInOpDefEnvelope(t *testing.T) {
	out, err := codec.Decode([]byte(`{"/state/scalar/op/post": [["a", 1]], "garbage": "ignored"}`))
	require.NoError(t, err)

	op, ok := out.(scalar.OpScalar)
	require.True(t, ok)
	post, ok := op.Op.(scalar.OpDefPost)
	require.True(t, ok)
	require.Len(t, post.Bindings, 1)
	assert.Equal(t, mustId(t, "a"), post.Bindings[0].Name)
}

func TestDuplicateMapKeyRejected(t *testing.T) {
	_, err := codec.Decode([]byte(`{"a": 1, "a": 2}`))
	assert.Error(t, err)
}

func TestCanonicalFormIsStable(t *testing.T) {
	m := scalar.NewMap[scalar.Scalar]()
	m.Insert(mustId(t, "zeta"), scalar.ValueScalar{Value: scalar.NumberValue(json.Number("1"))})
	m.Insert(mustId(t, "alpha"), scalar.ValueScalar{Value: scalar.NumberValue(json.Number("2"))})
	s := scalar.MapScalar{Map: m}

	data1, err := codec.Encode(s)
	require.NoError(t, err)
	out, err := codec.Decode(data1)
	require.NoError(t, err)
	data2, err := codec.Encode(out)
	require.NoError(t, err)

	assert.Equal(t, data1, data2)
	assert.Equal(t, `{"alpha":2,"zeta":1}`, string(data2))
}

func TestIfRejectsLiteralCondition(t *testing.T) {
	_, err := codec.Decode([]byte(`{"/state/scalar/ref/if": [1, "then", "else"]}`))
	assert.Error(t, err)
}

func TestNamedRefRoundTrip(t *testing.T) {
	ref, err := id.ParseIdRef("$widget")
	require.NoError(t, err)
	s := scalar.FromTCRef(scalar.NamedRef{Ref: ref})

	data, err := codec.Encode(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"$widget": []}`, string(data))

	out := roundTrip(t, s)
	rs, ok := out.(scalar.RefScalar)
	require.True(t, ok)
	named, ok := rs.Ref.(scalar.NamedRef)
	require.True(t, ok)
	assert.Equal(t, ref, named.Ref)
}

func TestDecodeStrictRejectsReservedKeyCollision(t *testing.T) {
	_, err := codec.DecodeStrict([]byte(`{"/state/scalar/ref/while": [1,2,3], "other": 1}`))
	assert.Error(t, err)
}

func TestDecodeStrictAcceptsOrdinaryEnvelope(t *testing.T) {
	out, err := codec.DecodeStrict([]byte(`{"/state/scalar/ref/while": [1, "step", 7]}`))
	require.NoError(t, err)
	_, ok := out.(scalar.RefScalar)
	assert.True(t, ok)
}

func TestForEachRoundTrip(t *testing.T) {
	s := scalar.FromTCRef(scalar.ForEachRef{
		Items:    scalar.ValueScalar{Value: scalar.StringValue("xs")},
		Op:       scalar.ValueScalar{Value: scalar.StringValue("double")},
		ItemName: mustId(t, "x"),
	})
	out := roundTrip(t, s)
	rs, ok := out.(scalar.RefScalar)
	require.True(t, ok)
	fe, ok := rs.Ref.(scalar.ForEachRef)
	require.True(t, ok)
	assert.Equal(t, mustId(t, "x"), fe.ItemName)
}
