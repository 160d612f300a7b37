package scalar_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/scalar"
)

func mustId(t *testing.T, s string) id.Id {
	t.Helper()
	v, err := id.ParseId(s)
	require.NoError(t, err)
	return v
}

func TestWalkPreOrderVisitsMapInAscendingKeyOrder(t *testing.T) {
	m := scalar.NewMap[scalar.Scalar]()
	m.Insert(mustId(t, "zeta"), scalar.ValueScalar{Value: scalar.NumberValue(json.Number("1"))})
	m.Insert(mustId(t, "alpha"), scalar.ValueScalar{Value: scalar.NumberValue(json.Number("2"))})
	root := scalar.MapScalar{Map: m}

	walk := scalar.Walk(root)
	got := walk.Collect()

	require.Len(t, got, 3)
	assert.Equal(t, root, got[0])
	second := got[1].(scalar.ValueScalar)
	n, _ := second.Value.Number()
	assert.Equal(t, json.Number("2"), n) // alpha
	third := got[2].(scalar.ValueScalar)
	n, _ = third.Value.Number()
	assert.Equal(t, json.Number("1"), n) // zeta
}

func TestWalkTupleVisitsInDeclarationOrder(t *testing.T) {
	root := scalar.TupleScalar{Tuple: []scalar.Scalar{
		scalar.ValueScalar{Value: scalar.StringValue("first")},
		scalar.ValueScalar{Value: scalar.StringValue("second")},
	}}

	got := scalar.Walk(root).Collect()
	require.Len(t, got, 3)
	first := got[1].(scalar.ValueScalar)
	s, _ := first.Value.Str()
	assert.Equal(t, "first", s)
	second := got[2].(scalar.ValueScalar)
	s, _ = second.Value.Str()
	assert.Equal(t, "second", s)
}

func TestWalkTCRefFiltersToRefNodes(t *testing.T) {
	ref, err := id.ParseIdRef("$x")
	require.NoError(t, err)
	named := scalar.FromTCRef(scalar.NamedRef{Ref: ref})

	root := scalar.TupleScalar{Tuple: []scalar.Scalar{
		scalar.ValueScalar{Value: scalar.NumberValue(json.Number("1"))},
		named,
	}}

	refs := scalar.WalkTCRef(root)
	require.Len(t, refs, 1)
	nr, ok := refs[0].(scalar.NamedRef)
	require.True(t, ok)
	assert.Equal(t, ref, nr.Ref)
}

func TestWalkOpDefScalarsChainsBindings(t *testing.T) {
	def := scalar.OpDefPost{Bindings: []scalar.Binding{
		{Name: mustId(t, "a"), Value: scalar.ValueScalar{Value: scalar.NumberValue(json.Number("1"))}},
		{Name: mustId(t, "b"), Value: scalar.TupleScalar{Tuple: []scalar.Scalar{
			scalar.ValueScalar{Value: scalar.NumberValue(json.Number("2"))},
		}}},
	}}

	got := scalar.WalkOpDefScalars(def)
	// binding "a" contributes 1 node, binding "b" contributes its tuple plus 1 element.
	assert.Len(t, got, 3)
}

func TestMapRequireAndOptional(t *testing.T) {
	m := scalar.NewMap[scalar.Scalar]()
	m.Insert(mustId(t, "name"), scalar.ValueScalar{Value: scalar.StringValue("acme")})

	v, err := m.Require("name")
	require.NoError(t, err)
	vs := v.(scalar.ValueScalar)
	s, _ := vs.Value.Str()
	assert.Equal(t, "acme", s)

	_, err = m.Require("missing")
	require.Error(t, err)

	_, ok, err := m.Optional("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMapExpectEmptyReportsResidualKeys(t *testing.T) {
	m := scalar.NewMap[scalar.Scalar]()
	require.NoError(t, m.ExpectEmpty())

	m.Insert(mustId(t, "extra"), scalar.Default())
	err := m.ExpectEmpty()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "extra")
}

func TestValueEqual(t *testing.T) {
	assert.True(t, scalar.NumberValue(json.Number("1")).Equal(scalar.BoolValue(true)))
	assert.False(t, scalar.NoneValue().Equal(scalar.NumberValue(json.Number("0"))))
	assert.True(t, scalar.StringValue("x").Equal(scalar.StringValue("x")))
}
