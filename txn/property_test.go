package txn_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/txn"
)

func genLink() gopter.Gen {
	return gen.OneConstOf(
		"/lib/acme/foo/1.0.0",
		"/lib/service",
		"/lib/examples/hello",
	).Map(func(s string) id.Link { return id.Link(s) })
}

func genMask() gopter.Gen {
	return gen.OneConstOf(
		uint16(0),
		txn.OwnerRead,
		txn.OwnerRead|txn.OwnerWrite,
		txn.OwnerRead|txn.OwnerWrite|txn.OwnerExecute,
		txn.GroupRead|txn.OtherRead,
		txn.AllPermissions,
	)
}

func genClaim() gopter.Gen {
	return gopter.CombineGens(genLink(), genMask()).Map(func(values []interface{}) txn.Claim {
		return txn.NewClaim(values[0].(id.Link), values[1].(uint16))
	})
}

// TestPropertyClaimAllowsIsMonotone is Property 6: Claim{link, mask}.Allows(link,
// need) is true iff (mask & need) == need for a matching link, and false for
// any other link.
func TestPropertyClaimAllowsIsMonotone(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Allows matches the mask-subset relation on a matching link", prop.ForAll(
		func(c txn.Claim, need uint16) bool {
			want := c.Mask&need == need
			return c.Allows(c.Link, need) == want
		},
		genClaim(),
		genMask(),
	))

	properties.Property("Allows is false for any non-matching link", prop.ForAll(
		func(c txn.Claim, need uint16, otherLink id.Link) bool {
			if otherLink == c.Link {
				return true
			}
			return !c.Allows(otherLink, need)
		},
		genClaim(),
		genMask(),
		genLink(),
	))

	properties.TestingRun(t)
}

func genTxnId() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(uint64(0), uint64(1), uint64(1_700_000_000_000_000_000), uint64(18_446_744_073_709_551_615)),
		gen.OneConstOf(uint16(0), uint16(1), uint16(7), uint16(65535)),
	).Map(func(values []interface{}) txn.TxnId {
		return txn.FromParts(txn.FromNanos(values[0].(uint64)), values[1].(uint16))
	})
}

func genHeader() gopter.Gen {
	return gopter.CombineGens(genTxnId(), genClaim()).Map(func(values []interface{}) txn.Header {
		txnID := values[0].(txn.TxnId)
		claim := values[1].(txn.Claim)
		return txn.NewHeader(txnID, txnID.Timestamp(), claim)
	})
}

// TestPropertyHeaderJSONRoundTrip is Property 1, restated for TxnHeader: for
// every Header h, unmarshaling h's MarshalJSON form recovers an equivalent
// Header, and re-marshaling it reproduces the same bytes.
func TestPropertyHeaderJSONRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("UnmarshalJSON(MarshalJSON(h)) round-trips to the same bytes", prop.ForAll(
		func(h txn.Header) bool {
			data, err := h.MarshalJSON()
			if err != nil {
				return false
			}
			var out txn.Header
			if err := out.UnmarshalJSON(data); err != nil {
				return false
			}
			reencoded, err := out.MarshalJSON()
			if err != nil {
				return false
			}
			return bytes.Equal(data, reencoded)
		},
		genHeader(),
	))

	properties.TestingRun(t)
}

// TestPropertyHeaderCodecsAgree is Open Question #2's lock-step requirement:
// EncodeTo/DecodeFrom must produce and accept exactly the bytes
// MarshalJSON/UnmarshalJSON do.
func TestPropertyHeaderCodecsAgree(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("EncodeTo produces the same bytes as MarshalJSON", prop.ForAll(
		func(h txn.Header) bool {
			want, err := h.MarshalJSON()
			if err != nil {
				return false
			}
			var buf bytes.Buffer
			if err := h.EncodeTo(&buf); err != nil {
				return false
			}
			return bytes.Equal(want, buf.Bytes())
		},
		genHeader(),
	))

	properties.Property("DecodeFrom(EncodeTo(h)) recovers an equivalent Header", prop.ForAll(
		func(h txn.Header) bool {
			var buf bytes.Buffer
			if err := h.EncodeTo(&buf); err != nil {
				return false
			}
			out, err := txn.DecodeFrom(&buf)
			if err != nil {
				return false
			}
			return out.Id() == h.Id() && out.Timestamp() == h.Timestamp() && out.Claim() == h.Claim()
		},
		genHeader(),
	))

	properties.TestingRun(t)
}
