package txn

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// Header is the serializable per-request context carried across a process
// or sandbox boundary: the transaction's id, timestamp, and claim.
//
// Header carries two codecs that are kept deliberately in lock-step and
// must agree bit-for-bit at the JSON level (see DESIGN.md, Open Question
// #2): MarshalJSON/UnmarshalJSON decode via Go's tag-driven encoding/json
// (the "text-oriented" path), while EncodeTo/DecodeFrom walk the JSON token
// stream by hand (the "binary-oriented"/streaming path used when a header
// crosses a WASM sandbox boundary one token at a time). Any divergence
// between the two is a bug.
type Header struct {
	id        TxnId
	timestamp NetworkTime
	claim     Claim
}

// NewHeader constructs a Header.
func NewHeader(txnID TxnId, timestamp NetworkTime, claim Claim) Header {
	return Header{id: txnID, timestamp: timestamp, claim: claim}
}

// FromTransaction snapshots txn into a serializable Header.
func FromTransaction(t Transaction) Header {
	return NewHeader(t.Id(), t.Timestamp(), *t.Claim())
}

func (h Header) Id() TxnId             { return h.id }
func (h Header) Timestamp() NetworkTime { return h.timestamp }
func (h Header) Claim() Claim          { return h.claim }

// MarshalJSON implements the text-oriented codec: an object with keys id,
// timestamp and claim, in that order.
func (h Header) MarshalJSON() ([]byte, error) {
	type alias struct {
		Id        string `json:"id"`
		Timestamp uint64 `json:"timestamp"`
		Claim     [2]any `json:"claim"`
	}
	return json.Marshal(alias{
		Id:        h.id.String(),
		Timestamp: h.timestamp.Nanos(),
		Claim:     [2]any{string(h.claim.Link), uint32(h.claim.Mask)},
	})
}

// UnmarshalJSON implements the text-oriented codec's inverse.
func (h *Header) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	idRaw, ok := obj["id"]
	if !ok {
		return id.Errorf("TxnHeader missing 'id' field")
	}
	var idStr string
	if err := json.Unmarshal(idRaw, &idStr); err != nil {
		return id.Errorf("decode TxnHeader.id: %s", err)
	}
	txnID, err := ParseTxnId(idStr)
	if err != nil {
		return err
	}

	tsRaw, ok := obj["timestamp"]
	if !ok {
		return id.Errorf("TxnHeader missing 'timestamp' field")
	}
	var nanos uint64
	if err := json.Unmarshal(tsRaw, &nanos); err != nil {
		return id.Errorf("decode TxnHeader.timestamp: %s", err)
	}

	claimRaw, ok := obj["claim"]
	if !ok {
		return id.Errorf("TxnHeader missing 'claim' field")
	}
	claim, err := decodeClaimTuple(claimRaw)
	if err != nil {
		return err
	}

	h.id = txnID
	h.timestamp = FromNanos(nanos)
	h.claim = claim
	return nil
}

func decodeClaimTuple(raw json.RawMessage) (Claim, error) {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(raw, &tuple); err != nil {
		return Claim{}, id.Errorf("decode claim tuple: %s", err)
	}
	var linkStr string
	if err := json.Unmarshal(tuple[0], &linkStr); err != nil {
		return Claim{}, id.Errorf("decode claim link: %s", err)
	}
	link, err := id.ParseLink(linkStr)
	if err != nil {
		return Claim{}, err
	}
	var mask uint32
	if err := json.Unmarshal(tuple[1], &mask); err != nil {
		return Claim{}, id.Errorf("decode claim mask: %s", err)
	}
	return NewClaim(link, uint16(mask)), nil
}

// EncodeTo writes the streaming/"binary-oriented" form of h to w, one
// token at a time, producing JSON bytes identical to MarshalJSON.
func (h Header) EncodeTo(w io.Writer) error {
	encode := func(v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if _, err := io.WriteString(w, `{"id":`); err != nil {
		return err
	}
	if err := encode(h.id.String()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `,"timestamp":`); err != nil {
		return err
	}
	if err := encode(h.timestamp.Nanos()); err != nil {
		return err
	}
	if _, err := io.WriteString(w, `,"claim":`); err != nil {
		return err
	}
	if err := encode([2]any{string(h.claim.Link), uint32(h.claim.Mask)}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}")
	return err
}

// DecodeFrom reads the streaming/"binary-oriented" form of a Header from r
// by walking the JSON token stream by hand rather than unmarshaling into an
// intermediate struct.
func DecodeFrom(r io.Reader) (Header, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return Header{}, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return Header{}, id.Errorf("expected a TxnHeader object")
	}

	var (
		txnID     TxnId
		haveID    bool
		timestamp NetworkTime
		haveTS    bool
		claim     Claim
		haveClaim bool
	)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Header{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Header{}, id.Errorf("expected a TxnHeader field name")
		}

		switch key {
		case "id":
			var s string
			if err := dec.Decode(&s); err != nil {
				return Header{}, fmt.Errorf("decode TxnHeader.id: %w", err)
			}
			txnID, err = ParseTxnId(s)
			if err != nil {
				return Header{}, err
			}
			haveID = true
		case "timestamp":
			var nanos uint64
			if err := dec.Decode(&nanos); err != nil {
				return Header{}, fmt.Errorf("decode TxnHeader.timestamp: %w", err)
			}
			timestamp = FromNanos(nanos)
			haveTS = true
		case "claim":
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return Header{}, fmt.Errorf("decode TxnHeader.claim: %w", err)
			}
			claim, err = decodeClaimTuple(raw)
			if err != nil {
				return Header{}, err
			}
			haveClaim = true
		default:
			var ignored json.RawMessage
			if err := dec.Decode(&ignored); err != nil {
				return Header{}, err
			}
		}
	}

	if _, err := dec.Token(); err != nil { // consume closing '}'
		return Header{}, err
	}

	if !haveID {
		return Header{}, id.Errorf("TxnHeader missing 'id' field")
	}
	if !haveTS {
		return Header{}, id.Errorf("TxnHeader missing 'timestamp' field")
	}
	if !haveClaim {
		return Header{}, id.Errorf("TxnHeader missing 'claim' field")
	}

	return NewHeader(txnID, timestamp, claim), nil
}
