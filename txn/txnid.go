package txn

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// TraceLen is the fixed size of a TxnId's opaque trace tag.
const TraceLen = 32

// TxnId uniquely identifies a transaction. Its string form is
// "{timestamp}-{nonce}"; the trace tag is attached separately and is never
// part of the string form. Ordering is lexicographic on
// (timestamp, nonce, trace).
type TxnId struct {
	timestamp NetworkTime
	nonce     uint16
	trace     [TraceLen]byte
}

// FromParts constructs a TxnId from a timestamp and nonce, with a zeroed
// trace tag.
func FromParts(timestamp NetworkTime, nonce uint16) TxnId {
	return TxnId{timestamp: timestamp, nonce: nonce}
}

// WithTrace returns a copy of id with its trace tag set.
func (t TxnId) WithTrace(trace [TraceLen]byte) TxnId {
	t.trace = trace
	return t
}

// Timestamp returns the timestamp component.
func (t TxnId) Timestamp() NetworkTime { return t.timestamp }

// Nonce returns the nonce component, which breaks ties between TxnIds that
// share a timestamp.
func (t TxnId) Nonce() uint16 { return t.nonce }

// Trace returns the opaque trace tag.
func (t TxnId) Trace() [TraceLen]byte { return t.trace }

// String renders the "{timestamp}-{nonce}" wire form. The trace tag is
// intentionally not included.
func (t TxnId) String() string {
	return t.timestamp.String() + "-" + strconv.FormatUint(uint64(t.nonce), 10)
}

// ParseTxnId parses the "{timestamp}-{nonce}" wire form.
func ParseTxnId(s string) (TxnId, error) {
	ts, nonce, found := strings.Cut(s, "-")
	if !found {
		return TxnId{}, id.Errorf("transaction ids must look like '<timestamp>-<nonce>', got %q", s)
	}
	timestamp, err := ParseNetworkTime(ts)
	if err != nil {
		return TxnId{}, id.Errorf("invalid TxnId timestamp in %q: %s", s, err)
	}
	n, err := strconv.ParseUint(nonce, 10, 16)
	if err != nil {
		return TxnId{}, id.Errorf("invalid TxnId nonce in %q: %s", s, err)
	}
	return FromParts(timestamp, uint16(n)), nil
}

// Compare returns -1, 0 or 1 as t sorts before, equal to, or after other,
// comparing timestamp, then nonce, then trace in that order.
func (t TxnId) Compare(other TxnId) int {
	if t.timestamp != other.timestamp {
		if t.timestamp < other.timestamp {
			return -1
		}
		return 1
	}
	if t.nonce != other.nonce {
		if t.nonce < other.nonce {
			return -1
		}
		return 1
	}
	return bytes.Compare(t.trace[:], other.trace[:])
}

// Less reports whether t sorts strictly before other.
func (t TxnId) Less(other TxnId) bool { return t.Compare(other) < 0 }
