package txn

import "github.com/google/uuid"

// NewTrace generates a fresh, globally unique trace tag for a TxnId. Two
// v4 UUIDs are concatenated to fill the 32-byte tag; the tag is opaque and
// carries no ordering meaning beyond what TxnId.Compare already gives it.
func NewTrace() [TraceLen]byte {
	var trace [TraceLen]byte
	a := uuid.New()
	b := uuid.New()
	copy(trace[:16], a[:])
	copy(trace[16:], b[:])
	return trace
}
