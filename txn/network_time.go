// Package txn defines the transaction identity and capability primitives
// carried across a request boundary: NetworkTime, TxnId, Claim and the
// serializable TxnHeader that bundles them for transport.
package txn

import (
	"strconv"

	"github.com/TinyChain-Inc/tc-ir/id"
)

// NetworkTime is an unsigned count of nanoseconds since the Unix epoch,
// total-ordered by the integer value.
type NetworkTime uint64

// FromNanos constructs a NetworkTime from a raw nanosecond count.
func FromNanos(nanos uint64) NetworkTime { return NetworkTime(nanos) }

// Nanos returns the raw nanosecond count.
func (t NetworkTime) Nanos() uint64 { return uint64(t) }

func (t NetworkTime) String() string { return strconv.FormatUint(uint64(t), 10) }

// ParseNetworkTime parses the decimal string form produced by String.
func ParseNetworkTime(s string) (NetworkTime, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, id.Errorf("invalid NetworkTime %q: %s", s, err)
	}
	return NetworkTime(n), nil
}

// Less reports whether t sorts strictly before other.
func (t NetworkTime) Less(other NetworkTime) bool { return t < other }
