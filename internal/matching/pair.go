package matching

import (
	"bytes"

	"github.com/google/uuid"
)

// CanonicalPair orders an unordered user pair so both call directions
// produce the same (user_a, user_b) key. Byte order here matches the
// uuid column ordering postgres uses for the matches unique constraint.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}
