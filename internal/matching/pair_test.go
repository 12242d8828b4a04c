package matching

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPairDirectionIndependent(t *testing.T) {
	for i := 0; i < 100; i++ {
		a, b := uuid.New(), uuid.New()

		a1, b1 := CanonicalPair(a, b)
		a2, b2 := CanonicalPair(b, a)

		assert.Equal(t, a1, a2)
		assert.Equal(t, b1, b2)
	}
}

func TestCanonicalPairOrdersSmallerFirst(t *testing.T) {
	small := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	big := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	first, second := CanonicalPair(big, small)
	assert.Equal(t, small, first)
	assert.Equal(t, big, second)
}

func TestCanonicalPairSameUser(t *testing.T) {
	id := uuid.New()
	first, second := CanonicalPair(id, id)
	assert.Equal(t, id, first)
	assert.Equal(t, id, second)
}
