package roles

import (
	"testing"

	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerationOrder(t *testing.T) {
	assert.Equal(t, ID(0), Dt)
	assert.Equal(t, ID(14), Chemistry)
	assert.Equal(t, 15, int(Count))
	assert.Len(t, All(), int(Count))
}

func TestStringRoundTrip(t *testing.T) {
	for _, id := range All() {
		parsed, err := Parse(id.String())
		require.NoError(t, err, id.String())
		assert.Equal(t, id, parsed)
		assert.NotEmpty(t, Description(id))
	}
}

func TestParseUnknown(t *testing.T) {
	id, err := Parse("velocity")
	require.Error(t, err)
	assert.Equal(t, ID(-1), id)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRoleUnknown))
	assert.Equal(t, "velocity", errors.GetErrorDetails(err)["role"])
}

func TestInvalidIDs(t *testing.T) {
	for _, id := range []ID{-1, Count, Count + 3} {
		assert.False(t, id.Valid())
		assert.Equal(t, "unknown", id.String())
		assert.Empty(t, Description(id))
	}
}

func TestNamesMatchEnumeration(t *testing.T) {
	names := Names()
	require.Len(t, names, int(Count))
	assert.Equal(t, "dt", names[Dt])
	assert.Equal(t, "t_b", names[TB])
	assert.Equal(t, "chemistry", names[Chemistry])
}
