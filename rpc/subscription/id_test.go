package subscription

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func TestIDRoundTrip(t *testing.T) {
	var id util.Uint256
	for i := range id {
		id[i] = byte(i)
	}

	s := FormatID(id)
	got, err := ParseID(s)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestParseIDErrors(t *testing.T) {
	_, err := ParseID("not-base58-0OIl")
	require.Error(t, err)

	_, err = ParseID("2g") // valid base58, wrong length
	require.Error(t, err)
}
