package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/stretchr/testify/require"
)

func TestHash160(t *testing.T) {
	tt := []struct {
		description string
		input       string
	}{
		{
			description: "generator point compressed",
			input:       "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		},
		{
			description: "empty input",
			input:       "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			data, err := hex.DecodeString(tc.input)
			require.NoError(t, err)

			got := Hash160(data)
			require.Equal(t, btcutil.Hash160(data), got[:])
		})
	}
}

func TestHash160KnownVector(t *testing.T) {
	// Hash160 of the generator point, the P2WPKH program of bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4.
	pub, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)

	got := Hash160(pub)
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(got[:]))
}
