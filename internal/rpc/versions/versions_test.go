package versions

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc"
)

func TestForVersion(t *testing.T) {
	for _, v := range Supported() {
		r, err := ForVersion(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Version())
	}

	_, err := ForVersion(16)
	assert.ErrorIs(t, err, rpc.ErrUnsupportedVersion)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, err := ForVersion(17)
	require.NoError(t, err)
	b, err := ForVersion(19)
	require.NoError(t, err)
	assert.NotContains(t, a.List(), "getbalances")
	assert.Contains(t, b.List(), "getbalances")
}

func TestAllVersionsConvertToSameModel(t *testing.T) {
	raw := json.RawMessage(`[{"txid":"5cd4ac3d6f3e5d2c1b0a99887766554433221100ffeeddccbbaa998877665544","vout":1}]`)
	var models []any
	for _, v := range Supported() {
		r, err := ForVersion(v)
		require.NoError(t, err)
		m, err := r.Convert("listlockunspent", raw)
		require.NoError(t, err, "v%d", v)
		models = append(models, m)
	}
	for _, m := range models[1:] {
		assert.Equal(t, models[0], m)
	}
	assert.IsType(t, model.ListLockUnspent{}, models[0])
}
