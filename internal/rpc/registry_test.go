package rpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("negative")

type count int64

func (c count) IntoModel() (uint64, error) {
	if c < 0 {
		return 0, errNegative
	}
	return uint64(c), nil
}

type label string

func (l label) IntoModel() (uint64, error) {
	return uint64(len(l)), nil
}

func TestRegistryConvert(t *testing.T) {
	r := NewRegistry(17)
	Register[uint64, count](r, "getcount")

	tt := []struct {
		description string
		method      string
		raw         string
		expected    any
		expectedErr error
	}{
		{description: "converts", method: "getcount", raw: `3`, expected: uint64(3)},
		{description: "conversion error passes through", method: "getcount", raw: `-1`, expectedErr: errNegative},
		{description: "wrong json type", method: "getcount", raw: `"three"`, expectedErr: ErrDecode},
		{description: "unknown method", method: "getother", raw: `3`, expectedErr: ErrUnknownMethod},
	}
	for _, tc := range tt {
		t.Run(tc.description, func(t *testing.T) {
			out, err := r.Convert(tc.method, json.RawMessage(tc.raw))
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestRegistryExtend(t *testing.T) {
	base := NewRegistry(17)
	Register[uint64, count](base, "getcount")

	next := base.Extend(18)
	Register[uint64, label](next, "getcount")
	Register[uint64, label](next, "getlabel")

	assert.Equal(t, 18, next.Version())
	assert.Equal(t, []string{"getcount", "getlabel"}, next.List())
	assert.Equal(t, []string{"getcount"}, base.List())

	out, err := next.Convert("getcount", json.RawMessage(`"abcd"`))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), out)

	out, err = base.Convert("getcount", json.RawMessage(`2`))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), out)
}
