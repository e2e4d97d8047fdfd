// Package versions picks the method registry of a Bitcoin Core release series.
package versions

import (
	"fmt"

	"github.com/LeJamon/gocorepc/internal/rpc"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
	"github.com/LeJamon/gocorepc/internal/rpc/v18"
	"github.com/LeJamon/gocorepc/internal/rpc/v19"
)

var registries = map[int]func() *rpc.Registry{
	v17.Version: v17.NewRegistry,
	v18.Version: v18.NewRegistry,
	v19.Version: v19.NewRegistry,
}

// Supported returns the release series with a registry, oldest first.
func Supported() []int {
	return []int{v17.Version, v18.Version, v19.Version}
}

// ForVersion returns a fresh registry for the server release series v, for
// example 18 for v0.18.1.
func ForVersion(v int) (*rpc.Registry, error) {
	build, ok := registries[v]
	if !ok {
		return nil, fmt.Errorf("%w: v%d (supported: %v)", rpc.ErrUnsupportedVersion, v, Supported())
	}
	return build(), nil
}
