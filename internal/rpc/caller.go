// Package rpc carries Bitcoin Core JSON-RPC calls and maps each method of a server
// version to the conversion of its reply.
package rpc

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized            = errors.New("rpc: unauthorized")
	ErrTransport               = errors.New("rpc: transport failure")
	ErrDecode                  = errors.New("rpc: cannot decode reply")
	ErrUnknownMethod           = errors.New("rpc: method not supported by this server version")
	ErrUnsupportedVersion      = errors.New("rpc: unsupported server version")
	ErrUnexpectedServerVersion = errors.New("rpc: unexpected server version")
)

// Caller performs one JSON-RPC call and decodes the result into result.
//
//go:generate mockgen -destination mock/caller.go -package mock . Caller
type Caller interface {
	Call(ctx context.Context, method string, params []any, result any) error
}

// Invoke calls method on c and returns the decoded result.
func Invoke[T any](ctx context.Context, c Caller, method string, params ...any) (T, error) {
	var result T
	if err := c.Call(ctx, method, params, &result); err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
