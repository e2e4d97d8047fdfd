package rpc_types

import (
	"errors"
	"fmt"
)

// Bitcoin Core RPC error codes, as defined in src/rpc/protocol.h.

// RpcError is an error object returned by the server in place of a result.
type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Standard JSON-RPC 2.0 errors, reused by the server.
const (
	RpcINVALID_REQUEST  = -32600
	RpcMETHOD_NOT_FOUND = -32601
	RpcINVALID_PARAMS   = -32602
	RpcINTERNAL_ERROR   = -32603
	RpcPARSE_ERROR      = -32700
)

// General application defined errors
const (
	RpcMISC_ERROR                  = -1
	RpcTYPE_ERROR                  = -3
	RpcINVALID_ADDRESS_OR_KEY      = -5
	RpcOUT_OF_MEMORY               = -7
	RpcINVALID_PARAMETER           = -8
	RpcDATABASE_ERROR              = -20
	RpcDESERIALIZATION_ERROR       = -22
	RpcVERIFY_ERROR                = -25
	RpcVERIFY_REJECTED             = -26
	RpcVERIFY_ALREADY_IN_CHAIN     = -27
	RpcIN_WARMUP                   = -28
	RpcMETHOD_DEPRECATED           = -32
	RpcCLIENT_NOT_CONNECTED        = -9
	RpcCLIENT_IN_INITIAL_DOWNLOAD  = -10
	RpcCLIENT_NODE_ALREADY_ADDED   = -23
	RpcCLIENT_NODE_NOT_ADDED       = -24
	RpcCLIENT_NODE_NOT_CONNECTED   = -29
	RpcCLIENT_INVALID_IP_OR_SUBNET = -30
	RpcCLIENT_P2P_DISABLED         = -31
)

// Wallet errors
const (
	RpcWALLET_ERROR                = -4
	RpcWALLET_INSUFFICIENT_FUNDS   = -6
	RpcWALLET_INVALID_LABEL_NAME   = -11
	RpcWALLET_KEYPOOL_RAN_OUT      = -12
	RpcWALLET_UNLOCK_NEEDED        = -13
	RpcWALLET_PASSPHRASE_INCORRECT = -14
	RpcWALLET_WRONG_ENC_STATE      = -15
	RpcWALLET_ENCRYPTION_FAILED    = -16
	RpcWALLET_ALREADY_UNLOCKED     = -17
	RpcWALLET_NOT_FOUND            = -18
	RpcWALLET_NOT_SPECIFIED        = -19
)

func NewRpcError(code int, message string) *RpcError {
	return &RpcError{
		Code:    code,
		Message: message,
	}
}

// IsCode reports whether err is, or wraps, an RpcError with the given code.
func IsCode(err error, code int) bool {
	var rpcErr *RpcError
	if errors.As(err, &rpcErr) {
		return rpcErr.Code == code
	}
	return false
}

// IsMethodNotFound reports whether the server does not know the method, which is
// how an older node answers a method introduced in a later release.
func IsMethodNotFound(err error) bool {
	return IsCode(err, RpcMETHOD_NOT_FOUND)
}

// IsWalletNotFound reports whether the addressed wallet is not loaded.
func IsWalletNotFound(err error) bool {
	return IsCode(err, RpcWALLET_NOT_FOUND)
}
