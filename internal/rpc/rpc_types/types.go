package rpc_types

import (
	"encoding/json"
)

// JsonRpcVersion is the protocol version Bitcoin Core speaks on its HTTP port.
const JsonRpcVersion = "1.0"

// JSON-RPC 1.0 Request
type JsonRpcRequest struct {
	JsonRpc string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// NewRequest builds a request. Nil params are sent as an empty array, which is
// what the server expects for methods without arguments.
func NewRequest(id uint64, method string, params []any) *JsonRpcRequest {
	if params == nil {
		params = []any{}
	}
	return &JsonRpcRequest{
		JsonRpc: JsonRpcVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// JSON-RPC 1.0 Response. Exactly one of Result and Error is meaningful; the other
// is JSON null.
type JsonRpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RpcError       `json:"error"`
	ID     uint64          `json:"id"`
}

// HasResult reports whether the server sent a non-null result.
func (r *JsonRpcResponse) HasResult() bool {
	return len(r.Result) > 0 && string(r.Result) != "null"
}
