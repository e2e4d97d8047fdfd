package v17

import (
	"time"

	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
)

// Types for methods found under the `== Network ==` section of the API docs.

// GetNetworkInfo is the result of `getnetworkinfo`.
type GetNetworkInfo struct {
	// Encoded as major*10000 + minor*100 + patch.
	Version         int64  `json:"version"`
	Subversion      string `json:"subversion"`
	ProtocolVersion int64  `json:"protocolversion"`
	// Hex encoded service bit field.
	LocalServices string `json:"localservices"`
	LocalRelay    bool   `json:"localrelay"`
	// Seconds.
	TimeOffset     int64                   `json:"timeoffset"`
	Connections    int64                   `json:"connections"`
	NetworkActive  bool                    `json:"networkactive"`
	Networks       []GetNetworkInfoNetwork `json:"networks"`
	RelayFee       float64                 `json:"relayfee"`
	IncrementalFee float64                 `json:"incrementalfee"`
	LocalAddresses []GetNetworkInfoAddress `json:"localaddresses"`
	Warnings       string                  `json:"warnings"`
}

// GetNetworkInfoNetwork is one entry of the `networks` field.
type GetNetworkInfoNetwork struct {
	Name                      string `json:"name"`
	Limited                   bool   `json:"limited"`
	Reachable                 bool   `json:"reachable"`
	Proxy                     string `json:"proxy"`
	ProxyRandomizeCredentials bool   `json:"proxy_randomize_credentials"`
}

// GetNetworkInfoAddress is one entry of the `localaddresses` field.
type GetNetworkInfoAddress struct {
	Address string `json:"address"`
	Port    int64  `json:"port"`
	Score   int64  `json:"score"`
}

type GetNetworkInfoField string

func (f GetNetworkInfoField) String() string { return string(f) }

const (
	GetNetworkInfoFieldVersion         GetNetworkInfoField = "version"
	GetNetworkInfoFieldProtocolVersion GetNetworkInfoField = "protocolversion"
	GetNetworkInfoFieldLocalServices   GetNetworkInfoField = "localservices"
	GetNetworkInfoFieldConnections     GetNetworkInfoField = "connections"
	GetNetworkInfoFieldRelayFee        GetNetworkInfoField = "relayfee"
	GetNetworkInfoFieldIncrementalFee  GetNetworkInfoField = "incrementalfee"
	GetNetworkInfoFieldLocalAddresses  GetNetworkInfoField = "localaddresses"
)

type GetNetworkInfoError = convert.FieldError[GetNetworkInfoField]

type GetNetworkInfoAddressField string

func (f GetNetworkInfoAddressField) String() string { return string(f) }

const (
	GetNetworkInfoAddressFieldPort  GetNetworkInfoAddressField = "port"
	GetNetworkInfoAddressFieldScore GetNetworkInfoAddressField = "score"
)

type GetNetworkInfoAddressError = convert.FieldError[GetNetworkInfoAddressField]

func (g GetNetworkInfo) IntoModel() (model.GetNetworkInfo, error) {
	var out model.GetNetworkInfo
	var err error

	if out.Version, err = convert.Uint32(g.Version); err != nil {
		return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldVersion, err)
	}
	if out.ProtocolVersion, err = convert.Uint32(g.ProtocolVersion); err != nil {
		return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldProtocolVersion, err)
	}
	if out.LocalServices, err = convert.HexUint64(g.LocalServices); err != nil {
		return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldLocalServices, err)
	}
	if out.Connections, err = convert.Uint32(g.Connections); err != nil {
		return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldConnections, err)
	}
	if out.RelayFee, err = convert.FeeRate(g.RelayFee); err != nil {
		return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldRelayFee, err)
	}
	if out.IncrementalFee, err = convert.FeeRate(g.IncrementalFee); err != nil {
		return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldIncrementalFee, err)
	}
	out.LocalAddresses = make([]model.GetNetworkInfoAddress, 0, len(g.LocalAddresses))
	for i, a := range g.LocalAddresses {
		m, err := a.IntoModel()
		if err != nil {
			return model.GetNetworkInfo{}, convert.Field(GetNetworkInfoFieldLocalAddresses, convert.AtIndex(i, err))
		}
		out.LocalAddresses = append(out.LocalAddresses, m)
	}

	out.Subversion = g.Subversion
	out.LocalRelay = g.LocalRelay
	out.TimeOffset = time.Duration(g.TimeOffset) * time.Second
	out.NetworkActive = g.NetworkActive
	out.Networks = make([]model.GetNetworkInfoNetwork, 0, len(g.Networks))
	for _, n := range g.Networks {
		out.Networks = append(out.Networks, model.GetNetworkInfoNetwork(n))
	}
	out.Warnings = g.Warnings
	return out, nil
}

func (a GetNetworkInfoAddress) IntoModel() (model.GetNetworkInfoAddress, error) {
	port, err := convert.Uint16(a.Port)
	if err != nil {
		return model.GetNetworkInfoAddress{}, convert.Field(GetNetworkInfoAddressFieldPort, err)
	}
	score, err := convert.Uint32(a.Score)
	if err != nil {
		return model.GetNetworkInfoAddress{}, convert.Field(GetNetworkInfoAddressFieldScore, err)
	}
	return model.GetNetworkInfoAddress{Address: a.Address, Port: port, Score: score}, nil
}
