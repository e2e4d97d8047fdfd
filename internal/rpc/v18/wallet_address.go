package v18

import (
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
	"github.com/LeJamon/gocorepc/internal/rpc/v17"
)

type (
	GetAddressInfoEmbedded = v17.GetAddressInfoEmbedded
	GetAddressInfoLabel    = v17.GetAddressInfoLabel
)

// GetAddressInfo is the result of `getaddressinfo`.
type GetAddressInfo struct {
	Address      string `json:"address"`
	ScriptPubKey string `json:"scriptPubKey"`
	IsMine       bool   `json:"ismine"`
	Solvable     bool   `json:"solvable"`
	// Only when solvable.
	Descriptor  *string `json:"desc,omitempty"`
	IsWatchOnly bool    `json:"iswatchonly"`
	IsScript    bool    `json:"isscript"`
	IsChange    bool    `json:"ischange"`
	IsWitness   bool    `json:"iswitness"`
	// Only for witness addresses.
	WitnessVersion *int64  `json:"witness_version,omitempty"`
	WitnessProgram *string `json:"witness_program,omitempty"`
	Script         *string `json:"script,omitempty"`
	// The redeem script for a p2sh address.
	Hex                 *string                 `json:"hex,omitempty"`
	PubKeys             []string                `json:"pubkeys,omitempty"`
	SigsRequired        *int64                  `json:"sigsrequired,omitempty"`
	PubKey              *string                 `json:"pubkey,omitempty"`
	Embedded            *GetAddressInfoEmbedded `json:"embedded,omitempty"`
	IsCompressed        *bool                   `json:"iscompressed,omitempty"`
	Label               string                  `json:"label"`
	Timestamp           *int64                  `json:"timestamp,omitempty"`
	HDKeyPath           *string                 `json:"hdkeypath,omitempty"`
	HDSeedID            *string                 `json:"hdseedid,omitempty"`
	HDMasterFingerprint *string                 `json:"hdmasterfingerprint,omitempty"`
	Labels              []GetAddressInfoLabel   `json:"labels"`
}

type GetAddressInfoField string

func (f GetAddressInfoField) String() string { return string(f) }

const (
	GetAddressInfoFieldAddress             GetAddressInfoField = "address"
	GetAddressInfoFieldScriptPubKey        GetAddressInfoField = "scriptPubKey"
	GetAddressInfoFieldWitnessProgram      GetAddressInfoField = "witness_program"
	GetAddressInfoFieldScript              GetAddressInfoField = "script"
	GetAddressInfoFieldHex                 GetAddressInfoField = "hex"
	GetAddressInfoFieldPubKeys             GetAddressInfoField = "pubkeys"
	GetAddressInfoFieldSigsRequired        GetAddressInfoField = "sigsrequired"
	GetAddressInfoFieldPubKey              GetAddressInfoField = "pubkey"
	GetAddressInfoFieldEmbedded            GetAddressInfoField = "embedded"
	GetAddressInfoFieldHDKeyPath           GetAddressInfoField = "hdkeypath"
	GetAddressInfoFieldHDSeedID            GetAddressInfoField = "hdseedid"
	GetAddressInfoFieldHDMasterFingerprint GetAddressInfoField = "hdmasterfingerprint"
	GetAddressInfoFieldLabels              GetAddressInfoField = "labels"
)

type GetAddressInfoError = convert.FieldError[GetAddressInfoField]

func (g GetAddressInfo) IntoModel() (model.GetAddressInfo, error) {
	var out model.GetAddressInfo
	var err error

	if out.Address, err = convert.CheckedAddress(g.Address); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldAddress, err)
	}
	if out.ScriptPubKey, err = convert.Script(g.ScriptPubKey); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldScriptPubKey, err)
	}
	if out.WitnessProgram, err = convert.OptionalWitnessProgram(g.WitnessVersion, g.WitnessProgram); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldWitnessProgram, err)
	}
	if out.ScriptType, err = convert.OptionalEnum(g.Script, v17.ScriptTypes); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldScript, err)
	}
	if out.RedeemScript, err = convert.OptionalScript(g.Hex); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldHex, err)
	}
	if out.PubKeys, err = convert.PublicKeys(g.PubKeys); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldPubKeys, err)
	}
	if out.SigsRequired, err = convert.OptionalUint32(g.SigsRequired); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldSigsRequired, err)
	}
	if out.PubKey, err = convert.OptionalPublicKey(g.PubKey); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldPubKey, err)
	}
	if err = convert.KeyHashProgram(out.WitnessProgram, out.PubKey); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldPubKey, err)
	}
	if g.Embedded != nil {
		embedded, err := g.Embedded.IntoModel()
		if err != nil {
			return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldEmbedded, err)
		}
		out.Embedded = &embedded
	}
	if out.HDKeyPath, err = convert.OptionalDerivationPath(g.HDKeyPath); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldHDKeyPath, err)
	}
	if out.HDSeedID, err = convert.OptionalHash160(g.HDSeedID); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldHDSeedID, err)
	}
	if out.HDMasterFingerprint, err = convert.OptionalFingerprint(g.HDMasterFingerprint); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldHDMasterFingerprint, err)
	}
	if out.Labels, err = v17.AddressLabels(g.Labels); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldLabels, err)
	}

	out.IsMine = g.IsMine
	out.Solvable = &g.Solvable
	out.Descriptor = g.Descriptor
	out.IsWatchOnly = g.IsWatchOnly
	out.IsScript = g.IsScript
	out.IsChange = &g.IsChange
	out.IsWitness = g.IsWitness
	out.IsCompressed = g.IsCompressed
	out.Label = g.Label
	out.Timestamp = convert.OptionalUnixTime(g.Timestamp)
	return out, nil
}
