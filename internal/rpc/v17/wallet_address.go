package v17

import (
	"github.com/LeJamon/gocorepc/internal/convert"
	"github.com/LeJamon/gocorepc/internal/model"
)

// GetAddressInfo is the result of `getaddressinfo`.
type GetAddressInfo struct {
	Address      string `json:"address"`
	ScriptPubKey string `json:"scriptPubKey"`
	IsMine       bool   `json:"ismine"`
	IsWatchOnly  bool   `json:"iswatchonly"`
	IsScript     bool   `json:"isscript"`
	IsWitness    bool   `json:"iswitness"`
	// Only for witness addresses.
	WitnessVersion *int64  `json:"witness_version,omitempty"`
	WitnessProgram *string `json:"witness_program,omitempty"`
	// Only if isscript is true and the redeem script is known.
	Script *string `json:"script,omitempty"`
	// The redeem script for a p2sh address.
	Hex          *string                 `json:"hex,omitempty"`
	PubKeys      []string                `json:"pubkeys,omitempty"`
	SigsRequired *int64                  `json:"sigsrequired,omitempty"`
	PubKey       *string                 `json:"pubkey,omitempty"`
	Embedded     *GetAddressInfoEmbedded `json:"embedded,omitempty"`
	IsCompressed *bool                   `json:"iscompressed,omitempty"`
	Label        *string                 `json:"label,omitempty"`
	// DEPRECATED. Alias of label.
	Account   *string `json:"account,omitempty"`
	Timestamp *int64  `json:"timestamp,omitempty"`
	HDKeyPath *string `json:"hdkeypath,omitempty"`
	HDSeedID  *string `json:"hdseedid,omitempty"`
	// DEPRECATED. Alias of hdseedid, removed in v0.18.
	HDMasterKeyID *string               `json:"hdmasterkeyid,omitempty"`
	Labels        []GetAddressInfoLabel `json:"labels"`
}

type GetAddressInfoField string

func (f GetAddressInfoField) String() string { return string(f) }

const (
	GetAddressInfoFieldAddress        GetAddressInfoField = "address"
	GetAddressInfoFieldScriptPubKey   GetAddressInfoField = "scriptPubKey"
	GetAddressInfoFieldWitnessProgram GetAddressInfoField = "witness_program"
	GetAddressInfoFieldScript         GetAddressInfoField = "script"
	GetAddressInfoFieldHex            GetAddressInfoField = "hex"
	GetAddressInfoFieldPubKeys        GetAddressInfoField = "pubkeys"
	GetAddressInfoFieldSigsRequired   GetAddressInfoField = "sigsrequired"
	GetAddressInfoFieldPubKey         GetAddressInfoField = "pubkey"
	GetAddressInfoFieldEmbedded       GetAddressInfoField = "embedded"
	GetAddressInfoFieldHDKeyPath      GetAddressInfoField = "hdkeypath"
	GetAddressInfoFieldHDSeedID       GetAddressInfoField = "hdseedid"
	GetAddressInfoFieldHDMasterKeyID  GetAddressInfoField = "hdmasterkeyid"
	GetAddressInfoFieldLabels         GetAddressInfoField = "labels"
)

type GetAddressInfoError = convert.FieldError[GetAddressInfoField]

// IntoModel converts the embedded address only after every field of the outer
// record before it has converted.
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
	if out.ScriptType, err = convert.OptionalEnum(g.Script, ScriptTypes); err != nil {
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
	if g.HDSeedID != nil {
		if out.HDSeedID, err = convert.OptionalHash160(g.HDSeedID); err != nil {
			return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldHDSeedID, err)
		}
	} else if out.HDSeedID, err = convert.OptionalHash160(g.HDMasterKeyID); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldHDMasterKeyID, err)
	}
	if out.Labels, err = AddressLabels(g.Labels); err != nil {
		return model.GetAddressInfo{}, convert.Field(GetAddressInfoFieldLabels, err)
	}

	out.IsMine = g.IsMine
	out.IsWatchOnly = g.IsWatchOnly
	out.IsScript = g.IsScript
	out.IsWitness = g.IsWitness
	out.IsCompressed = g.IsCompressed
	if label := labelOrAccount(g.Label, g.Account); label != nil {
		out.Label = *label
	}
	out.Timestamp = convert.OptionalUnixTime(g.Timestamp)
	return out, nil
}

// GetAddressInfoEmbedded is the `embedded` field of GetAddressInfo. It carries
// every field of the outer record except wallet metadata and wallet relation.
type GetAddressInfoEmbedded struct {
	Address        string                `json:"address"`
	ScriptPubKey   string                `json:"scriptPubKey"`
	IsScript       bool                  `json:"isscript"`
	IsWitness      bool                  `json:"iswitness"`
	WitnessVersion *int64                `json:"witness_version,omitempty"`
	WitnessProgram *string               `json:"witness_program,omitempty"`
	Script         *string               `json:"script,omitempty"`
	Hex            *string               `json:"hex,omitempty"`
	PubKeys        []string              `json:"pubkeys,omitempty"`
	SigsRequired   *int64                `json:"sigsrequired,omitempty"`
	PubKey         *string               `json:"pubkey,omitempty"`
	IsCompressed   *bool                 `json:"iscompressed,omitempty"`
	Label          *string               `json:"label,omitempty"`
	Labels         []GetAddressInfoLabel `json:"labels,omitempty"`
}

type GetAddressInfoEmbeddedField string

func (f GetAddressInfoEmbeddedField) String() string { return string(f) }

const (
	GetAddressInfoEmbeddedFieldAddress        GetAddressInfoEmbeddedField = "address"
	GetAddressInfoEmbeddedFieldScriptPubKey   GetAddressInfoEmbeddedField = "scriptPubKey"
	GetAddressInfoEmbeddedFieldWitnessProgram GetAddressInfoEmbeddedField = "witness_program"
	GetAddressInfoEmbeddedFieldScript         GetAddressInfoEmbeddedField = "script"
	GetAddressInfoEmbeddedFieldHex            GetAddressInfoEmbeddedField = "hex"
	GetAddressInfoEmbeddedFieldPubKeys        GetAddressInfoEmbeddedField = "pubkeys"
	GetAddressInfoEmbeddedFieldSigsRequired   GetAddressInfoEmbeddedField = "sigsrequired"
	GetAddressInfoEmbeddedFieldPubKey         GetAddressInfoEmbeddedField = "pubkey"
	GetAddressInfoEmbeddedFieldLabels         GetAddressInfoEmbeddedField = "labels"
)

type GetAddressInfoEmbeddedError = convert.FieldError[GetAddressInfoEmbeddedField]

func (g GetAddressInfoEmbedded) IntoModel() (model.GetAddressInfoEmbedded, error) {
	var out model.GetAddressInfoEmbedded
	var err error

	if out.Address, err = convert.CheckedAddress(g.Address); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldAddress, err)
	}
	if out.ScriptPubKey, err = convert.Script(g.ScriptPubKey); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldScriptPubKey, err)
	}
	if out.WitnessProgram, err = convert.OptionalWitnessProgram(g.WitnessVersion, g.WitnessProgram); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldWitnessProgram, err)
	}
	if out.ScriptType, err = convert.OptionalEnum(g.Script, ScriptTypes); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldScript, err)
	}
	if out.RedeemScript, err = convert.OptionalScript(g.Hex); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldHex, err)
	}
	if out.PubKeys, err = convert.PublicKeys(g.PubKeys); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldPubKeys, err)
	}
	if out.SigsRequired, err = convert.OptionalUint32(g.SigsRequired); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldSigsRequired, err)
	}
	if out.PubKey, err = convert.OptionalPublicKey(g.PubKey); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldPubKey, err)
	}
	if err = convert.KeyHashProgram(out.WitnessProgram, out.PubKey); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldPubKey, err)
	}
	if out.Labels, err = AddressLabels(g.Labels); err != nil {
		return model.GetAddressInfoEmbedded{}, convert.Field(GetAddressInfoEmbeddedFieldLabels, err)
	}

	out.IsScript = g.IsScript
	out.IsWitness = g.IsWitness
	out.IsCompressed = g.IsCompressed
	if g.Label != nil {
		out.Label = *g.Label
	}
	return out, nil
}

// GetAddressInfoLabel is one entry of the `labels` field of GetAddressInfo.
type GetAddressInfoLabel struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

type GetAddressInfoLabelField string

func (f GetAddressInfoLabelField) String() string { return string(f) }

const GetAddressInfoLabelFieldPurpose GetAddressInfoLabelField = "purpose"

type GetAddressInfoLabelError = convert.FieldError[GetAddressInfoLabelField]

func (l GetAddressInfoLabel) IntoModel() (model.AddressLabel, error) {
	purpose, err := convert.Enum(l.Purpose, AddressPurposes)
	if err != nil {
		return model.AddressLabel{}, convert.Field(GetAddressInfoLabelFieldPurpose, err)
	}
	return model.AddressLabel{Name: l.Name, Purpose: purpose}, nil
}

// AddressLabels converts a list of labels. A failure names the offending index.
func AddressLabels(labels []GetAddressInfoLabel) ([]model.AddressLabel, error) {
	if labels == nil {
		return nil, nil
	}
	out := make([]model.AddressLabel, 0, len(labels))
	for i, l := range labels {
		m, err := l.IntoModel()
		if err != nil {
			return nil, convert.AtIndex(i, err)
		}
		out = append(out, m)
	}
	return out, nil
}
