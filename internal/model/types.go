// Package model holds the version-independent results of the Bitcoin Core JSON-RPC
// API. Every value in this package has been validated; none of it knows which
// server version produced it.
package model

// TransactionCategory is the category of a wallet transaction entry.
type TransactionCategory int

const (
	TransactionCategorySend TransactionCategory = iota + 1
	TransactionCategoryReceive
	// Coinbase output with enough confirmations to spend.
	TransactionCategoryGenerate
	// Coinbase output not yet mature.
	TransactionCategoryImmature
	// Coinbase output from a block that is no longer in the main chain.
	TransactionCategoryOrphan
)

func (c TransactionCategory) String() string {
	switch c {
	case TransactionCategorySend:
		return "send"
	case TransactionCategoryReceive:
		return "receive"
	case TransactionCategoryGenerate:
		return "generate"
	case TransactionCategoryImmature:
		return "immature"
	case TransactionCategoryOrphan:
		return "orphan"
	default:
		return "unknown"
	}
}

func (c TransactionCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Bip125Replaceable reports whether a transaction signals opt-in replace-by-fee.
type Bip125Replaceable int

const (
	Bip125ReplaceableYes Bip125Replaceable = iota + 1
	Bip125ReplaceableNo
	// The wallet cannot tell, typically because an unconfirmed ancestor is not in the mempool.
	Bip125ReplaceableUnknown
)

func (b Bip125Replaceable) String() string {
	switch b {
	case Bip125ReplaceableYes:
		return "yes"
	case Bip125ReplaceableNo:
		return "no"
	case Bip125ReplaceableUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

func (b Bip125Replaceable) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// AddressPurpose is the purpose recorded for a labeled address.
type AddressPurpose int

const (
	AddressPurposeSend AddressPurpose = iota + 1
	AddressPurposeReceive
)

func (p AddressPurpose) String() string {
	switch p {
	case AddressPurposeSend:
		return "send"
	case AddressPurposeReceive:
		return "receive"
	default:
		return "unknown"
	}
}

func (p AddressPurpose) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ScriptType is the output script type reported by getaddressinfo.
type ScriptType int

const (
	ScriptTypeNonStandard ScriptType = iota + 1
	ScriptTypePubkey
	ScriptTypePubkeyHash
	ScriptTypeScriptHash
	ScriptTypeMultisig
	ScriptTypeNullData
	ScriptTypeWitnessV0KeyHash
	ScriptTypeWitnessV0ScriptHash
	ScriptTypeWitnessUnknown
)

var scriptTypeNames = map[ScriptType]string{
	ScriptTypeNonStandard:         "nonstandard",
	ScriptTypePubkey:              "pubkey",
	ScriptTypePubkeyHash:          "pubkeyhash",
	ScriptTypeScriptHash:          "scripthash",
	ScriptTypeMultisig:            "multisig",
	ScriptTypeNullData:            "nulldata",
	ScriptTypeWitnessV0KeyHash:    "witness_v0_keyhash",
	ScriptTypeWitnessV0ScriptHash: "witness_v0_scripthash",
	ScriptTypeWitnessUnknown:      "witness_unknown",
}

func (s ScriptType) String() string {
	if name, ok := scriptTypeNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s ScriptType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
