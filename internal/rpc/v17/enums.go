package v17

import "github.com/LeJamon/gocorepc/internal/model"

// The documented strings of every enumerated field, as emitted by v0.17. v0.18 and
// v0.19 emit the same sets and reuse these tables; a release that documents a new
// variant derives its own table with convert.ExtendEnum.

var TransactionCategories = map[string]model.TransactionCategory{
	"send":     model.TransactionCategorySend,
	"receive":  model.TransactionCategoryReceive,
	"generate": model.TransactionCategoryGenerate,
	"immature": model.TransactionCategoryImmature,
	"orphan":   model.TransactionCategoryOrphan,
}

var Bip125Replaceables = map[string]model.Bip125Replaceable{
	"yes":     model.Bip125ReplaceableYes,
	"no":      model.Bip125ReplaceableNo,
	"unknown": model.Bip125ReplaceableUnknown,
}

var AddressPurposes = map[string]model.AddressPurpose{
	"send":    model.AddressPurposeSend,
	"receive": model.AddressPurposeReceive,
}

var ScriptTypes = map[string]model.ScriptType{
	"nonstandard":           model.ScriptTypeNonStandard,
	"pubkey":                model.ScriptTypePubkey,
	"pubkeyhash":            model.ScriptTypePubkeyHash,
	"scripthash":            model.ScriptTypeScriptHash,
	"multisig":              model.ScriptTypeMultisig,
	"nulldata":              model.ScriptTypeNullData,
	"witness_v0_keyhash":    model.ScriptTypeWitnessV0KeyHash,
	"witness_v0_scripthash": model.ScriptTypeWitnessV0ScriptHash,
	"witness_unknown":       model.ScriptTypeWitnessUnknown,
}

// labelOrAccount prefers the live label field and falls back to the deprecated
// account alias only when label is absent.
func labelOrAccount(label, account *string) *string {
	if label != nil {
		return label
	}
	return account
}
