package model

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/txscript"

	"github.com/LeJamon/gocorepc/internal/crypto"
)

// Script is a parsed Bitcoin script.
type Script []byte

// Class returns the standard script class.
func (s Script) Class() txscript.ScriptClass {
	return txscript.GetScriptClass(s)
}

// Disasm returns the one-line disassembly of the script.
func (s Script) Disasm() string {
	d, err := txscript.DisasmString(s)
	if err != nil {
		return "[error]"
	}
	return d
}

func (s Script) String() string {
	return hex.EncodeToString(s)
}

func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// PublicKey is a validated secp256k1 public key.
type PublicKey struct {
	key        *btcec.PublicKey
	compressed bool
}

func NewPublicKey(key *btcec.PublicKey, compressed bool) PublicKey {
	return PublicKey{key: key, compressed: compressed}
}

func (p PublicKey) Key() *btcec.PublicKey {
	return p.key
}

func (p PublicKey) IsCompressed() bool {
	return p.compressed
}

// Serialize returns the key in the encoding it was received in.
func (p PublicKey) Serialize() []byte {
	if p.key == nil {
		return nil
	}
	if p.compressed {
		return p.key.SerializeCompressed()
	}
	return p.key.SerializeUncompressed()
}

// Hash160 returns the key hash used by P2PKH and P2WPKH outputs.
func (p PublicKey) Hash160() Hash160 {
	return Hash160(crypto.Hash160(p.Serialize()))
}

func (p PublicKey) String() string {
	return hex.EncodeToString(p.Serialize())
}

func (p PublicKey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Hash160 is a RIPEMD160(SHA256) digest, as used for HD seed ids.
type Hash160 [crypto.Hash160Size]byte

func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

func (h Hash160) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// Fingerprint is a BIP32 key fingerprint.
type Fingerprint [crypto.FingerprintSize]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

func (f Fingerprint) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// DerivationPath is a BIP32 path. Hardened indexes carry the hardened bit.
type DerivationPath []uint32

func (d DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range d {
		if idx >= hdkeychain.HardenedKeyStart {
			fmt.Fprintf(&b, "/%d'", idx-hdkeychain.HardenedKeyStart)
		} else {
			fmt.Fprintf(&b, "/%d", idx)
		}
	}
	return b.String()
}

func (d DerivationPath) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// WitnessProgram is a segwit version and program pair.
type WitnessProgram struct {
	Version byte
	Program []byte
}

func (w WitnessProgram) String() string {
	return fmt.Sprintf("v%d:%s", w.Version, hex.EncodeToString(w.Program))
}
