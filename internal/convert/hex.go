package convert

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/LeJamon/gocorepc/internal/crypto"
	"github.com/LeJamon/gocorepc/internal/model"
)

// Bytes decodes a hex string of any length.
func Bytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return b, nil
}

// FixedBytes decodes a hex string that must hold exactly n bytes.
func FixedBytes(s string, n int) ([]byte, error) {
	b, err := Bytes(s)
	if err != nil {
		return nil, err
	}
	if len(b) != n {
		return nil, &WrongLengthError{Want: n, Got: len(b)}
	}
	return b, nil
}

// HexUint64 parses a big-endian hex integer of up to 16 digits, such as a service
// flags bitfield.
func HexUint64(s string) (uint64, error) {
	if len(s) == 0 || len(s) > 16 {
		return 0, fmt.Errorf("%w: %q is not a 64-bit hex integer", ErrInvalidHex, s)
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return v, nil
}

// Hash parses a txid or block hash in the byte-reversed order the server displays.
func Hash(s string) (chainhash.Hash, error) {
	b, err := FixedBytes(s, chainhash.HashSize)
	if err != nil {
		return chainhash.Hash{}, err
	}
	var h chainhash.Hash
	for i := range b {
		h[chainhash.HashSize-1-i] = b[i]
	}
	return h, nil
}

// OptionalHash parses an optional txid or block hash.
func OptionalHash(s *string) (*chainhash.Hash, error) {
	if s == nil {
		return nil, nil
	}
	h, err := Hash(*s)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Hashes parses a list of hashes. A failure names the offending index.
func Hashes(ss []string) ([]chainhash.Hash, error) {
	out := make([]chainhash.Hash, 0, len(ss))
	for i, s := range ss {
		h, err := Hash(s)
		if err != nil {
			return nil, AtIndex(i, err)
		}
		out = append(out, h)
	}
	return out, nil
}

// Hash160 parses a hex Hash160 digest.
func Hash160(s string) (model.Hash160, error) {
	b, err := FixedBytes(s, crypto.Hash160Size)
	if err != nil {
		return model.Hash160{}, err
	}
	return model.Hash160(b), nil
}

// OptionalHash160 parses an optional Hash160 digest.
func OptionalHash160(s *string) (*model.Hash160, error) {
	if s == nil {
		return nil, nil
	}
	h, err := Hash160(*s)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// OptionalFingerprint parses an optional BIP32 fingerprint.
func OptionalFingerprint(s *string) (*model.Fingerprint, error) {
	if s == nil {
		return nil, nil
	}
	b, err := FixedBytes(*s, crypto.FingerprintSize)
	if err != nil {
		return nil, err
	}
	fp := model.Fingerprint(b)
	return &fp, nil
}

// Transaction decodes a consensus-serialized transaction.
func Transaction(s string) (*wire.MsgTx, error) {
	b, err := Bytes(s)
	if err != nil {
		return nil, err
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	r := bytes.NewReader(b)
	if err := tx.Deserialize(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrInvalidTransaction, r.Len())
	}
	return tx, nil
}
