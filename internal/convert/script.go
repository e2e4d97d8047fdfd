package convert

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/txscript"

	"github.com/LeJamon/gocorepc/internal/model"
)

// Script decodes a hex script and checks that it parses.
func Script(s string) (model.Script, error) {
	b, err := Bytes(s)
	if err != nil {
		return nil, err
	}
	if _, err := txscript.DisasmString(b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	return model.Script(b), nil
}

// OptionalScript decodes an optional hex script. Absence yields a nil script.
func OptionalScript(s *string) (model.Script, error) {
	if s == nil {
		return nil, nil
	}
	return Script(*s)
}

// PublicKey parses a hex SEC1 public key, compressed or not.
func PublicKey(s string) (model.PublicKey, error) {
	b, err := Bytes(s)
	if err != nil {
		return model.PublicKey{}, err
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return model.PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return model.NewPublicKey(key, len(b) == btcec.PubKeyBytesLenCompressed), nil
}

// OptionalPublicKey parses an optional public key.
func OptionalPublicKey(s *string) (*model.PublicKey, error) {
	if s == nil {
		return nil, nil
	}
	p, err := PublicKey(*s)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// PublicKeys parses a list of public keys. A failure names the offending index.
func PublicKeys(ss []string) ([]model.PublicKey, error) {
	out := make([]model.PublicKey, 0, len(ss))
	for i, s := range ss {
		p, err := PublicKey(s)
		if err != nil {
			return nil, AtIndex(i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// PrivateKey parses a WIF-encoded private key.
func PrivateKey(s string) (*btcutil.WIF, error) {
	wif, err := btcutil.DecodeWIF(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return wif, nil
}

// DerivationPath parses a BIP32 path such as m/0'/0'/12'. Both ' and h mark a
// hardened index.
func DerivationPath(s string) (model.DerivationPath, error) {
	parts := strings.Split(s, "/")
	if parts[0] != "m" {
		return nil, fmt.Errorf("%w: %q must start with m", ErrInvalidDerivationPath, s)
	}
	path := make(model.DerivationPath, 0, len(parts)-1)
	for _, p := range parts[1:] {
		hardened := strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h")
		if hardened {
			p = p[:len(p)-1]
		}
		idx, err := strconv.ParseUint(p, 10, 32)
		if err != nil || idx >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("%w: bad index %q in %q", ErrInvalidDerivationPath, p, s)
		}
		if hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		path = append(path, uint32(idx))
	}
	return path, nil
}

// OptionalDerivationPath parses an optional BIP32 path.
func OptionalDerivationPath(s *string) (model.DerivationPath, error) {
	if s == nil {
		return nil, nil
	}
	return DerivationPath(*s)
}

// WitnessProgram validates a segwit version and hex program per BIP141.
func WitnessProgram(version int64, program string) (model.WitnessProgram, error) {
	if version < 0 || version > 16 {
		return model.WitnessProgram{}, fmt.Errorf("%w: version %d", ErrInvalidWitnessProgram, version)
	}
	b, err := Bytes(program)
	if err != nil {
		return model.WitnessProgram{}, err
	}
	if len(b) < 2 || len(b) > 40 {
		return model.WitnessProgram{}, fmt.Errorf("%w: program of %d bytes", ErrInvalidWitnessProgram, len(b))
	}
	if version == 0 && len(b) != 20 && len(b) != 32 {
		return model.WitnessProgram{}, fmt.Errorf("%w: v0 program of %d bytes", ErrInvalidWitnessProgram, len(b))
	}
	return model.WitnessProgram{Version: byte(version), Program: b}, nil
}

// KeyHashProgram checks that a v0 key hash program commits to pubkey. Any other
// program, or a missing one, is left alone.
func KeyHashProgram(program *model.WitnessProgram, pubkey *model.PublicKey) error {
	if program == nil || pubkey == nil || program.Version != 0 || len(program.Program) != 20 {
		return nil
	}
	hash := pubkey.Hash160()
	if !bytes.Equal(program.Program, hash[:]) {
		return fmt.Errorf("%w: %x is not the hash of the public key", ErrInvalidWitnessProgram, program.Program)
	}
	return nil
}

// OptionalWitnessProgram validates a witness program when the server sent one.
// Version and program are reported together; one without the other is an error.
func OptionalWitnessProgram(version *int64, program *string) (*model.WitnessProgram, error) {
	switch {
	case version == nil && program == nil:
		return nil, nil
	case version == nil:
		return nil, fmt.Errorf("%w: program without version", ErrInvalidWitnessProgram)
	case program == nil:
		return nil, fmt.Errorf("%w: version without program", ErrInvalidWitnessProgram)
	}
	w, err := WitnessProgram(*version, *program)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
