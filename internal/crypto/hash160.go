package crypto

import (
	"crypto/sha256"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// Hash160Size is the size of a Hash160 digest in bytes.
const Hash160Size = 20

// FingerprintSize is the size of a BIP32 key fingerprint in bytes.
const FingerprintSize = 4

// Hash160 computes RIPEMD160(SHA256(data)), the digest behind P2PKH and P2WPKH
// programs, HD seed ids and key fingerprints.
func Hash160(data []byte) [Hash160Size]byte {
	sha256Hash := sha256.Sum256(data)

	hasher := ripemd160.New()
	hasher.Write(sha256Hash[:])
	digest := hasher.Sum(nil)

	var result [Hash160Size]byte
	copy(result[:], digest)
	return result
}
