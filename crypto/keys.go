// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package crypto is the narrow adapter between the chain's signature
// chaining and the secp256k1 curve: double-SHA256 digests and
// deterministic ECDSA sign/verify, following the same thin-wrapper shape
// the teacher's own crypto package uses over the underlying decred
// secp256k1 implementation (see crypto/schnorr for the sibling adapter it
// built for BIP-340; this module needs plain ECDSA instead, per spec).
package crypto

import (
	secp256k1 "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/cryptopixels/pixelchain/chainhash"
)

// PrivateKey and PublicKey are the opaque keypair types used throughout the
// chain. They are aliases of the underlying curve implementation's types so
// that callers never need to import the curve library directly.
type (
	PrivateKey = secp256k1.PrivateKey
	PublicKey  = secp256k1.PublicKey
)

// PubKeyBytesLenCompressed is the length, in bytes, of a compressed
// (SEC1) serialized public key.
const PubKeyBytesLenCompressed = 33

// GeneratePrivateKey returns a new, randomly generated private key.
func GeneratePrivateKey() (*PrivateKey, error) {
	return secp256k1.GeneratePrivateKey()
}

// PrivKeyFromBytes parses a 32-byte scalar into a private key and derives
// its associated public key.
func PrivKeyFromBytes(b []byte) (*PrivateKey, *PublicKey) {
	priv := secp256k1.PrivKeyFromBytes(b)
	return priv, priv.PubKey()
}

// ParsePubKey parses a SEC1 compressed or uncompressed public key,
// verifying that it lies on the curve.
func ParsePubKey(b []byte) (*PublicKey, error) {
	return secp256k1.ParsePubKey(b)
}

// SerializePubKey returns the compressed SEC1 encoding of pub.
func SerializePubKey(pub *PublicKey) []byte {
	return pub.SerializeCompressed()
}

// DHash computes SHA256(SHA256(b)), the digest every signature in this
// chain is computed and verified over.
func DHash(b []byte) [32]byte {
	return [32]byte(chainhash.DoubleHashH(b))
}
