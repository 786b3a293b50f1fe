// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signature is a DER-encoded ECDSA signature.
type Signature = ecdsa.Signature

// MaxSignatureLen is the largest a DER-encoded secp256k1 ECDSA signature
// can be; the wire format's single-byte length prefix (spec §4.3) depends
// on this staying under 256.
const MaxSignatureLen = 72

// Sign produces a deterministic (RFC 6979) ECDSA signature over digest
// using priv.
func Sign(priv *PrivateKey, digest [32]byte) *Signature {
	return ecdsa.Sign(priv, digest[:])
}

// Verify reports whether sig is a valid signature by pub over digest.
func Verify(pub *PublicKey, digest [32]byte, sig *Signature) bool {
	return sig.Verify(digest[:], pub)
}

// ParseSignature parses a DER-encoded ECDSA signature.
func ParseSignature(b []byte) (*Signature, error) {
	sig, err := ecdsa.ParseDERSignature(b)
	if err != nil {
		return nil, &Error{Code: ErrBadSignatureEncoding, Err: err}
	}
	return sig, nil
}

// SerializeSignature returns the DER encoding of sig.
func SerializeSignature(sig *Signature) []byte {
	return sig.Serialize()
}
