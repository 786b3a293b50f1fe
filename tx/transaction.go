// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tx defines the pixel-transfer transaction: its binary wire form,
// its signature-hash preimage, and its identity hash. A Transaction either
// mints a pixel (a coinbase, with a null Input) or transfers one from the
// transaction that currently holds it.
package tx

import (
	"bytes"
	"io"

	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/codec"
	"github.com/cryptopixels/pixelchain/crypto"
)

// CurrentVersion is the only transaction version this module understands.
const CurrentVersion uint8 = 1

// MaxSignatureLen bounds the single-byte length prefix in the wire format
// (spec §4.3): a signature longer than this cannot be encoded.
const MaxSignatureLen = 255

// Transaction is a single pixel-transfer record.
type Transaction struct {
	// Version of the transaction encoding.
	Version uint8

	// Input is the identity hash, in internal byte order, of the prior
	// transaction that held this pixel. It is chainhash.Null iff this is
	// a coinbase (mint) transaction.
	Input chainhash.Hash

	// Position is the pixel coordinate this transaction mints or
	// transfers.
	Position Position

	// Color is the pixel's color as of this transaction.
	Color Color

	// Owner is the public key of the new holder.
	Owner *crypto.PublicKey

	// Signature is the DER-encoded ECDSA signature over the sighash
	// digest, or nil on a coinbase or an unsigned draft.
	Signature []byte
}

// IsCoinbase reports whether t mints a new pixel rather than transferring
// an existing one.
func (t *Transaction) IsCoinbase() bool {
	return t.Input == chainhash.Null
}

// IsAdjacentTo returns the first position in positions that is Manhattan
// distance 1 from t's own position, and true, or the zero Position and
// false if none qualifies.
func (t *Transaction) IsAdjacentTo(positions []Position) (Position, bool) {
	for _, p := range positions {
		if t.Position.IsAdjacentTo(p) {
			return p, true
		}
	}
	return Position{}, false
}

// encode writes the transaction's binary form. When withSignature is
// false, the signature length byte is written as zero and no signature
// bytes follow regardless of whether one is set; this is the sighash
// preimage form (spec §4.3).
func (t *Transaction) encode(w io.Writer, withSignature bool) error {
	if err := codec.WriteUint8(w, t.Version); err != nil {
		return err
	}
	if err := codec.WriteBytes(w, t.Input[:]); err != nil {
		return err
	}
	if err := codec.WriteInt32LE(w, t.Position.X); err != nil {
		return err
	}
	if err := codec.WriteInt32LE(w, t.Position.Y); err != nil {
		return err
	}
	if err := codec.WriteUint32LE(w, uint32(t.Color)); err != nil {
		return err
	}
	if err := codec.WriteBytes(w, crypto.SerializePubKey(t.Owner)); err != nil {
		return err
	}

	if withSignature && len(t.Signature) > 0 {
		if err := codec.WriteUint8(w, uint8(len(t.Signature))); err != nil {
			return err
		}
		return codec.WriteBytes(w, t.Signature)
	}
	return codec.WriteUint8(w, 0)
}

// Serialize writes the transaction's full binary encoding, signature
// included, to w.
func (t *Transaction) Serialize(w io.Writer) error {
	return t.encode(w, true)
}

// Bytes returns the transaction's full binary encoding.
func (t *Transaction) Bytes() []byte {
	var buf bytes.Buffer
	// Serialize only ever fails if an io.Writer returns an error; a
	// bytes.Buffer never does.
	_ = t.Serialize(&buf)
	return buf.Bytes()
}

// sigHashPreimage returns the serialization used to derive the
// signature-hash digest: identical to the full encoding but with the
// signature length byte forced to zero and no signature bytes emitted.
func (t *Transaction) sigHashPreimage() []byte {
	var buf bytes.Buffer
	_ = t.encode(&buf, false)
	return buf.Bytes()
}

// SigHash returns the digest that Sign signs and IsValidSignature
// verifies against: the double-SHA256 of the sighash preimage.
func (t *Transaction) SigHash() [32]byte {
	return crypto.DHash(t.sigHashPreimage())
}

// Hash returns the transaction's identity hash, in internal byte order:
// the double-SHA256 of the full serialization, signature included.
func (t *Transaction) Hash() chainhash.Hash {
	return chainhash.DoubleHashH(t.Bytes())
}

// ID returns the transaction's display-form (big-endian hex) identifier.
func (t *Transaction) ID() string {
	h := t.Hash()
	return h.String()
}

// Sign computes the signature over t's sighash digest using priv and sets
// Signature to its DER encoding.
func (t *Transaction) Sign(priv *crypto.PrivateKey) {
	digest := t.SigHash()
	sig := crypto.Sign(priv, digest)
	t.Signature = crypto.SerializeSignature(sig)
}

// VerifySignature checks t's Signature against previousOwner over t's
// sighash digest, returning a typed Error identifying which signature rule
// failed: ErrMissingSignatures when t carries no signature at all, or
// ErrInvalidSignature when a present signature fails to parse or verify.
func (t *Transaction) VerifySignature(previousOwner *crypto.PublicKey) error {
	if len(t.Signature) == 0 {
		return &Error{Code: ErrMissingSignatures}
	}
	sig, err := crypto.ParseSignature(t.Signature)
	if err != nil {
		return &Error{Code: ErrInvalidSignature, Err: err}
	}
	if !crypto.Verify(previousOwner, t.SigHash(), sig) {
		return &Error{Code: ErrInvalidSignature, Msg: "signature does not verify against previous owner"}
	}
	return nil
}

// IsValidSignature reports whether t's Signature verifies against
// previousOwner over t's sighash digest. A transaction with no signature
// never validates. It is a convenience wrapper over VerifySignature for
// callers that only need a bool.
func (t *Transaction) IsValidSignature(previousOwner *crypto.PublicKey) bool {
	return t.VerifySignature(previousOwner) == nil
}

// Decode reads a transaction from its binary encoding.
func Decode(r io.Reader) (*Transaction, error) {
	t := &Transaction{}

	version, err := codec.ReadUint8(r)
	if err != nil {
		return nil, err
	}
	t.Version = version

	inputBytes, err := codec.ReadBytes(r, chainhash.HashSize)
	if err != nil {
		return nil, err
	}
	copy(t.Input[:], inputBytes)

	x, err := codec.ReadInt32LE(r)
	if err != nil {
		return nil, err
	}
	y, err := codec.ReadInt32LE(r)
	if err != nil {
		return nil, err
	}
	t.Position = Position{X: x, Y: y}

	colorRaw, err := codec.ReadUint32LE(r)
	if err != nil {
		return nil, err
	}
	t.Color = Color(colorRaw)

	ownerBytes, err := codec.ReadBytes(r, crypto.PubKeyBytesLenCompressed)
	if err != nil {
		return nil, err
	}
	owner, err := crypto.ParsePubKey(ownerBytes)
	if err != nil {
		return nil, &codec.DecodeError{Code: codec.ErrBadPublicKey, Err: err}
	}
	t.Owner = owner

	sigLen, err := codec.ReadUint8(r)
	if err != nil {
		return nil, err
	}
	if sigLen > 0 {
		sig, err := codec.ReadBytes(r, int(sigLen))
		if err != nil {
			return nil, err
		}
		t.Signature = sig
	}

	return t, nil
}

// DecodeBytes decodes a transaction from its full binary encoding.
func DecodeBytes(b []byte) (*Transaction, error) {
	return Decode(bytes.NewReader(b))
}
