// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/crypto"
)

// Builder assembles a Transaction through a fluent chain, accumulating the
// first error encountered so that Build can be checked once at the end
// instead of after every call.
type Builder struct {
	tx      Transaction
	fromSet bool
	err     error
}

// NewBuilder starts a fresh transaction draft at CurrentVersion.
func NewBuilder() *Builder {
	return &Builder{tx: Transaction{Version: CurrentVersion}}
}

// From chains this transaction from prev: it spends prev's pixel, inheriting
// prev's position, and records prev's hash as Input. Calling From a second
// time on the same Builder is a conflict. From after At is accepted and
// replaces the position At set; At after From is rejected (see At).
func (b *Builder) From(prev *Transaction) *Builder {
	if b.err != nil {
		return b
	}
	if b.fromSet {
		b.err = &Error{Code: ErrPositionConflict, Msg: "From already called"}
		return b
	}
	b.tx.Input = prev.Hash()
	b.tx.Position = prev.Position
	b.fromSet = true
	return b
}

// At sets an explicit mint position. It is rejected once From has already
// established the position from a prior transaction.
func (b *Builder) At(x, y int32) *Builder {
	if b.err != nil {
		return b
	}
	if b.fromSet {
		b.err = &Error{Code: ErrPositionConflict, Msg: "At called after From"}
		return b
	}
	b.tx.Position = Position{X: x, Y: y}
	return b
}

// To sets the new owner.
func (b *Builder) To(owner *crypto.PublicKey) *Builder {
	if b.err != nil {
		return b
	}
	b.tx.Owner = owner
	return b
}

// Colored sets the pixel's color. Zero is rejected: it is reserved to mean
// "unset" within the builder.
func (b *Builder) Colored(c uint32) *Builder {
	if b.err != nil {
		return b
	}
	if c == 0 {
		b.err = &Error{Code: ErrInvalidColor, Msg: "color must be non-zero"}
		return b
	}
	b.tx.Color = Color(c)
	return b
}

// Sign signs the transaction's sighash digest with priv.
func (b *Builder) Sign(priv *crypto.PrivateKey) *Builder {
	if b.err != nil {
		return b
	}
	b.tx.Sign(priv)
	return b
}

// Build returns the assembled transaction, or the first error raised during
// chaining.
func (b *Builder) Build() (*Transaction, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.tx.Owner == nil {
		return nil, &Error{Code: ErrMissingOwner, Msg: "To was never called"}
	}
	out := b.tx
	return &out, nil
}

// Coinbase returns the null hash used as Input on a minting transaction. It
// exists so callers never need to spell out chainhash.Null directly when
// composing a Builder by hand instead of through From.
func Coinbase() chainhash.Hash {
	return chainhash.Null
}
