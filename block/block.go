// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"bytes"
	"io"

	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/codec"
	"github.com/cryptopixels/pixelchain/tx"
)

// MaxBlockSize bounds a block's serialized size (spec §6). Configurable at
// compile time by a vendoring application that rebuilds with a different
// value; there is no runtime override since block size is a consensus
// rule.
const MaxBlockSize = 1_000_000

// Block is a header plus an ordered, variable-count list of transactions.
// transactions[0] must be the coinbase; header.MerkleRoot must equal the
// Merkle root of the transactions (spec §3).
type Block struct {
	Header       Header
	Transactions []*tx.Transaction
}

// Hash returns the block's identity hash: its header's hash.
func (b *Block) Hash() chainhash.Hash {
	return b.Header.Hash()
}

// Coinbase returns the block's first transaction, or nil if it has none.
func (b *Block) Coinbase() *tx.Transaction {
	if len(b.Transactions) == 0 {
		return nil
	}
	return b.Transactions[0]
}

// ValidMerkleRoot reports whether b.Header.MerkleRoot matches the Merkle
// root recomputed from b.Transactions.
func (b *Block) ValidMerkleRoot() bool {
	return b.Header.MerkleRoot == MerkleRoot(b.Transactions)
}

// AddTransaction appends tx to the block and recomputes the header's
// Merkle root. This is a mining-time convenience, not part of the
// consensus validation path.
func (b *Block) AddTransaction(t *tx.Transaction) {
	b.Transactions = append(b.Transactions, t)
	b.Header.MerkleRoot = MerkleRoot(b.Transactions)
}

// Validate checks the block's self-consistency invariants that do not
// require chain context: non-empty transaction list, a coinbase in the
// first slot, a correct Merkle root, and a bounded serialized size. Chain-
// context rules (parent ancestry, adjacency, signature chaining) are the
// blockchain engine's responsibility.
func (b *Block) Validate() error {
	if len(b.Transactions) == 0 {
		return &Error{Code: ErrEmptyTransactions}
	}
	if !b.Transactions[0].IsCoinbase() {
		return &Error{Code: ErrCoinbaseNotFirst}
	}
	if !b.ValidMerkleRoot() {
		return &Error{Code: ErrInvalidMerkleRoot}
	}
	if len(b.Bytes()) > MaxBlockSize {
		return &Error{Code: ErrOversizeBlock}
	}
	return nil
}

// Serialize writes the block's wire form to w: header (84 bytes),
// varint(txCount), then each transaction in order (spec §6).
func (b *Block) Serialize(w io.Writer) error {
	if err := b.Header.Serialize(w); err != nil {
		return err
	}
	if err := codec.WriteVarInt(w, uint64(len(b.Transactions))); err != nil {
		return err
	}
	for _, t := range b.Transactions {
		if err := t.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

// Bytes returns the block's wire-form encoding.
func (b *Block) Bytes() []byte {
	var buf bytes.Buffer
	_ = b.Serialize(&buf)
	return buf.Bytes()
}

// Decode reads a block from its wire form.
func Decode(r io.Reader) (*Block, error) {
	header, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	count, err := codec.ReadVarInt(r)
	if err != nil {
		return nil, err
	}

	txs := make([]*tx.Transaction, 0, count)
	for i := uint64(0); i < count; i++ {
		t, err := tx.Decode(r)
		if err != nil {
			return nil, err
		}
		txs = append(txs, t)
	}

	return &Block{Header: *header, Transactions: txs}, nil
}

// DecodeBytes decodes a block from its full wire-form encoding.
func DecodeBytes(b []byte) (*Block, error) {
	return Decode(bytes.NewReader(b))
}
