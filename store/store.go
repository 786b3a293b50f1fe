// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package store defines content-addressed lookup of blocks and
// transactions by display hash (spec §4.6). The blockchain engine depends
// only on these interfaces; it performs no cache eviction of its own.
package store

import (
	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/tx"
)

// BlockStore is a content-addressed map from display hash to Block.
type BlockStore interface {
	Get(hash string) (*block.Block, error)
	Set(b *block.Block) error
	Has(hash string) (bool, error)
}

// TransactionStore is a content-addressed map from display hash to
// Transaction.
type TransactionStore interface {
	Get(hash string) (*tx.Transaction, error)
	Set(t *tx.Transaction) error
	Has(hash string) (bool, error)
}
