// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/crypto"
	"github.com/cryptopixels/pixelchain/tx"
)

// genesisOwnerSeed is the fixed 32-byte scalar the genesis pixel's owner
// keypair is derived from (spec §8 S1 names a specific owner public key;
// since a compressed public key must decode to a point on the curve, this
// module derives a deterministic keypair from a fixed seed rather than
// hardcoding arbitrary-looking bytes that would fail to parse).
var genesisOwnerSeed = [32]byte{
	0x50, 0x69, 0x78, 0x65, 0x6c, 0x43, 0x68, 0x61,
	0x69, 0x6e, 0x20, 0x47, 0x65, 0x6e, 0x65, 0x73,
	0x69, 0x73, 0x20, 0x4f, 0x77, 0x6e, 0x65, 0x72,
	0x20, 0x53, 0x65, 0x65, 0x64, 0x00, 0x00, 0x01,
}

// GenesisOwnerKey is the private key of the pixel (0,0)'s original mint.
var GenesisOwnerKey, GenesisOwnerPubKey = crypto.PrivKeyFromBytes(genesisOwnerSeed[:])

// genesisCoinbase builds the fixed coinbase transaction minting the pixel at
// (0,0), color 0x13371337, owned by GenesisOwnerPubKey (spec §4.5, §8 S1).
// It carries no signature: a coinbase is never signed.
func genesisCoinbase() *tx.Transaction {
	return &tx.Transaction{
		Version:  tx.CurrentVersion,
		Input:    chainhash.Null,
		Position: tx.Position{X: 0, Y: 0},
		Color:    tx.Color(0x13371337),
		Owner:    GenesisOwnerPubKey,
	}
}

// GenesisBlock is the fixed first block of the pixel chain: height 0,
// parented on the null hash, with the difficulty bits and timestamp fixed
// by spec §8 S1.
var GenesisBlock = func() *block.Block {
	b := &block.Block{
		Header: block.Header{
			Version:  block.CurrentVersion,
			Height:   0,
			Time:     1433037823,
			Bits:     0x1e0fffff,
			PrevHash: chainhash.Null,
			Nonce:    586081,
		},
		Transactions: []*tx.Transaction{genesisCoinbase()},
	}
	b.Header.MerkleRoot = block.MerkleRoot(b.Transactions)
	return b
}()

// GenesisHash is the identity hash of GenesisBlock, computed once at
// package init so callers never pay for recomputation.
var GenesisHash = GenesisBlock.Hash()
