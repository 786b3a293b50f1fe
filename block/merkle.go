// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/tx"
)

// MerkleRoot computes the Merkle root of txs (spec §4.5). The empty list's
// root is the all-zero hash. Otherwise each level pairwise-reduces its
// nodes, duplicating the last node when the level has odd length, until a
// single root remains.
func MerkleRoot(txs []*tx.Transaction) chainhash.Hash {
	if len(txs) == 0 {
		return chainhash.Null
	}

	level := make([]chainhash.Hash, len(txs))
	for i, t := range txs {
		level[i] = t.Hash()
	}

	for len(level) > 1 {
		next := make([]chainhash.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			next = append(next, hashPair(left, right))
		}
		level = next
	}
	return level[0]
}

// hashPair returns dhash(concat(left, right)), both in internal byte
// order.
func hashPair(left, right chainhash.Hash) chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	return chainhash.DoubleHashH(buf[:])
}
