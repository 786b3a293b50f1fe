// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"

	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/tx"
)

// ChainIndex owns every in-memory map the engine maintains (spec §3). It
// replaces the "prototype-mutation of raw maps" the original keeps
// loosely scattered (spec §9) with a single value that owns them
// together and defines a stable snapshot/restore format.
type ChainIndex struct {
	// Work is cumulative work for every known block; Work[NULL] = 0.
	Work map[chainhash.Hash]*big.Int

	// Prev is the parent hash of every known block.
	Prev map[chainhash.Hash]chainhash.Hash

	// Height is defined only for blocks on the active chain;
	// height[NULL] is conceptually -1 and is never stored.
	Height map[chainhash.Hash]int64

	// HashByHeight is the active chain's height-to-hash index.
	HashByHeight map[int64]chainhash.Hash

	// Next is the active chain's forward pointer.
	Next map[chainhash.Hash]chainhash.Hash

	// Tip is the hash of the current best block; the null hash until
	// the first block is confirmed.
	Tip chainhash.Hash

	// Pixels is the active chain's pixel map: position to the
	// transaction currently holding it.
	Pixels map[tx.Position]*tx.Transaction
}

// NewChainIndex returns an empty index with Work[NULL] = 0, as spec §3
// requires.
func NewChainIndex() *ChainIndex {
	idx := &ChainIndex{
		Work:         make(map[chainhash.Hash]*big.Int),
		Prev:         make(map[chainhash.Hash]chainhash.Hash),
		Height:       make(map[chainhash.Hash]int64),
		HashByHeight: make(map[int64]chainhash.Hash),
		Next:         make(map[chainhash.Hash]chainhash.Hash),
		Pixels:       make(map[tx.Position]*tx.Transaction),
	}
	idx.Work[chainhash.Null] = big.NewInt(0)
	return idx
}

// heightOf returns the active-chain height of h, or -1 if h is the null
// hash or not on the active chain.
func (idx *ChainIndex) heightOf(h chainhash.Hash) int64 {
	if h == chainhash.Null {
		return -1
	}
	height, ok := idx.Height[h]
	if !ok {
		return -1
	}
	return height
}

// IndexSnapshot is the explicit, field-ordered serialization of a
// ChainIndex's maps (spec §6 toObject/fromObject; spec §9's prototype-
// mutation redesign note). It does not include the block or transaction
// stores.
type IndexSnapshot struct {
	Work         map[string]string
	Prev         map[string]string
	Height       map[string]int64
	HashByHeight map[int64]string
	Next         map[string]string
	Tip          string
	Pixels       map[string][]byte
}

// ToObject snapshots idx into a plain, serialization-friendly value.
// Hashes become their display-hex strings; pixel entries become their
// owning transaction's full binary encoding, keyed by "x,y".
func (idx *ChainIndex) ToObject() (*IndexSnapshot, error) {
	snap := &IndexSnapshot{
		Work:         make(map[string]string, len(idx.Work)),
		Prev:         make(map[string]string, len(idx.Prev)),
		Height:       make(map[string]int64, len(idx.Height)),
		HashByHeight: make(map[int64]string, len(idx.HashByHeight)),
		Next:         make(map[string]string, len(idx.Next)),
		Tip:          idx.Tip.String(),
		Pixels:       make(map[string][]byte, len(idx.Pixels)),
	}

	for h, w := range idx.Work {
		snap.Work[h.String()] = w.String()
	}
	for h, p := range idx.Prev {
		snap.Prev[h.String()] = p.String()
	}
	for h, height := range idx.Height {
		snap.Height[h.String()] = height
	}
	for height, h := range idx.HashByHeight {
		snap.HashByHeight[height] = h.String()
	}
	for h, n := range idx.Next {
		snap.Next[h.String()] = n.String()
	}
	for pos, t := range idx.Pixels {
		snap.Pixels[positionKey(pos)] = t.Bytes()
	}
	log.Debugf("snapshotted index: %d known block(s), %d live pixel(s), tip %s", len(snap.Work), len(snap.Pixels), snap.Tip)
	return snap, nil
}

// FromObject restores a ChainIndex from a snapshot produced by ToObject.
func FromObject(snap *IndexSnapshot) (*ChainIndex, error) {
	idx := NewChainIndex()

	for hStr, wStr := range snap.Work {
		h, err := chainhash.NewHashFromStr(hStr)
		if err != nil {
			return nil, err
		}
		w, ok := new(big.Int).SetString(wStr, 10)
		if !ok {
			return nil, fmt.Errorf("blockchain: malformed work value %q in snapshot", wStr)
		}
		idx.Work[*h] = w
	}
	for hStr, pStr := range snap.Prev {
		h, err := chainhash.NewHashFromStr(hStr)
		if err != nil {
			return nil, err
		}
		p, err := chainhash.NewHashFromStr(pStr)
		if err != nil {
			return nil, err
		}
		idx.Prev[*h] = *p
	}
	for hStr, height := range snap.Height {
		h, err := chainhash.NewHashFromStr(hStr)
		if err != nil {
			return nil, err
		}
		idx.Height[*h] = height
	}
	for height, hStr := range snap.HashByHeight {
		h, err := chainhash.NewHashFromStr(hStr)
		if err != nil {
			return nil, err
		}
		idx.HashByHeight[height] = *h
	}
	for hStr, nStr := range snap.Next {
		h, err := chainhash.NewHashFromStr(hStr)
		if err != nil {
			return nil, err
		}
		n, err := chainhash.NewHashFromStr(nStr)
		if err != nil {
			return nil, err
		}
		idx.Next[*h] = *n
	}
	tip, err := chainhash.NewHashFromStr(snap.Tip)
	if err != nil {
		return nil, err
	}
	idx.Tip = *tip

	for key, raw := range snap.Pixels {
		pos, err := parsePositionKey(key)
		if err != nil {
			return nil, err
		}
		t, err := tx.DecodeBytes(raw)
		if err != nil {
			return nil, err
		}
		idx.Pixels[pos] = t
	}

	log.Debugf("restored index from snapshot: %d known block(s), %d live pixel(s), tip %s", len(idx.Work), len(idx.Pixels), idx.Tip)
	return idx, nil
}
