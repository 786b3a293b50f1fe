// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain is the reorg-aware chain-state engine: block-tree
// maintenance, cumulative-work fork choice, reorg, and pixel-map
// projection (spec §4.7). It is a single-writer state machine; mutation
// entry points must be externally serialized, though this implementation
// adds its own reader/writer lock over the in-memory indices so
// read-only queries may run concurrently with each other.
package blockchain

import (
	"math/big"
	"sync"

	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/store"
	"github.com/cryptopixels/pixelchain/tx"
)

// Engine is the chain-state engine. It owns one ChainIndex and delegates
// durable storage of blocks and transactions to the BlockStore and
// TransactionStore it was constructed with.
type Engine struct {
	mu sync.RWMutex

	cfg        *Config
	index      *ChainIndex
	blockStore store.BlockStore
	txStore    store.TransactionStore
	listeners  []ChainListener
}

// NewEngine returns an Engine over the given stores, using cfg for its
// chain parameters. The engine starts with an empty index (no tip); the
// caller is responsible for proposing a genesis block.
func NewEngine(cfg *Config, blockStore store.BlockStore, txStore store.TransactionStore) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{
		cfg:        cfg,
		index:      NewChainIndex(),
		blockStore: blockStore,
		txStore:    txStore,
	}
}

// ProposeResult is the outcome of a successful ProposeNewBlock: the
// hashes unconfirmed and confirmed by any reorg the proposal triggered,
// in the order the transitions occurred.
type ProposeResult struct {
	Unconfirmed []chainhash.Hash
	Confirmed   []chainhash.Hash
}

// HasData reports whether h's cumulative work is known — i.e. whether h
// has been admitted to the block tree, regardless of whether it's on the
// active chain.
func (e *Engine) HasData(h chainhash.Hash) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, ok := e.index.Work[h]
	return ok
}

// GetCurrentHeight returns the active chain's tip height, or -1 if no
// block has been confirmed yet.
func (e *Engine) GetCurrentHeight() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index.heightOf(e.index.Tip)
}

// GetBlock fetches a block by hash from the underlying store.
func (e *Engine) GetBlock(h chainhash.Hash) (*block.Block, error) {
	return e.blockStore.Get(h.String())
}

// GetTipBlock fetches the active chain's tip block, or an error if no
// block has been confirmed yet.
func (e *Engine) GetTipBlock() (*block.Block, error) {
	e.mu.RLock()
	tip := e.index.Tip
	e.mu.RUnlock()
	return e.blockStore.Get(tip.String())
}

// IsValidBlock reports whether b passes CheckValidBlock.
func (e *Engine) IsValidBlock(b *block.Block) bool {
	return e.CheckValidBlock(b) == nil
}

// CheckValidBlock validates b against its self-consistency invariants and
// the engine's current pixel map and chain tip (spec §4.7 "Validity").
// It never mutates state.
func (e *Engine) CheckValidBlock(b *block.Block) error {
	if err := b.Validate(); err != nil {
		return err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.checkValidBlockLocked(b)
}

func (e *Engine) checkValidBlockLocked(b *block.Block) error {
	if _, ok := e.index.Work[b.Header.PrevHash]; !ok {
		log.Debugf("reject block %s: unknown parent %s", b.Hash(), b.Header.PrevHash)
		return &Error{Code: ErrUnknownParent}
	}

	cb := b.Transactions[0]
	if _, mined := e.index.Pixels[cb.Position]; mined {
		return &Error{Code: ErrPixelAlreadyMined}
	}

	if b.Header.Height != 0 {
		if !e.isAdjacentToLivePixel(cb.Position) {
			return &Error{Code: ErrNonAdjacentCoinbase}
		}
	}

	// Scratch map: positions minted or transferred earlier within this
	// same block, not yet reflected in the committed pixel map. Discarded
	// once validation finishes; pixel mutation only ever happens on
	// confirmation.
	scratch := make(map[tx.Position]*tx.Transaction, len(b.Transactions))
	scratch[cb.Position] = cb

	for _, t := range b.Transactions[1:] {
		prev, ok := scratch[t.Position]
		if !ok {
			prev, ok = e.index.Pixels[t.Position]
		}
		if !ok {
			return &Error{Code: ErrSignatureMismatch, Err: &tx.Error{Code: tx.ErrMissingPreviousTx, Msg: "no prior holder at position"}}
		}
		if t.Input != prev.Hash() {
			return &Error{Code: ErrSignatureMismatch, Msg: "input does not reference current holder"}
		}
		if err := t.VerifySignature(prev.Owner); err != nil {
			return &Error{Code: ErrSignatureMismatch, Err: err}
		}
		scratch[t.Position] = t
	}

	return nil
}

// isAdjacentToLivePixel reports whether pos is Manhattan-adjacent to any
// position currently held in pixels — the single state object spec §4.7
// defines, mutated only by confirm/unconfirm. A block on a side branch
// that hasn't yet become active is therefore validated against the
// currently active chain's pixels, not against its own branch's
// not-yet-confirmed history; it only needs to out-work the tip to get a
// chance to extend it.
func (e *Engine) isAdjacentToLivePixel(pos tx.Position) bool {
	for held := range e.index.Pixels {
		if pos.IsAdjacentTo(held) {
			return true
		}
	}
	return false
}

// ProposeNewBlock admits b to the block tree if valid, storing it and its
// transactions, recording its cumulative work, and performing a reorg if
// its work exceeds the current tip's (spec §4.7 "Block admission").
func (e *Engine) ProposeNewBlock(b *block.Block) (*ProposeResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	h := b.Hash()
	if _, known := e.index.Work[h]; known {
		// Idempotence (spec §8.6): proposing the same block twice is a
		// no-op after the first success.
		log.Debugf("block %s already known, ignoring", h)
		return &ProposeResult{}, nil
	}

	if err := b.Validate(); err != nil {
		log.Debugf("reject block: %v", err)
		return nil, err
	}
	if err := e.checkValidBlockLocked(b); err != nil {
		log.Debugf("reject block: %v", err)
		return nil, err
	}

	if err := e.blockStore.Set(b); err != nil {
		return nil, err
	}
	for _, t := range b.Transactions {
		if err := e.txStore.Set(t); err != nil {
			return nil, err
		}
	}

	parentWork := e.index.Work[b.Header.PrevHash]
	work := new(big.Int).Add(parentWork, block.WorkFor(b.Header.Bits))
	e.index.Prev[h] = b.Header.PrevHash
	e.index.Work[h] = work
	log.Debugf("accepted block %s at height %d with cumulative work %s", h, b.Header.Height, work)

	tipWork := e.index.Work[e.index.Tip]
	if work.Cmp(tipWork) <= 0 {
		return &ProposeResult{}, nil
	}

	log.Infof("block %s out-works current tip %s, reorganizing", h, e.index.Tip)
	return e.reorgTo(h)
}
