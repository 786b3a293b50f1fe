// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/tx"
)

// reorgTo makes h the new tip (spec §4.7 "Reorg"). Callers must hold
// e.mu for writing. It walks back from h through Prev until it reaches a
// node with a defined Height — the common ancestor — then walks back
// from the current tip to that same ancestor. It unconfirms the old
// branch newest-first, then confirms the new branch oldest-first.
func (e *Engine) reorgTo(h chainhash.Hash) (*ProposeResult, error) {
	newBranch, ancestor := e.collectToAncestor(h)

	if depth := e.index.heightOf(e.index.Tip) - e.index.heightOf(ancestor); depth > int64(e.cfg.MaxRewind) {
		log.Warnf("refusing reorg to %s: common ancestor %s is %d blocks deep, exceeds MaxRewind %d",
			h, ancestor, depth, e.cfg.MaxRewind)
		return nil, &Error{Code: ErrReorgTooDeep}
	}

	oldBranch := e.collectDownTo(e.index.Tip, ancestor)
	log.Infof("reorg: unwinding %d block(s), applying %d block(s), common ancestor %s",
		len(oldBranch), len(newBranch), ancestor)

	result := &ProposeResult{}

	for _, oh := range oldBranch {
		ob, err := e.blockStore.Get(oh.String())
		if err != nil {
			return nil, err
		}
		if err := e.unconfirmLocked(ob); err != nil {
			return nil, err
		}
		result.Unconfirmed = append(result.Unconfirmed, oh)
	}

	for i := len(newBranch) - 1; i >= 0; i-- {
		nh := newBranch[i]
		nb, err := e.blockStore.Get(nh.String())
		if err != nil {
			return nil, err
		}
		if err := e.confirmLocked(nb); err != nil {
			return nil, err
		}
		result.Confirmed = append(result.Confirmed, nh)
	}

	return result, nil
}

// collectToAncestor walks back from h through Prev, accumulating hashes
// (h first) until it reaches a node with a defined Height, which it
// returns as the ancestor. The accumulated slice does not include the
// ancestor itself. h is a candidate block not yet on the active chain, so
// the first Height hit marks where it rejoins chain history.
func (e *Engine) collectToAncestor(h chainhash.Hash) (collected []chainhash.Hash, ancestor chainhash.Hash) {
	cur := h
	for {
		if cur == chainhash.Null {
			return collected, cur
		}
		if _, hasHeight := e.index.Height[cur]; hasHeight {
			return collected, cur
		}
		collected = append(collected, cur)
		cur = e.index.Prev[cur]
	}
}

// collectDownTo walks back from h through Prev, accumulating hashes (h
// first) until it reaches ancestor, which is not included in the returned
// slice. Unlike collectToAncestor, h itself may already have a Height
// entry (it's the current Tip), so the walk must be driven by a known
// target rather than by the first Height hit.
func (e *Engine) collectDownTo(h, ancestor chainhash.Hash) []chainhash.Hash {
	var collected []chainhash.Hash
	cur := h
	for cur != ancestor {
		if cur == chainhash.Null {
			panic(AssertError("walked past genesis without reaching the common ancestor"))
		}
		collected = append(collected, cur)
		cur = e.index.Prev[cur]
	}
	return collected
}

// confirmLocked applies Confirm's state transition (spec §4.7). Callers
// must hold e.mu for writing.
func (e *Engine) confirmLocked(b *block.Block) error {
	h := b.Hash()
	parent := b.Header.PrevHash

	if e.index.Tip != parent {
		panic(AssertError("confirm: block's parent is not the current tip"))
	}

	height := e.index.heightOf(parent) + 1
	e.index.Tip = h
	e.index.Height[h] = height
	e.index.Next[parent] = h
	e.index.HashByHeight[height] = h

	for _, t := range b.Transactions {
		e.index.Pixels[t.Position] = t
	}

	log.Debugf("confirmed block %s at height %d", h, height)
	e.notifyConfirm(b)
	return nil
}

// unconfirmLocked applies Unconfirm's state transition (spec §4.7).
// Callers must hold e.mu for writing.
func (e *Engine) unconfirmLocked(b *block.Block) error {
	h := b.Hash()
	if e.index.Tip != h {
		panic(AssertError("unconfirm: block is not the current tip"))
	}

	parent := b.Header.PrevHash
	oldHeight := e.index.heightOf(h)

	e.index.Tip = parent
	delete(e.index.Height, h)
	delete(e.index.Next, parent)
	delete(e.index.HashByHeight, oldHeight)

	// A position may be touched more than once within b (minted, then
	// transferred again in the same block). Confirm lets the *last*
	// touch win; restoring on unconfirm must therefore apply only the
	// *first* touch per position, since that's the one whose effect on
	// Pixels predates this block. Later touches of the same position
	// are internal to b and must be fully undone, not partially
	// reapplied.
	seen := make(map[tx.Position]bool, len(b.Transactions))
	for _, t := range b.Transactions {
		if seen[t.Position] {
			continue
		}
		seen[t.Position] = true

		if t.IsCoinbase() {
			delete(e.index.Pixels, t.Position)
			continue
		}
		prevTx, err := e.txStore.Get(t.Input.String())
		if err != nil {
			return err
		}
		e.index.Pixels[t.Position] = prevTx
	}

	log.Debugf("unconfirmed block %s, tip now %s", h, parent)
	e.notifyUnconfirm(b)
	return nil
}

// Prune discards Prev/Work entries for blocks that are not on the active
// chain and are not the parent of any known block (spec §4.7 "Pruning");
// an abandoned branch therefore loses only its current leaf per call: a known block
// that nothing else points to as a parent can never again become, or lie
// on the path to, a reorg target. Safe because fork-choice only ever
// revisits known-work ancestors within MaxRewind blocks of the tip, and
// ProposeNewBlock already refuses reorgs whose common ancestor lies
// deeper than that.
func (e *Engine) Prune() {
	e.mu.Lock()
	defer e.mu.Unlock()

	hasDescendant := make(map[chainhash.Hash]bool, len(e.index.Prev))
	for _, parent := range e.index.Prev {
		hasDescendant[parent] = true
	}

	pruned := 0
	for h := range e.index.Work {
		if h == chainhash.Null || h == e.index.Tip {
			continue
		}
		if hasDescendant[h] {
			continue
		}
		if _, onActiveChain := e.index.Height[h]; onActiveChain {
			continue
		}
		delete(e.index.Prev, h)
		delete(e.index.Work, h)
		pruned++
	}
	if pruned > 0 {
		log.Debugf("pruned %d dead block(s) from the index", pruned)
	}
}
