// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/cryptopixels/pixelchain/chainhash"

// locatorRecentCount is the number of most-recent hashes emitted linearly
// before the gap between entries starts doubling (Bitcoin Core's
// convention, spec §4.7).
const locatorRecentCount = 10

// GetBlockLocator returns a sparse list of active-chain hashes, most
// recent first: the 10 most recent blocks, then blocks at exponentially
// increasing gaps (1, 2, 4, 8, …) down to genesis. Used by sync protocols
// to negotiate common ancestry with peers.
func (e *Engine) GetBlockLocator() []chainhash.Hash {
	e.mu.RLock()
	defer e.mu.RUnlock()
	locator := e.getBlockLocatorLocked()
	log.Tracef("built block locator with %d entries from tip %s", len(locator), e.index.Tip)
	return locator
}

func (e *Engine) getBlockLocatorLocked() []chainhash.Hash {
	if e.index.Tip == chainhash.Null {
		return nil
	}

	height := e.index.heightOf(e.index.Tip)
	var locator []chainhash.Hash

	step := int64(1)
	for height >= 0 {
		h, ok := e.index.HashByHeight[height]
		if !ok {
			break
		}
		locator = append(locator, h)
		if height == 0 {
			break
		}

		if len(locator) > locatorRecentCount {
			step *= 2
		}
		height -= step
		if height < 0 {
			height = 0
		}
	}

	return locator
}
