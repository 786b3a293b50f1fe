// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/cryptopixels/pixelchain/block"

// ChainListener observes state transitions after they complete (spec §9,
// replacing the original's EventEmitter). Listeners are invoked in the
// documented order — unconfirms tip-down, then confirms root-up — strictly
// after the index mutation they describe. Listeners must not call back
// into the engine's mutation paths.
type ChainListener interface {
	OnConfirm(b *block.Block)
	OnUnconfirm(b *block.Block)
}

// notifyUnconfirm fans an unconfirm event out to every registered
// listener.
func (e *Engine) notifyUnconfirm(b *block.Block) {
	for _, l := range e.listeners {
		l.OnUnconfirm(b)
	}
}

// notifyConfirm fans a confirm event out to every registered listener.
func (e *Engine) notifyConfirm(b *block.Block) {
	for _, l := range e.listeners {
		l.OnConfirm(b)
	}
}

// AddListener registers l to receive future confirm/unconfirm
// notifications.
func (e *Engine) AddListener(l ChainListener) {
	e.listeners = append(e.listeners, l)
}
