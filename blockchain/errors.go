// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// ErrorCode identifies the class of chain-level rule a proposed block
// violated.
type ErrorCode int

const (
	// ErrUnknownParent indicates the block's PrevHash is not a known
	// ancestor.
	ErrUnknownParent ErrorCode = iota

	// ErrNonAdjacentCoinbase indicates the coinbase's position is not
	// Manhattan-adjacent to any live pixel (and the block is not
	// genesis).
	ErrNonAdjacentCoinbase

	// ErrPixelAlreadyMined indicates the coinbase's position is already
	// held on the active chain.
	ErrPixelAlreadyMined

	// ErrSignatureMismatch indicates a non-coinbase transaction's
	// signature failed to verify against the resolved previous owner, no
	// previous holder exists at its position, or its Input does not name
	// that holder.
	ErrSignatureMismatch

	// ErrNonContiguousConfirm indicates Confirm was called on a block
	// whose parent is not the current tip.
	ErrNonContiguousConfirm

	// ErrNonTipUnconfirm indicates Unconfirm was called on a block that
	// is not the current tip.
	ErrNonTipUnconfirm

	// ErrReorgTooDeep indicates a reorg's common ancestor lies deeper
	// than MaxRewind blocks from the tip.
	ErrReorgTooDeep
)

func (c ErrorCode) String() string {
	switch c {
	case ErrUnknownParent:
		return "UnknownParent"
	case ErrNonAdjacentCoinbase:
		return "NonAdjacentCoinbase"
	case ErrPixelAlreadyMined:
		return "PixelAlreadyMined"
	case ErrSignatureMismatch:
		return "SignatureMismatch"
	case ErrNonContiguousConfirm:
		return "NonContiguousConfirm"
	case ErrNonTipUnconfirm:
		return "NonTipUnconfirm"
	case ErrReorgTooDeep:
		return "ReorgTooDeep"
	default:
		return "Unknown"
	}
}

// Error is a chain-level rule violation. ProposeNewBlock returns one of
// these when it rejects a block. For every code except ErrReorgTooDeep the
// rejection leaves all state untouched; a block refused with
// ErrReorgTooDeep has already been stored and recorded in Prev and Work,
// but does not become the tip.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("blockchain: %s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("blockchain: %s", e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Code == e.Code
}

// AssertError identifies a programming defect: a reorg invariant
// (contiguity, tip identity) that should be structurally impossible was
// violated. It is never recovered — mirroring the teacher's own
// AssertError, which panics rather than propagating as an ordinary error
// (spec §7).
type AssertError string

func (e AssertError) Error() string {
	return "blockchain assertion failed: " + string(e)
}
