// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package block defines the pixel-chain block header and block: their fixed
// binary layout, proof-of-work target decoding, and Merkle-root
// self-consistency.
package block

import (
	"bytes"
	"io"
	"time"

	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/codec"
)

// CurrentVersion is the only header version this module produces.
const CurrentVersion uint32 = 1

// HeaderLen is the fixed size in bytes of a serialized Header: five u32
// fields plus two 32-byte hashes (spec §3).
const HeaderLen = 4*5 + chainhash.HashSize*2

// MaxTimeOffset is the furthest into the future a header's Time may sit
// relative to the validator's clock before ValidTimestamp rejects it.
const MaxTimeOffset = 7200 * time.Second

// Header is the fixed-size block header. Fields are serialized in this
// exact order, all little-endian (spec §3): version, height, time, bits,
// prevHash, merkleRoot, nonce.
type Header struct {
	Version    uint32
	Height     uint32
	Time       uint32
	Bits       uint32
	PrevHash   chainhash.Hash
	MerkleRoot chainhash.Hash
	Nonce      uint32
}

// Serialize writes the header's 84-byte binary encoding to w.
func (h *Header) Serialize(w io.Writer) error {
	if err := codec.WriteUint32LE(w, h.Version); err != nil {
		return err
	}
	if err := codec.WriteUint32LE(w, h.Height); err != nil {
		return err
	}
	if err := codec.WriteUint32LE(w, h.Time); err != nil {
		return err
	}
	if err := codec.WriteUint32LE(w, h.Bits); err != nil {
		return err
	}
	if err := codec.WriteBytes(w, h.PrevHash[:]); err != nil {
		return err
	}
	if err := codec.WriteBytes(w, h.MerkleRoot[:]); err != nil {
		return err
	}
	return codec.WriteUint32LE(w, h.Nonce)
}

// Bytes returns the header's 84-byte binary encoding.
func (h *Header) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderLen))
	_ = h.Serialize(buf)
	return buf.Bytes()
}

// DecodeHeader reads a Header from its binary encoding.
func DecodeHeader(r io.Reader) (*Header, error) {
	h := &Header{}

	var err error
	if h.Version, err = codec.ReadUint32LE(r); err != nil {
		return nil, err
	}
	if h.Height, err = codec.ReadUint32LE(r); err != nil {
		return nil, err
	}
	if h.Time, err = codec.ReadUint32LE(r); err != nil {
		return nil, err
	}
	if h.Bits, err = codec.ReadUint32LE(r); err != nil {
		return nil, err
	}
	prevBytes, err := codec.ReadBytes(r, chainhash.HashSize)
	if err != nil {
		return nil, err
	}
	copy(h.PrevHash[:], prevBytes)

	rootBytes, err := codec.ReadBytes(r, chainhash.HashSize)
	if err != nil {
		return nil, err
	}
	copy(h.MerkleRoot[:], rootBytes)

	if h.Nonce, err = codec.ReadUint32LE(r); err != nil {
		return nil, err
	}
	return h, nil
}

// Hash returns the header's identity hash: the double-SHA256 of its
// serialization, in internal (little-endian) byte order.
func (h *Header) Hash() chainhash.Hash {
	return chainhash.DoubleHashH(h.Bytes())
}

// ValidProofOfWork reports whether h's hash, read as a big-endian integer,
// is at or below the target decoded from Bits.
func (h *Header) ValidProofOfWork() bool {
	target := TargetDifficulty(h.Bits)
	hash := h.Hash()
	return HashToBig(&hash).Cmp(target) <= 0
}

// ValidTimestamp reports whether h.Time is not further than MaxTimeOffset
// into the future relative to now.
func (h *Header) ValidTimestamp(now time.Time) bool {
	maxTime := now.Add(MaxTimeOffset)
	return time.Unix(int64(h.Time), 0).Before(maxTime) || time.Unix(int64(h.Time), 0).Equal(maxTime)
}

// IncreaseNonce bumps h.Nonce by one. Callers that cache h.Hash() must
// discard the cached value after calling this; Header itself caches
// nothing, so no further action is required here.
func (h *Header) IncreaseNonce() {
	h.Nonce++
}
