// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainhash provides the 32-byte hash type shared by every wire
// format and consensus structure in the chain. A Hash is always stored and
// transmitted in internal, little-endian byte order; the big-endian hex
// string produced by String is strictly a display convention for external
// identifiers such as transaction and block ids.
package chainhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// HashSize is the number of bytes in a Hash.
const HashSize = 32

// MaxHashStringSize is the maximum length of a Hash hash string.
const MaxHashStringSize = HashSize * 2

// Hash is a 32-byte array used to uniquely identify a transaction or block.
type Hash [HashSize]byte

// Null is the all-zero hash. A transaction's Input field equal to Null
// marks it as a coinbase; a block's PrevHash equal to Null marks it as
// genesis.
var Null Hash

// String returns the display form of the hash: hex-encoded, byte-reversed
// so that the most significant byte of the internal little-endian
// representation prints first, matching Bitcoin-family convention.
func (h Hash) String() string {
	var reversed Hash
	for i := 0; i < HashSize/2; i++ {
		reversed[i], reversed[HashSize-1-i] = h[HashSize-1-i], h[i]
	}
	return hex.EncodeToString(reversed[:])
}

// CloneBytes returns a copy of the raw, internal little-endian bytes of the
// hash.
func (h Hash) CloneBytes() []byte {
	b := make([]byte, HashSize)
	copy(b, h[:])
	return b
}

// SetBytes sets the hash to the internal-order bytes in newHash.
func (h *Hash) SetBytes(newHash []byte) error {
	if len(newHash) != HashSize {
		return fmt.Errorf("invalid hash length of %v, want %v", len(newHash),
			HashSize)
	}
	copy(h[:], newHash)
	return nil
}

// IsEqual returns whether target is the same as the hash. A nil target
// never equals a non-nil receiver; two nil hashes are considered equal.
func (h *Hash) IsEqual(target *Hash) bool {
	if h == nil && target == nil {
		return true
	}
	if h == nil || target == nil {
		return false
	}
	return *h == *target
}

// NewHash returns a new Hash from a byte slice in internal, little-endian
// order. An error is returned if the number of bytes passed in is not
// HashSize.
func NewHash(newHash []byte) (*Hash, error) {
	var h Hash
	if err := h.SetBytes(newHash); err != nil {
		return nil, err
	}
	return &h, nil
}

// NewHashFromStr creates a Hash from a display-form (big-endian) hex
// string, reversing it back to internal byte order.
func NewHashFromStr(s string) (*Hash, error) {
	var h Hash
	if err := Decode(&h, s); err != nil {
		return nil, err
	}
	return &h, nil
}

// Decode decodes the display-form (reversed) hex string encoding of a Hash
// into dst.
func Decode(dst *Hash, src string) error {
	if len(src) > MaxHashStringSize {
		return fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)
	}

	// Hex decoder expects the hash to be a multiple of two. When not, pad
	// with a leading zero.
	var srcBytes []byte
	if len(src)%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1, len(src)+1)
		srcBytes[0] = '0'
		srcBytes = append(srcBytes, src...)
	}

	var reversed Hash
	_, err := hex.Decode(reversed[HashSize-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return err
	}

	// Reverse decoded bytes to produce the internal byte order.
	for i, b := range reversed[:HashSize/2] {
		dst[i], dst[HashSize-1-i] = reversed[HashSize-1-i], b
	}

	return nil
}

// DoubleHashB calculates the double SHA-256 digest (SHA256(SHA256(b))) of
// the given byte slice.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates the double SHA-256 digest of the given byte slice
// and returns it as a Hash.
func DoubleHashH(b []byte) Hash {
	var h Hash
	copy(h[:], DoubleHashB(b))
	return h
}

// DoubleHashRaw calculates the double SHA-256 digest of whatever bytes the
// supplied callback writes into the provided hash.Hash and returns the
// result as a Hash in internal byte order. This lets serialization code
// stream directly into the digest without building an intermediate buffer.
func DoubleHashRaw(write func(w io.Writer) error) Hash {
	h := sha256.New()
	if err := write(h); err != nil {
		// The callback only ever serializes in-memory structures into an
		// in-memory hash.Hash; a failure here is a programming defect.
		panic(fmt.Sprintf("chainhash: write callback failed: %v", err))
	}
	return Hash(sha256.Sum256(h.Sum(nil)))
}
