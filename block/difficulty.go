// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"math/big"

	"github.com/cryptopixels/pixelchain/chainhash"
)

// DefaultBits is the compact-target difficulty used when an embedding
// application does not specify one of its own (spec §6).
const DefaultBits uint32 = 0x207fffff

// oneLsh256 is 2^256, the numerator of the work formula (spec §4.7).
var oneLsh256 = new(big.Int).Lsh(big.NewInt(1), 256)

// HashToBig interprets hash as a big-endian unsigned integer. Hashes are
// stored in little-endian (internal) byte order, so the bytes are reversed
// before conversion.
func HashToBig(hash *chainhash.Hash) *big.Int {
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// TargetDifficulty decodes a compact-target representation into the full
// target big.Int it stands for (spec §4.4): the low 24 bits are the
// mantissa, the high 8 bits are a base-256 exponent, and
// target = mantissa * 256^(exponent-3).
func TargetDifficulty(bits uint32) *big.Int {
	mantissa := bits & 0x00ffffff
	exponent := bits >> 24

	var target big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		target.SetInt64(int64(mantissa))
	} else {
		target.SetInt64(int64(mantissa))
		target.Lsh(&target, 8*(uint(exponent)-3))
	}
	return &target
}

// BigToCompact converts n into its compact-target representation, the
// inverse of TargetDifficulty.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var mantissa uint32
	exponent := uint((len(n.Bytes())))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent)<<24 | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// WorkFor returns the cumulative-work contribution of a block whose header
// carries the given compact-target bits: floor(2^256 / (target+1)) (spec
// §4.7, the "work function stub" open question resolved in favor of the
// real formula).
func WorkFor(bits uint32) *big.Int {
	target := TargetDifficulty(bits)
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}
	denominator := new(big.Int).Add(target, big.NewInt(1))
	return new(big.Int).Div(oneLsh256, denominator)
}
