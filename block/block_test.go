// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/crypto"
	"github.com/cryptopixels/pixelchain/tx"
)

func mintTx(t *testing.T, x, y int32, color uint32) *tx.Transaction {
	t.Helper()
	priv, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	built, err := tx.NewBuilder().At(x, y).To(priv.PubKey()).Colored(color).Sign(priv).Build()
	require.NoError(t, err)
	return built
}

func TestMerkleRootEmpty(t *testing.T) {
	require.Equal(t, chainhash.Null, MerkleRoot(nil))
}

func TestMerkleRootSingle(t *testing.T) {
	tr := mintTx(t, 0, 0, 1)
	require.Equal(t, tr.Hash(), MerkleRoot([]*tx.Transaction{tr}))
}

func TestMerkleRootOddDuplicatesLast(t *testing.T) {
	a := mintTx(t, 0, 0, 1)
	b := mintTx(t, 1, 0, 2)
	c := mintTx(t, 2, 0, 3)

	got := MerkleRoot([]*tx.Transaction{a, b, c})

	// Manual computation: level1 = [h(a,b), h(c,c)], root = h(level1[0], level1[1]).
	l1a := hashPair(a.Hash(), b.Hash())
	l1b := hashPair(c.Hash(), c.Hash())
	want := hashPair(l1a, l1b)

	require.Equal(t, want, got)
}

func TestBlockValidateSucceeds(t *testing.T) {
	cb := mintTx(t, 0, 0, 1)
	b := &Block{
		Header: Header{
			Version: CurrentVersion,
			Height:  0,
			Bits:    DefaultBits,
			Time:    uint32(time.Now().Unix()),
		},
		Transactions: []*tx.Transaction{cb},
	}
	b.Header.MerkleRoot = MerkleRoot(b.Transactions)

	require.NoError(t, b.Validate())
}

func TestBlockValidateRejectsEmpty(t *testing.T) {
	b := &Block{}
	err := b.Validate()
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, ErrEmptyTransactions, be.Code)
}

func TestBlockValidateRejectsBadMerkleRoot(t *testing.T) {
	cb := mintTx(t, 0, 0, 1)
	b := &Block{Transactions: []*tx.Transaction{cb}}

	err := b.Validate()
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, ErrInvalidMerkleRoot, be.Code)
}

func TestBlockValidateRejectsCoinbaseNotFirst(t *testing.T) {
	cb := mintTx(t, 0, 0, 1)
	priv, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	transfer, err := tx.NewBuilder().From(cb).To(priv.PubKey()).Colored(1).Sign(priv).Build()
	require.NoError(t, err)

	b := &Block{Transactions: []*tx.Transaction{transfer, cb}}
	b.Header.MerkleRoot = MerkleRoot(b.Transactions)

	err = b.Validate()
	require.Error(t, err)

	var be *Error
	require.ErrorAs(t, err, &be)
	require.Equal(t, ErrCoinbaseNotFirst, be.Code)
}

func TestHeaderCodecRoundTrip(t *testing.T) {
	h := &Header{
		Version:    CurrentVersion,
		Height:     7,
		Time:       1433037823,
		Bits:       0x1e0fffff,
		PrevHash:   chainhash.DoubleHashH([]byte("prev")),
		MerkleRoot: chainhash.DoubleHashH([]byte("root")),
		Nonce:      586081,
	}

	require.Len(t, h.Bytes(), HeaderLen)

	decoded, err := DecodeHeader(bytes.NewReader(h.Bytes()))
	require.NoError(t, err)
	require.Equal(t, h, decoded)
	require.Equal(t, h.Hash(), decoded.Hash())
}

func TestBlockCodecRoundTrip(t *testing.T) {
	cb := mintTx(t, 0, 0, 1)
	b := &Block{
		Header: Header{
			Version: CurrentVersion,
			Bits:    DefaultBits,
		},
		Transactions: []*tx.Transaction{cb},
	}
	b.Header.MerkleRoot = MerkleRoot(b.Transactions)

	decoded, err := DecodeBytes(b.Bytes())
	require.NoError(t, err)

	require.Equal(t, b.Header, decoded.Header)
	require.Len(t, decoded.Transactions, 1)
	require.Equal(t, cb.Hash(), decoded.Transactions[0].Hash())
	require.Equal(t, b.Hash(), decoded.Hash())
}

func TestValidTimestampRejectsFarFuture(t *testing.T) {
	now := time.Now()
	h := &Header{Time: uint32(now.Add(3 * time.Hour).Unix())}
	require.False(t, h.ValidTimestamp(now))

	h2 := &Header{Time: uint32(now.Unix())}
	require.True(t, h2.ValidTimestamp(now))
}

func TestTargetDifficultyRoundTripsThroughCompact(t *testing.T) {
	for _, bits := range []uint32{0x1e0fffff, 0x207fffff, 0x1d00ffff} {
		target := TargetDifficulty(bits)
		got := BigToCompact(target)
		require.Equal(t, bits, got, "bits 0x%x", bits)
	}
}

func TestWorkForIsMonotonicWithDifficulty(t *testing.T) {
	easy := WorkFor(0x207fffff)
	hard := WorkFor(0x1e0fffff)
	require.Equal(t, -1, easy.Cmp(hard), "lower target bits must yield more work")
}
