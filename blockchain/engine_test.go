// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/chainhash"
	"github.com/cryptopixels/pixelchain/crypto"
	"github.com/cryptopixels/pixelchain/store"
	"github.com/cryptopixels/pixelchain/tx"
)

type recordingListener struct {
	confirmed   []chainhash.Hash
	unconfirmed []chainhash.Hash
}

func (l *recordingListener) OnConfirm(b *block.Block)   { l.confirmed = append(l.confirmed, b.Hash()) }
func (l *recordingListener) OnUnconfirm(b *block.Block) { l.unconfirmed = append(l.unconfirmed, b.Hash()) }

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), store.NewMemBlockStore(), store.NewMemTransactionStore())
}

func mint(t *testing.T, x, y int32, color uint32) (*tx.Transaction, *crypto.PrivateKey) {
	t.Helper()
	priv, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	built, err := tx.NewBuilder().At(x, y).To(priv.PubKey()).Colored(color).Sign(priv).Build()
	require.NoError(t, err)
	return built, priv
}

func blockWith(height uint32, prevHash chainhash.Hash, bits uint32, txs []*tx.Transaction) *block.Block {
	b := &block.Block{
		Header: block.Header{
			Version:  block.CurrentVersion,
			Height:   height,
			Time:     1433037823 + height,
			Bits:     bits,
			PrevHash: prevHash,
		},
		Transactions: txs,
	}
	b.Header.MerkleRoot = block.MerkleRoot(txs)
	return b
}

func TestGenesisAccepted(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 0x13371337)
	genesis := blockWith(0, chainhash.Null, 0x1e0fffff, []*tx.Transaction{cb})

	result, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)
	require.Empty(t, result.Unconfirmed)
	require.Equal(t, []chainhash.Hash{genesis.Hash()}, result.Confirmed)

	require.Equal(t, genesis.Hash(), e.index.Tip)
	require.Equal(t, int64(0), e.GetCurrentHeight())
	require.Equal(t, cb.Hash(), e.index.Pixels[tx.Position{X: 0, Y: 0}].Hash())
}

func TestAdjacencyRejectAndAccept(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	farCb, _ := mint(t, 5, 5, 2)
	farBlock := blockWith(1, genesis.Hash(), block.DefaultBits, []*tx.Transaction{farCb})
	_, err = e.ProposeNewBlock(farBlock)
	require.Error(t, err)
	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrNonAdjacentCoinbase, ce.Code)

	nearCb, _ := mint(t, 1, 0, 2)
	nearBlock := blockWith(1, genesis.Hash(), block.DefaultBits, []*tx.Transaction{nearCb})
	result, err := e.ProposeNewBlock(nearBlock)
	require.NoError(t, err)
	require.Equal(t, []chainhash.Hash{nearBlock.Hash()}, result.Confirmed)
}

func TestDoubleMineRejected(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	cb2, _ := mint(t, 0, 0, 2)
	second := blockWith(1, genesis.Hash(), block.DefaultBits, []*tx.Transaction{cb2})
	_, err = e.ProposeNewBlock(second)
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrPixelAlreadyMined, ce.Code)
}

func TestTransferUpdatesOwner(t *testing.T) {
	e := newTestEngine()
	cb, genesisPriv := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	nextCb, _ := mint(t, 1, 0, 2)
	receiver, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	transfer, err := tx.NewBuilder().From(cb).To(receiver.PubKey()).Colored(1).Sign(genesisPriv).Build()
	require.NoError(t, err)

	b := blockWith(1, genesis.Hash(), block.DefaultBits, []*tx.Transaction{nextCb, transfer})
	result, err := e.ProposeNewBlock(b)
	require.NoError(t, err)
	require.Equal(t, []chainhash.Hash{b.Hash()}, result.Confirmed)

	require.True(t, e.index.Pixels[tx.Position{X: 0, Y: 0}].Owner.IsEqual(receiver.PubKey()))
}

func TestBadSignatureRejected(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	nextCb, _ := mint(t, 1, 0, 2)
	receiver, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	impostor, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	transfer, err := tx.NewBuilder().From(cb).To(receiver.PubKey()).Colored(1).Sign(impostor).Build()
	require.NoError(t, err)

	b := blockWith(1, genesis.Hash(), block.DefaultBits, []*tx.Transaction{nextCb, transfer})
	before := e.index.Pixels[tx.Position{X: 0, Y: 0}]

	_, err = e.ProposeNewBlock(b)
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrSignatureMismatch, ce.Code)

	var txErr *tx.Error
	require.ErrorAs(t, err, &txErr, "the chain-level rejection must still expose the tx-level cause")
	require.Equal(t, tx.ErrInvalidSignature, txErr.Code)

	require.Equal(t, before, e.index.Pixels[tx.Position{X: 0, Y: 0}])
	require.False(t, e.HasData(b.Hash()))
}

func TestReorgSwapsBranches(t *testing.T) {
	e := newTestEngine()
	listener := &recordingListener{}
	e.AddListener(listener)

	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	cb1, _ := mint(t, 1, 0, 1)
	h1 := blockWith(1, genesis.Hash(), 0x207fffff, []*tx.Transaction{cb1})
	_, err = e.ProposeNewBlock(h1)
	require.NoError(t, err)

	cb2, _ := mint(t, 0, 1, 1)
	h2 := blockWith(2, h1.Hash(), 0x207fffff, []*tx.Transaction{cb2})
	_, err = e.ProposeNewBlock(h2)
	require.NoError(t, err)

	require.Equal(t, h2.Hash(), e.index.Tip)

	cb1p, _ := mint(t, 2, 0, 1)
	h1p := blockWith(1, genesis.Hash(), 0x207fffff, []*tx.Transaction{cb1p})
	result, err := e.ProposeNewBlock(h1p)
	require.NoError(t, err)
	require.Empty(t, result.Confirmed, "a single same-difficulty block cannot yet out-work two")

	// h2p is still validated against the currently active h2 branch's
	// Pixels (reorg hasn't happened yet), not against h1p's own
	// not-yet-confirmed (2,0): (1,1) sits adjacent to (1,0) and (0,1),
	// both already live there.
	cb2p, _ := mint(t, 1, 1, 1)
	h2p := blockWith(2, h1p.Hash(), 0x1d00ffff, []*tx.Transaction{cb2p})
	result, err = e.ProposeNewBlock(h2p)
	require.NoError(t, err)

	require.Equal(t, []chainhash.Hash{h2.Hash(), h1.Hash()}, result.Unconfirmed)
	require.Equal(t, []chainhash.Hash{h1p.Hash(), h2p.Hash()}, result.Confirmed)
	require.Equal(t, h2p.Hash(), e.index.Tip)

	_, stillOnOldChain := e.index.Pixels[tx.Position{X: 1, Y: 0}]
	require.False(t, stillOnOldChain)
	_, onNewChain := e.index.Pixels[tx.Position{X: 2, Y: 0}]
	require.True(t, onNewChain)

	require.Equal(t, []chainhash.Hash{h2.Hash(), h1.Hash()}, listener.unconfirmed)
	require.Equal(t, []chainhash.Hash{genesis.Hash(), h1.Hash(), h2.Hash(), h1p.Hash(), h2p.Hash()}, listener.confirmed)
}

// TestUnconfirmMintThenTransferInSameBlock covers the case where a single
// block both mints a pixel and transfers it again before that block is
// later unconfirmed by a reorg: the position must end up fully absent from
// Pixels, not restored to the mint transaction.
func TestUnconfirmMintThenTransferInSameBlock(t *testing.T) {
	e := newTestEngine()

	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	cb1, cb1Priv := mint(t, 1, 0, 1)
	receiver, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	transfer, err := tx.NewBuilder().From(cb1).To(receiver.PubKey()).Colored(2).Sign(cb1Priv).Build()
	require.NoError(t, err)

	h1 := blockWith(1, genesis.Hash(), 0x207fffff, []*tx.Transaction{cb1, transfer})
	_, err = e.ProposeNewBlock(h1)
	require.NoError(t, err)
	require.True(t, e.index.Pixels[tx.Position{X: 1, Y: 0}].Owner.IsEqual(receiver.PubKey()))

	cb2, _ := mint(t, 0, 1, 1)
	h2 := blockWith(2, h1.Hash(), 0x207fffff, []*tx.Transaction{cb2})
	_, err = e.ProposeNewBlock(h2)
	require.NoError(t, err)

	// h1p/h2p are validated against the still-active h2 branch's Pixels
	// until they actually out-work it (validation precedes any reorg), so
	// both coinbases must sit adjacent to a pixel already live on that
	// branch: (0,0) from genesis and (1,0) from the transfer above.
	cb1p, _ := mint(t, 0, -1, 1)
	h1p := blockWith(1, genesis.Hash(), 0x207fffff, []*tx.Transaction{cb1p})
	result, err := e.ProposeNewBlock(h1p)
	require.NoError(t, err)
	require.Empty(t, result.Confirmed)

	cb2p, _ := mint(t, 1, -1, 1)
	h2p := blockWith(2, h1p.Hash(), 0x1d00ffff, []*tx.Transaction{cb2p})
	result, err = e.ProposeNewBlock(h2p)
	require.NoError(t, err)
	require.Equal(t, []chainhash.Hash{h2.Hash(), h1.Hash()}, result.Unconfirmed)

	_, stillPresent := e.index.Pixels[tx.Position{X: 1, Y: 0}]
	require.False(t, stillPresent, "position minted and transferred within the unconfirmed block must be fully absent")
}

func TestProposeSameBlockTwiceIsNoop(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})

	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	result, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)
	require.Empty(t, result.Confirmed)
	require.Empty(t, result.Unconfirmed)
}

func TestBlockLocatorIncludesGenesis(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	locator := e.GetBlockLocator()
	require.Equal(t, []chainhash.Hash{genesis.Hash()}, locator)
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	e := newTestEngine()
	cb, _ := mint(t, 0, 0, 1)
	genesis := blockWith(0, chainhash.Null, block.DefaultBits, []*tx.Transaction{cb})
	_, err := e.ProposeNewBlock(genesis)
	require.NoError(t, err)

	snap, err := e.index.ToObject()
	require.NoError(t, err)

	restored, err := FromObject(snap)
	require.NoError(t, err)

	require.Equal(t, e.index.Tip, restored.Tip)
	require.Equal(t, e.index.Height, restored.Height)
	require.Equal(t, e.index.HashByHeight, restored.HashByHeight)
	require.Equal(t, len(e.index.Pixels), len(restored.Pixels))
	require.Equal(t, cb.Hash(), restored.Pixels[tx.Position{X: 0, Y: 0}].Hash())
}
