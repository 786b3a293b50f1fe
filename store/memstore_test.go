// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/crypto"
	"github.com/cryptopixels/pixelchain/tx"
)

func TestMemBlockStoreRoundTrip(t *testing.T) {
	s := NewMemBlockStore()
	b := &block.Block{Header: block.Header{Height: 1}}

	ok, err := s.Has(b.Hash().String())
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(b))

	ok, err = s.Has(b.Hash().String())
	require.NoError(t, err)
	require.True(t, ok)

	got, err := s.Get(b.Hash().String())
	require.NoError(t, err)
	require.Equal(t, b, got)
}

func TestMemBlockStoreGetMissing(t *testing.T) {
	s := NewMemBlockStore()
	_, err := s.Get("does-not-exist")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemTransactionStoreRoundTrip(t *testing.T) {
	priv, err := crypto.GeneratePrivateKey()
	require.NoError(t, err)
	built, err := tx.NewBuilder().At(0, 0).To(priv.PubKey()).Colored(1).Sign(priv).Build()
	require.NoError(t, err)

	s := NewMemTransactionStore()
	require.NoError(t, s.Set(built))

	got, err := s.Get(built.ID())
	require.NoError(t, err)
	require.Equal(t, built, got)
}
