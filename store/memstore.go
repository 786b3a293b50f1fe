// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import (
	"sync"

	"github.com/cryptopixels/pixelchain/block"
	"github.com/cryptopixels/pixelchain/tx"
)

// MemBlockStore is an in-memory, mutex-guarded BlockStore. It is the
// reference implementation used by tests and by embedding applications
// that don't need durability.
type MemBlockStore struct {
	mu     sync.RWMutex
	blocks map[string]*block.Block
}

// NewMemBlockStore returns an empty MemBlockStore.
func NewMemBlockStore() *MemBlockStore {
	return &MemBlockStore{blocks: make(map[string]*block.Block)}
}

func (s *MemBlockStore) Get(hash string) (*block.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[hash]
	if !ok {
		log.Debugf("block store miss for %s", hash)
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *MemBlockStore) Set(b *block.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[b.Hash().String()] = b
	log.Tracef("stored block %s", b.Hash())
	return nil
}

func (s *MemBlockStore) Has(hash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[hash]
	return ok, nil
}

// MemTransactionStore is an in-memory, mutex-guarded TransactionStore.
type MemTransactionStore struct {
	mu  sync.RWMutex
	txs map[string]*tx.Transaction
}

// NewMemTransactionStore returns an empty MemTransactionStore.
func NewMemTransactionStore() *MemTransactionStore {
	return &MemTransactionStore{txs: make(map[string]*tx.Transaction)}
}

func (s *MemTransactionStore) Get(hash string) (*tx.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.txs[hash]
	if !ok {
		log.Debugf("transaction store miss for %s", hash)
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *MemTransactionStore) Set(t *tx.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs[t.ID()] = t
	log.Tracef("stored transaction %s", t.ID())
	return nil
}

func (s *MemTransactionStore) Has(hash string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.txs[hash]
	return ok, nil
}
