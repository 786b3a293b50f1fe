// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/cryptopixels/pixelchain/tx"
)

// positionKey renders a Position as a stable snapshot map key.
func positionKey(p tx.Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// parsePositionKey is the inverse of positionKey.
func parsePositionKey(key string) (tx.Position, error) {
	var p tx.Position
	_, err := fmt.Sscanf(key, "%d,%d", &p.X, &p.Y)
	if err != nil {
		return tx.Position{}, fmt.Errorf("blockchain: malformed position key %q: %w", key, err)
	}
	return p, nil
}
