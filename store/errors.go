// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "errors"

// ErrNotFound is returned by Get when the requested hash is absent.
var ErrNotFound = errors.New("store: not found")
