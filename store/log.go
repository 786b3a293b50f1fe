// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package store

import "github.com/cryptopixels/pixelchain/pixellog"

// log is the package-level logger, disabled by default — the same
// convention blockchain/log.go follows, mirroring the teacher's
// mempool/log.go, mining/log.go, and netsync/log.go.
var log pixellog.Logger = pixellog.Disabled

// UseLogger sets the logger used by this package.
func UseLogger(l pixellog.Logger) {
	log = l
}
