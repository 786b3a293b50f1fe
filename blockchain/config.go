// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	flags "github.com/jessevdk/go-flags"

	"github.com/cryptopixels/pixelchain/block"
)

// Config carries the chain parameters the engine needs beyond what's
// fixed by the wire format. CLI is out of this module's scope, but the
// struct tags follow the teacher's go-flags convention
// (config.go/loadConfig) so an embedding application's thin CLI wrapper
// can parse these directly without modification.
type Config struct {
	MaxRewind      uint32 `long:"maxrewind" description:"maximum reorg depth, in blocks, from the current tip" default:"100"`
	DefaultBits    uint32 `long:"defaultbits" description:"default compact-target difficulty for new chains" default:"545259519"`
	MaxTimeOffsetS int64  `long:"maxtimeoffset" description:"furthest a header's timestamp may sit into the future, in seconds" default:"7200"`
	CurrentVersion uint32 `long:"chainversion" description:"block and transaction version this engine produces" default:"1"`
}

// DefaultConfig returns the chain parameters spec §6 names as constants:
// MaxRewind 100, DefaultBits 0x207fffff, MaxTimeOffset 7200s,
// CurrentVersion 1.
func DefaultConfig() *Config {
	return &Config{
		MaxRewind:      100,
		DefaultBits:    block.DefaultBits,
		MaxTimeOffsetS: 7200,
		CurrentVersion: block.CurrentVersion,
	}
}

// ParseConfig parses args (typically os.Args[1:]) against the struct tags
// on Config using the same flag library and default-then-parse flow the
// teacher's cmd/flokicoind-cli/config.go uses for its own configuration.
// This engine has no CLI of its own — the hook exists so a thin embedding
// wrapper can expose these parameters on its command line without
// redeclaring them.
func ParseConfig(args []string) (*Config, error) {
	cfg := DefaultConfig()
	parser := flags.NewParser(cfg, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
