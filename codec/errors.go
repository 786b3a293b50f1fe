// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package codec

import "fmt"

// DecodeErrorCode identifies the class of failure a Reader encountered.
type DecodeErrorCode int

const (
	// ErrUnexpectedEOF indicates the reader ran out of bytes before any
	// part of the next field could be read.
	ErrUnexpectedEOF DecodeErrorCode = iota

	// ErrTruncatedInput indicates a field began but its remaining bytes
	// were not available.
	ErrTruncatedInput

	// ErrBadVarInt indicates a malformed CompactSize prefix or payload.
	ErrBadVarInt

	// ErrBadPublicKey indicates a public key could not be parsed from its
	// encoded bytes.
	ErrBadPublicKey
)

func (c DecodeErrorCode) String() string {
	switch c {
	case ErrUnexpectedEOF:
		return "UnexpectedEOF"
	case ErrTruncatedInput:
		return "TruncatedInput"
	case ErrBadVarInt:
		return "BadVarInt"
	case ErrBadPublicKey:
		return "BadPublicKey"
	default:
		return "Unknown"
	}
}

// DecodeError is returned by every codec decode path on malformed input.
type DecodeError struct {
	Code DecodeErrorCode
	Msg  string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("codec: %s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("codec: %s", e.Code)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is a DecodeError with the same code, letting
// callers write errors.Is(err, &DecodeError{Code: ErrBadVarInt}).
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return other.Code == e.Code
}

func newDecodeError(code DecodeErrorCode, msg string, err error) *DecodeError {
	return &DecodeError{Code: code, Msg: msg, Err: err}
}
