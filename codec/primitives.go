// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec implements the little-endian binary wire format shared by
// every consensus structure: fixed-width integers, fixed-length byte runs,
// and a Bitcoin-compatible CompactSize variable-length count.
package codec

import (
	"encoding/binary"
	"io"
)

// readFull reads exactly len(buf) bytes from r, translating io's sentinel
// errors into the DecodeError taxonomy this package exposes: running out of
// bytes before a field starts is UnexpectedEOF, running out partway through
// one is TruncatedInput.
func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	switch err {
	case nil:
		return nil
	case io.EOF:
		return newDecodeError(ErrUnexpectedEOF, "", err)
	case io.ErrUnexpectedEOF:
		return newDecodeError(ErrTruncatedInput, "", err)
	default:
		return err
	}
}

// ReadUint8 reads a single byte.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteUint8 writes a single byte.
func WriteUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

// ReadUint32LE reads a little-endian uint32.
func ReadUint32LE(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// WriteUint32LE writes a little-endian uint32.
func WriteUint32LE(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// ReadInt32LE reads a little-endian, two's-complement int32.
func ReadInt32LE(r io.Reader) (int32, error) {
	v, err := ReadUint32LE(r)
	return int32(v), err
}

// WriteInt32LE writes a little-endian, two's-complement int32.
func WriteInt32LE(w io.Writer, v int32) error {
	return WriteUint32LE(w, uint32(v))
}

// ReadBytes reads a fixed-length run of n bytes.
func ReadBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if n == 0 {
		return buf, nil
	}
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteBytes writes b verbatim.
func WriteBytes(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
