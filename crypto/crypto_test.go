// Copyright (c) 2024 The Flokicoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()

	digest := DHash([]byte("pixel at (3,4) minted"))
	sig := Sign(priv, digest)

	require.True(t, Verify(pub, digest, sig))
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)
	other, err := GeneratePrivateKey()
	require.NoError(t, err)

	digest := DHash([]byte("payload"))
	sig := Sign(priv, digest)

	require.False(t, Verify(other.PubKey(), digest, sig))
}

func TestVerifyRejectsTamperedDigest(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	digest := DHash([]byte("payload"))
	sig := Sign(priv, digest)

	tampered := digest
	tampered[0] ^= 0xff

	require.False(t, Verify(priv.PubKey(), tampered, sig))
}

func TestSignatureSerializeRoundTrip(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)

	digest := DHash([]byte("payload"))
	sig := Sign(priv, digest)

	der := SerializeSignature(sig)
	require.LessOrEqual(t, len(der), MaxSignatureLen)

	parsed, err := ParseSignature(der)
	require.NoError(t, err)
	require.True(t, Verify(priv.PubKey(), digest, parsed))
}

func TestParseSignatureBadEncoding(t *testing.T) {
	_, err := ParseSignature([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)

	var ce *Error
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ErrBadSignatureEncoding, ce.Code)
}

func TestPubKeySerializeRoundTrip(t *testing.T) {
	priv, err := GeneratePrivateKey()
	require.NoError(t, err)
	pub := priv.PubKey()

	b := SerializePubKey(pub)
	require.Len(t, b, PubKeyBytesLenCompressed)

	parsed, err := ParsePubKey(b)
	require.NoError(t, err)
	require.True(t, pub.IsEqual(parsed))
}

func TestDHashDeterministic(t *testing.T) {
	a := DHash([]byte("same input"))
	b := DHash([]byte("same input"))
	require.Equal(t, a, b)

	c := DHash([]byte("different input"))
	require.NotEqual(t, a, c)
}
