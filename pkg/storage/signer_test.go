package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenSignerRoundTrip(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)
	token, expiresAt, err := signer.Sign("batches-20250101.csv")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	name, verifiedExpiry, err := signer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "batches-20250101.csv", name)
	require.WithinDuration(t, expiresAt, verifiedExpiry, time.Second)
}

func TestTokenSignerRejectsExpired(t *testing.T) {
	signer := NewTokenSigner("secret", time.Nanosecond)
	token, _, err := signer.Sign("batches.csv")
	require.NoError(t, err)
	time.Sleep(time.Second + time.Millisecond)

	_, _, err = signer.Verify(token)
	require.ErrorContains(t, err, "expired")
}

func TestTokenSignerRejectsTampering(t *testing.T) {
	signer := NewTokenSigner("secret", time.Hour)
	token, _, err := signer.Sign("batches.csv")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	forged := "Zm9yZ2Vk" + "." + parts[1] + "." + parts[2]

	_, _, err = signer.Verify(forged)
	require.ErrorContains(t, err, "signature")

	_, _, err = NewTokenSigner("other-secret", time.Hour).Verify(token)
	require.ErrorContains(t, err, "signature")
}
