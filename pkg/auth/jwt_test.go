package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"library-manager/pkg/auth"
)

func newTokenManager() *auth.TokenManager {
	return auth.NewTokenManager(auth.Config{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  time.Minute,
		RefreshLifetime: time.Hour,
	})
}

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()
	tm := newTokenManager()

	token, err := tm.NewAccessToken("user-1", "Jan", "Kowalski")
	require.NoError(t, err)

	claims, err := tm.ParseAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "Jan", claims.FirstName)
	require.Equal(t, "Kowalski", claims.LastName)
}

func TestTokenManager_SecretsAreIndependent(t *testing.T) {
	t.Parallel()
	tm := newTokenManager()

	access, err := tm.NewAccessToken("user-1", "Jan", "Kowalski")
	require.NoError(t, err)
	refresh, err := tm.NewRefreshToken("user-1", "Jan", "Kowalski")
	require.NoError(t, err)

	_, err = tm.ParseRefreshToken(access)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
	_, err = tm.ParseAccessToken(refresh)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()
	tm := auth.NewTokenManager(auth.Config{
		AccessSecret:   "access-secret",
		AccessLifetime: -time.Minute,
	})

	token, err := tm.NewAccessToken("user-1", "Jan", "Kowalski")
	require.NoError(t, err)
	_, err = tm.ParseAccessToken(token)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	t.Parallel()
	tm := newTokenManager()
	_, err := tm.ParseAccessToken("not.a.token")
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
