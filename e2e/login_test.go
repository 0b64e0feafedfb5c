package e2e

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/storesuite/internal/datafeed"
)

// TestLoginFromCredentialFeed runs the login/logout round trip once per row
// of the credential CSV.
func TestLoginFromCredentialFeed(t *testing.T) {
	rows, err := datafeed.ReadRows(filepath.Join("testdata", "login_credentials.csv"))
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	for _, row := range rows {
		row := row
		t.Run(row["username"], func(t *testing.T) {
			ctx := context.Background()
			sess := acquireSession(t)

			login := loginAsAdminWith(t, sess, row["username"], row["password"])

			loggedIn, err := login.IsLoggedIn(ctx)
			require.NoError(t, err)
			assert.True(t, loggedIn, "dashboard should be visible after login")

			require.NoError(t, login.Logout(ctx))

			loggedOut, err := login.IsLoggedOut(ctx)
			require.NoError(t, err)
			assert.True(t, loggedOut, "login page should be visible after logout")
		})
	}
}
