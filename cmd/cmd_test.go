// -- cmd/cmd_test.go --
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calyptra/storesuite/internal/observability"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	observability.ResetForTest()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCmd_VersionFlag(t *testing.T) {
	out, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestRootCmd_NoArgs(t *testing.T) {
	out, err := runCommand(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Storesuite drives admin-panel browser flows")
}

func TestCheckoutCmd(t *testing.T) {
	t.Run("prints the invoice", func(t *testing.T) {
		out, err := runCommand(t, "checkout")
		require.NoError(t, err)
		assert.Contains(t, out, "INVOICE")
		assert.Contains(t, out, "83596.00")
		assert.Contains(t, out, "75236.40")
		assert.Contains(t, out, "75333.20")
	})

	t.Run("writes the invoice file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invoice.txt")
		_, err := runCommand(t, "checkout", "--output", path, "--gateway", "cod")
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "cod_")
	})

	t.Run("express without discount", func(t *testing.T) {
		out, err := runCommand(t, "checkout", "--shipping", "express", "--discount-percent", "0")
		require.NoError(t, err)
		assert.Contains(t, out, "Shipping (Express)")
		assert.Contains(t, out, "83794.00")
	})

	t.Run("rejects unknown shipping method", func(t *testing.T) {
		_, err := runCommand(t, "checkout", "--shipping", "teleport")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "teleport")
	})

	t.Run("rejects unknown gateway", func(t *testing.T) {
		_, err := runCommand(t, "checkout", "--gateway", "paypal")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "paypal")
	})
}
