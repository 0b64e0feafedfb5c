// internal/datafeed/datafeed_test.go
package datafeed

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestReadRows(t *testing.T) {
	path := writeFile(t, "username,password\nadmin@yourstore.com,admin\nuser2@example.com,secret\n")

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{"username": "admin@yourstore.com", "password": "admin"}, rows[0])
	assert.Equal(t, Row{"username": "user2@example.com", "password": "secret"}, rows[1])
}

// Round-trip property: writing N rows under a username,password header and
// reading them back yields exactly N rows, in order, with both keys present.
func TestReadRowsRoundTrip(t *testing.T) {
	const n = 25
	path := filepath.Join(t.TempDir(), "roundtrip.csv")

	f, err := os.Create(path)
	require.NoError(t, err)
	w := csv.NewWriter(f)
	require.NoError(t, w.Write([]string{"username", "password"}))
	for i := 0; i < n; i++ {
		require.NoError(t, w.Write([]string{fmt.Sprintf("user%02d@example.com", i), fmt.Sprintf("pw-%02d", i)}))
	}
	w.Flush()
	require.NoError(t, w.Error())
	require.NoError(t, f.Close())

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, n)

	for i, row := range rows {
		assert.Equal(t, fmt.Sprintf("user%02d@example.com", i), row["username"], "Rows must come back in file order")
		assert.Contains(t, row, "password")
	}
}

func TestReadRowsEmptyDataSection(t *testing.T) {
	path := writeFile(t, "username,password\n")

	rows, err := ReadRows(path)
	require.NoError(t, err)
	assert.Empty(t, rows, "A header-only file has zero rows, not an error")
}

func TestReadRowsErrors(t *testing.T) {
	t.Run("absent file", func(t *testing.T) {
		_, err := ReadRows(filepath.Join(t.TempDir(), "nope.csv"))
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty file has no header", func(t *testing.T) {
		path := writeFile(t, "")
		_, err := ReadRows(path)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Contains(t, err.Error(), "missing header row")
	})

	t.Run("unterminated quote", func(t *testing.T) {
		path := writeFile(t, "username,password\n\"broken,row\n")
		_, err := ReadRows(path)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
	})

	t.Run("inconsistent column count", func(t *testing.T) {
		path := writeFile(t, "username,password\nonlyonecolumn\n")
		_, err := ReadRows(path)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.ErrorIs(t, err, csv.ErrFieldCount)
	})
}
