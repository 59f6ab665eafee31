package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2025, time.February, 11, 9, 30, 5, 0, time.UTC)

func TestNormalizeFilename(t *testing.T) {
	for in, want := range map[string]string{
		"Main hall 2025-02.JSON": "Main_hall_2025-02_20250211_093005.json",
		"../../etc/passwd":       "etcpasswd_20250211_093005",
		"çarşı camii.csv":        "ar_camii_20250211_093005.csv",
		".csv":                   "file_20250211_093005.csv",
	} {
		assert.Equal(t, want, normalizeFilename(in, stamp), in)
	}
}

func TestLocalStorageSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	ls := NewLocalStorage(dir)
	ls.now = func() time.Time { return stamp }

	url, err := ls.Save(context.Background(), "lobby 2025-02.csv", "text/csv", []byte("date,imsak\n"))
	require.NoError(t, err)
	assert.Equal(t, "/exports/lobby_2025-02_20250211_093005.csv", url)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/exports/")))
	require.NoError(t, err)
	assert.Equal(t, "date,imsak\n", string(data))
}
