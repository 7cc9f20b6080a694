package snapshot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/Alias1177/positions/internal/platform/http"
)

const yamlDoc = `
Activo: EURUSD
Valor_mcdo: 1.0842
ATR_H4: 0.0031
is_valid_H4: true
Support_pivot_1_H4: 1.0801
direccion_H4: Alcista
`

func TestDecodeYAML(t *testing.T) {
	snap, err := Decode([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "EURUSD", snap.Asset())
	assert.InDelta(t, 1.0842, snap.Price(), 1e-12)
	assert.True(t, snap.Truthy("is_valid_H4"))
	assert.True(t, snap.Level("Support_pivot_1_H4").Valid)
}

func TestDecodeJSON(t *testing.T) {
	snap, err := Decode([]byte(`{"Activo": "BTCUSDT", "ATR_H4": 350, "Fib_78.6percent_H4": 64250.5}`))
	require.NoError(t, err)

	atr, ok := snap.Number("ATR_H4")
	require.True(t, ok)
	assert.Equal(t, 350.0, atr)
	assert.Equal(t, 64250.5, snap.Level("Fib_78.6percent_H4").Value)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode([]byte("   "))
	assert.ErrorIs(t, err, ErrEmptySnapshot)

	_, err = Decode([]byte("{}"))
	assert.ErrorIs(t, err, ErrEmptySnapshot)

	_, err = Decode([]byte(`{"ATR_H4": `))
	assert.Error(t, err)

	_, err = Decode([]byte("- a\n- b\n"))
	assert.Error(t, err)
}

func TestFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	snap, err := File{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EURUSD", snap.Asset())

	_, err = File{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	assert.Error(t, err)
}

func TestRemoteLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Activo": "XAUUSD", "Valor_mcdo": 2381.4}`))
	}))
	defer srv.Close()

	client := httpClient.NewClient(httpClient.ClientOptions{Timeout: time.Second})
	snap, err := NewRemote(srv.URL, client).Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "XAUUSD", snap.Asset())
	assert.Equal(t, 2381.4, snap.Price())
}
