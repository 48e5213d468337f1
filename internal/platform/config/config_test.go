package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadPreviewDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadPreview(WithEnvFile(""), WithoutSystemEnv())
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "1001", cfg.ProductID)
	require.Equal(t, 5, cfg.PerPage)
	require.Equal(t, "dist/widget.wasm", cfg.WASMPath)
	require.Empty(t, cfg.ServerURL)
	require.Equal(t, 15*time.Second, cfg.ReadTimeout)
}

func TestLoadPreviewPrecedence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("# preview\nexport PREVIEW_ADDR=\":9000\"\nPREVIEW_PRODUCT_ID=2002\nPREVIEW_FIXTURES=a.yaml\n"), 0o600))

	cfg, err := LoadPreview(
		WithEnvFile(envFile),
		WithoutSystemEnv(),
		WithEnvMap(map[string]string{
			"PREVIEW_PRODUCT_ID":   "3003",
			"PREVIEW_SERVER_URL":   "https://reviews.example.com/",
			"PREVIEW_READ_TIMEOUT": "2s",
		}),
	)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Addr)
	require.Equal(t, "3003", cfg.ProductID)
	require.Equal(t, "a.yaml", cfg.FixturesPath)
	require.Equal(t, "https://reviews.example.com", cfg.ServerURL)
	require.Equal(t, 2*time.Second, cfg.ReadTimeout)
}

func TestLoadPreviewValidation(t *testing.T) {
	t.Parallel()

	_, err := LoadPreview(WithEnvFile(""), WithoutSystemEnv(), WithEnvMap(map[string]string{
		"PREVIEW_PER_PAGE":   "80",
		"PREVIEW_SERVER_URL": "reviews.example.com",
	}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"PREVIEW_PER_PAGE", "PREVIEW_SERVER_URL"}, verr.Fields())
}

func TestWidgetFromLookup(t *testing.T) {
	t.Parallel()

	values := map[string]string{"server": " https://reviews.example.com/ ", "productId": "1001"}
	cfg, err := WidgetFromLookup(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
	require.NoError(t, err)
	require.Equal(t, "https://reviews.example.com", cfg.ServerBaseURL)
	require.Equal(t, "1001", cfg.ProductID)
	require.Equal(t, "staff-review-widget", cfg.ContainerID)
	require.Equal(t, 5, cfg.PerPage)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestWidgetFromLookupRequiresServer(t *testing.T) {
	t.Parallel()

	_, err := WidgetFromLookup(func(string) (string, bool) { return "", false })
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"server"}, verr.Fields())
	require.Contains(t, err.Error(), "server")
}
