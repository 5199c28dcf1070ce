package commands

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/balkashynov/swatch/internal/models"
)

func writeConfig(t *testing.T, baseURL, exportDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	body := fmt.Sprintf("[api]\nbase_url = %q\n\n[export]\ndir = %q\n", baseURL, exportDir)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestGenerateCommand(t *testing.T) {
	var seeds []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seeds = append(seeds, r.URL.Query().Get("hex"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"colors":[{"hex":{"value":"#AABBCC"}},{"hex":{"value":"#112233"}}]}`)
	}))
	t.Cleanup(server.Close)

	exportDir := t.TempDir()
	cfg := writeConfig(t, server.URL, exportDir)

	out, _, err := runRoot(t, "generate", "--config", cfg, "--seed", "abc", "--json", "--export")
	require.NoError(t, err)
	require.JSONEq(t, `["AABBCC","112233"]`, out)
	require.Equal(t, []string{"AABBCC"}, seeds)

	data, err := os.ReadFile(filepath.Join(exportDir, "color-palette.json"))
	require.NoError(t, err)
	require.JSONEq(t, `["AABBCC","112233"]`, string(data))

	out, _, err = runRoot(t, "generate", "--config", cfg, "--seed", "3a86ff", "--json=false", "--export=false")
	require.NoError(t, err)
	require.Equal(t, "#AABBCC\n#112233\n", out)
	require.Equal(t, "3A86FF", seeds[1])

	_, _, err = runRoot(t, "generate", "--config", cfg, "--seed", "nothex")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid seed")
}

func TestRenderSwatches(t *testing.T) {
	out := renderSwatches(models.Palette{"AABBCC", "112233"})
	require.Contains(t, out, "1 ")
	require.Contains(t, out, "#AABBCC")
	require.Contains(t, out, "#112233")
}

func TestPrintNotifier(t *testing.T) {
	var buf bytes.Buffer
	printNotifier{w: &buf}.Notify("Color copied", "AABBCC copied to clipboard.")
	require.Contains(t, buf.String(), "Color copied:")
	require.Contains(t, buf.String(), "AABBCC copied to clipboard.")
}

func TestHelpCommand(t *testing.T) {
	out, _, err := runRoot(t, "help")
	require.NoError(t, err)
	require.Contains(t, out, "generate")
	require.Contains(t, out, "color-palette.json")
}
