package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imgreport/imgreport/internal/platform/errors"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func runRoot(t *testing.T) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_FullRun(t *testing.T) {
	root := t.TempDir()
	gallery := filepath.Join(root, "outputs", "Gallery")
	require.NoError(t, os.MkdirAll(gallery, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(gallery, "a.png"), []byte("x"), 0o644))
	chdir(t, root)

	out, err := runRoot(t)
	require.NoError(t, err)

	assert.Contains(t, out, "[info] report built: ")
	assert.Contains(t, out, filepath.Join("Gallery", "report.html"))
	assert.Contains(t, out, "[info] index built: ")
	assert.Contains(t, out, "[info] done.")

	assert.FileExists(t, filepath.Join(gallery, "report.html"))
	assert.FileExists(t, filepath.Join(root, "site", "index.html"))
	assert.FileExists(t, filepath.Join(root, "index.html"))
}

func TestRootCmd_MissingOutputs(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	out, err := runRoot(t)
	require.Error(t, err)
	assert.True(t, errors.IsUsage(err))
	assert.NotContains(t, out, "done.")

	_, statErr := os.Stat(filepath.Join(root, "index.html"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}
