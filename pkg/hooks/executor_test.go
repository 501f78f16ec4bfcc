package hooks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteBindsContext(t *testing.T) {
	exec := NewTengoExecutor()
	exec.AddScript(PostInstall, `
		err := ""
		if packageId != "big-rocks" { err = "wrong id" }
		if targetPath == "" { err = "missing target" }
	`)

	err := exec.Execute(PostInstall, Context{
		PackageID:  "big-rocks",
		TargetPath: "/proj/Content/AssetLib/big-rocks",
	})
	assert.NoError(t, err)
}

func TestExecuteScriptError(t *testing.T) {
	exec := NewTengoExecutor()
	exec.AddScript(PreInstall, `err := "refusing"`)

	err := exec.Execute(PreInstall, Context{PackageID: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHookScript)
	assert.Contains(t, err.Error(), "refusing")
}

func TestExecuteCompileFailure(t *testing.T) {
	exec := NewTengoExecutor()
	exec.AddScript(PreInstall, `this is not tengo ((`)

	err := exec.Execute(PreInstall, Context{PackageID: "x"})
	assert.ErrorIs(t, err, ErrHookExecution)
}

func TestExecuteMissingHookIsNoOp(t *testing.T) {
	exec := NewTengoExecutor()
	assert.NoError(t, exec.Execute(PostUninstall, Context{}))
	assert.False(t, exec.HasHook(PostUninstall))
}

func TestExecuteExtraVars(t *testing.T) {
	exec := NewTengoExecutor()
	exec.AddScript(PostInstall, `
		err := ""
		if flavor != "extra" { err = "flavor not bound" }
	`)

	err := exec.Execute(PostInstall, Context{Vars: map[string]interface{}{"flavor": "extra"}})
	assert.NoError(t, err)
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "post-install.tengo"), []byte(`err := ""`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pre-uninstall.tengo"), []byte(`err := ""`), 0o644))

	exec, err := LoadFromDir(dir)
	require.NoError(t, err)

	assert.True(t, exec.HasHook(PostInstall))
	assert.True(t, exec.HasHook(PreUninstall))
	assert.False(t, exec.HasHook(PreInstall))
	assert.False(t, exec.HasHook(PostUninstall))
}

func TestLoadFromMissingDir(t *testing.T) {
	exec, err := LoadFromDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	for _, hookType := range allHookTypes {
		assert.False(t, exec.HasHook(hookType))
	}
}

func TestProjectHooksDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/proj", ".packrat", "hooks"), ProjectHooksDir("/proj"))
}
