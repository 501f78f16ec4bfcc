package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/orchestrator"
	"github.com/packrat-tools/packrat/pkg/project"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// installFixture drops fake installed files at the package's target.
func installFiles(t *testing.T, root string, pkg *model.Package) string {
	t.Helper()
	target := project.InstallTarget(pkg, root)
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "file.txt"), []byte("x"), 0o644))
	return target
}

func TestUninstallRemovesTarget(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)
	target := installFiles(t, f.root, pkg)

	result, err := f.orch.Uninstall(context.Background(), "big-rocks", f.root, orchestrator.UninstallOptions{Force: true})
	require.NoError(t, err)

	assert.True(t, result.Removed)
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))

	// Registry entry stays.
	assert.NotNil(t, registry.FindPackage(f.orch.Packages, "big-rocks"))
	assert.False(t, f.orch.RegistryDirty)

	log, readErr := os.ReadFile(project.LogPath(f.root))
	require.NoError(t, readErr)
	assert.Contains(t, string(log), "uninstall big-rocks ok")
}

func TestUninstallMissingTargetIsNoOp(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)

	result, err := f.orch.Uninstall(context.Background(), "big-rocks", f.root, orchestrator.UninstallOptions{})
	require.NoError(t, err)
	assert.False(t, result.Removed)
}

func TestUninstallDeclinedAborts(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)
	target := installFiles(t, f.root, pkg)

	_, err := f.orch.Uninstall(context.Background(), "big-rocks", f.root, orchestrator.UninstallOptions{})
	assert.ErrorIs(t, err, errors.ErrAborted)

	_, statErr := os.Stat(target)
	assert.NoError(t, statErr)
}

func TestUninstallIgnoresLicenseStatus(t *testing.T) {
	// A blocked-for-install package can still be uninstalled.
	pkg := contentPackage("nc-pack")
	pkg.LicenseID = "cc-by-nc"
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)
	installFiles(t, f.root, pkg)

	result, err := f.orch.Uninstall(context.Background(), "nc-pack", f.root, orchestrator.UninstallOptions{Force: true})
	require.NoError(t, err)
	assert.True(t, result.Removed)
}

func TestUninstallPackageNotFound(t *testing.T) {
	f := newFixture(t, nil, okLicenses(), model.ModeRestrictive)
	_, err := f.orch.Uninstall(context.Background(), "ghost", f.root, orchestrator.UninstallOptions{})
	assert.ErrorIs(t, err, errors.ErrPackageNotFound)
}
