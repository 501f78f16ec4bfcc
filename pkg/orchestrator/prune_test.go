package orchestrator_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/orchestrator"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// prunePackages is a mixed registry: one OK, one non-commercial, one with an
// unknown license, one non-OK but never installed.
func prunePackages() []*model.Package {
	return []*model.Package{
		{ID: "ok-pack", Type: model.TypeContent, LicenseID: "mit"},
		{ID: "nc-pack", Type: model.TypeContent, LicenseID: "cc-by-nc"},
		{ID: "mystery", Type: model.TypeContent, LicenseID: "wat"},
		{ID: "nc-uninstalled", Type: model.TypeContent, LicenseID: "cc-by-nc"},
	}
}

func TestPruneSelectsInstalledNonOK(t *testing.T) {
	pkgs := prunePackages()
	f := newFixture(t, pkgs, okLicenses(), model.ModeRestrictive)

	okTarget := installFiles(t, f.root, pkgs[0])
	ncTarget := installFiles(t, f.root, pkgs[1])
	mysteryTarget := installFiles(t, f.root, pkgs[2])

	result, err := f.orch.Prune(context.Background(), f.root, orchestrator.PruneOptions{Force: true})
	require.NoError(t, err)

	require.Len(t, result.Candidates, 2)
	assert.Equal(t, 2, result.Removed)

	// The OK package survives, the non-OK installed ones are gone.
	_, statErr := os.Stat(okTarget)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(ncTarget)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(mysteryTarget)
	assert.True(t, os.IsNotExist(statErr))

	// Registry entries are never touched by prune.
	assert.NotNil(t, registry.FindPackage(f.orch.Packages, "nc-pack"))
	assert.NotNil(t, registry.FindPackage(f.orch.Packages, "mystery"))
	assert.False(t, f.orch.RegistryDirty)
}

func TestPruneDryRunRemovesNothing(t *testing.T) {
	pkgs := prunePackages()
	f := newFixture(t, pkgs, okLicenses(), model.ModeRestrictive)
	ncTarget := installFiles(t, f.root, pkgs[1])

	result, err := f.orch.Prune(context.Background(), f.root, orchestrator.PruneOptions{DryRun: true})
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Zero(t, result.Removed)
	_, statErr := os.Stat(ncTarget)
	assert.NoError(t, statErr)
}

func TestPruneStatusFilter(t *testing.T) {
	pkgs := prunePackages()
	f := newFixture(t, pkgs, okLicenses(), model.ModeRestrictive)
	ncTarget := installFiles(t, f.root, pkgs[1])
	mysteryTarget := installFiles(t, f.root, pkgs[2])

	result, err := f.orch.Prune(context.Background(), f.root, orchestrator.PruneOptions{
		Statuses: []model.LicenseStatus{model.StatusUnknown},
		Force:    true,
	})
	require.NoError(t, err)

	require.Len(t, result.Candidates, 1)
	assert.Equal(t, "mystery", result.Candidates[0].ID)

	_, statErr := os.Stat(ncTarget)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(mysteryTarget)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPruneNoCandidates(t *testing.T) {
	pkgs := prunePackages()
	f := newFixture(t, pkgs, okLicenses(), model.ModeRestrictive)
	installFiles(t, f.root, pkgs[0]) // only the OK package is installed

	result, err := f.orch.Prune(context.Background(), f.root, orchestrator.PruneOptions{})
	require.NoError(t, err)
	assert.Empty(t, result.Candidates)
	assert.Zero(t, result.Removed)
}

func TestPruneDeclinedAborts(t *testing.T) {
	pkgs := prunePackages()
	f := newFixture(t, pkgs, okLicenses(), model.ModeRestrictive)
	ncTarget := installFiles(t, f.root, pkgs[1])

	_, err := f.orch.Prune(context.Background(), f.root, orchestrator.PruneOptions{})
	assert.Error(t, err)

	_, statErr := os.Stat(ncTarget)
	assert.NoError(t, statErr)
}
