package orchestrator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/inspect"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/orchestrator"
	"github.com/packrat-tools/packrat/pkg/orchestrator/mocks"
	"github.com/packrat-tools/packrat/pkg/project"
)

type fixture struct {
	orch      *orchestrator.Orchestrator
	cache     *mocks.MockArchiveCache
	extractor *mocks.MockExtractor
	editor    *mocks.MockEditorDetector
	inspector *mocks.MockLayoutInspector
	root      string
}

// newFixture builds an orchestrator against a real temp project and mocked
// collaborators. The editor reports not-running unless a test overrides it.
func newFixture(t *testing.T, pkgs []*model.Package, lics []*model.License, mode model.PolicyMode) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		cache:     mocks.NewMockArchiveCache(ctrl),
		extractor: mocks.NewMockExtractor(ctrl),
		editor:    mocks.NewMockEditorDetector(ctrl),
		inspector: mocks.NewMockLayoutInspector(ctrl),
		root:      makeProject(t, `{"EngineAssociation": "5.3"}`),
	}
	f.editor.EXPECT().IsEditorRunning().Return(false).AnyTimes()
	f.orch = orchestrator.New(pkgs, lics, mode, f.cache, f.extractor, f.editor, f.inspector,
		model.ConfirmNever(), orchestrator.EventHooks{})
	return f
}

func makeProject(t *testing.T, descriptor string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Game.uproject"), []byte(descriptor), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Content"), 0o755))
	return root
}

func okLicenses() []*model.License {
	return []*model.License{
		{ID: "mit", Name: "MIT", Commercial: true},
		{ID: "cc-by-nc", Name: "CC BY-NC", Commercial: false},
	}
}

func contentPackage(id string) *model.Package {
	return &model.Package{
		ID:              id,
		Name:            "Test Pack",
		Type:            model.TypeContent,
		LicenseID:       "mit",
		ArchiveLocation: "http://example.invalid/" + id + ".zip",
	}
}

// expectExtraction wires the cache, extractor and inspector for one pass. The
// extractor materializes the given files under the extraction dir so apply has
// something real to move.
func (f *fixture) expectExtraction(t *testing.T, files map[string]string, layout *inspect.Layout) {
	t.Helper()
	f.cache.EXPECT().
		GetOrFetch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("/cache/archive.zip", nil)
	f.extractor.EXPECT().
		ExtractAll(gomock.Any(), "/cache/archive.zip", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, destDir string) error {
			for name, content := range files {
				path := filepath.Join(destDir, name)
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
				require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
			}
			return nil
		})
	f.inspector.EXPECT().Inspect(gomock.Any()).Return(layout, nil)
}

func TestInstallContentPackFlattensWrapper(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)
	f.expectExtraction(t, map[string]string{
		"MyPack/readme.txt":        "hello",
		"MyPack/Textures/wood.png": "png",
	}, &inspect.Layout{WrapperDir: "MyPack", TopLevelEntries: []string{"Textures", "readme.txt"}})

	result, err := f.orch.Install(context.Background(), "big-rocks", f.root, orchestrator.InstallOptions{})
	require.NoError(t, err)

	target := filepath.Join(f.root, "Content", "AssetLib", "big-rocks")
	assert.Equal(t, target, result.Target)
	assert.True(t, result.Flattened)
	assert.False(t, result.Previewed)

	// Wrapper contents landed directly in the target, without the wrapper.
	got, readErr := os.ReadFile(filepath.Join(target, "readme.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "hello", string(got))
	_, statErr := os.Stat(filepath.Join(target, "MyPack"))
	assert.True(t, os.IsNotExist(statErr))

	log, readErr := os.ReadFile(project.LogPath(f.root))
	require.NoError(t, readErr)
	assert.Contains(t, string(log), "install big-rocks ok")
}

func TestInstallNoWrapperKeepsTopLevel(t *testing.T) {
	pkg := contentPackage("two-packs")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)
	f.expectExtraction(t, map[string]string{
		"PackA/a.txt": "a",
		"PackB/b.txt": "b",
	}, &inspect.Layout{TopLevelEntries: []string{"PackA", "PackB"}})

	result, err := f.orch.Install(context.Background(), "two-packs", f.root, orchestrator.InstallOptions{})
	require.NoError(t, err)

	assert.False(t, result.Flattened)
	_, statErr := os.Stat(filepath.Join(result.Target, "PackA", "a.txt"))
	assert.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(result.Target, "PackB", "b.txt"))
	assert.NoError(t, statErr)
}

func TestPreviewMakesNoProjectChanges(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)
	f.expectExtraction(t, map[string]string{
		"MyPack/readme.txt": "hello",
	}, &inspect.Layout{WrapperDir: "MyPack", TopLevelEntries: []string{"readme.txt"}})

	result, err := f.orch.Install(context.Background(), "big-rocks", f.root, orchestrator.InstallOptions{PreviewOnly: true})
	require.NoError(t, err)

	assert.True(t, result.Previewed)
	assert.True(t, result.Flattened)
	assert.Equal(t, []string{"readme.txt"}, result.Entries)

	// The install target was never created.
	_, statErr := os.Stat(result.Target)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(f.root, "Content", "AssetLib"))
	assert.True(t, os.IsNotExist(statErr))

	log, readErr := os.ReadFile(project.LogPath(f.root))
	require.NoError(t, readErr)
	assert.Contains(t, string(log), "preview big-rocks no-op")
}

func TestPreviewLeavesExistingTargetAlone(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)

	target := filepath.Join(f.root, "Content", "AssetLib", "big-rocks")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0o644))

	f.expectExtraction(t, map[string]string{
		"MyPack/new.txt": "new",
	}, &inspect.Layout{WrapperDir: "MyPack", TopLevelEntries: []string{"new.txt"}})

	_, err := f.orch.Install(context.Background(), "big-rocks", f.root, orchestrator.InstallOptions{PreviewOnly: true})
	require.NoError(t, err)

	// Existing installed files untouched.
	got, readErr := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "keep", string(got))
	_, statErr := os.Stat(filepath.Join(target, "new.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstallBlockedByLicenseInRestrictiveMode(t *testing.T) {
	pkg := contentPackage("nc-pack")
	pkg.LicenseID = "cc-by-nc"
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)

	_, err := f.orch.Install(context.Background(), "nc-pack", f.root, orchestrator.InstallOptions{})
	assert.ErrorIs(t, err, errors.ErrLicenseViolation)

	log, readErr := os.ReadFile(project.LogPath(f.root))
	require.NoError(t, readErr)
	assert.Contains(t, string(log), "blocked: license NON_COMMERCIAL")
}

func TestInstallLicenseNotOverriddenByForce(t *testing.T) {
	pkg := contentPackage("no-lic")
	pkg.LicenseID = ""
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)

	_, err := f.orch.Install(context.Background(), "no-lic", f.root, orchestrator.InstallOptions{Force: true})
	assert.ErrorIs(t, err, errors.ErrLicenseViolation)
}

func TestInstallWarnsButProceedsInPermissiveMode(t *testing.T) {
	pkg := contentPackage("nc-pack")
	pkg.LicenseID = "cc-by-nc"
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModePermissive)
	f.expectExtraction(t, map[string]string{
		"Pack/a.txt": "a",
	}, &inspect.Layout{WrapperDir: "Pack", TopLevelEntries: []string{"a.txt"}})

	_, err := f.orch.Install(context.Background(), "nc-pack", f.root, orchestrator.InstallOptions{})
	assert.NoError(t, err)
}

func TestInstallEditorRunningBlocks(t *testing.T) {
	pkg := contentPackage("big-rocks")
	ctrl := gomock.NewController(t)
	editor := mocks.NewMockEditorDetector(ctrl)
	editor.EXPECT().IsEditorRunning().Return(true)

	orch := orchestrator.New([]*model.Package{pkg}, okLicenses(), model.ModeRestrictive,
		mocks.NewMockArchiveCache(ctrl), mocks.NewMockExtractor(ctrl), editor,
		mocks.NewMockLayoutInspector(ctrl), model.ConfirmNever(), orchestrator.EventHooks{})

	root := makeProject(t, `{}`)
	_, err := orch.Install(context.Background(), "big-rocks", root, orchestrator.InstallOptions{})
	assert.ErrorIs(t, err, errors.ErrEditorRunning)
}

func TestInstallPackageNotFound(t *testing.T) {
	f := newFixture(t, nil, okLicenses(), model.ModeRestrictive)
	_, err := f.orch.Install(context.Background(), "ghost", f.root, orchestrator.InstallOptions{})
	assert.ErrorIs(t, err, errors.ErrPackageNotFound)
}

func TestInstallNotAProject(t *testing.T) {
	f := newFixture(t, []*model.Package{contentPackage("x")}, okLicenses(), model.ModeRestrictive)
	_, err := f.orch.Install(context.Background(), "x", t.TempDir(), orchestrator.InstallOptions{})
	assert.ErrorIs(t, err, errors.ErrNotAProject)
}

func TestInstallNoArchiveLocation(t *testing.T) {
	pkg := contentPackage("no-archive")
	pkg.ArchiveLocation = ""
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)

	_, err := f.orch.Install(context.Background(), "no-archive", f.root, orchestrator.InstallOptions{})
	assert.ErrorIs(t, err, errors.ErrNoArchiveLocation)
}

func TestInstallExistingTargetDeclinedAborts(t *testing.T) {
	pkg := contentPackage("big-rocks")
	f := newFixture(t, []*model.Package{pkg}, okLicenses(), model.ModeRestrictive)

	target := filepath.Join(f.root, "Content", "AssetLib", "big-rocks")
	require.NoError(t, os.MkdirAll(target, 0o755))

	_, err := f.orch.Install(context.Background(), "big-rocks", f.root, orchestrator.InstallOptions{})
	assert.ErrorIs(t, err, errors.ErrAborted)

	_, statErr := os.Stat(target)
	assert.NoError(t, statErr, "declined overwrite must leave the target in place")
}
