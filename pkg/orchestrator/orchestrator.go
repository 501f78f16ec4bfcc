// Package orchestrator coordinates the license gate, archive cache, download
// verification, extraction, and layout inspection into the install, preview,
// uninstall, and prune operations. Each operation walks a fixed sequence of
// states and fails from any of them with a specific error; temporary
// artifacts are cleaned up on every exit path.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packrat-tools/packrat/internal/logger"
	"github.com/packrat-tools/packrat/pkg/cache"
	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/fsutil"
	"github.com/packrat-tools/packrat/pkg/hooks"
	"github.com/packrat-tools/packrat/pkg/inspect"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/policy"
	"github.com/packrat-tools/packrat/pkg/project"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// Orchestrator ties the cache, extractor, inspector and editor detector
// together. Registry state is loaded by the caller and passed in explicitly;
// when an operation mutates it (the engine-level removal resolution),
// RegistryDirty is set and the caller persists the change.
type Orchestrator struct {
	Packages []*model.Package
	Licenses []*model.License
	Mode     model.PolicyMode

	Cache     ArchiveCache
	Extractor Extractor
	Editor    EditorDetector
	Inspector LayoutInspector
	Confirm   model.ConfirmFunc
	Events    EventHooks

	// RegistryDirty is set when Packages was mutated and must be saved.
	RegistryDirty bool
}

// New constructs an Orchestrator from existing managers. Helper for wiring.
func New(pkgs []*model.Package, lics []*model.License, mode model.PolicyMode,
	archiveCache ArchiveCache, extractor Extractor, ed EditorDetector,
	insp LayoutInspector, confirm model.ConfirmFunc, events EventHooks,
) *Orchestrator {
	return &Orchestrator{
		Packages:  pkgs,
		Licenses:  lics,
		Mode:      mode,
		Cache:     archiveCache,
		Extractor: extractor,
		Editor:    ed,
		Inspector: insp,
		Confirm:   confirm,
		Events:    events,
	}
}

func (o *Orchestrator) emit(e Event) {
	if o.Events.OnEvent != nil {
		o.Events.OnEvent(e)
	}
}

func (o *Orchestrator) confirm(msg string, defaultYes bool) bool {
	if o.Confirm == nil {
		return defaultYes
	}
	return o.Confirm(msg, defaultYes)
}

// Install runs the full install pipeline for one package. With
// opts.PreviewOnly it walks the identical validation path, including download
// and extraction, but makes zero filesystem changes under the project.
func (o *Orchestrator) Install(ctx context.Context, id, projectRoot string, opts InstallOptions) (*InstallResult, error) {
	if !project.IsRoot(projectRoot) {
		return nil, errors.Wrapf(errors.ErrNotAProject, "%s", projectRoot)
	}
	o.emit(Event{Phase: "project", ID: id, Msg: projectRoot})

	if err := o.editorGuard(opts.Force); err != nil {
		return nil, err
	}

	pkg := registry.FindPackage(o.Packages, id)
	if pkg == nil {
		return nil, errors.Wrapf(errors.ErrPackageNotFound, "id %s", id)
	}

	status, decision, err := policy.Gate(pkg, o.Licenses, o.Mode)
	if err != nil {
		project.AppendLog(projectRoot, "install", id, "blocked: license "+string(status))
		return nil, err
	}
	if decision == policy.Warn {
		logger.Warn("Proceeding despite license status", logger.Fields{"id": id, "status": status})
	}
	o.emit(Event{Phase: "license", ID: id, Msg: string(status)})

	if pkg.ArchiveLocation == "" {
		return nil, errors.Wrapf(errors.ErrNoArchiveLocation, "package %s", id)
	}

	target := project.InstallTarget(pkg, projectRoot)
	if !project.Contains(projectRoot, target) {
		// Unreachable given deterministic target construction; treated as a
		// logic error and never suppressed by any flag.
		return nil, errors.Wrapf(errors.ErrTargetEscape, "%s outside %s", target, projectRoot)
	}
	o.emit(Event{Phase: "target", ID: id, Msg: target})

	if _, err := os.Stat(target); err == nil {
		if opts.PreviewOnly {
			o.emit(Event{Phase: "target", ID: id, Msg: "existing target would be overwritten"})
		} else {
			if !opts.Force && !o.confirm(fmt.Sprintf("Target %s already exists. Remove and reinstall?", target), false) {
				return nil, errors.Wrap(errors.ErrAborted, "target exists")
			}
			if err := os.RemoveAll(target); err != nil {
				return nil, errors.Wrapf(err, "failed to remove existing target %s", target)
			}
		}
	}

	o.emit(Event{Phase: "fetch", ID: id, Msg: pkg.ArchiveLocation})
	archivePath, err := o.Cache.GetOrFetch(ctx, id, pkg.ArchiveLocation, cache.GetOptions{
		ForceRefetch:  opts.Refetch,
		Confirm:       o.Confirm,
		DiagnosticDir: filepath.Dir(projectRoot),
		Progress:      o.progressFunc(id),
	})
	if err != nil {
		project.AppendLog(projectRoot, "install", id, "failed: "+err.Error())
		return nil, err
	}
	o.emit(Event{Phase: "verify", ID: id, Msg: archivePath})

	extractDir, err := os.MkdirTemp("", "packrat-extract-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create extraction directory")
	}
	defer func() { _ = os.RemoveAll(extractDir) }()

	if err := o.Extractor.ExtractAll(ctx, archivePath, extractDir); err != nil {
		return nil, errors.Wrapf(err, "failed to extract %s", archivePath)
	}
	o.emit(Event{Phase: "extract", ID: id, Msg: extractDir})

	layout, err := o.Inspector.Inspect(extractDir)
	if err != nil {
		return nil, err
	}
	o.emit(Event{Phase: "inspect", ID: id, Msg: fmt.Sprintf("%d entries", len(layout.TopLevelEntries))})

	if pkg.IsPlugin() {
		if err := o.checkPlugin(pkg, layout, projectRoot, opts); err != nil {
			return nil, err
		}
	}
	o.softVersionTagCheck(pkg, projectRoot)
	o.emit(Event{Phase: "compat", ID: id})

	result := &InstallResult{
		Target:    target,
		Flattened: layout.WrapperDir != "",
		Entries:   layout.TopLevelEntries,
		Previewed: opts.PreviewOnly,
	}

	if opts.PreviewOnly {
		o.emit(Event{Phase: "preview", ID: id, Msg: target})
		project.AppendLog(projectRoot, "preview", id, "no-op")
		return result, nil
	}

	if err := o.apply(pkg, layout, extractDir, target, projectRoot); err != nil {
		project.AppendLog(projectRoot, "install", id, "failed: "+err.Error())
		return nil, err
	}
	o.emit(Event{Phase: "done", ID: id, Msg: target})
	project.AppendLog(projectRoot, "install", id,
		fmt.Sprintf("ok target=%s force=%t flattened=%t", target, opts.Force, result.Flattened))
	return result, nil
}

// editorGuard blocks when the editor is running; force downgrades the block
// to a warning.
func (o *Orchestrator) editorGuard(force bool) error {
	if o.Editor == nil || !o.Editor.IsEditorRunning() {
		return nil
	}
	if !force {
		return errors.Wrap(errors.ErrEditorRunning, "close the editor or rerun with --force")
	}
	logger.Warn("The editor appears to be running; continuing because of --force")
	return nil
}

// checkPlugin runs the plugin-specific validation: descriptor presence, the
// unconditional engine-level block, and the engine version comparison.
func (o *Orchestrator) checkPlugin(pkg *model.Package, layout *inspect.Layout, projectRoot string, opts InstallOptions) error {
	if layout.PluginDescriptorPath == "" {
		return errors.Wrapf(errors.ErrMissingDescriptor, "package %s cannot be installed as a plugin", pkg.ID)
	}

	if layout.EngineLevel {
		return o.resolveEngineLevel(pkg, projectRoot)
	}

	projVer := project.EngineVersion(projectRoot)
	if projVer != nil && layout.DeclaredVersion != nil {
		if err := o.engineCompat(pkg.ID, layout.DeclaredVersion, projVer, opts.Force); err != nil {
			project.AppendLog(projectRoot, "install", pkg.ID, "blocked: engine version mismatch")
			return err
		}
	}

	if layout.HasCompiledModules && !project.HasCompiledModules(projectRoot) {
		logger.Warn("Plugin declares compiled modules but the project has none; the project may need conversion to a code project",
			logger.Fields{"id": pkg.ID})
	}
	return nil
}

// resolveEngineLevel handles the hard engine-level package block. Force never
// overrides it. The user chooses between keeping the registry entry for
// informational tracking and removing it entirely; either way the install
// aborts.
func (o *Orchestrator) resolveEngineLevel(pkg *model.Package, projectRoot string) error {
	logger.Error("Archive is structured for the engine's own plugin tree and can never be installed into a project",
		logger.Fields{"id": pkg.ID})

	remove := o.confirm(fmt.Sprintf(
		"Remove %s from the registry entirely? (answering no keeps the entry for informational tracking)", pkg.ID), false)
	resolution := "kept in registry"
	if remove {
		o.Packages, _ = registry.RemovePackage(o.Packages, pkg.ID)
		o.RegistryDirty = true
		resolution = "removed from registry"
	}
	project.AppendLog(projectRoot, "install", pkg.ID, "blocked: engine-level package, "+resolution)
	return errors.Wrapf(errors.ErrEngineLevelPlugin, "package %s (%s)", pkg.ID, resolution)
}

// engineCompat compares the plugin's declared engine version against the
// project's. Any mismatch blocks by default; force downgrades it to a
// warning.
func (o *Orchestrator) engineCompat(id string, plugin, proj *inspect.Version, force bool) error {
	var msg string
	switch {
	case plugin.Major != proj.Major:
		msg = fmt.Sprintf("plugin targets engine %s but the project uses %s", plugin, proj)
	case plugin.Minor > proj.Minor:
		msg = fmt.Sprintf("plugin targets newer engine %s than the project's %s", plugin, proj)
	case plugin.Minor < proj.Minor:
		msg = fmt.Sprintf("plugin targets older engine %s than the project's %s; it will likely still load", plugin, proj)
	default:
		return nil
	}
	if !force {
		return errors.Wrapf(errors.ErrEngineMismatch, "%s: %s (rerun with --force to install anyway)", id, msg)
	}
	logger.Warn("Engine version mismatch, continuing because of --force", logger.Fields{"id": id, "detail": msg})
	return nil
}

// softVersionTagCheck compares the package's coarse target version tag to the
// project engine version. It warns only, never blocks.
func (o *Orchestrator) softVersionTagCheck(pkg *model.Package, projectRoot string) {
	projVer := project.EngineVersion(projectRoot)
	if projVer == nil {
		return
	}
	if !pkg.MatchesVersionTag(projVer.String()) {
		logger.Warn("Package version tag does not match the project engine version",
			logger.Fields{"id": pkg.ID, "tag": pkg.TargetVersionTag, "project": projVer.String()})
	}
}

// apply moves validated contents into the target, flattening one wrapper
// level when the layout calls for it, and runs the project hooks around the
// move (best-effort).
func (o *Orchestrator) apply(pkg *model.Package, layout *inspect.Layout, extractDir, target, projectRoot string) error {
	srcRoot := extractDir
	if layout.WrapperDir != "" {
		srcRoot = filepath.Join(extractDir, layout.WrapperDir)
	}

	hookCtx := hooks.Context{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		TargetPath:  target,
		ProjectRoot: projectRoot,
	}
	o.runHook(projectRoot, hooks.PreInstall, hookCtx)

	if err := fsutil.EnsureDir(target); err != nil {
		return errors.Wrapf(err, "failed to create target %s", target)
	}
	entries, err := os.ReadDir(srcRoot)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", srcRoot)
	}
	for _, e := range entries {
		src := filepath.Join(srcRoot, e.Name())
		dst := filepath.Join(target, e.Name())
		if err := fsutil.Move(src, dst); err != nil {
			return errors.Wrapf(err, "failed to place %s", e.Name())
		}
	}

	o.runHook(projectRoot, hooks.PostInstall, hookCtx)
	return nil
}

// runHook executes a project hook script if one exists. Hook failures warn
// and never abort the operation.
func (o *Orchestrator) runHook(projectRoot string, hookType hooks.HookType, ctx hooks.Context) {
	exec, err := hooks.LoadFromDir(hooks.ProjectHooksDir(projectRoot))
	if err != nil {
		logger.Warn("Failed to load project hooks", logger.Fields{"error": err.Error()})
		return
	}
	if !exec.HasHook(hookType) {
		return
	}
	if err := exec.Execute(hookType, ctx); err != nil {
		logger.Warn("Project hook failed", logger.Fields{"hook": string(hookType), "error": err.Error()})
	}
}

// progressFunc emits fetch progress events, percentage-based when the server
// declared a content length.
func (o *Orchestrator) progressFunc(id string) func(fetched, total int64) {
	lastPercent := -1
	return func(fetched, total int64) {
		if total <= 0 {
			return
		}
		percent := int(fetched * 100 / total)
		if percent != lastPercent {
			lastPercent = percent
			o.emit(Event{Phase: "fetch", ID: id, Msg: fmt.Sprintf("%d%%", percent)})
		}
	}
}

// ValidateDeep reuses the install validation path in preview mode; it has no
// logic of its own.
func (o *Orchestrator) ValidateDeep(ctx context.Context, id, projectRoot string) (*InstallResult, error) {
	return o.Install(ctx, id, projectRoot, InstallOptions{PreviewOnly: true})
}
