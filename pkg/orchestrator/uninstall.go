package orchestrator

import (
	"context"
	"fmt"
	"os"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/hooks"
	"github.com/packrat-tools/packrat/pkg/project"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// Uninstall removes a package's installed files from the project. It is
// independent of license status and never touches the registry entry. A
// missing target is a reported no-op, not an error.
func (o *Orchestrator) Uninstall(_ context.Context, id, projectRoot string, opts UninstallOptions) (*UninstallResult, error) {
	if !project.IsRoot(projectRoot) {
		return nil, errors.Wrapf(errors.ErrNotAProject, "%s", projectRoot)
	}

	if err := o.editorGuard(opts.Force); err != nil {
		return nil, err
	}

	pkg := registry.FindPackage(o.Packages, id)
	if pkg == nil {
		return nil, errors.Wrapf(errors.ErrPackageNotFound, "id %s", id)
	}

	target := project.InstallTarget(pkg, projectRoot)
	result := &UninstallResult{Target: target}

	if _, err := os.Stat(target); os.IsNotExist(err) {
		o.emit(Event{Phase: "done", ID: id, Msg: "not installed"})
		return result, nil
	}

	if !opts.Force && !o.confirm(fmt.Sprintf("Remove %s?", target), false) {
		return nil, errors.Wrap(errors.ErrAborted, "uninstall not confirmed")
	}

	if !project.Contains(projectRoot, target) {
		return nil, errors.Wrapf(errors.ErrTargetEscape, "%s outside %s", target, projectRoot)
	}

	hookCtx := hooks.Context{
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		TargetPath:  target,
		ProjectRoot: projectRoot,
	}
	o.runHook(projectRoot, hooks.PreUninstall, hookCtx)

	if err := os.RemoveAll(target); err != nil {
		project.AppendLog(projectRoot, "uninstall", id, "failed: "+err.Error())
		return nil, errors.Wrapf(err, "failed to remove %s", target)
	}
	result.Removed = true

	o.runHook(projectRoot, hooks.PostUninstall, hookCtx)

	o.emit(Event{Phase: "done", ID: id, Msg: target})
	project.AppendLog(projectRoot, "uninstall", id, "ok target="+target)
	return result, nil
}
