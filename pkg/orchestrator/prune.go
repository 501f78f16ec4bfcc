package orchestrator

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/policy"
	"github.com/packrat-tools/packrat/pkg/project"
)

// Prune removes the installed files of every registered package whose license
// status falls into the requested set. Candidates are presented before any
// removal; each removal is guarded independently so one failure never aborts
// the rest. Registry entries are left untouched.
func (o *Orchestrator) Prune(_ context.Context, projectRoot string, opts PruneOptions) (*PruneResult, error) {
	if !project.IsRoot(projectRoot) {
		return nil, errors.Wrapf(errors.ErrNotAProject, "%s", projectRoot)
	}

	statuses := opts.Statuses
	if len(statuses) == 0 {
		statuses = model.AllNonOKStatuses
	}

	result := &PruneResult{}
	for _, pkg := range o.Packages {
		status := policy.Classify(pkg, o.Licenses)
		if !slices.Contains(statuses, status) {
			continue
		}
		target := project.InstallTarget(pkg, projectRoot)
		if _, err := os.Stat(target); err != nil {
			continue // not installed
		}
		result.Candidates = append(result.Candidates, PruneItem{ID: pkg.ID, Status: status, Target: target})
		o.emit(Event{Phase: "prune", ID: pkg.ID, Msg: fmt.Sprintf("%s (%s)", target, status)})
	}

	if len(result.Candidates) == 0 || opts.DryRun {
		o.emit(Event{Phase: "done", Msg: fmt.Sprintf("%d candidates", len(result.Candidates))})
		return result, nil
	}

	if err := o.editorGuard(opts.Force); err != nil {
		return nil, err
	}
	if !opts.Force && !o.confirm(fmt.Sprintf("Remove the %d listed packages from the project?", len(result.Candidates)), false) {
		return nil, errors.Wrap(errors.ErrAborted, "prune not confirmed")
	}

	for i := range result.Candidates {
		item := &result.Candidates[i]
		if !project.Contains(projectRoot, item.Target) {
			item.Err = errors.Wrapf(errors.ErrTargetEscape, "%s outside %s", item.Target, projectRoot)
			continue
		}
		if err := os.RemoveAll(item.Target); err != nil {
			item.Err = errors.Wrapf(err, "failed to remove %s", item.Target)
			project.AppendLog(projectRoot, "prune", item.ID, "failed: "+err.Error())
			continue
		}
		result.Removed++
		project.AppendLog(projectRoot, "prune", item.ID, fmt.Sprintf("ok status=%s target=%s", item.Status, item.Target))
	}

	o.emit(Event{Phase: "done", Msg: fmt.Sprintf("removed %d of %d", result.Removed, len(result.Candidates))})
	return result, nil
}
