package hooks

import (
	"os"
	"path/filepath"

	"github.com/packrat-tools/packrat/pkg/errors"
)

// scriptExt is the hook script file extension.
const scriptExt = ".tengo"

// allHookTypes lists every hook the loader looks for.
var allHookTypes = []HookType{PreInstall, PostInstall, PreUninstall, PostUninstall}

// LoadFromDir loads any hook scripts present under dir into a new executor.
// A missing directory yields an executor with no hooks.
func LoadFromDir(dir string) (*TengoExecutor, error) {
	exec := NewTengoExecutor()
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return exec, nil
	}

	for _, hookType := range allHookTypes {
		path := filepath.Join(dir, string(hookType)+scriptExt)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrapf(ErrHookLoad, "%s: %v", path, err)
		}
		exec.AddScript(hookType, string(data))
	}
	return exec, nil
}

// ProjectHooksDir returns the hook script directory for a project.
func ProjectHooksDir(projectRoot string) string {
	return filepath.Join(projectRoot, ".packrat", "hooks")
}
