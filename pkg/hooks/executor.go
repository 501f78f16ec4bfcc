package hooks

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// TengoExecutor handles the execution of Tengo hook scripts.
type TengoExecutor struct {
	scripts map[HookType]string
	mutex   sync.RWMutex
}

// NewTengoExecutor creates a new Tengo script executor.
func NewTengoExecutor() *TengoExecutor {
	return &TengoExecutor{
		scripts: make(map[HookType]string),
	}
}

// Execute runs the script for the given hook type with the given context.
// Scripts may set an `err` variable (string or error) to report failure.
func (e *TengoExecutor) Execute(hookType HookType, ctx Context) error {
	e.mutex.RLock()
	script, exists := e.scripts[hookType]
	e.mutex.RUnlock()
	if !exists {
		return nil
	}

	instance := tengo.NewScript([]byte(script))
	instance.SetImports(stdlib.GetModuleMap("fmt", "os", "text", "times"))

	bindings := map[string]interface{}{
		"packageId":   ctx.PackageID,
		"packageName": ctx.PackageName,
		"targetPath":  ctx.TargetPath,
		"projectRoot": ctx.ProjectRoot,
	}
	for k, v := range bindings {
		if err := instance.Add(k, v); err != nil {
			return fmt.Errorf("failed to add %s to script: %w", k, err)
		}
	}
	for k, v := range ctx.Vars {
		if err := instance.Add(k, v); err != nil {
			return fmt.Errorf("failed to add variable %q to script: %w", k, err)
		}
	}

	compiled, err := instance.Run()
	if err != nil {
		return fmt.Errorf("%s: %w: %w", hookType, ErrHookExecution, err)
	}

	errVar := compiled.Get("err")
	if errVar != nil {
		switch v := errVar.Value().(type) {
		case error:
			return fmt.Errorf("%w: %w", ErrHookScript, v)
		case string:
			if v != "" {
				return fmt.Errorf("%w: %s", ErrHookScript, v)
			}
		}
	}
	return nil
}

// AddScript adds or updates a script for the specified hook type.
func (e *TengoExecutor) AddScript(hookType HookType, script string) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.scripts[hookType] = script
}

// HasHook checks if a script exists for the specified hook type.
func (e *TengoExecutor) HasHook(hookType HookType) bool {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	_, exists := e.scripts[hookType]
	return exists
}
