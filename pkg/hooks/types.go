// Package hooks runs optional project-local Tengo scripts around install and
// uninstall operations. Hooks are best-effort extension points: a missing or
// failing hook warns and never aborts the operation that triggered it.
package hooks

// HookType represents the type of hook.
type HookType string

// Supported hook types. The value doubles as the script file stem under
// <project>/.packrat/hooks/ (e.g. post-install.tengo).
const (
	PreInstall    HookType = "pre-install"
	PostInstall   HookType = "post-install"
	PreUninstall  HookType = "pre-uninstall"
	PostUninstall HookType = "post-uninstall"
)

// Context contains information passed to a hook script.
type Context struct {
	PackageID   string
	PackageName string
	TargetPath  string
	ProjectRoot string
	Vars        map[string]interface{}
}

// Manager defines the interface for loading and executing hooks.
type Manager interface {
	// Execute runs the script for the given hook type, if one is loaded.
	Execute(hookType HookType, ctx Context) error

	// HasHook checks if a script of the specified type is loaded.
	HasHook(hookType HookType) bool
}
