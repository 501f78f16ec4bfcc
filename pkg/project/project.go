// Package project locates Unreal project roots, resolves deterministic
// install targets inside them, and writes the per-project operation log.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/inspect"
	"github.com/packrat-tools/packrat/pkg/model"
)

const (
	// ProjectDescriptorExt is the file extension of Unreal project descriptors.
	ProjectDescriptorExt = ".uproject"
	// ContentDirName is the primary content directory every project carries.
	ContentDirName = "Content"
	// AssetLibDirName is the subdirectory of Content owned by packrat.
	AssetLibDirName = "AssetLib"
	// PluginsDirName is the project plugin directory.
	PluginsDirName = "Plugins"
	// MetaDirName is the hidden project-local directory for packrat state.
	MetaDirName = ".packrat"
)

// FindRoot walks from start upward and returns the first directory containing
// both a .uproject descriptor and a Content directory. It returns
// ErrNotAProject when none is found.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errors.Wrapf(err, "invalid start path %s", start)
	}
	for dir := abs; ; dir = filepath.Dir(dir) {
		if IsRoot(dir) {
			return dir, nil
		}
		if filepath.Dir(dir) == dir {
			return "", errors.Wrapf(errors.ErrNotAProject, "no .uproject and Content directory found above %s", start)
		}
	}
}

// IsRoot reports whether dir holds a project descriptor and a Content
// directory.
func IsRoot(dir string) bool {
	if descriptorPath(dir) == "" {
		return false
	}
	st, err := os.Stat(filepath.Join(dir, ContentDirName))
	return err == nil && st.IsDir()
}

// descriptorPath returns the first .uproject file in dir, or "".
func descriptorPath(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ProjectDescriptorExt) {
			return filepath.Join(dir, e.Name())
		}
	}
	return ""
}

// projectDescriptor mirrors the .uproject fields we read.
type projectDescriptor struct {
	EngineAssociation string `json:"EngineAssociation"`
	Modules           []struct {
		Name string `json:"Name"`
	} `json:"Modules"`
}

// EngineVersion returns the project's declared engine version as major.minor,
// or nil when the descriptor is missing, unparseable, or carries a
// non-version association (such as a source-build GUID).
func EngineVersion(projectRoot string) *inspect.Version {
	desc := readDescriptor(projectRoot)
	if desc == nil {
		return nil
	}
	return inspect.ParseMajorMinor(desc.EngineAssociation)
}

// HasCompiledModules reports whether the project itself declares build
// modules (a code project rather than a blueprint-only one).
func HasCompiledModules(projectRoot string) bool {
	desc := readDescriptor(projectRoot)
	return desc != nil && len(desc.Modules) > 0
}

func readDescriptor(projectRoot string) *projectDescriptor {
	path := descriptorPath(projectRoot)
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var desc projectDescriptor
	if err := json.NewDecoder(f).Decode(&desc); err != nil {
		return nil
	}
	return &desc
}

// InstallTarget computes the deterministic install path for a package inside
// a project. It is a pure function of the package fields and the project
// root:
//
//	content → <projectRoot>/Content/AssetLib/<id>
//	plugin  → <projectRoot>/Plugins/<pluginFolderName-or-id>
func InstallTarget(pkg *model.Package, projectRoot string) string {
	if pkg.IsPlugin() {
		return filepath.Join(projectRoot, PluginsDirName, pkg.EffectiveFolderName())
	}
	return filepath.Join(projectRoot, ContentDirName, AssetLibDirName, pkg.ID)
}

// Contains reports whether path is root itself or a descendant of root. Both
// paths are resolved to absolute form first. Install and uninstall treat a
// false result as a fatal defensive abort.
func Contains(root, path string) bool {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
