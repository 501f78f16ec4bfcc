// Package inspect examines an extracted archive tree and produces a layout
// descriptor: wrapper directory detection, plugin descriptor discovery,
// engine-level package classification, and declared version metadata.
package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/packrat-tools/packrat/pkg/errors"
)

// PluginDescriptorExt is the file extension of Unreal plugin descriptors.
const PluginDescriptorExt = ".uplugin"

// Layout describes the shape of an extracted archive.
type Layout struct {
	// WrapperDir is set when the extraction root contains exactly one
	// top-level directory and no top-level files. Install then flattens one
	// level: the wrapper's children are moved, not the wrapper itself.
	WrapperDir string

	// TopLevelEntries are the names of the entries that would be placed into
	// the install target (the wrapper's children when WrapperDir is set).
	TopLevelEntries []string

	// PluginDescriptorPath is the path of the first .uplugin found, relative
	// to the extraction root. Empty when the archive carries none.
	PluginDescriptorPath string

	// EngineLevel is true when the descriptor path contains an
	// Engine/Plugins segment sequence: the archive is structured for the
	// engine's own plugin tree, not a project. This classification is hard
	// and unconditional; no flag overrides it.
	EngineLevel bool

	// DeclaredVersion is the plugin's declared engine version, nil when
	// absent or unparseable.
	DeclaredVersion *Version

	// HasCompiledModules is true when the descriptor declares build modules.
	HasCompiledModules bool
}

// pluginDescriptor mirrors the fields of a .uplugin file we care about.
type pluginDescriptor struct {
	VersionName   string `json:"VersionName"`
	EngineVersion string `json:"EngineVersion"`
	Modules       []struct {
		Name string `json:"Name"`
		Type string `json:"Type"`
	} `json:"Modules"`
}

// Inspect walks an extracted directory tree and returns its layout.
func Inspect(extractRoot string) (*Layout, error) {
	entries, err := os.ReadDir(extractRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read extraction root %s", extractRoot)
	}

	layout := &Layout{}
	dirs, files := 0, 0
	for _, e := range entries {
		if e.IsDir() {
			dirs++
			layout.WrapperDir = e.Name()
		} else {
			files++
		}
	}
	if dirs != 1 || files != 0 {
		layout.WrapperDir = ""
	}

	contentRoot := extractRoot
	if layout.WrapperDir != "" {
		contentRoot = filepath.Join(extractRoot, layout.WrapperDir)
	}
	contentEntries, err := os.ReadDir(contentRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", contentRoot)
	}
	for _, e := range contentEntries {
		layout.TopLevelEntries = append(layout.TopLevelEntries, e.Name())
	}

	descPath, err := findPluginDescriptor(extractRoot)
	if err != nil {
		return nil, err
	}
	if descPath == "" {
		return layout, nil
	}
	layout.PluginDescriptorPath = descPath
	layout.EngineLevel = IsEngineLevelPath(descPath)

	desc, err := readDescriptor(filepath.Join(extractRoot, descPath))
	if err != nil {
		// A malformed descriptor leaves version metadata empty; the install
		// decision does not depend on it.
		return layout, nil
	}
	layout.DeclaredVersion = ParseMajorMinor(desc.EngineVersion)
	if layout.DeclaredVersion == nil {
		layout.DeclaredVersion = ParseMajorMinor(desc.VersionName)
	}
	layout.HasCompiledModules = len(desc.Modules) > 0

	return layout, nil
}

// findPluginDescriptor searches the tree for the shallowest .uplugin file and
// returns its path relative to root, or "" when none exists.
func findPluginDescriptor(root string) (string, error) {
	var found string
	foundDepth := -1
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), PluginDescriptorExt) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := strings.Count(rel, string(os.PathSeparator))
		if foundDepth == -1 || depth < foundDepth {
			found, foundDepth = rel, depth
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to search %s for plugin descriptors", root)
	}
	return found, nil
}

// IsEngineLevelPath reports whether a descriptor path (relative to the
// extraction root, either slash convention) contains an Engine/Plugins
// segment sequence.
func IsEngineLevelPath(path string) bool {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for i := 0; i+1 < len(segments); i++ {
		if strings.EqualFold(segments[i], "Engine") && strings.EqualFold(segments[i+1], "Plugins") {
			return true
		}
	}
	return false
}

func readDescriptor(path string) (*pluginDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open descriptor %s", path)
	}
	defer func() { _ = f.Close() }()

	var desc pluginDescriptor
	if err := json.NewDecoder(f).Decode(&desc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode descriptor %s", path)
	}
	return &desc, nil
}
