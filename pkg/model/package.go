// Package model provides the data structures shared across packrat: tracked
// packages, license definitions, and the derived license status.
package model

import (
	version "github.com/hashicorp/go-version"
)

// PackageType distinguishes plain content packs from plugins.
type PackageType string

// Supported package types.
const (
	TypeContent PackageType = "content"
	TypePlugin  PackageType = "plugin"
)

// Package represents one trackable content or plugin unit in the registry.
// Optional fields are meaningful when empty: an empty LicenseID means the
// package has no license reference at all.
type Package struct {
	ID               string      `yaml:"id"`
	Name             string      `yaml:"name"`
	Source           string      `yaml:"source,omitempty"`
	CloudLocation    string      `yaml:"cloud_location,omitempty"`
	ArchiveLocation  string      `yaml:"archive_location,omitempty"`
	Categories       []string    `yaml:"categories,omitempty"`
	Tags             []string    `yaml:"tags,omitempty"`
	Notes            string      `yaml:"notes,omitempty"`
	LicenseID        string      `yaml:"license_id,omitempty"`
	Type             PackageType `yaml:"type"`
	PluginFolderName string      `yaml:"plugin_folder_name,omitempty"`
	TargetVersionTag string      `yaml:"target_version_tag,omitempty"`
}

// EffectiveFolderName returns the plugin folder name, falling back to the
// package id when none is set. Only meaningful for plugin packages.
func (p *Package) EffectiveFolderName() string {
	if p.PluginFolderName != "" {
		return p.PluginFolderName
	}
	return p.ID
}

// IsPlugin reports whether the package installs into the project Plugins tree.
func (p *Package) IsPlugin() bool {
	return p.Type == TypePlugin
}

// License represents one externally curated license definition. The
// Commercial flag is the sole machine-checkable predicate; Description and
// the referenced text file are never parsed for meaning.
type License struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	TextFile    string `yaml:"text_file,omitempty"`
	Commercial  bool   `yaml:"commercial_allowed"`
}

// LicenseStatus is the derived safety classification of a package's license
// reference. It is computed, never stored.
type LicenseStatus string

// The four possible classifications.
const (
	StatusOK            LicenseStatus = "OK"
	StatusNonCommercial LicenseStatus = "NON_COMMERCIAL"
	StatusUnknown       LicenseStatus = "UNKNOWN_LICENSE"
	StatusNoLicense     LicenseStatus = "NO_LICENSE"
)

// AllNonOKStatuses is the default candidate set for prune.
var AllNonOKStatuses = []LicenseStatus{StatusNonCommercial, StatusUnknown, StatusNoLicense}

// PolicyMode controls whether a non-OK license status blocks or merely warns.
type PolicyMode string

// Supported policy modes.
const (
	ModeRestrictive PolicyMode = "restrictive"
	ModePermissive  PolicyMode = "permissive"
)

// ValidMode reports whether s names a supported policy mode.
func ValidMode(s string) bool {
	return PolicyMode(s) == ModeRestrictive || PolicyMode(s) == ModePermissive
}

// MatchesVersionTag reports whether the package's coarse target version tag
// matches the given engine version at major.minor granularity. Unparseable or
// absent values match (the check is advisory only).
func (p *Package) MatchesVersionTag(engineVersion string) bool {
	if p.TargetVersionTag == "" || engineVersion == "" {
		return true
	}
	want, err := version.NewVersion(p.TargetVersionTag)
	if err != nil {
		return true
	}
	have, err := version.NewVersion(engineVersion)
	if err != nil {
		return true
	}
	ws, hs := want.Segments(), have.Segments()
	return ws[0] == hs[0] && ws[1] == hs[1]
}
