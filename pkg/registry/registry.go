// Package registry persists the package and license lists as ordered YAML
// documents. Writes are whole-document replacements via a temp file and an
// atomic rename; there are no partial field patches.
package registry

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/fsutil"
	"github.com/packrat-tools/packrat/pkg/model"
)

const (
	packagesFile = "registry.yaml"
	licensesFile = "licenses.yaml"
	yamlIndent   = 2
)

// packagesDoc is the on-disk shape of the registry document.
type packagesDoc struct {
	Packages []*model.Package `yaml:"packages"`
}

// licensesDoc is the on-disk shape of the license document.
type licensesDoc struct {
	Licenses []*model.License `yaml:"licenses"`
}

// Store loads and saves the registry documents under a data directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// NewDefaultStore creates a store rooted at the user data directory.
func NewDefaultStore() (*Store, error) {
	dir, err := fsutil.GetDataDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve data directory")
	}
	return NewStore(dir), nil
}

// PackagesPath returns the path of the registry document.
func (s *Store) PackagesPath() string { return filepath.Join(s.dir, packagesFile) }

// LicensesPath returns the path of the license document.
func (s *Store) LicensesPath() string { return filepath.Join(s.dir, licensesFile) }

// LoadPackages reads the registry document. A missing file yields an empty
// list, not an error.
func (s *Store) LoadPackages() ([]*model.Package, error) {
	var doc packagesDoc
	if err := loadYAML(s.PackagesPath(), &doc); err != nil {
		return nil, err
	}
	return doc.Packages, nil
}

// SavePackages replaces the registry document with the given list.
func (s *Store) SavePackages(pkgs []*model.Package) error {
	return saveYAML(s.PackagesPath(), &packagesDoc{Packages: pkgs})
}

// LoadLicenses reads the license document. A missing file yields an empty
// list, not an error.
func (s *Store) LoadLicenses() ([]*model.License, error) {
	var doc licensesDoc
	if err := loadYAML(s.LicensesPath(), &doc); err != nil {
		return nil, err
	}
	return doc.Licenses, nil
}

// SaveLicenses replaces the license document with the given list.
func (s *Store) SaveLicenses(lics []*model.License) error {
	return saveYAML(s.LicensesPath(), &licensesDoc{Licenses: lics})
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.Wrap(errors.ErrRegistryParse, err.Error())
	}
	return nil
}

func saveYAML(path string, doc interface{}) error {
	if err := fsutil.EnsureFileDir(path); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", path)
	}

	tempPath := path + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fsutil.FileModeDefault)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", tempPath)
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(doc); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.ErrRegistryEncode, err.Error())
	}
	_ = encoder.Close()
	if err := file.Close(); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrapf(err, "failed to close %s", tempPath)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}

// FindPackage returns the package with the given id, or nil.
func FindPackage(pkgs []*model.Package, id string) *model.Package {
	for _, p := range pkgs {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindLicense returns the license with the given id, or nil.
func FindLicense(lics []*model.License, id string) *model.License {
	for _, l := range lics {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// AddPackage appends pkg to the list, enforcing id uniqueness.
func AddPackage(pkgs []*model.Package, pkg *model.Package) ([]*model.Package, error) {
	if pkg.ID == "" {
		return pkgs, errors.ErrInvalidPackageID
	}
	if FindPackage(pkgs, pkg.ID) != nil {
		return pkgs, errors.Wrapf(errors.ErrPackageExists, "id %s", pkg.ID)
	}
	return append(pkgs, pkg), nil
}

// RemovePackage removes the package with the given id. The second return
// value reports whether anything was removed; removing a nonexistent id is a
// no-op.
func RemovePackage(pkgs []*model.Package, id string) ([]*model.Package, bool) {
	for i, p := range pkgs {
		if p.ID == id {
			return append(pkgs[:i], pkgs[i+1:]...), true
		}
	}
	return pkgs, false
}
