// Package policy implements the license gate that runs before every mutating
// operation. Classification is a pure function of a package and the current
// license set; enforcement maps the classification to a decision under the
// configured mode.
package policy

import (
	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/model"
	"github.com/packrat-tools/packrat/pkg/registry"
)

// Decision is the outcome of enforcing a license status under a policy mode.
type Decision int

// Possible decisions.
const (
	Allow Decision = iota
	Warn
	Block
)

// String returns the decision name.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Warn:
		return "warn"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Classify computes the license status of a package against the current
// license set. It is deterministic and total: every input maps to exactly one
// of the four statuses.
func Classify(pkg *model.Package, licenses []*model.License) model.LicenseStatus {
	if pkg.LicenseID == "" {
		return model.StatusNoLicense
	}
	lic := registry.FindLicense(licenses, pkg.LicenseID)
	if lic == nil {
		return model.StatusUnknown
	}
	if !lic.Commercial {
		return model.StatusNonCommercial
	}
	return model.StatusOK
}

// Enforce maps a license status to a decision under the given mode. OK always
// allows. In restrictive mode any other status blocks; in permissive mode it
// warns. Force flags never feed into this function: the license gate cannot
// be overridden in restrictive mode.
func Enforce(status model.LicenseStatus, mode model.PolicyMode) Decision {
	if status == model.StatusOK {
		return Allow
	}
	if mode == model.ModePermissive {
		return Warn
	}
	return Block
}

// Gate classifies and enforces in one step, returning the status together
// with an error when the decision is Block. The error names the failing
// status so callers can surface the specific rule that triggered.
func Gate(pkg *model.Package, licenses []*model.License, mode model.PolicyMode) (model.LicenseStatus, Decision, error) {
	status := Classify(pkg, licenses)
	decision := Enforce(status, mode)
	if decision == Block {
		return status, decision, errors.Wrapf(errors.ErrLicenseViolation,
			"package %s has license status %s under %s mode", pkg.ID, status, mode)
	}
	return status, decision, nil
}
