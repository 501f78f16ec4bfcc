package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packrat-tools/packrat/pkg/errors"
	"github.com/packrat-tools/packrat/pkg/model"
)

func testLicenses() []*model.License {
	return []*model.License{
		{ID: "mit", Name: "MIT", Commercial: true},
		{ID: "cc-by-nc", Name: "CC BY-NC 4.0", Commercial: false},
	}
}

func TestClassify(t *testing.T) {
	licenses := testLicenses()

	tests := []struct {
		name      string
		licenseID string
		want      model.LicenseStatus
	}{
		{name: "commercial license", licenseID: "mit", want: model.StatusOK},
		{name: "non-commercial license", licenseID: "cc-by-nc", want: model.StatusNonCommercial},
		{name: "unknown license id", licenseID: "does-not-exist", want: model.StatusUnknown},
		{name: "no license reference", licenseID: "", want: model.StatusNoLicense},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := &model.Package{ID: "pkg", LicenseID: tt.licenseID}
			assert.Equal(t, tt.want, Classify(pkg, licenses))
		})
	}
}

func TestClassifyEmptyLicenseSet(t *testing.T) {
	pkg := &model.Package{ID: "pkg", LicenseID: "mit"}
	assert.Equal(t, model.StatusUnknown, Classify(pkg, nil))
}

func TestEnforce(t *testing.T) {
	tests := []struct {
		name   string
		status model.LicenseStatus
		mode   model.PolicyMode
		want   Decision
	}{
		{name: "ok restrictive", status: model.StatusOK, mode: model.ModeRestrictive, want: Allow},
		{name: "ok permissive", status: model.StatusOK, mode: model.ModePermissive, want: Allow},
		{name: "non-commercial restrictive", status: model.StatusNonCommercial, mode: model.ModeRestrictive, want: Block},
		{name: "non-commercial permissive", status: model.StatusNonCommercial, mode: model.ModePermissive, want: Warn},
		{name: "unknown restrictive", status: model.StatusUnknown, mode: model.ModeRestrictive, want: Block},
		{name: "unknown permissive", status: model.StatusUnknown, mode: model.ModePermissive, want: Warn},
		{name: "no license restrictive", status: model.StatusNoLicense, mode: model.ModeRestrictive, want: Block},
		{name: "no license permissive", status: model.StatusNoLicense, mode: model.ModePermissive, want: Warn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Enforce(tt.status, tt.mode))
		})
	}
}

func TestGateBlocksInRestrictiveMode(t *testing.T) {
	pkg := &model.Package{ID: "nc-pack", LicenseID: "cc-by-nc"}

	status, decision, err := Gate(pkg, testLicenses(), model.ModeRestrictive)

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrLicenseViolation)
	assert.Contains(t, err.Error(), "NON_COMMERCIAL")
	assert.Equal(t, model.StatusNonCommercial, status)
	assert.Equal(t, Block, decision)
}

func TestGateWarnsInPermissiveMode(t *testing.T) {
	pkg := &model.Package{ID: "nc-pack", LicenseID: "cc-by-nc"}

	status, decision, err := Gate(pkg, testLicenses(), model.ModePermissive)

	require.NoError(t, err)
	assert.Equal(t, model.StatusNonCommercial, status)
	assert.Equal(t, Warn, decision)
}

func TestGateAllowsOK(t *testing.T) {
	pkg := &model.Package{ID: "ok-pack", LicenseID: "mit"}

	for _, mode := range []model.PolicyMode{model.ModeRestrictive, model.ModePermissive} {
		status, decision, err := Gate(pkg, testLicenses(), mode)
		require.NoError(t, err)
		assert.Equal(t, model.StatusOK, status)
		assert.Equal(t, Allow, decision)
	}
}
