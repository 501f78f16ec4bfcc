// Package errors defines sentinel errors shared across packrat and small
// helpers for wrapping them with context.
package errors

import "fmt"

// Common error types.
var (
	// Registry errors.
	ErrPackageNotFound   = fmt.Errorf("package not found")
	ErrPackageExists     = fmt.Errorf("package already registered")
	ErrRegistryParse     = fmt.Errorf("failed to parse registry document")
	ErrRegistryEncode    = fmt.Errorf("failed to encode registry document")
	ErrInvalidPackageID  = fmt.Errorf("invalid package id")
	ErrInvalidPath       = fmt.Errorf("invalid path")
	ErrLicenseNotFound   = fmt.Errorf("license not found")
	ErrLicenseViolation  = fmt.Errorf("license policy violation")
	ErrEditorRunning     = fmt.Errorf("the Unreal editor appears to be running")
	ErrNotAProject       = fmt.Errorf("not an Unreal project directory")
	ErrNoArchiveLocation = fmt.Errorf("package has no archive location")
	ErrNotAnArchive      = fmt.Errorf("downloaded payload is not a zip archive")
	ErrDownloadFailed    = fmt.Errorf("download failed")
	ErrEngineLevelPlugin = fmt.Errorf("archive is an engine-level plugin package")
	ErrMissingDescriptor = fmt.Errorf("no .uplugin descriptor found in archive")
	ErrEngineMismatch    = fmt.Errorf("plugin engine version does not match project")
	ErrTargetEscape      = fmt.Errorf("resolved install target escapes the project root")
	ErrAborted           = fmt.Errorf("operation aborted")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigEncode     = fmt.Errorf("failed to encode config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
