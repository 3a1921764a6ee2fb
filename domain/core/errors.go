package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Loader errors. None of these are fatal: every one routes the
	// load chain to synthetic fallback.
	ErrFileMissing = errors.New("spreadsheet file missing")
	ErrParse       = errors.New("spreadsheet parse error")
	ErrEmptyData   = errors.New("spreadsheet has no data rows")

	// Validator errors
	ErrSchemaViolation = errors.New("schema violation")

	// Registry errors
	ErrUnknownModule = errors.New("unknown module")

	// Writer errors - raised when the write-safety flags block an
	// on-disk operation.
	ErrReadOnlyMode      = errors.New("read-only mode active")
	ErrCreateDisabled    = errors.New("spreadsheet creation disabled")
	ErrOverwriteDisabled = errors.New("spreadsheet overwrite disabled")
)

// Error constructors with context
func NewFileMissingError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileMissing, path)
}

func NewParseError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrParse, path, cause)
}

func NewEmptyDataError(path string) error {
	return fmt.Errorf("%w: %s", ErrEmptyData, path)
}

func NewSchemaViolationError(module string, count int) error {
	return fmt.Errorf("%w: module %s has %d violation(s)", ErrSchemaViolation, module, count)
}

func NewUnknownModuleError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownModule, name)
}

// IsLoadError reports whether err belongs to the loader taxonomy.
// Load errors are expected branches, not failures: the caller falls
// back to synthetic generation.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrFileMissing) ||
		errors.Is(err, ErrParse) ||
		errors.Is(err, ErrEmptyData)
}

func IsUnknownModule(err error) bool {
	return errors.Is(err, ErrUnknownModule)
}

func IsSchemaViolation(err error) bool {
	return errors.Is(err, ErrSchemaViolation)
}

func IsWriteBlocked(err error) bool {
	return errors.Is(err, ErrReadOnlyMode) ||
		errors.Is(err, ErrCreateDisabled) ||
		errors.Is(err, ErrOverwriteDisabled)
}
