package domain

import "errors"

var (
	// Store errors
	ErrCorruptDocument   = errors.New("stored document is corrupt")
	ErrUnsupportedSchema = errors.New("stored document has unsupported schema version")
	ErrArchiveNotFound   = errors.New("archive not found")

	// Entry errors
	ErrInvalidAmount    = errors.New("amount must not be negative")
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrEmptyCategory    = errors.New("category must not be empty")
	ErrEmptyDescription = errors.New("description must not be empty")

	// Company errors
	ErrEmptyDepartmentName = errors.New("department name must not be empty")
	ErrEmptyTaxRuleName    = errors.New("tax rule name must not be empty")
	ErrNegativeRate        = errors.New("tax rate must not be negative")
)
