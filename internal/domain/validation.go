package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the ISO date layout used for entry dates and filter bounds.
// ISO dates compare correctly as plain strings, which the filter relies on.
const DateFormat = "2006-01-02"

// ValidateDate checks that s is a well-formed ISO date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// ValidateEntry checks a new entry before it is given an ID and stored.
func ValidateEntry(e *Entry) error {
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

// ValidateDepartment checks a new department.
func ValidateDepartment(d *Department) error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyDepartmentName
	}
	if d.Budget.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateTaxRule checks a new tax rule.
func ValidateTaxRule(r *TaxRule) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyTaxRuleName
	}
	if r.Rate.IsNegative() {
		return ErrNegativeRate
	}
	return nil
}

// ValidateAccount checks a new bank account. The opening balance may be any
// value, including negative (an overdrawn account).
func ValidateAccount(a *Account) error {
	if strings.TrimSpace(a.Bank) == "" {
		return fmt.Errorf("bank must not be empty")
	}
	return nil
}
