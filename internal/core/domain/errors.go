package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientFunds is matched by every *InsufficientFundsError.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidFund is returned when a campaign fund is not strictly positive.
	ErrInvalidFund = errors.New("campaign fund must be greater than zero")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrTransient marks persistence failures that may succeed when retried.
	ErrTransient = errors.New("transient storage error")
	// ErrFundConflict is returned when a campaign's reserved fund changed
	// between the read and the guarded write.
	ErrFundConflict = errors.New("campaign fund changed concurrently")
	// ErrReconciliationRequired is joined to an error when a compensation
	// could not be completed and a discrepancy was recorded instead.
	ErrReconciliationRequired = errors.New("manual reconciliation required")
)

// InsufficientFundsError reports a debit the wallet could not cover.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %s, available %s",
		e.Required.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// ValidationError names the offending field and why it was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError reports a missing record.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Invalid is a shorthand for building a *ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DiscrepancyNotFound reports a missing reconciliation record.
func DiscrepancyNotFound(id uuid.UUID) error {
	return fmt.Errorf("discrepancy %s: %w", id, ErrNotFound)
}

// CampaignNotFound is a shorthand for a missing campaign.
func CampaignNotFound(id int64) error {
	return &NotFoundError{Entity: "campaign", ID: id}
}

// Transient wraps err so that errors.Is(err, ErrTransient) holds.
func Transient(err error) error {
	if err == nil || errors.Is(err, ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}
