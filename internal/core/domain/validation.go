package domain

import (
	"strings"
)

const (
	MinBadgeNumberLength = 8
	MinPhoneLength       = 10
)

// ValidateBadgeNumber requires an all-digit string of at least 8 characters
func ValidateBadgeNumber(badge string) error {
	if !isDigits(badge) || len(badge) < MinBadgeNumberLength {
		return NewValidationError("badge_number", "badge_number must be numeric and at least 8 digits long")
	}
	return nil
}

// ValidatePhone requires an all-digit string of at least 10 characters
func ValidatePhone(phone string) error {
	if !isDigits(phone) || len(phone) < MinPhoneLength {
		return NewValidationError("phone", "phone number must be numeric and at least 10 digits long")
	}
	return nil
}

// ValidateReportStatus requires one of open, closed, pending
func ValidateReportStatus(status string) error {
	switch ReportStatus(status) {
	case StatusOpen, StatusClosed, StatusPending:
		return nil
	}
	return NewValidationError("status", "status must be one of open, closed, pending")
}

// ValidateRole requires one of officer, admin
func ValidateRole(role string) error {
	switch Role(role) {
	case RoleOfficer, RoleAdmin:
		return nil
	}
	return NewValidationError("role", "role must be one of officer, admin")
}

// ValidateRequired rejects empty or whitespace-only values
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, field+" is required")
	}
	return nil
}

// ValidateReference rejects a zero foreign key
func ValidateReference(field string, id uint) error {
	if id == 0 {
		return NewValidationError(field, field+" is required")
	}
	return nil
}

// FirstError returns the first non-nil error
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
