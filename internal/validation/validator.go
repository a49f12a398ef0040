package validation

import (
	"regexp"
	"strings"
	"time"

	"backoffice/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	dateRegex *regexp.Regexp
	config    *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		dateRegex: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		config:    nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		dateRegex: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		config:    cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks if a description length is within configured limits
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 1, v.getDescriptionMaxLength())
}

// IsValidDateString checks if a string is a well-formed YYYY-MM-DD calendar day
func (v *Validator) IsValidDateString(date string) bool {
	if !v.dateRegex.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// IsValidTimeRange checks if start time is strictly before end time
func (v *Validator) IsValidTimeRange(startTime time.Time, endTime *time.Time) bool {
	if endTime == nil {
		return true // Active entry, no end time
	}
	return startTime.Before(*endTime)
}

// IsValidDuration checks if a duration in minutes is within reasonable bounds
func (v *Validator) IsValidDuration(minutes int) bool {
	maxMinutes := int(v.getMaxDuration().Minutes())
	return minutes > 0 && minutes <= maxMinutes
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 10 years ago to 1 year in the future
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 500 // Default maximum
}

// getMaxDuration returns configured maximum duration or default
func (v *Validator) getMaxDuration() time.Duration {
	if v.config != nil {
		return v.config.Validation.MaxEntryDuration
	}
	return 24 * time.Hour // Default maximum
}
