// Package validation checks a case's dates against the cross-field
// regulatory rules. Each phase validator is a pure function returning issue
// lists; every rule skips silently when any field it reads is absent, because
// missing data is a normal case state, not a violation.
package validation

import (
	"time"

	"perm-engine/internal/dateutil"
	"perm-engine/internal/model"
)

// ValidateCase runs all six phase validators against a full case record and
// merges their issues. prev is the previously stored record, consulted by the
// extend-only regression rules; pass nil on create. now supplies "today" for
// the expiry warnings.
func ValidateCase(c *model.CaseData, prev *model.CaseData, now time.Time) model.ValidationResult {
	var issues []model.ValidationIssue
	issues = append(issues, PWD(c, now)...)
	issues = append(issues, Recruitment(c, prev)...)
	issues = append(issues, ETA9089(c)...)
	issues = append(issues, I140(c)...)
	issues = append(issues, RFI(c)...)
	issues = append(issues, RFE(c)...)
	return model.NewValidationResult(issues)
}

func errIssue(ruleID, field, message, regulation string) model.ValidationIssue {
	return model.ValidationIssue{
		RuleID:     ruleID,
		Severity:   model.SeverityError,
		Field:      field,
		Message:    message,
		Regulation: regulation,
	}
}

func warnIssue(ruleID, field, message, regulation string) model.ValidationIssue {
	return model.ValidationIssue{
		RuleID:     ruleID,
		Severity:   model.SeverityWarning,
		Field:      field,
		Message:    message,
		Regulation: regulation,
	}
}

// set reports whether a date field is present and a real calendar date.
func set(d *string) bool {
	return d != nil && dateutil.IsValid(*d)
}

func allSet(dates ...*string) bool {
	for _, d := range dates {
		if !set(d) {
			return false
		}
	}
	return true
}
