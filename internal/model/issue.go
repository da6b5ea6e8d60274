package model

// Severity of a validation issue. Errors violate a hard regulatory
// constraint; warnings are advisory and never block a write.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is one rule violation. RuleID is stable and namespaced per
// phase (e.g. "V-PWD-02") so UIs and tests can address individual rules
// without parsing message text.
type ValidationIssue struct {
	RuleID     string   `json:"rule_id"`
	Severity   Severity `json:"severity"`
	Field      string   `json:"field"`
	Message    string   `json:"message"`
	Regulation string   `json:"regulation,omitempty"`
}

// ValidationResult is the aggregate outcome of running a rule set.
// Valid is true exactly when Errors is empty. Construct results only through
// NewValidationResult; a hand-assembled literal can let Valid drift from the
// error list.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// NewValidationResult partitions issues by severity and derives Valid.
func NewValidationResult(issues []ValidationIssue) ValidationResult {
	errors := []ValidationIssue{}
	warnings := []ValidationIssue{}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			errors = append(errors, issue)
		} else {
			warnings = append(warnings, issue)
		}
	}
	return ValidationResult{
		Valid:    len(errors) == 0,
		Errors:   errors,
		Warnings: warnings,
	}
}
