package validation

import "perm-engine/internal/model"

// RFE validates the single active request-for-evidence entry. RFE due dates
// are set by the agency notice, so unlike RFIs there is no computed expected
// value, only ordering checks.
func RFE(c *model.CaseData) []model.ValidationIssue {
	var issues []model.ValidationIssue

	if allSet(c.RFEReceivedDate, c.RFEDueDate) && *c.RFEDueDate <= *c.RFEReceivedDate {
		issues = append(issues, errIssue("V-RFE-01", model.FieldRFEDueDate,
			"RFE due date must be after the date the request was received", "8 CFR 103.2(b)(8)"))
	}

	if allSet(c.RFEReceivedDate, c.RFESubmittedDate) && *c.RFESubmittedDate < *c.RFEReceivedDate {
		issues = append(issues, errIssue("V-RFE-02", model.FieldRFESubmittedDate,
			"RFE response cannot be submitted before the request was received", "8 CFR 103.2(b)(8)"))
	}

	if allSet(c.RFEDueDate, c.RFESubmittedDate) && *c.RFESubmittedDate > *c.RFEDueDate {
		issues = append(issues, warnIssue("V-RFE-03", model.FieldRFESubmittedDate,
			"RFE response was submitted after the due date", "8 CFR 103.2(b)(8)"))
	}

	return issues
}
