package validation

import (
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// RFI validates the single active request-for-information entry.
func RFI(c *model.CaseData) []model.ValidationIssue {
	var issues []model.ValidationIssue

	if allSet(c.RFIReceivedDate, c.RFIDueDate) {
		if expected := dateutil.AddDays(c.RFIReceivedDate, derive.RFIResponseDays); expected != nil && *expected != *c.RFIDueDate {
			issues = append(issues, warnIssue("V-RFI-01", model.FieldRFIDueDate,
				"Stored RFI due date differs from the computed due date "+*expected, "20 CFR 656.20"))
		}
	}

	if allSet(c.RFIReceivedDate, c.RFISubmittedDate) && *c.RFISubmittedDate < *c.RFIReceivedDate {
		issues = append(issues, errIssue("V-RFI-02", model.FieldRFISubmittedDate,
			"RFI response cannot be submitted before the request was received", "20 CFR 656.20"))
	}

	if allSet(c.RFIDueDate, c.RFISubmittedDate) && *c.RFISubmittedDate > *c.RFIDueDate {
		issues = append(issues, warnIssue("V-RFI-03", model.FieldRFISubmittedDate,
			"RFI response was submitted after the due date", "20 CFR 656.20"))
	}

	return issues
}
