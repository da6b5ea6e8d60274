package validation

import (
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// I140 validates the immigrant petition dates against the certified ETA 9089.
func I140(c *model.CaseData) []model.ValidationIssue {
	var issues []model.ValidationIssue

	if allSet(c.I140FilingDate, c.ETA9089CertificationDate) {
		if *c.I140FilingDate < *c.ETA9089CertificationDate {
			issues = append(issues, errIssue("V-I140-01", model.FieldI140FilingDate,
				"I-140 cannot be filed before the ETA 9089 is certified", "8 CFR 204.5"))
		}
		if latest := dateutil.AddDays(c.ETA9089CertificationDate, derive.ETA9089ValidityDays); latest != nil && *c.I140FilingDate > *latest {
			issues = append(issues, errIssue("V-I140-02", model.FieldI140FilingDate,
				"I-140 must be filed within 180 days of ETA 9089 certification", "20 CFR 656.30(b)"))
		}
	}

	if allSet(c.I140FilingDate, c.I140ApprovalDate) && *c.I140ApprovalDate < *c.I140FilingDate {
		issues = append(issues, errIssue("V-I140-03", model.FieldI140ApprovalDate,
			"I-140 approval date cannot be before its filing date", "8 CFR 204.5"))
	}

	return issues
}
