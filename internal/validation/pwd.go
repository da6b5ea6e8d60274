package validation

import (
	"time"

	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// PWD validates the prevailing wage determination dates.
func PWD(c *model.CaseData, now time.Time) []model.ValidationIssue {
	var issues []model.ValidationIssue

	if allSet(c.PWDFilingDate, c.PWDDeterminationDate) && *c.PWDDeterminationDate < *c.PWDFilingDate {
		issues = append(issues, errIssue("V-PWD-01", model.FieldPWDDeterminationDate,
			"PWD determination date cannot be before the PWD filing date", "20 CFR 656.40"))
	}

	if allSet(c.PWDDeterminationDate, c.PWDExpirationDate) {
		if expected := derive.PWDExpiration(*c.PWDDeterminationDate); expected != nil && *expected != *c.PWDExpirationDate {
			issues = append(issues, warnIssue("V-PWD-02", model.FieldPWDExpirationDate,
				"Stored PWD expiration date differs from the computed expiration "+*expected, "20 CFR 656.40(c)"))
		}
	}

	if allSet(c.PWDDeterminationDate, c.PWDExpirationDate) && *c.PWDExpirationDate <= *c.PWDDeterminationDate {
		issues = append(issues, errIssue("V-PWD-03", model.FieldPWDExpirationDate,
			"PWD expiration date must be after the determination date", "20 CFR 656.40(c)"))
	}

	// Expiry is advisory: an expired PWD blocks filing, not editing the case.
	if set(c.PWDExpirationDate) && !set(c.ETA9089FilingDate) {
		today := dateutil.Format(now)
		if *c.PWDExpirationDate < today {
			issues = append(issues, warnIssue("V-PWD-04", model.FieldPWDExpirationDate,
				"PWD expired on "+*c.PWDExpirationDate+" and no ETA 9089 was filed", "20 CFR 656.40(c)"))
		}
	}

	return issues
}
