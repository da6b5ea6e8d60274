package validation

import (
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// ETA9089 validates the labor certification application dates against the
// filing window and the certification validity period.
func ETA9089(c *model.CaseData) []model.ValidationIssue {
	var issues []model.ValidationIssue

	start := derive.RecruitmentStart(c)
	end := derive.RecruitmentEnd(c)

	if set(c.ETA9089FilingDate) && end != nil {
		if earliest := dateutil.AddDays(end, derive.QuietPeriodDays); earliest != nil && *c.ETA9089FilingDate < *earliest {
			issues = append(issues, errIssue("V-ETA-01", model.FieldETA9089FilingDate,
				"ETA 9089 cannot be filed before the 30-day quiet period ends on "+*earliest, "20 CFR 656.17(e)"))
		}
	}

	if set(c.ETA9089FilingDate) && start != nil {
		if latest := dateutil.AddDays(start, derive.FilingCapDays); latest != nil && *c.ETA9089FilingDate > *latest {
			issues = append(issues, errIssue("V-ETA-02", model.FieldETA9089FilingDate,
				"ETA 9089 must be filed within 180 days of recruitment start", "20 CFR 656.17(e)"))
		}
	}

	if allSet(c.ETA9089FilingDate, c.PWDExpirationDate) && *c.ETA9089FilingDate >= *c.PWDExpirationDate {
		issues = append(issues, errIssue("V-ETA-03", model.FieldETA9089FilingDate,
			"ETA 9089 must be filed strictly before the PWD expires", "20 CFR 656.40(c)"))
	}

	if allSet(c.ETA9089FilingDate, c.ETA9089CertificationDate) && *c.ETA9089CertificationDate < *c.ETA9089FilingDate {
		issues = append(issues, errIssue("V-ETA-04", model.FieldETA9089CertificationDate,
			"ETA 9089 certification date cannot be before its filing date", "20 CFR 656.30"))
	}

	if allSet(c.ETA9089CertificationDate, c.ETA9089ExpirationDate) {
		if expected := dateutil.AddDays(c.ETA9089CertificationDate, derive.ETA9089ValidityDays); expected != nil && *expected != *c.ETA9089ExpirationDate {
			issues = append(issues, warnIssue("V-ETA-05", model.FieldETA9089ExpirationDate,
				"Stored ETA 9089 expiration differs from the computed expiration "+*expected, "20 CFR 656.30(b)"))
		}
		if *c.ETA9089ExpirationDate <= *c.ETA9089CertificationDate {
			issues = append(issues, errIssue("V-ETA-06", model.FieldETA9089ExpirationDate,
				"ETA 9089 expiration date must be after the certification date", "20 CFR 656.30(b)"))
		}
	}

	return issues
}
