package validation

import (
	"time"

	"perm-engine/internal/calendar"
	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// Recruitment validates the recruitment step dates. prev supplies the
// previously stored record for the extend-only regression rules; the
// professional-occupation and window rules work off the current record alone.
func Recruitment(c *model.CaseData, prev *model.CaseData) []model.ValidationIssue {
	var issues []model.ValidationIssue

	if set(c.SundayAdFirstDate) && dateutil.MustParse(*c.SundayAdFirstDate).Weekday() != time.Sunday {
		issues = append(issues, errIssue("V-REC-01", model.FieldSundayAdFirstDate,
			"First Sunday ad must run on a Sunday", "20 CFR 656.17(e)(1)(i)(B)"))
	}
	if set(c.SundayAdSecondDate) && dateutil.MustParse(*c.SundayAdSecondDate).Weekday() != time.Sunday {
		issues = append(issues, errIssue("V-REC-02", model.FieldSundayAdSecondDate,
			"Second Sunday ad must run on a Sunday", "20 CFR 656.17(e)(1)(i)(B)"))
	}
	if allSet(c.SundayAdFirstDate, c.SundayAdSecondDate) && *c.SundayAdSecondDate <= *c.SundayAdFirstDate {
		issues = append(issues, errIssue("V-REC-03", model.FieldSundayAdSecondDate,
			"Second Sunday ad must run after the first", "20 CFR 656.17(e)(1)(i)(B)"))
	}

	if allSet(c.JobOrderStartDate, c.JobOrderEndDate) {
		if *c.JobOrderEndDate < *c.JobOrderStartDate {
			issues = append(issues, errIssue("V-REC-05", model.FieldJobOrderEndDate,
				"Job order end date cannot be before its start date", "20 CFR 656.17(e)(1)(i)(A)"))
		} else if dateutil.DaysBetween(*c.JobOrderStartDate, *c.JobOrderEndDate) < derive.JobOrderMinimumDays {
			issues = append(issues, errIssue("V-REC-04", model.FieldJobOrderEndDate,
				"Job order must run for at least 30 calendar days", "20 CFR 656.17(e)(1)(i)(A)"))
		}
	}

	if allSet(c.NoticeOfFilingStartDate, c.NoticeOfFilingEndDate) {
		if *c.NoticeOfFilingEndDate < *c.NoticeOfFilingStartDate {
			issues = append(issues, errIssue("V-REC-07", model.FieldNoticeOfFilingEndDate,
				"Notice of filing end date cannot be before its start date", "20 CFR 656.10(d)"))
		} else if calendar.CountBusinessDays(*c.NoticeOfFilingStartDate, *c.NoticeOfFilingEndDate) < derive.NoticeOfFilingBusinessDays {
			issues = append(issues, errIssue("V-REC-06", model.FieldNoticeOfFilingEndDate,
				"Notice of filing must be posted for at least 10 business days", "20 CFR 656.10(d)(1)(ii)"))
		}
	}

	if prev != nil {
		if allSet(c.NoticeOfFilingEndDate, prev.NoticeOfFilingEndDate) && *c.NoticeOfFilingEndDate < *prev.NoticeOfFilingEndDate {
			issues = append(issues, errIssue("V-REC-08", model.FieldNoticeOfFilingEndDate,
				"Notice of filing end date may be extended but not shortened", "20 CFR 656.10(d)"))
		}
		if allSet(c.JobOrderEndDate, prev.JobOrderEndDate) && *c.JobOrderEndDate < *prev.JobOrderEndDate {
			issues = append(issues, errIssue("V-REC-09", model.FieldJobOrderEndDate,
				"Job order end date may be extended but not shortened", "20 CFR 656.17(e)(1)(i)(A)"))
		}
	}

	start := derive.RecruitmentStart(c)
	end := derive.RecruitmentEnd(c)

	if rw := derive.CalcRecruitmentWindow(start, c.PWDExpirationDate); end != nil && rw.Closes != nil && *end > *rw.Closes {
		issues = append(issues, warnIssue("V-REC-10", model.FieldPWDExpirationDate,
			"Recruitment ends after the recruitment window closes on "+*rw.Closes, "20 CFR 656.17(e)"))
	}

	if c.IsProfessionalOccupation && !additionalRecruitmentComplete(c) {
		issues = append(issues, warnIssue("V-REC-11", model.FieldAdditionalRecruitmentEndDate,
			"Professional occupations need at least 3 additional recruitment methods", "20 CFR 656.17(e)(1)(ii)"))
	}

	if fw := derive.CalcFilingWindow(start, end, c.PWDExpirationDate); fw.Opens != nil && fw.Closes != nil && *fw.Closes < *fw.Opens {
		issues = append(issues, warnIssue("V-REC-12", model.FieldPWDExpirationDate,
			"Filing window closes on "+*fw.Closes+" before it opens on "+*fw.Opens, "20 CFR 656.17(e)"))
	}

	return issues
}

// additionalRecruitmentComplete reports whether the professional-occupation
// steps are done: three methods each carrying a label and a date, or the
// legacy single end-date field.
func additionalRecruitmentComplete(c *model.CaseData) bool {
	if set(c.AdditionalRecruitmentEndDate) {
		return true
	}
	complete := 0
	for _, m := range c.AdditionalRecruitmentMethods {
		if m.Method != "" && set(m.Date) {
			complete++
		}
	}
	return complete >= 3
}
