// Package status infers a case's lifecycle status from which dates are
// populated. The rules are evaluated top to bottom and the first match wins;
// that ordering is the entire priority policy, so an unresponded RFE pins the
// status no matter which later-stage dates exist.
package status

import (
	"time"

	"perm-engine/internal/dateutil"
	"perm-engine/internal/derive"
	"perm-engine/internal/model"
)

// CalculateAutoStatus derives the (caseStatus, progressStatus) pair for a
// case. now supplies "today" for the filing-window-open check.
func CalculateAutoStatus(c *model.CaseData, now time.Time) (model.CaseStatus, model.ProgressStatus) {
	switch {
	case set(c.RFEReceivedDate) && !set(c.RFESubmittedDate):
		return model.CaseStatusI140, model.ProgressRFIRFE
	case set(c.RFIReceivedDate) && !set(c.RFISubmittedDate):
		return model.CaseStatusETA9089, model.ProgressRFIRFE
	case set(c.I140ApprovalDate):
		return model.CaseStatusI140, model.ProgressApproved
	case set(c.I140DenialDate):
		return model.CaseStatusClosed, model.ProgressApproved
	case set(c.I140FilingDate):
		return model.CaseStatusI140, model.ProgressFiled
	case set(c.ETA9089CertificationDate):
		return model.CaseStatusI140, model.ProgressWorking
	case set(c.ETA9089FilingDate):
		return model.CaseStatusETA9089, model.ProgressFiled
	case set(c.PWDDeterminationDate):
		if RecruitmentComplete(c) {
			if filingWindowOpen(c, now) {
				return model.CaseStatusETA9089, model.ProgressWorking
			}
			return model.CaseStatusRecruitment, model.ProgressFiled
		}
		return model.CaseStatusRecruitment, model.ProgressWorking
	case set(c.PWDFilingDate):
		return model.CaseStatusPWD, model.ProgressFiled
	default:
		return model.CaseStatusPWD, model.ProgressWorking
	}
}

// RecruitmentComplete reports whether every mandatory recruitment step has
// both bounds recorded: job order, both Sunday ads, notice of filing, and for
// professional occupations at least 3 additional methods each carrying a
// label and a date. The legacy single additional-end-date field also counts
// for cases migrated from the old tracker.
func RecruitmentComplete(c *model.CaseData) bool {
	if !set(c.JobOrderStartDate) || !set(c.JobOrderEndDate) {
		return false
	}
	if !set(c.SundayAdFirstDate) || !set(c.SundayAdSecondDate) {
		return false
	}
	if !set(c.NoticeOfFilingStartDate) || !set(c.NoticeOfFilingEndDate) {
		return false
	}
	if !c.IsProfessionalOccupation {
		return true
	}
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

// filingWindowOpen reports whether the 30-day quiet period after the last
// recruitment step has elapsed.
func filingWindowOpen(c *model.CaseData, now time.Time) bool {
	opens := derive.FilingWindowOpens(derive.RecruitmentEnd(c))
	return opens != nil && *opens <= dateutil.Format(now)
}

func set(d *string) bool {
	return d != nil && dateutil.IsValid(*d)
}
