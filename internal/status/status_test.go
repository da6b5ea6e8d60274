package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"perm-engine/internal/model"
)

var testNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func s(v string) *string { return &v }

// completeRecruitment returns a case with every mandatory step recorded.
func completeRecruitment() *model.CaseData {
	return &model.CaseData{
		PWDDeterminationDate:    s("2024-01-05"),
		JobOrderStartDate:       s("2024-02-01"),
		JobOrderEndDate:         s("2024-03-05"),
		SundayAdFirstDate:       s("2024-02-11"),
		SundayAdSecondDate:      s("2024-02-18"),
		NoticeOfFilingStartDate: s("2024-02-05"),
		NoticeOfFilingEndDate:   s("2024-02-20"),
	}
}

func TestDefaultIsPWDWorking(t *testing.T) {
	cs, ps := CalculateAutoStatus(&model.CaseData{}, testNow)
	assert.Equal(t, model.CaseStatusPWD, cs)
	assert.Equal(t, model.ProgressWorking, ps)
}

func TestPWDFilingMeansFiled(t *testing.T) {
	cs, ps := CalculateAutoStatus(&model.CaseData{PWDFilingDate: s("2024-01-15")}, testNow)
	assert.Equal(t, model.CaseStatusPWD, cs)
	assert.Equal(t, model.ProgressFiled, ps)
}

func TestUnrespondedRFEBeatsEverything(t *testing.T) {
	// Even an approved I-140 yields to an open RFE.
	c := &model.CaseData{
		RFEReceivedDate:          s("2024-05-01"),
		I140ApprovalDate:         s("2024-04-01"),
		ETA9089CertificationDate: s("2024-01-15"),
	}
	cs, ps := CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusI140, cs)
	assert.Equal(t, model.ProgressRFIRFE, ps)

	// Once answered, the RFE no longer pins the status.
	c.RFESubmittedDate = s("2024-05-20")
	cs, ps = CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusI140, cs)
	assert.Equal(t, model.ProgressApproved, ps)
}

func TestUnrespondedRFI(t *testing.T) {
	c := &model.CaseData{
		RFIReceivedDate:   s("2024-05-01"),
		ETA9089FilingDate: s("2024-04-01"),
	}
	cs, ps := CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusETA9089, cs)
	assert.Equal(t, model.ProgressRFIRFE, ps)
}

func TestI140Stages(t *testing.T) {
	c := &model.CaseData{I140DenialDate: s("2024-05-01")}
	cs, ps := CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusClosed, cs)
	assert.Equal(t, model.ProgressApproved, ps)

	c = &model.CaseData{I140FilingDate: s("2024-05-01")}
	cs, ps = CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusI140, cs)
	assert.Equal(t, model.ProgressFiled, ps)

	c = &model.CaseData{ETA9089CertificationDate: s("2024-03-01")}
	cs, ps = CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusI140, cs)
	assert.Equal(t, model.ProgressWorking, ps)

	c = &model.CaseData{ETA9089FilingDate: s("2024-03-01")}
	cs, ps = CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusETA9089, cs)
	assert.Equal(t, model.ProgressFiled, ps)
}

func TestPWDDeterminedRecruitmentIncomplete(t *testing.T) {
	c := &model.CaseData{
		PWDDeterminationDate: s("2024-01-05"),
		JobOrderStartDate:    s("2024-02-01"),
	}
	cs, ps := CalculateAutoStatus(c, testNow)
	assert.Equal(t, model.CaseStatusRecruitment, cs)
	assert.Equal(t, model.ProgressWorking, ps)
}

func TestRecruitmentCompleteWindowOpen(t *testing.T) {
	// Last step ended 2024-03-05; the window opened 2024-04-04, before the
	// reference date.
	cs, ps := CalculateAutoStatus(completeRecruitment(), testNow)
	assert.Equal(t, model.CaseStatusETA9089, cs)
	assert.Equal(t, model.ProgressWorking, ps)
}

func TestRecruitmentCompleteWindowNotYetOpen(t *testing.T) {
	early := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	cs, ps := CalculateAutoStatus(completeRecruitment(), early)
	assert.Equal(t, model.CaseStatusRecruitment, cs)
	assert.Equal(t, model.ProgressFiled, ps)
}

func TestRecruitmentCompleteness(t *testing.T) {
	c := completeRecruitment()
	assert.True(t, RecruitmentComplete(c))

	c.SundayAdSecondDate = nil
	assert.False(t, RecruitmentComplete(c))
}

func TestProfessionalOccupationCompleteness(t *testing.T) {
	c := completeRecruitment()
	c.IsProfessionalOccupation = true
	assert.False(t, RecruitmentComplete(c), "professional cases need additional methods")

	c.AdditionalRecruitmentMethods = []model.RecruitmentMethod{
		{Method: "job_fair", Date: s("2024-03-02")},
		{Method: "campus_recruiting", Date: s("2024-03-09")},
		{Method: "employee_referral", Date: s("2024-03-16")},
	}
	assert.True(t, RecruitmentComplete(c))

	// A method without a label does not count.
	c.AdditionalRecruitmentMethods[2].Method = ""
	assert.False(t, RecruitmentComplete(c))

	// The legacy single end-date field is still honored.
	c.AdditionalRecruitmentMethods = nil
	c.AdditionalRecruitmentEndDate = s("2024-04-01")
	assert.True(t, RecruitmentComplete(c))
}
