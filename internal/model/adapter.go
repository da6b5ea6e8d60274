package model

// The browser client speaks camelCase while the API and storage layers speak
// snake_case. ClientCase is the camelCase contract, mapped to CaseData by the
// two adapter functions below field by field. Keep the mapping explicit:
// relying on tag-rewriting tricks has let the two contracts drift before.

// ClientCase mirrors CaseData under the client's naming convention.
type ClientCase struct {
	PwdFilingDate        *string `json:"pwdFilingDate"`
	PwdDeterminationDate *string `json:"pwdDeterminationDate"`
	PwdExpirationDate    *string `json:"pwdExpirationDate"`

	SundayAdFirstDate            *string                 `json:"sundayAdFirstDate"`
	SundayAdSecondDate           *string                 `json:"sundayAdSecondDate"`
	JobOrderStartDate            *string                 `json:"jobOrderStartDate"`
	JobOrderEndDate              *string                 `json:"jobOrderEndDate"`
	NoticeOfFilingStartDate      *string                 `json:"noticeOfFilingStartDate"`
	NoticeOfFilingEndDate        *string                 `json:"noticeOfFilingEndDate"`
	IsProfessionalOccupation     bool                    `json:"isProfessionalOccupation"`
	AdditionalRecruitmentEndDate *string                 `json:"additionalRecruitmentEndDate"`
	AdditionalRecruitmentMethods []ClientRecruitmentStep `json:"additionalRecruitmentMethods,omitempty"`

	RecruitmentStartDate    *string `json:"recruitmentStartDate"`
	RecruitmentEndDate      *string `json:"recruitmentEndDate"`
	FilingWindowOpens       *string `json:"filingWindowOpens"`
	FilingWindowCloses      *string `json:"filingWindowCloses"`
	RecruitmentWindowCloses *string `json:"recruitmentWindowCloses"`

	Eta9089FilingDate        *string `json:"eta9089FilingDate"`
	Eta9089CertificationDate *string `json:"eta9089CertificationDate"`
	Eta9089ExpirationDate    *string `json:"eta9089ExpirationDate"`

	I140FilingDate   *string `json:"i140FilingDate"`
	I140ApprovalDate *string `json:"i140ApprovalDate"`
	I140DenialDate   *string `json:"i140DenialDate"`

	RfiReceivedDate  *string `json:"rfiReceivedDate"`
	RfiDueDate       *string `json:"rfiDueDate"`
	RfiSubmittedDate *string `json:"rfiSubmittedDate"`

	RfeReceivedDate  *string `json:"rfeReceivedDate"`
	RfeDueDate       *string `json:"rfeDueDate"`
	RfeSubmittedDate *string `json:"rfeSubmittedDate"`

	CaseStatus     string `json:"caseStatus,omitempty"`
	ProgressStatus string `json:"progressStatus,omitempty"`
}

type ClientRecruitmentStep struct {
	Method string  `json:"method"`
	Date   *string `json:"date"`
}

// ToClient maps the internal record onto the client contract.
func ToClient(c *CaseData) *ClientCase {
	if c == nil {
		return nil
	}
	out := &ClientCase{
		PwdFilingDate:        c.PWDFilingDate,
		PwdDeterminationDate: c.PWDDeterminationDate,
		PwdExpirationDate:    c.PWDExpirationDate,

		SundayAdFirstDate:            c.SundayAdFirstDate,
		SundayAdSecondDate:           c.SundayAdSecondDate,
		JobOrderStartDate:            c.JobOrderStartDate,
		JobOrderEndDate:              c.JobOrderEndDate,
		NoticeOfFilingStartDate:      c.NoticeOfFilingStartDate,
		NoticeOfFilingEndDate:        c.NoticeOfFilingEndDate,
		IsProfessionalOccupation:     c.IsProfessionalOccupation,
		AdditionalRecruitmentEndDate: c.AdditionalRecruitmentEndDate,

		RecruitmentStartDate:    c.RecruitmentStartDate,
		RecruitmentEndDate:      c.RecruitmentEndDate,
		FilingWindowOpens:       c.FilingWindowOpens,
		FilingWindowCloses:      c.FilingWindowCloses,
		RecruitmentWindowCloses: c.RecruitmentWindowCloses,

		Eta9089FilingDate:        c.ETA9089FilingDate,
		Eta9089CertificationDate: c.ETA9089CertificationDate,
		Eta9089ExpirationDate:    c.ETA9089ExpirationDate,

		I140FilingDate:   c.I140FilingDate,
		I140ApprovalDate: c.I140ApprovalDate,
		I140DenialDate:   c.I140DenialDate,

		RfiReceivedDate:  c.RFIReceivedDate,
		RfiDueDate:       c.RFIDueDate,
		RfiSubmittedDate: c.RFISubmittedDate,

		RfeReceivedDate:  c.RFEReceivedDate,
		RfeDueDate:       c.RFEDueDate,
		RfeSubmittedDate: c.RFESubmittedDate,

		CaseStatus:     string(c.CaseStatus),
		ProgressStatus: string(c.ProgressStatus),
	}
	for _, m := range c.AdditionalRecruitmentMethods {
		out.AdditionalRecruitmentMethods = append(out.AdditionalRecruitmentMethods, ClientRecruitmentStep{
			Method: m.Method,
			Date:   m.Date,
		})
	}
	return out
}

// FromClient maps the client contract back onto the internal record.
func FromClient(c *ClientCase) *CaseData {
	if c == nil {
		return nil
	}
	out := &CaseData{
		PWDFilingDate:        c.PwdFilingDate,
		PWDDeterminationDate: c.PwdDeterminationDate,
		PWDExpirationDate:    c.PwdExpirationDate,

		SundayAdFirstDate:            c.SundayAdFirstDate,
		SundayAdSecondDate:           c.SundayAdSecondDate,
		JobOrderStartDate:            c.JobOrderStartDate,
		JobOrderEndDate:              c.JobOrderEndDate,
		NoticeOfFilingStartDate:      c.NoticeOfFilingStartDate,
		NoticeOfFilingEndDate:        c.NoticeOfFilingEndDate,
		IsProfessionalOccupation:     c.IsProfessionalOccupation,
		AdditionalRecruitmentEndDate: c.AdditionalRecruitmentEndDate,

		RecruitmentStartDate:    c.RecruitmentStartDate,
		RecruitmentEndDate:      c.RecruitmentEndDate,
		FilingWindowOpens:       c.FilingWindowOpens,
		FilingWindowCloses:      c.FilingWindowCloses,
		RecruitmentWindowCloses: c.RecruitmentWindowCloses,

		ETA9089FilingDate:        c.Eta9089FilingDate,
		ETA9089CertificationDate: c.Eta9089CertificationDate,
		ETA9089ExpirationDate:    c.Eta9089ExpirationDate,

		I140FilingDate:   c.I140FilingDate,
		I140ApprovalDate: c.I140ApprovalDate,
		I140DenialDate:   c.I140DenialDate,

		RFIReceivedDate:  c.RfiReceivedDate,
		RFIDueDate:       c.RfiDueDate,
		RFISubmittedDate: c.RfiSubmittedDate,

		RFEReceivedDate:  c.RfeReceivedDate,
		RFEDueDate:       c.RfeDueDate,
		RFESubmittedDate: c.RfeSubmittedDate,

		CaseStatus:     CaseStatus(c.CaseStatus),
		ProgressStatus: ProgressStatus(c.ProgressStatus),
	}
	for _, m := range c.AdditionalRecruitmentMethods {
		out.AdditionalRecruitmentMethods = append(out.AdditionalRecruitmentMethods, RecruitmentMethod{
			Method: m.Method,
			Date:   m.Date,
		})
	}
	return out
}
