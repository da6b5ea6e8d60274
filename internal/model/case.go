package model

// CaseStatus is the coarse lifecycle stage of a PERM case.
type CaseStatus string

const (
	CaseStatusPWD         CaseStatus = "pwd"
	CaseStatusRecruitment CaseStatus = "recruitment"
	CaseStatusETA9089     CaseStatus = "eta9089"
	CaseStatusI140        CaseStatus = "i140"
	CaseStatusClosed      CaseStatus = "closed"
)

// ProgressStatus is the fine-grained progress marker within a stage.
type ProgressStatus string

const (
	ProgressWorking     ProgressStatus = "working"
	ProgressFiled       ProgressStatus = "filed"
	ProgressUnderReview ProgressStatus = "under_review"
	ProgressRFIRFE      ProgressStatus = "rfi_rfe"
	ProgressApproved    ProgressStatus = "approved"
)

// RecruitmentMethod is one additional recruitment step for a professional
// occupation: the method label plus the date it ran.
type RecruitmentMethod struct {
	Method string  `json:"method"`
	Date   *string `json:"date"`
}

// CaseData is the full snapshot of a PERM case the engine computes over.
// Every date field holds "YYYY-MM-DD" or nil; absence of a date is a normal
// case state, never an error. The five derived fields are recomputed
// wholesale on every write and must never be hand-edited.
type CaseData struct {
	// PWD phase
	PWDFilingDate        *string `json:"pwd_filing_date"`
	PWDDeterminationDate *string `json:"pwd_determination_date"`
	PWDExpirationDate    *string `json:"pwd_expiration_date"`

	// Recruitment phase
	SundayAdFirstDate            *string             `json:"sunday_ad_first_date"`
	SundayAdSecondDate           *string             `json:"sunday_ad_second_date"`
	JobOrderStartDate            *string             `json:"job_order_start_date"`
	JobOrderEndDate              *string             `json:"job_order_end_date"`
	NoticeOfFilingStartDate      *string             `json:"notice_of_filing_start_date"`
	NoticeOfFilingEndDate        *string             `json:"notice_of_filing_end_date"`
	IsProfessionalOccupation     bool                `json:"is_professional_occupation"`
	AdditionalRecruitmentEndDate *string             `json:"additional_recruitment_end_date"`
	AdditionalRecruitmentMethods []RecruitmentMethod `json:"additional_recruitment_methods,omitempty"`

	// Derived fields
	RecruitmentStartDate    *string `json:"recruitment_start_date"`
	RecruitmentEndDate      *string `json:"recruitment_end_date"`
	FilingWindowOpens       *string `json:"filing_window_opens"`
	FilingWindowCloses      *string `json:"filing_window_closes"`
	RecruitmentWindowCloses *string `json:"recruitment_window_closes"`

	// ETA-9089 phase
	ETA9089FilingDate        *string `json:"eta_9089_filing_date"`
	ETA9089CertificationDate *string `json:"eta_9089_certification_date"`
	ETA9089ExpirationDate    *string `json:"eta_9089_expiration_date"`

	// I-140 phase
	I140FilingDate   *string `json:"i140_filing_date"`
	I140ApprovalDate *string `json:"i140_approval_date"`
	I140DenialDate   *string `json:"i140_denial_date"`

	// Single active RFI slot
	RFIReceivedDate  *string `json:"rfi_received_date"`
	RFIDueDate       *string `json:"rfi_due_date"`
	RFISubmittedDate *string `json:"rfi_submitted_date"`

	// Single active RFE slot
	RFEReceivedDate  *string `json:"rfe_received_date"`
	RFEDueDate       *string `json:"rfe_due_date"`
	RFESubmittedDate *string `json:"rfe_submitted_date"`

	CaseStatus     CaseStatus     `json:"case_status,omitempty"`
	ProgressStatus ProgressStatus `json:"progress_status,omitempty"`
}

// Clone returns a deep copy. The cascade engine mutates copies, never its
// input record.
func (c *CaseData) Clone() *CaseData {
	if c == nil {
		return &CaseData{}
	}
	out := *c
	if c.AdditionalRecruitmentMethods != nil {
		out.AdditionalRecruitmentMethods = make([]RecruitmentMethod, len(c.AdditionalRecruitmentMethods))
		copy(out.AdditionalRecruitmentMethods, c.AdditionalRecruitmentMethods)
	}
	return &out
}
