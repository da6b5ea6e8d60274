package model

// Wire names for the editable case fields. The cascade table and validation
// issues address fields by these names so that the client, the API and the
// rule engine all speak the same vocabulary.
const (
	FieldPWDFilingDate        = "pwd_filing_date"
	FieldPWDDeterminationDate = "pwd_determination_date"
	FieldPWDExpirationDate    = "pwd_expiration_date"

	FieldSundayAdFirstDate            = "sunday_ad_first_date"
	FieldSundayAdSecondDate           = "sunday_ad_second_date"
	FieldJobOrderStartDate            = "job_order_start_date"
	FieldJobOrderEndDate              = "job_order_end_date"
	FieldNoticeOfFilingStartDate      = "notice_of_filing_start_date"
	FieldNoticeOfFilingEndDate        = "notice_of_filing_end_date"
	FieldIsProfessionalOccupation     = "is_professional_occupation"
	FieldAdditionalRecruitmentEndDate = "additional_recruitment_end_date"

	FieldETA9089FilingDate        = "eta_9089_filing_date"
	FieldETA9089CertificationDate = "eta_9089_certification_date"
	FieldETA9089ExpirationDate    = "eta_9089_expiration_date"

	FieldI140FilingDate   = "i140_filing_date"
	FieldI140ApprovalDate = "i140_approval_date"
	FieldI140DenialDate   = "i140_denial_date"

	FieldRFIReceivedDate  = "rfi_received_date"
	FieldRFIDueDate       = "rfi_due_date"
	FieldRFISubmittedDate = "rfi_submitted_date"

	FieldRFEReceivedDate  = "rfe_received_date"
	FieldRFEDueDate       = "rfe_due_date"
	FieldRFESubmittedDate = "rfe_submitted_date"
)

// FieldChange is a single edit to a named case field. Value is a date string,
// a bool (for the professional-occupation flag) or nil to clear.
type FieldChange struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}
