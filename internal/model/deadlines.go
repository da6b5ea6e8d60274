package model

// Contract types for the downstream deadline-extraction module. Extraction
// itself (dashboards, digests, calendar events) lives outside this engine;
// these shapes are the agreed hand-off.

// RFIEntry is one request-for-information or request-for-evidence entry as
// stored by the host. The host extracts the single active entry into the
// flat RFI/RFE slots on CaseData before calling the engine.
type RFIEntry struct {
	ReceivedDate  *string `json:"received_date"`
	DueDate       *string `json:"due_date"`
	SubmittedDate *string `json:"submitted_date"`
}

// CaseDataForDeadlines is the superset record the deadline extractor
// consumes: the case facts plus derived fields plus the full entry lists.
type CaseDataForDeadlines struct {
	CaseData
	RFIEntries []RFIEntry `json:"rfi_entries,omitempty"`
	RFEEntries []RFIEntry `json:"rfe_entries,omitempty"`
}

// DeadlineType identifies a dashboard/notification deadline.
type DeadlineType string

const (
	DeadlinePWDExpiration      DeadlineType = "pwd_expiration"
	DeadlineReadyToFile        DeadlineType = "ready_to_file"
	DeadlineRecruitmentExpires DeadlineType = "recruitment_expires"
	DeadlineETA9089Filing      DeadlineType = "eta_9089_filing"
	DeadlineETA9089Expiration  DeadlineType = "eta_9089_expiration"
	DeadlineI140               DeadlineType = "i140_deadline"
	DeadlineRFIResponse        DeadlineType = "rfi_response_due"
	DeadlineRFEResponse        DeadlineType = "rfe_response_due"
)

// ExtractedDeadline is one dated entry on a dashboard or in a digest.
type ExtractedDeadline struct {
	Type  DeadlineType `json:"type"`
	Date  string       `json:"date"`
	Label string       `json:"label"`
}

// ForDeadlines builds the extractor's input from an evaluated case record,
// lifting the single active RFI/RFE slots into one-entry lists.
func ForDeadlines(c *CaseData) *CaseDataForDeadlines {
	out := &CaseDataForDeadlines{CaseData: *c.Clone()}
	if c.RFIReceivedDate != nil {
		out.RFIEntries = []RFIEntry{{
			ReceivedDate:  c.RFIReceivedDate,
			DueDate:       c.RFIDueDate,
			SubmittedDate: c.RFISubmittedDate,
		}}
	}
	if c.RFEReceivedDate != nil {
		out.RFEEntries = []RFIEntry{{
			ReceivedDate:  c.RFEReceivedDate,
			DueDate:       c.RFEDueDate,
			SubmittedDate: c.RFESubmittedDate,
		}}
	}
	return out
}
