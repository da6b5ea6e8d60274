package model

// EvaluationRequest is the write-path input: the case snapshot, the edits to
// apply, the previously stored record (for extend-only regression checks) and
// an optional reference date. AsOf keeps "today" explicit so evaluations stay
// reproducible; the handler fills in the wall clock only when it is absent.
type EvaluationRequest struct {
	Case     *CaseData     `json:"case"`
	Changes  []FieldChange `json:"changes,omitempty"`
	Previous *CaseData     `json:"previous,omitempty"`
	AsOf     *string       `json:"as_of,omitempty"`
}

type EvaluationResponse struct {
	EvaluationMetadata EvaluationMetadata `json:"evaluation_metadata"`
	EvaluationResult   EvaluationResult   `json:"evaluation_result"`
}

type EvaluationMetadata struct {
	EvaluationID          string `json:"evaluation_id"`
	EvaluationStartedAt   string `json:"evaluation_started_at"`
	EvaluationCompletedAt string `json:"evaluation_completed_at"`
	EvaluationDurationMs  int64  `json:"evaluation_duration_ms"`
	EvaluationOutcome     string `json:"evaluation_outcome"`
}

type EvaluationResult struct {
	Case           *CaseData        `json:"case"`
	DerivedDates   DerivedDates     `json:"derived_dates"`
	Validation     ValidationResult `json:"validation"`
	CaseStatus     CaseStatus       `json:"case_status"`
	ProgressStatus ProgressStatus   `json:"progress_status"`
	Changes        []PatchOp        `json:"changes"`
}

// PatchOp is one RFC 6902 operation describing how the evaluated case differs
// from the submitted one.
type PatchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
