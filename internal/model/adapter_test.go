package model

import (
	"reflect"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func s(v string) *string { return &v }

// fullCase fills every field so the adapter round-trip covers the whole
// record. New fields added to CaseData without an adapter mapping will fail
// the DeepEqual below.
func fullCase() *CaseData {
	return &CaseData{
		PWDFilingDate:        s("2023-11-01"),
		PWDDeterminationDate: s("2024-01-05"),
		PWDExpirationDate:    s("2024-06-30"),

		SundayAdFirstDate:            s("2024-02-11"),
		SundayAdSecondDate:           s("2024-02-18"),
		JobOrderStartDate:            s("2024-02-01"),
		JobOrderEndDate:              s("2024-03-05"),
		NoticeOfFilingStartDate:      s("2024-02-05"),
		NoticeOfFilingEndDate:        s("2024-02-20"),
		IsProfessionalOccupation:     true,
		AdditionalRecruitmentEndDate: s("2024-03-20"),
		AdditionalRecruitmentMethods: []RecruitmentMethod{
			{Method: "job_fair", Date: s("2024-03-02")},
			{Method: "campus_recruiting", Date: s("2024-03-09")},
		},

		RecruitmentStartDate:    s("2024-02-01"),
		RecruitmentEndDate:      s("2024-03-20"),
		FilingWindowOpens:       s("2024-04-19"),
		FilingWindowCloses:      s("2024-06-30"),
		RecruitmentWindowCloses: s("2024-05-31"),

		ETA9089FilingDate:        s("2024-05-01"),
		ETA9089CertificationDate: s("2024-08-15"),
		ETA9089ExpirationDate:    s("2025-02-11"),

		I140FilingDate:   s("2024-09-01"),
		I140ApprovalDate: s("2024-12-15"),
		I140DenialDate:   nil,

		RFIReceivedDate:  s("2024-06-10"),
		RFIDueDate:       s("2024-07-10"),
		RFISubmittedDate: s("2024-07-01"),

		RFEReceivedDate:  s("2024-10-01"),
		RFEDueDate:       s("2024-12-30"),
		RFESubmittedDate: s("2024-11-15"),

		CaseStatus:     CaseStatusI140,
		ProgressStatus: ProgressApproved,
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	orig := fullCase()
	got := FromClient(ToClient(orig))
	if !reflect.DeepEqual(orig, got) {
		t.Fatalf("round trip drifted:\norig %+v\ngot  %+v", orig, got)
	}
}

func TestAdapterRoundTripEmpty(t *testing.T) {
	orig := &CaseData{}
	got := FromClient(ToClient(orig))
	if !reflect.DeepEqual(orig, got) {
		t.Fatalf("empty round trip drifted: %+v", got)
	}
	if ToClient(nil) != nil || FromClient(nil) != nil {
		t.Fatal("nil must map to nil")
	}
}

func TestClientContractUsesCamelCase(t *testing.T) {
	b, err := json.Marshal(ToClient(fullCase()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, key := range []string{
		`"pwdFilingDate"`, `"sundayAdFirstDate"`, `"isProfessionalOccupation"`,
		`"eta9089FilingDate"`, `"rfiDueDate"`, `"caseStatus"`,
	} {
		if !strings.Contains(body, key) {
			t.Fatalf("client contract missing key %s", key)
		}
	}
	for _, key := range []string{`"pwd_filing_date"`, `"case_status"`} {
		if strings.Contains(body, key) {
			t.Fatalf("client contract leaks snake_case key %s", key)
		}
	}
}

func TestInternalContractUsesSnakeCase(t *testing.T) {
	b, err := json.Marshal(fullCase())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	for _, key := range []string{
		`"pwd_filing_date"`, `"sunday_ad_first_date"`, `"is_professional_occupation"`,
		`"eta_9089_filing_date"`, `"rfi_due_date"`, `"case_status"`,
	} {
		if !strings.Contains(body, key) {
			t.Fatalf("internal contract missing key %s", key)
		}
	}
}

func TestNewValidationResult(t *testing.T) {
	result := NewValidationResult(nil)
	if !result.Valid || result.Errors == nil || result.Warnings == nil {
		t.Fatalf("empty input must produce a valid result with empty lists, got %+v", result)
	}

	issues := []ValidationIssue{
		{RuleID: "V-PWD-02", Severity: SeverityWarning},
		{RuleID: "V-PWD-01", Severity: SeverityError},
		{RuleID: "V-REC-10", Severity: SeverityWarning},
	}
	result = NewValidationResult(issues)
	if result.Valid {
		t.Fatal("a result with errors cannot be valid")
	}
	if len(result.Errors) != 1 || result.Errors[0].RuleID != "V-PWD-01" {
		t.Fatalf("unexpected errors %+v", result.Errors)
	}
	if len(result.Warnings) != 2 {
		t.Fatalf("unexpected warnings %+v", result.Warnings)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := fullCase()
	cloned := orig.Clone()
	cloned.AdditionalRecruitmentMethods[0].Method = "radio_ad"
	cloned.PWDFilingDate = s("1999-01-01")

	if orig.AdditionalRecruitmentMethods[0].Method != "job_fair" {
		t.Fatal("clone shares the methods slice")
	}
	if *orig.PWDFilingDate != "2023-11-01" {
		t.Fatal("clone shares scalar fields")
	}
	if got := (*CaseData)(nil).Clone(); got == nil {
		t.Fatal("nil receiver must clone to an empty record")
	}
}

func TestForDeadlinesLiftsActiveEntries(t *testing.T) {
	c := fullCase()
	out := ForDeadlines(c)
	if len(out.RFIEntries) != 1 || *out.RFIEntries[0].DueDate != "2024-07-10" {
		t.Fatalf("unexpected RFI entries %+v", out.RFIEntries)
	}
	if len(out.RFEEntries) != 1 || *out.RFEEntries[0].ReceivedDate != "2024-10-01" {
		t.Fatalf("unexpected RFE entries %+v", out.RFEEntries)
	}

	out = ForDeadlines(&CaseData{})
	if out.RFIEntries != nil || out.RFEEntries != nil {
		t.Fatal("no slots set, no entries expected")
	}
}
