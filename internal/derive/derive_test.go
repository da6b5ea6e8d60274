package derive

import (
	"testing"

	"perm-engine/internal/model"
)

func s(v string) *string { return &v }

func TestRecruitmentStartTakesEarliestValid(t *testing.T) {
	c := &model.CaseData{
		SundayAdFirstDate:       s("2024-02-11"),
		JobOrderStartDate:       s("2024-02-01"),
		NoticeOfFilingStartDate: s("2024-02-05"),
	}
	got := RecruitmentStart(c)
	if got == nil || *got != "2024-02-01" {
		t.Fatalf("expected 2024-02-01, got %v", got)
	}
}

func TestRecruitmentStartIgnoresInvalidAndMissing(t *testing.T) {
	c := &model.CaseData{
		SundayAdFirstDate: s("2024-02-30"), // not a real day
		JobOrderStartDate: s("2024-02-14"),
	}
	got := RecruitmentStart(c)
	if got == nil || *got != "2024-02-14" {
		t.Fatalf("expected invalid candidate discarded, got %v", got)
	}

	if RecruitmentStart(&model.CaseData{}) != nil {
		t.Fatal("expected nil when no candidate is valid")
	}
}

func TestRecruitmentStartUnaffectedByProfessionalFields(t *testing.T) {
	c := &model.CaseData{
		JobOrderStartDate:        s("2024-02-14"),
		IsProfessionalOccupation: true,
		AdditionalRecruitmentMethods: []model.RecruitmentMethod{
			{Method: "job_fair", Date: s("2024-01-01")},
		},
	}
	got := RecruitmentStart(c)
	if got == nil || *got != "2024-02-14" {
		t.Fatalf("additional methods must never move the start, got %v", got)
	}
}

func TestRecruitmentEndProfessionalFlag(t *testing.T) {
	c := &model.CaseData{
		SundayAdSecondDate:           s("2024-02-18"),
		JobOrderEndDate:              s("2024-03-05"),
		AdditionalRecruitmentEndDate: s("2024-04-20"),
		AdditionalRecruitmentMethods: []model.RecruitmentMethod{
			{Method: "campus_recruiting", Date: s("2024-04-25")},
		},
	}

	// Flag off: the later professional dates are ignored even though
	// populated.
	got := RecruitmentEnd(c)
	if got == nil || *got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05 with flag off, got %v", got)
	}

	c.IsProfessionalOccupation = true
	got = RecruitmentEnd(c)
	if got == nil || *got != "2024-04-25" {
		t.Fatalf("expected 2024-04-25 with flag on, got %v", got)
	}
}

func TestFilingWindowOpens(t *testing.T) {
	cases := []struct{ end, want string }{
		{"2024-01-15", "2024-02-14"},
		{"2024-12-15", "2025-01-14"},
		{"2024-02-29", "2024-03-30"},
	}
	for _, c := range cases {
		got := FilingWindowOpens(s(c.end))
		if got == nil || *got != c.want {
			t.Fatalf("FilingWindowOpens(%s) = %v, want %s", c.end, got, c.want)
		}
	}
	if FilingWindowOpens(nil) != nil {
		t.Fatal("expected nil without a recruitment end")
	}
}

func TestFilingWindowClosesTieGoesToNatural(t *testing.T) {
	// PWD expires exactly on the 180-day close: the natural close wins and
	// the window is not PWD-limited.
	w := CalcFilingWindow(s("2024-01-15"), s("2024-01-20"), s("2024-07-13"))
	if w.Closes == nil || *w.Closes != "2024-07-13" {
		t.Fatalf("expected close 2024-07-13, got %v", w.Closes)
	}
	if w.IsPwdLimited {
		t.Fatal("equal-to-natural expiration must not mark the window PWD-limited")
	}
}

func TestFilingWindowClosesPwdLimited(t *testing.T) {
	w := CalcFilingWindow(s("2024-01-15"), s("2024-01-20"), s("2024-05-01"))
	if w.Closes == nil || *w.Closes != "2024-05-01" {
		t.Fatalf("expected close 2024-05-01, got %v", w.Closes)
	}
	if !w.IsPwdLimited {
		t.Fatal("expected window to be PWD-limited")
	}
}

func TestFilingWindowNoStart(t *testing.T) {
	w := CalcFilingWindow(nil, s("2024-01-20"), s("2024-05-01"))
	if w.Closes != nil {
		t.Fatalf("expected nil close without a recruitment start, got %v", *w.Closes)
	}
	if w.Opens == nil || *w.Opens != "2024-02-19" {
		t.Fatalf("opens should still derive from the end date, got %v", w.Opens)
	}
}

func TestRecruitmentWindowCloses(t *testing.T) {
	w := CalcRecruitmentWindow(s("2024-01-15"), s("2024-05-01"))
	if w.Closes == nil || *w.Closes != "2024-04-01" {
		t.Fatalf("expected close 2024-04-01, got %v", w.Closes)
	}
	if !w.IsPwdLimited {
		t.Fatal("expected window to be PWD-limited")
	}

	// Without a PWD cap the natural 150-day close stands.
	w = CalcRecruitmentWindow(s("2024-01-15"), nil)
	if w.Closes == nil || *w.Closes != "2024-06-13" {
		t.Fatalf("expected close 2024-06-13, got %v", w.Closes)
	}
	if w.IsPwdLimited {
		t.Fatal("expected window not PWD-limited")
	}
}

func TestPWDExpiration(t *testing.T) {
	cases := []struct{ determination, want string }{
		{"2024-05-15", "2024-08-13"}, // Apr 2 - Jun 30: +90 days
		{"2024-09-10", "2025-06-30"}, // Jul 1 - Dec 31: next June 30
		{"2024-02-05", "2024-06-30"}, // Jan 1 - Apr 1: same June 30
		{"2024-04-01", "2024-06-30"}, // boundary: Apr 1 still same June 30
		{"2024-04-02", "2024-07-01"}, // boundary: Apr 2 starts +90
		{"2024-06-30", "2024-09-28"},
		{"2024-07-01", "2025-06-30"},
		{"2024-12-31", "2025-06-30"},
	}
	for _, c := range cases {
		got := PWDExpiration(c.determination)
		if got == nil || *got != c.want {
			t.Fatalf("PWDExpiration(%s) = %v, want %s", c.determination, got, c.want)
		}
	}
	if PWDExpiration("2024-02-30") != nil {
		t.Fatal("expected nil for invalid determination date")
	}
}

func TestStepDeadlines(t *testing.T) {
	start := s("2024-01-15")
	pwd := s("2024-05-01")

	// Natural: start+120 = 2024-05-14; PWD cap: expiration-60 = 2024-03-02.
	got := JobOrderStartDeadline(start, pwd)
	if got == nil || *got != "2024-03-02" {
		t.Fatalf("JobOrderStartDeadline = %v, want 2024-03-02", got)
	}

	// Without a PWD expiration the natural deadline stands.
	got = JobOrderStartDeadline(start, nil)
	if got == nil || *got != "2024-05-14" {
		t.Fatalf("JobOrderStartDeadline = %v, want 2024-05-14", got)
	}

	// PWD cap 2024-03-25 (expiration-37) beats start+143=2024-06-06, then
	// snaps back to Sunday 2024-03-24.
	got = FirstSundayAdDeadline(start, pwd)
	if got == nil || *got != "2024-03-24" {
		t.Fatalf("FirstSundayAdDeadline = %v, want 2024-03-24", got)
	}

	// PWD cap 2024-04-01 (expiration-30) beats start+150=2024-06-13, then
	// snaps back to Sunday 2024-03-31.
	got = SecondSundayAdDeadline(start, pwd)
	if got == nil || *got != "2024-03-31" {
		t.Fatalf("SecondSundayAdDeadline = %v, want 2024-03-31", got)
	}

	if JobOrderStartDeadline(nil, nil) != nil {
		t.Fatal("expected nil with no inputs")
	}
}

func TestCalculateDerivedDates(t *testing.T) {
	c := &model.CaseData{
		SundayAdFirstDate:       s("2024-02-11"),
		SundayAdSecondDate:      s("2024-02-18"),
		JobOrderStartDate:       s("2024-02-01"),
		JobOrderEndDate:         s("2024-03-05"),
		NoticeOfFilingStartDate: s("2024-02-05"),
		NoticeOfFilingEndDate:   s("2024-02-16"),
		PWDExpirationDate:       s("2024-06-30"),
	}
	d := CalculateDerivedDates(c)

	if *d.RecruitmentStartDate != "2024-02-01" {
		t.Fatalf("recruitment start = %s", *d.RecruitmentStartDate)
	}
	if *d.RecruitmentEndDate != "2024-03-05" {
		t.Fatalf("recruitment end = %s", *d.RecruitmentEndDate)
	}
	if *d.FilingWindowOpens != "2024-04-04" {
		t.Fatalf("filing window opens = %s", *d.FilingWindowOpens)
	}
	// start+180 = 2024-07-30, PWD expires earlier.
	if *d.FilingWindowCloses != "2024-06-30" {
		t.Fatalf("filing window closes = %s", *d.FilingWindowCloses)
	}
	// start+150 = 2024-06-30 vs PWD-30 = 2024-05-31.
	if *d.RecruitmentWindowCloses != "2024-05-31" {
		t.Fatalf("recruitment window closes = %s", *d.RecruitmentWindowCloses)
	}

	empty := CalculateDerivedDates(&model.CaseData{})
	if empty.RecruitmentStartDate != nil || empty.FilingWindowCloses != nil {
		t.Fatal("expected nil derived dates for an empty case")
	}
}
