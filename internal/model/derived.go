package model

// DerivedDates are the five calculator outputs stored back onto the case.
type DerivedDates struct {
	RecruitmentStartDate    *string `json:"recruitment_start_date"`
	RecruitmentEndDate      *string `json:"recruitment_end_date"`
	FilingWindowOpens       *string `json:"filing_window_opens"`
	FilingWindowCloses      *string `json:"filing_window_closes"`
	RecruitmentWindowCloses *string `json:"recruitment_window_closes"`
}

// FilingWindow is the 30-180-day period after recruitment during which
// ETA 9089 may be filed. IsPwdLimited is true only when the PWD expiration
// closes the window strictly earlier than the natural 180-day cap.
type FilingWindow struct {
	Opens        *string `json:"opens"`
	Closes       *string `json:"closes"`
	IsPwdLimited bool    `json:"is_pwd_limited"`
}

// RecruitmentWindow is the latest stretch recruitment may still finish in
// while preserving the 30-day quiet period and the 180-day filing cap.
type RecruitmentWindow struct {
	Opens        *string `json:"opens"`
	Closes       *string `json:"closes"`
	IsPwdLimited bool    `json:"is_pwd_limited"`
}

// FederalHoliday is one observed U.S. federal holiday in a calendar year.
type FederalHoliday struct {
	Name string `json:"name"`
	Date string `json:"date"`
}
