// Package derive computes the regulatory dates a PERM case carries but no
// one types in: recruitment bounds, the filing and recruitment windows, the
// PWD expiration and the narrower step deadlines. Every function is total and
// null-propagating; a missing or invalid input yields a nil output.
package derive

import (
	"time"

	"perm-engine/internal/dateutil"
	"perm-engine/internal/model"
)

const (
	// Quiet period between recruitment end and the earliest ETA 9089 filing.
	QuietPeriodDays = 30
	// Filing must happen within 180 days of recruitment start.
	FilingCapDays = 180
	// Recruitment must finish within 150 days of its start to leave room for
	// the quiet period under the 180-day cap.
	RecruitmentCapDays = 150

	// Cascade spans.
	NoticeOfFilingBusinessDays = 10
	JobOrderMinimumDays        = 30
	ETA9089ValidityDays        = 180
	RFIResponseDays            = 30
)

// RecruitmentStart is the earliest of the mandatory recruitment step starts.
// Professional-occupation fields never move the start.
func RecruitmentStart(c *model.CaseData) *string {
	return dateutil.MinDate(c.SundayAdFirstDate, c.JobOrderStartDate, c.NoticeOfFilingStartDate)
}

// RecruitmentEnd is the latest of the mandatory recruitment step ends plus,
// for professional occupations only, the additional recruitment dates. When
// the flag is false the additional dates are ignored even if populated.
func RecruitmentEnd(c *model.CaseData) *string {
	candidates := []*string{c.SundayAdSecondDate, c.JobOrderEndDate, c.NoticeOfFilingEndDate}
	if c.IsProfessionalOccupation {
		candidates = append(candidates, c.AdditionalRecruitmentEndDate)
		for _, m := range c.AdditionalRecruitmentMethods {
			candidates = append(candidates, m.Date)
		}
	}
	return dateutil.MaxDate(candidates...)
}

// FilingWindowOpens is the first day ETA 9089 may be filed: recruitment end
// plus the 30-day quiet period.
func FilingWindowOpens(recruitmentEnd *string) *string {
	return dateutil.AddDays(recruitmentEnd, QuietPeriodDays)
}

// CalcFilingWindow computes the full filing window. The window closes at
// recruitment start + 180 days, unless the PWD expires strictly earlier; an
// expiration landing exactly on the natural close leaves the window
// unlimited by the PWD.
func CalcFilingWindow(recruitmentStart, recruitmentEnd, pwdExpiration *string) model.FilingWindow {
	w := model.FilingWindow{Opens: FilingWindowOpens(recruitmentEnd)}
	natural := dateutil.AddDays(recruitmentStart, FilingCapDays)
	if natural == nil {
		return w
	}
	w.Closes = natural
	if pwdExpiration != nil && dateutil.IsValid(*pwdExpiration) && *pwdExpiration < *natural {
		exp := *pwdExpiration
		w.Closes = &exp
		w.IsPwdLimited = true
	}
	return w
}

// CalcRecruitmentWindow computes the latest date recruitment may finish:
// recruitment start + 150 days, capped by PWD expiration − 30 days when that
// cap is strictly earlier.
func CalcRecruitmentWindow(recruitmentStart, pwdExpiration *string) model.RecruitmentWindow {
	w := model.RecruitmentWindow{Opens: copyDate(recruitmentStart)}
	natural := dateutil.AddDays(recruitmentStart, RecruitmentCapDays)
	if natural == nil {
		return w
	}
	w.Closes = natural
	if limit := dateutil.AddDays(pwdExpiration, -QuietPeriodDays); limit != nil && *limit < *natural {
		w.Closes = limit
		w.IsPwdLimited = true
	}
	return w
}

// PWDExpiration derives the prevailing wage determination's validity end from
// its determination date per 20 CFR 656.40(c):
//
//	Apr 2 - Jun 30  ->  determination + 90 days
//	Jul 1 - Dec 31  ->  June 30 of the next year
//	Jan 1 - Apr 1   ->  June 30 of the same year
func PWDExpiration(determination string) *string {
	t, ok := dateutil.Parse(determination)
	if !ok {
		return nil
	}
	md := int(t.Month())*100 + t.Day()
	var out string
	switch {
	case md >= 402 && md <= 630:
		out = dateutil.Format(t.AddDate(0, 0, 90))
	case md >= 701:
		out = junethirtieth(t.Year() + 1)
	default:
		out = junethirtieth(t.Year())
	}
	return &out
}

// JobOrderStartDeadline is the latest date the 30-day job order may start:
// the earlier of recruitment start + 120 days and PWD expiration − 60 days.
func JobOrderStartDeadline(recruitmentStart, pwdExpiration *string) *string {
	return dateutil.MinDate(
		dateutil.AddDays(recruitmentStart, RecruitmentCapDays-JobOrderMinimumDays),
		dateutil.AddDays(pwdExpiration, -(JobOrderMinimumDays+QuietPeriodDays)),
	)
}

// FirstSundayAdDeadline is the latest Sunday the first print ad may run:
// min(recruitment start + 143, PWD expiration − 37), snapped back to Sunday.
// The 7-day slack keeps the second ad placeable a week later.
func FirstSundayAdDeadline(recruitmentStart, pwdExpiration *string) *string {
	return dateutil.LastSundayOnOrBefore(dateutil.MinDate(
		dateutil.AddDays(recruitmentStart, RecruitmentCapDays-7),
		dateutil.AddDays(pwdExpiration, -(QuietPeriodDays+7)),
	))
}

// SecondSundayAdDeadline is the latest Sunday the second print ad may run:
// min(recruitment start + 150, PWD expiration − 30), snapped back to Sunday.
func SecondSundayAdDeadline(recruitmentStart, pwdExpiration *string) *string {
	return dateutil.LastSundayOnOrBefore(dateutil.MinDate(
		dateutil.AddDays(recruitmentStart, RecruitmentCapDays),
		dateutil.AddDays(pwdExpiration, -QuietPeriodDays),
	))
}

// CalculateDerivedDates recomputes the five stored derived fields from raw
// case facts. Called on every case create or update.
func CalculateDerivedDates(c *model.CaseData) model.DerivedDates {
	start := RecruitmentStart(c)
	end := RecruitmentEnd(c)
	fw := CalcFilingWindow(start, end, c.PWDExpirationDate)
	rw := CalcRecruitmentWindow(start, c.PWDExpirationDate)
	return model.DerivedDates{
		RecruitmentStartDate:    start,
		RecruitmentEndDate:      end,
		FilingWindowOpens:       fw.Opens,
		FilingWindowCloses:      fw.Closes,
		RecruitmentWindowCloses: rw.Closes,
	}
}

// ApplyDerivedDates writes the calculator's output onto the case record.
func ApplyDerivedDates(c *model.CaseData, d model.DerivedDates) {
	c.RecruitmentStartDate = d.RecruitmentStartDate
	c.RecruitmentEndDate = d.RecruitmentEndDate
	c.FilingWindowOpens = d.FilingWindowOpens
	c.FilingWindowCloses = d.FilingWindowCloses
	c.RecruitmentWindowCloses = d.RecruitmentWindowCloses
}

func junethirtieth(year int) string {
	return dateutil.Format(time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC))
}

func copyDate(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
