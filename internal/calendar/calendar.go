// Package calendar provides the U.S. federal holiday table and the
// business-day arithmetic built on it. Business-day counts drive the
// notice-of-filing duration rule and the notice-end cascade.
package calendar

import (
	"sync"
	"time"

	"perm-engine/internal/dateutil"
	"perm-engine/internal/model"
)

var (
	mu        sync.RWMutex
	yearCache = map[int][]model.FederalHoliday{}
	setCache  = map[int]map[string]struct{}{}
)

// FederalHolidays returns the observed federal holidays for a calendar year:
// the 11 standard holidays plus Inauguration Day in inauguration years.
// Fixed-date holidays are weekend-shifted (Saturday to the preceding Friday,
// Sunday to the following Monday), so an observance can land in the previous
// December. Floating holidays never fall on weekends.
func FederalHolidays(year int) []model.FederalHoliday {
	mu.RLock()
	cached, ok := yearCache[year]
	mu.RUnlock()
	if ok {
		return cached
	}

	holidays := []model.FederalHoliday{
		fixed("New Year's Day", year, time.January, 1),
		floating("Martin Luther King Jr. Day", year, time.January, time.Monday, 3),
		floating("Presidents' Day", year, time.February, time.Monday, 3),
		lastWeekday("Memorial Day", year, time.May, time.Monday),
		fixed("Juneteenth National Independence Day", year, time.June, 19),
		fixed("Independence Day", year, time.July, 4),
		floating("Labor Day", year, time.September, time.Monday, 1),
		floating("Columbus Day", year, time.October, time.Monday, 2),
		fixed("Veterans Day", year, time.November, 11),
		floating("Thanksgiving Day", year, time.November, time.Thursday, 4),
		fixed("Christmas Day", year, time.December, 25),
	}
	if year >= 2021 && (year-2021)%4 == 0 {
		holidays = append(holidays, fixed("Inauguration Day", year, time.January, 20))
	}

	mu.Lock()
	yearCache[year] = holidays
	mu.Unlock()
	return holidays
}

// IsBusinessDay reports whether t (taken as a UTC calendar day) is neither a
// weekend nor an observed holiday. The shifted observance counts as the
// holiday; the original unshifted date does not.
func IsBusinessDay(t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	date := dateutil.Format(t)
	// Next January's New Year's Day can be observed on December 31, so the
	// following year's table has to be consulted too.
	if inHolidaySet(t.Year(), date) || inHolidaySet(t.Year()+1, date) {
		return false
	}
	return true
}

// AddBusinessDays steps forward from start one day at a time, counting only
// business days, until n have been counted. n=0 returns start unchanged even
// when start itself is not a business day. Returns nil on invalid input.
func AddBusinessDays(start string, n int) *string {
	t, ok := dateutil.Parse(start)
	if !ok {
		return nil
	}
	for counted := 0; counted < n; {
		t = t.AddDate(0, 0, 1)
		if IsBusinessDay(t) {
			counted++
		}
	}
	out := dateutil.Format(t)
	return &out
}

// CountBusinessDays counts business days in the inclusive range [start, end].
// Returns 0 when end precedes start or either bound is invalid.
func CountBusinessDays(start, end string) int {
	s, okS := dateutil.Parse(start)
	e, okE := dateutil.Parse(end)
	if !okS || !okE || e.Before(s) {
		return 0
	}
	count := 0
	for t := s; !t.After(e); t = t.AddDate(0, 0, 1) {
		if IsBusinessDay(t) {
			count++
		}
	}
	return count
}

func inHolidaySet(year int, date string) bool {
	mu.RLock()
	set, ok := setCache[year]
	mu.RUnlock()
	if !ok {
		set = make(map[string]struct{})
		for _, h := range FederalHolidays(year) {
			set[h.Date] = struct{}{}
		}
		mu.Lock()
		setCache[year] = set
		mu.Unlock()
	}
	_, hit := set[date]
	return hit
}

// fixed builds a fixed-date holiday with the weekend observance shift.
func fixed(name string, year int, month time.Month, day int) model.FederalHoliday {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	switch t.Weekday() {
	case time.Saturday:
		t = t.AddDate(0, 0, -1)
	case time.Sunday:
		t = t.AddDate(0, 0, 1)
	}
	return model.FederalHoliday{Name: name, Date: dateutil.Format(t)}
}

// floating builds the nth weekday-of-month holiday. Never weekend-shifted.
func floating(name string, year int, month time.Month, weekday time.Weekday, nth int) model.FederalHoliday {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(t.Weekday()) + 7) % 7
	t = t.AddDate(0, 0, offset+(nth-1)*7)
	return model.FederalHoliday{Name: name, Date: dateutil.Format(t)}
}

// lastWeekday builds the last weekday-of-month holiday (Memorial Day).
func lastWeekday(name string, year int, month time.Month, weekday time.Weekday) model.FederalHoliday {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	offset := (int(t.Weekday()) - int(weekday) + 7) % 7
	t = t.AddDate(0, 0, -offset)
	return model.FederalHoliday{Name: name, Date: dateutil.Format(t)}
}
