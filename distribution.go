package ythist

// Distribution holds view counts bucketed by position within the day, week,
// month and year. Every bucket is always present: sparse data shows up as
// zeroes, not missing entries.
type Distribution struct {
	// ByHour counts views per hour of day, index 0–23.
	ByHour [24]int `json:"byHour"`

	// ByWeekday counts views per weekday, indexed per time.Weekday
	// (0 = Sunday).
	ByWeekday [7]int `json:"byWeekday"`

	// ByMonthDay counts views per day of month; index 0 is day 1.
	ByMonthDay [31]int `json:"byMonthDay"`

	// ByMonth counts views per month of year; index 0 is January.
	ByMonth [12]int `json:"byMonth"`
}

// Distribution computes the temporal distribution of eligible views.
func (h *History) Distribution() Distribution {
	var d Distribution
	for _, r := range h.eligibleRecords() {
		t := *r.ViewedAt
		d.ByHour[t.Hour()]++
		d.ByWeekday[t.Weekday()]++
		d.ByMonthDay[t.Day()-1]++
		d.ByMonth[t.Month()-1]++
	}
	return d
}
