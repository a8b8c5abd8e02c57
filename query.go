package ythist

import (
	"sort"
	"strings"
	"time"
)

// Count pairs a grouping key (a title, a channel name or a YYYY-MM-DD day)
// with the number of eligible records sharing it.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// dayLayout is the wire format for user-supplied calendar dates.
const dayLayout = "2006-01-02"

// Earliest returns the n earliest views in ascending date order. Records
// without a view date and ad records are excluded; the result has length
// min(n, eligible count).
func (h *History) Earliest(n int) []*Record {
	return take(sortByDate(h.eligibleRecords()), n)
}

// EarliestByChannel is Earliest restricted to records whose channel name
// contains the given substring, case-insensitively.
func (h *History) EarliestByChannel(channel string, n int) []*Record {
	needle := strings.ToLower(channel)
	var matched []*Record
	for _, r := range h.eligibleRecords() {
		if strings.Contains(strings.ToLower(r.Channel), needle) {
			matched = append(matched, r)
		}
	}
	return take(sortByDate(matched), n)
}

// EarliestByYear groups eligible records by calendar year and returns the n
// earliest views within each year.
func (h *History) EarliestByYear(n int) map[int][]*Record {
	byYear := groupByYear(h.eligibleRecords())
	out := make(map[int][]*Record, len(byYear))
	for year, records := range byYear {
		out[year] = take(sortByDate(records), n)
	}
	return out
}

// TopVideos returns the n most-viewed video titles with their view counts.
// Ads are excluded; records without a view date still count, since no date
// is referenced. Ties keep first-encountered order.
func (h *History) TopVideos(n int) []Count {
	var titles []string
	for _, r := range h.records {
		if !IsAd(r) {
			titles = append(titles, r.Title)
		}
	}
	return rank(titles, n)
}

// TopVideosByYear returns the n most-viewed titles within each year.
func (h *History) TopVideosByYear(n int) map[int][]Count {
	return rankByYear(h.eligibleRecords(), n, func(r *Record) (string, bool) {
		return r.Title, true
	})
}

// TopChannels returns the n most-viewed channel names with counts. Records
// without a channel anchor are skipped; ads are excluded; dateless records
// count.
func (h *History) TopChannels(n int) []Count {
	var channels []string
	for _, r := range h.records {
		if !IsAd(r) && r.Channel != "" {
			channels = append(channels, r.Channel)
		}
	}
	return rank(channels, n)
}

// TopChannelsByYear returns the n most-viewed channel names within each
// year.
func (h *History) TopChannelsByYear(n int) map[int][]Count {
	return rankByYear(h.eligibleRecords(), n, func(r *Record) (string, bool) {
		return r.Channel, r.Channel != ""
	})
}

// TopDays returns the n calendar days (YYYY-MM-DD) with the most views.
func (h *History) TopDays(n int) []Count {
	var days []string
	for _, r := range h.eligibleRecords() {
		days = append(days, r.Day())
	}
	return rank(days, n)
}

// TopDaysByYear returns the n busiest days within each year.
func (h *History) TopDaysByYear(n int) map[int][]Count {
	return rankByYear(h.eligibleRecords(), n, func(r *Record) (string, bool) {
		return r.Day(), true
	})
}

// OnDay returns all eligible records viewed on the given YYYY-MM-DD date,
// sorted ascending by time of day. A date with no views returns an empty
// result, distinct from the EINVALID error for an unparsable date.
func (h *History) OnDay(day string) ([]*Record, error) {
	if _, err := time.Parse(dayLayout, day); err != nil {
		return nil, Errorf(EINVALID, "invalid date %q: expected YYYY-MM-DD", day)
	}
	var out []*Record
	for _, r := range h.eligibleRecords() {
		if r.Day() == day {
			out = append(out, r)
		}
	}
	return sortByDate(out), nil
}

// ChannelsOnDay returns the distinct channels viewed on the given
// YYYY-MM-DD date, sorted alphabetically by name. If a channel name ever
// appears with conflicting links, the first-seen link wins.
func (h *History) ChannelsOnDay(day string) ([]Channel, error) {
	records, err := h.OnDay(day)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]string)
	var names []string
	for _, r := range records {
		if r.Channel == "" {
			continue
		}
		if _, ok := seen[r.Channel]; !ok {
			seen[r.Channel] = r.ChannelURL
			names = append(names, r.Channel)
		}
	}
	sort.Strings(names)
	out := make([]Channel, 0, len(names))
	for _, name := range names {
		out = append(out, Channel{Name: name, URL: seen[name]})
	}
	return out, nil
}

// TopAds returns the n most-frequent ad titles. Dateless ads count.
func (h *History) TopAds(n int) []Count {
	var titles []string
	for _, r := range h.records {
		if IsAd(r) {
			titles = append(titles, r.Title)
		}
	}
	return rank(titles, n)
}

// TopAdsByYear returns the n most-frequent ad titles within each year.
func (h *History) TopAdsByYear(n int) map[int][]Count {
	var ads []*Record
	for _, r := range h.records {
		if IsAd(r) && r.ViewedAt != nil {
			ads = append(ads, r)
		}
	}
	return rankByYear(ads, n, func(r *Record) (string, bool) {
		return r.Title, true
	})
}

// AdStats summarizes ad volume over the whole store. The percentage
// denominator is the total record count, ads included.
type AdStats struct {
	AdCount    int     `json:"adCount"`
	TotalCount int     `json:"totalCount"`
	Percent    float64 `json:"percent"`
}

// AdStats returns the ad count and its share of the whole store.
func (h *History) AdStats() AdStats {
	stats := AdStats{TotalCount: len(h.records)}
	for _, r := range h.records {
		if IsAd(r) {
			stats.AdCount++
		}
	}
	if stats.TotalCount > 0 {
		stats.Percent = float64(stats.AdCount) / float64(stats.TotalCount) * 100
	}
	return stats
}

// sortByDate sorts records ascending by view date, in place, stably.
// Records without a date sort last. Returns its argument for chaining.
func sortByDate(records []*Record) []*Record {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].ViewedAt, records[j].ViewedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.Before(*b)
	})
	return records
}

// take returns the first n records; n <= 0 yields an empty result.
func take(records []*Record, n int) []*Record {
	if n <= 0 {
		return nil
	}
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}

// rank counts occurrences of each key and returns the n highest counts.
// Ties are broken by first-encountered order: the sort is stable over the
// keys' first-occurrence sequence.
func rank(keys []string, n int) []Count {
	if n <= 0 {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	for _, key := range keys {
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	entries := make([]Count, 0, len(order))
	for _, key := range order {
		entries = append(entries, Count{Key: key, Count: counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// rankByYear groups records by view year, extracts a key per record via
// keyFn (a false return skips the record) and ranks within each year.
func rankByYear(records []*Record, n int, keyFn func(*Record) (string, bool)) map[int][]Count {
	byYear := make(map[int][]string)
	for _, r := range records {
		year, ok := r.Year()
		if !ok {
			continue
		}
		key, ok := keyFn(r)
		if !ok {
			continue
		}
		byYear[year] = append(byYear[year], key)
	}
	out := make(map[int][]Count, len(byYear))
	for year, keys := range byYear {
		out[year] = rank(keys, n)
	}
	return out
}

// groupByYear buckets records by view year, preserving order within each
// bucket. Records without a date are skipped.
func groupByYear(records []*Record) map[int][]*Record {
	out := make(map[int][]*Record)
	for _, r := range records {
		if year, ok := r.Year(); ok {
			out[year] = append(out[year], r)
		}
	}
	return out
}
