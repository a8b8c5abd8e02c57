package main

import (
	"fmt"

	"github.com/rcoelho/ythist"
)

// Run executes the first command.
func (c *FirstCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	switch {
	case c.ByYear:
		byYear := h.EarliestByYear(c.N)
		for _, year := range sortedYears(byYear) {
			fmt.Fprintf(deps.Stdout, "\n%d:\n", year)
			printRecords(deps.Stdout, byYear[year])
		}
	case c.Channel != "":
		printRecords(deps.Stdout, h.EarliestByChannel(c.Channel, c.N))
	default:
		printRecords(deps.Stdout, h.Earliest(c.N))
	}
	return nil
}

// Run executes the top command.
func (c *TopCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	unit := "views"
	var global func(int) []ythist.Count
	var byYear func(int) map[int][]ythist.Count
	switch c.Kind {
	case "videos":
		global, byYear = h.TopVideos, h.TopVideosByYear
	case "channels":
		global, byYear = h.TopChannels, h.TopChannelsByYear
	case "days":
		global, byYear = h.TopDays, h.TopDaysByYear
		unit = "videos"
	}

	if c.ByYear {
		grouped := byYear(c.N)
		for _, year := range sortedYears(grouped) {
			fmt.Fprintf(deps.Stdout, "\n%d:\n", year)
			printCounts(deps.Stdout, grouped[year], unit)
		}
		return nil
	}
	printCounts(deps.Stdout, global(c.N), unit)
	return nil
}

// Run executes the day command.
func (c *DayCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	records, err := h.OnDay(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ythist.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "%d videos on %s\n", len(records), c.Date)
	printRecords(deps.Stdout, records)
	return nil
}

// Run executes the channels command.
func (c *ChannelsCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	channels, err := h.ChannelsOnDay(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", ythist.ErrorMessage(err))
		return err
	}
	for _, ch := range channels {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", ch.Name, ch.URL)
	}
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	results := h.SearchTitles(c.Query)
	fmt.Fprintf(deps.Stdout, "%d matches\n", len(results))
	printRecords(deps.Stdout, results)
	return nil
}

// Run executes the dist command.
func (c *DistCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	d := h.Distribution()

	fmt.Fprintln(deps.Stdout, "By hour:")
	for hour, n := range d.ByHour {
		fmt.Fprintf(deps.Stdout, "  %02d  %d\n", hour, n)
	}
	fmt.Fprintln(deps.Stdout, "By weekday:")
	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	for i, n := range d.ByWeekday {
		fmt.Fprintf(deps.Stdout, "  %s  %d\n", weekdays[i], n)
	}
	fmt.Fprintln(deps.Stdout, "By day of month:")
	for i, n := range d.ByMonthDay {
		fmt.Fprintf(deps.Stdout, "  %02d  %d\n", i+1, n)
	}
	fmt.Fprintln(deps.Stdout, "By month:")
	for i, n := range d.ByMonth {
		fmt.Fprintf(deps.Stdout, "  %02d  %d\n", i+1, n)
	}
	return nil
}

// Run executes the ads command.
func (c *AdsCmd) Run(deps *Dependencies) error {
	h, err := deps.loadHistory()
	if err != nil {
		return err
	}

	stats := h.AdStats()
	fmt.Fprintf(deps.Stdout, "%d ads out of %d records (%.2f%%)\n",
		stats.AdCount, stats.TotalCount, stats.Percent)

	if c.ByYear {
		grouped := h.TopAdsByYear(c.N)
		for _, year := range sortedYears(grouped) {
			fmt.Fprintf(deps.Stdout, "\n%d:\n", year)
			printCounts(deps.Stdout, grouped[year], "views")
		}
		return nil
	}
	printCounts(deps.Stdout, h.TopAds(c.N), "views")
	return nil
}
