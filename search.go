package ythist

import "strings"

// SearchTitles runs a boolean title search over the whole store, ads
// included. The query is a comma-separated list of groups; within a group,
// space-separated terms are AND'ed as case-insensitive substring matches
// against the title, and a record matches when at least one group is
// satisfied. An empty or whitespace-only query returns an empty result.
//
// Results are sorted ascending by view date; records without a date sort
// last, in extraction order.
func (h *History) SearchTitles(query string) []*Record {
	groups := parseQuery(query)
	if len(groups) == 0 {
		return nil
	}
	var matched []*Record
	for _, r := range h.records {
		title := strings.ToLower(r.Title)
		for _, terms := range groups {
			if matchesAll(title, terms) {
				matched = append(matched, r)
				break
			}
		}
	}
	return sortByDate(matched)
}

// parseQuery splits a query into groups of lowercased terms. Groups with no
// terms (e.g. from ",,") are dropped.
func parseQuery(query string) [][]string {
	var groups [][]string
	for _, group := range strings.Split(query, ",") {
		terms := strings.Fields(strings.ToLower(group))
		if len(terms) > 0 {
			groups = append(groups, terms)
		}
	}
	return groups
}

func matchesAll(title string, terms []string) bool {
	for _, term := range terms {
		if !strings.Contains(title, term) {
			return false
		}
	}
	return true
}
