// Package ythist parses a YouTube watch-history export (the HTML file
// produced by Google Takeout, Brazilian Portuguese locale) into structured
// view records and answers retrospective queries over them: earliest views,
// most-watched videos/channels/days, per-year breakdowns, date lookups,
// boolean title search, temporal distributions and ad aggregates.
//
// This package contains domain types, pure domain logic and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, fs/).
package ythist
