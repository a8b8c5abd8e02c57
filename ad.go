package ythist

import "strings"

// AdMarker is the detail-text substring the export uses for sponsored
// views. The match is exact and case-sensitive; if Google ever changes the
// wording this single constant is the only thing that needs updating.
const AdMarker = "De anúncios do Google"

// IsAd reports whether the record is a sponsored (ad) view.
//
// This is a substring heuristic over free text, with a known false-negative
// risk if the marker wording changes. All ad filtering in the query engine
// goes through this one predicate.
func IsAd(r *Record) bool {
	return strings.Contains(r.Detail, AdMarker)
}
