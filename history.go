package ythist

// History is the immutable record store for one session. It is constructed
// once from the ordered output of extraction (or from a cache/database
// load) and every query operation is a read-only function over it, so
// concurrent readers need no locking.
type History struct {
	records []*Record
}

// NewHistory creates a History over the given records. The slice is copied;
// the records themselves are shared and must not be mutated afterwards.
func NewHistory(records []*Record) *History {
	h := &History{records: make([]*Record, len(records))}
	copy(h.records, records)
	return h
}

// Len returns the total number of records, ads and dateless records
// included.
func (h *History) Len() int {
	return len(h.records)
}

// Records returns the records in extraction order. The returned slice is a
// copy and safe to reorder.
func (h *History) Records() []*Record {
	out := make([]*Record, len(h.records))
	copy(out, h.records)
	return out
}

// eligible reports whether a record participates in date-dependent, ad
// excluding operations: it must carry a usable view date and not be an ad.
// This is checked explicitly per record rather than assumed from upstream
// filters.
func eligible(r *Record) bool {
	return r.ViewedAt != nil && !IsAd(r)
}

// eligibleRecords returns the eligible records in extraction order.
func (h *History) eligibleRecords() []*Record {
	var out []*Record
	for _, r := range h.records {
		if eligible(r) {
			out = append(out, r)
		}
	}
	return out
}
