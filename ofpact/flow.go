package ofpact

// Flow is the minimal match context the validator and the sub-codecs need.
// It does not model packet matching or table lookup (those are external
// collaborators per spec §1) — only the one fact a semantic check needs:
// which match prerequisites are already satisfied. Fields set by earlier
// actions in the same list are not tracked.
type Flow struct {
	// Prereqs holds the set of match-field names this flow's match
	// already constrains (e.g. "eth_type=0x0800" before nw_src is
	// usable). Sub-field checks consult it through mf.Field.Prereq.
	Prereqs map[string]bool
}

// HasPrereq reports whether prereq is satisfied by this flow, treating a
// nil Flow or nil Prereqs as having none.
func (f *Flow) HasPrereq(prereq string) bool {
	if prereq == "" {
		return true
	}
	if f == nil || f.Prereqs == nil {
		return false
	}
	return f.Prereqs[prereq]
}
