package pipeline

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"willcall/internal"
)

// MergeAll sorts records by last name (case and accent insensitive, stable)
// and folds adjacent records with an identical (LastName, FirstName) into one.
//
// Only the last name is a sort key, so two rows for the same person split by
// a namesake with a different first name stay separate.
func MergeAll(records []internal.AttendeeRecord) []internal.AttendeeRecord {
	sorted := slices.Clone(records)
	sortByLastName(sorted)

	out := make([]internal.AttendeeRecord, 0, len(sorted))
	var acc internal.AttendeeRecord
	started := false
	for _, rec := range sorted {
		if !started {
			acc = detach(rec)
			started = true
			continue
		}
		merged, ok := absorb(acc, rec)
		if ok {
			acc = merged
			continue
		}
		out = append(out, acc)
		acc = detach(rec)
	}
	if started {
		out = append(out, acc)
	}
	return out
}

func sortByLastName(records []internal.AttendeeRecord) {
	c := collate.New(language.AmericanEnglish, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(records, func(i, j int) bool {
		return c.CompareString(records[i].LastName, records[j].LastName) < 0
	})
}

// absorb folds next into acc when both name the same attendee. acc must own
// its TicketIDs slice.
func absorb(acc, next internal.AttendeeRecord) (internal.AttendeeRecord, bool) {
	if acc.LastName != next.LastName || acc.FirstName != next.FirstName {
		return acc, false
	}
	acc.Qty += next.Qty
	acc.TicketIDs = append(acc.TicketIDs, next.TicketIDs...)
	return acc, true
}

func detach(rec internal.AttendeeRecord) internal.AttendeeRecord {
	rec.TicketIDs = slices.Clone(rec.TicketIDs)
	return rec
}
