package assignment

import "github.com/notarydesk/priorities/internal/biz/priority"

// RankedPriority is one resolved entry of a ranked list.
type RankedPriority struct {
	// Rank is the 1-based display position among resolved entries.
	Rank int
	// Order is the stored rank of the entry.
	Order    int
	Priority *priority.Priority
}

// Rank joins a's entries with the catalog in ascending rank. Entries whose
// priority no longer exists are dropped. A nil assignment ranks as empty.
func Rank(a *Assignment, catalog map[string]*priority.Priority) []RankedPriority {
	if a == nil {
		return []RankedPriority{}
	}
	out := make([]RankedPriority, 0, len(a.Entries))
	for _, e := range a.Entries {
		p, ok := catalog[e.PriorityID]
		if !ok {
			continue
		}
		out = append(out, RankedPriority{Rank: len(out) + 1, Order: e.Rank, Priority: p})
	}
	return out
}
