package assignment

import (
	"sort"

	domainerr "github.com/notarydesk/priorities/internal/domain/error"
)

// Entry is one ranked priority of an employee. Rank is 1-based and always
// equals the entry's position in Assignment.Entries plus one.
type Entry struct {
	PriorityID string
	Rank       int
}

// Assignment is the ordered priority list of one employee.
type Assignment struct {
	EmployeeID string
	Entries    []Entry
}

// Restore builds an assignment from stored entries, ordering them by their
// stored rank (stable on ties) and deriving fresh ranks from the result.
// Repeated priority ids keep their first occurrence.
func Restore(employeeID string, entries []Entry) *Assignment {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	a := &Assignment{EmployeeID: employeeID, Entries: make([]Entry, 0, len(sorted))}
	seen := make(map[string]struct{}, len(sorted))
	for _, e := range sorted {
		if _, dup := seen[e.PriorityID]; dup {
			continue
		}
		seen[e.PriorityID] = struct{}{}
		a.Entries = append(a.Entries, e)
	}
	a.rerank()
	return a
}

func (a *Assignment) Len() int {
	return len(a.Entries)
}

func (a *Assignment) IsEmpty() bool {
	return len(a.Entries) == 0
}

func (a *Assignment) IndexOf(priorityID string) int {
	for i, e := range a.Entries {
		if e.PriorityID == priorityID {
			return i
		}
	}
	return -1
}

func (a *Assignment) Has(priorityID string) bool {
	return a.IndexOf(priorityID) >= 0
}

// Add appends priorityID with rank count+1.
func (a *Assignment) Add(priorityID string) error {
	if a.Has(priorityID) {
		return domainerr.NewDuplicateAssignmentError(a.EmployeeID, priorityID)
	}
	a.Entries = append(a.Entries, Entry{PriorityID: priorityID})
	a.rerank()
	return nil
}

// Remove reports whether an entry was removed.
func (a *Assignment) Remove(priorityID string) bool {
	i := a.IndexOf(priorityID)
	if i < 0 {
		return false
	}
	a.Entries = append(a.Entries[:i], a.Entries[i+1:]...)
	a.rerank()
	return true
}

// MoveUp swaps the entry with its predecessor. It reports false at the top
// or when the priority is not assigned.
func (a *Assignment) MoveUp(priorityID string) bool {
	i := a.IndexOf(priorityID)
	if i <= 0 {
		return false
	}
	a.swap(i, i-1)
	return true
}

// MoveDown swaps the entry with its successor. It reports false at the
// bottom or when the priority is not assigned.
func (a *Assignment) MoveDown(priorityID string) bool {
	i := a.IndexOf(priorityID)
	if i < 0 || i >= len(a.Entries)-1 {
		return false
	}
	a.swap(i, i+1)
	return true
}

// Reset replaces the whole list with priorityIDs in the given order.
func (a *Assignment) Reset(priorityIDs []string) error {
	entries := make([]Entry, 0, len(priorityIDs))
	seen := make(map[string]struct{}, len(priorityIDs))
	for _, id := range priorityIDs {
		if _, dup := seen[id]; dup {
			return domainerr.NewDuplicateAssignmentError(a.EmployeeID, id)
		}
		seen[id] = struct{}{}
		entries = append(entries, Entry{PriorityID: id})
	}
	a.Entries = entries
	a.rerank()
	return nil
}

func (a *Assignment) PriorityIDs() []string {
	ids := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		ids[i] = e.PriorityID
	}
	return ids
}

func (a *Assignment) Clone() *Assignment {
	c := &Assignment{EmployeeID: a.EmployeeID, Entries: make([]Entry, len(a.Entries))}
	copy(c.Entries, a.Entries)
	return c
}

func (a *Assignment) swap(i, j int) {
	a.Entries[i], a.Entries[j] = a.Entries[j], a.Entries[i]
	a.rerank()
}

func (a *Assignment) rerank() {
	for i := range a.Entries {
		a.Entries[i].Rank = i + 1
	}
}
