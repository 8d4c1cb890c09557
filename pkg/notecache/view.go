package notecache

import (
	"sort"
	"strings"

	"notesy-be/pkg/noteclient"
)

// SortMode selects the comparator used by Sorted.
type SortMode int

const (
	SortNewest SortMode = iota
	SortOldest
	SortMarkedFirst
)

// Search returns the notes whose title or description contains q,
// case-insensitively. It is a pure view: the underlying collection is never
// mutated, and an empty query returns the full set.
func (c *Cache) Search(q string) []noteclient.Note {
	notes := c.Notes()
	if q == "" {
		return notes
	}

	q = strings.ToLower(q)
	out := make([]noteclient.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Description), q) {
			out = append(out, n)
		}
	}
	return out
}

// Sorted returns a sorted copy; the collection order itself is untouched.
// DateAdded labels are RFC3339, so they compare lexically in time order.
// Ids are time-ordered too and break ties between same-second notes.
func (c *Cache) Sorted(mode SortMode) []noteclient.Note {
	notes := c.Notes()

	switch mode {
	case SortOldest:
		sort.SliceStable(notes, func(i, j int) bool {
			return olderThan(notes[i], notes[j])
		})
	case SortMarkedFirst:
		sort.SliceStable(notes, func(i, j int) bool {
			if notes[i].Marked != notes[j].Marked {
				return notes[i].Marked
			}
			return olderThan(notes[j], notes[i])
		})
	default: // SortNewest
		sort.SliceStable(notes, func(i, j int) bool {
			return olderThan(notes[j], notes[i])
		})
	}
	return notes
}

func olderThan(a, b noteclient.Note) bool {
	if a.DateAdded != b.DateAdded {
		return a.DateAdded < b.DateAdded
	}
	return a.Id < b.Id
}
