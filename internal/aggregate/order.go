package aggregate

import (
	"math"
	"sort"
	"strings"
)

// Unranked is the SortKey of a file that matches no priority row.
const Unranked = math.MaxInt

// Priority is one row of a PriorityTable.
type Priority struct {
	Match string // Substring looked up in FileEntry.RelPath
	Rank  int
}

// PriorityTable is scanned top to bottom; the first matching row wins.
type PriorityTable []Priority

// DefaultPriorities puts the top-level README first, then the numbered
// documentation sections in reading order.
var DefaultPriorities = PriorityTable{
	{Match: "README.md", Rank: 0},
	{Match: "01-overview", Rank: 1},
	{Match: "02-getting-started", Rank: 2},
	{Match: "03-architecture", Rank: 3},
	{Match: "04-api-reference", Rank: 4},
	{Match: "05-development-guide", Rank: 5},
	{Match: "06-troubleshooting", Rank: 6},
}

// SortKey returns the rank for relPath, or Unranked.
func (t PriorityTable) SortKey(relPath string) int {
	for _, p := range t {
		if strings.Contains(relPath, p.Match) {
			return p.Rank
		}
	}
	return Unranked
}

// Order returns a copy of entries stably sorted by their SortKey.
func Order(entries []FileEntry, table PriorityTable) []FileEntry {
	type keyed struct {
		entry FileEntry
		key   int
	}

	ks := make([]keyed, len(entries))
	for i, e := range entries {
		ks[i] = keyed{entry: e, key: table.SortKey(e.RelPath)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return ks[i].key < ks[j].key
	})

	out := make([]FileEntry, len(ks))
	for i, k := range ks {
		out[i] = k.entry
	}
	return out
}
