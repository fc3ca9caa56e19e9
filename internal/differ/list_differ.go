package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStatistics counts line-level changes between two URL lists.
type DiffStatistics struct {
	LinesAdded   int
	LinesDeleted int
	IsIdentical  bool
}

// ListDiffer compares newline-separated lists line by line.
type ListDiffer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewListDiffer creates a new ListDiffer
func NewListDiffer() *ListDiffer {
	return &ListDiffer{dmp: diffmatchpatch.New()}
}

// Compare returns how newText differs from oldText. A missing trailing
// newline on either side is not counted as a change.
func (ld *ListDiffer) Compare(oldText, newText string) DiffStatistics {
	oldChars, newChars, lines := ld.dmp.DiffLinesToChars(terminate(oldText), terminate(newText))
	diffs := ld.dmp.DiffCharsToLines(ld.dmp.DiffMain(oldChars, newChars, false), lines)

	stats := DiffStatistics{IsIdentical: true}
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			stats.LinesAdded += strings.Count(diff.Text, "\n")
			stats.IsIdentical = false
		case diffmatchpatch.DiffDelete:
			stats.LinesDeleted += strings.Count(diff.Text, "\n")
			stats.IsIdentical = false
		}
	}
	return stats
}

func terminate(text string) string {
	if text == "" || strings.HasSuffix(text, "\n") {
		return text
	}
	return text + "\n"
}
