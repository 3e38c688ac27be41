// Package textdiff renders the difference between a document and its
// corrected form, as unified line hunks and as inline rune spans.
package textdiff

import (
	"fmt"
	"strings"
)

// Diff represents a unified diff between original and corrected content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// Hunk represents a single hunk in a unified diff.
type Hunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []Line
}

// Line represents a single line in a diff hunk.
type Line struct {
	// Kind indicates whether this is a context, add, or remove line.
	Kind LineKind

	// Content is the line content (without the diff prefix).
	Content string
}

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line added in the corrected version.
	LineAdd

	// LineRemove is a line removed from the original version.
	LineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// Generate creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func Generate(path string, original, modified []byte) *Diff {
	origLines := splitLines(original)
	modLines := splitLines(modified)

	hunks := computeHunks(origLines, modLines)
	if len(hunks) == 0 {
		return nil
	}

	diff := &Diff{Path: path, Hunks: hunks}
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdd:
				diff.Additions++
			case LineRemove:
				diff.Deletions++
			case LineContext:
			}
		}
	}

	return diff
}

// String returns the diff in unified diff format.
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')

		for _, line := range hunk.Lines {
			builder.WriteString(line.Kind.Prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// Header returns the "@@ -a,b +c,d @@" line of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@",
		h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// Prefix returns the unified diff prefix of the line kind.
func (k LineKind) Prefix() string {
	switch k {
	case LineAdd:
		return "+"
	case LineRemove:
		return "-"
	default:
		return " "
	}
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

// splitLines splits content into lines, removing the trailing newline if present.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.Split(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// computeHunks computes diff hunks using an LCS-based algorithm.
func computeHunks(orig, mod []string) []Hunk {
	ops := buildOps(orig, mod, longestCommonSubsequence(orig, mod))
	return groupIntoHunks(ops)
}

// diffOp represents a single diff operation.
type diffOp struct {
	kind    LineKind
	content string
}

// buildOps walks original and modified along their LCS.
func buildOps(orig, mod, lcs []string) []diffOp {
	var ops []diffOp
	origIdx, modIdx, lcsIdx := 0, 0, 0

	for origIdx < len(orig) || modIdx < len(mod) {
		if lcsIdx < len(lcs) && origIdx < len(orig) && modIdx < len(mod) &&
			orig[origIdx] == lcs[lcsIdx] && mod[modIdx] == lcs[lcsIdx] {
			ops = append(ops, diffOp{kind: LineContext, content: orig[origIdx]})
			origIdx++
			modIdx++
			lcsIdx++
			continue
		}

		for origIdx < len(orig) && (lcsIdx >= len(lcs) || orig[origIdx] != lcs[lcsIdx]) {
			ops = append(ops, diffOp{kind: LineRemove, content: orig[origIdx]})
			origIdx++
		}

		for modIdx < len(mod) && (lcsIdx >= len(lcs) || mod[modIdx] != lcs[lcsIdx]) {
			ops = append(ops, diffOp{kind: LineAdd, content: mod[modIdx]})
			modIdx++
		}
	}

	return ops
}

// groupIntoHunks groups diff operations into hunks with context lines.
func groupIntoHunks(ops []diffOp) []Hunk {
	type changeRange struct {
		start, end int // Indices into ops.
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for opIdx, op := range ops {
		isChange := op.kind != LineContext
		if isChange && !inChange {
			rangeStart = opIdx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, opIdx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	var hunks []Hunk
	for rangeIdx := 0; rangeIdx < len(ranges); {
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) && ranges[mergeEnd].start-ranges[mergeEnd-1].end <= contextLines*2 {
			mergeEnd++
		}

		hunks = append(hunks, buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end))
		rangeIdx = mergeEnd
	}

	return hunks
}

// buildHunk builds a single hunk from a range of operations.
func buildHunk(ops []diffOp, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for _, op := range ops[:start] {
		if op.kind != LineAdd {
			hunk.OriginalStart++
		}
		if op.kind != LineRemove {
			hunk.ModifiedStart++
		}
	}

	for _, op := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, Line{Kind: op.kind, Content: op.content})

		switch op.kind {
		case LineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case LineRemove:
			hunk.OriginalCount++
		case LineAdd:
			hunk.ModifiedCount++
		}
	}

	return hunk
}

// longestCommonSubsequence computes the LCS of two sequences.
func longestCommonSubsequence[T comparable](orig, mod []T) []T {
	origLen, modLen := len(orig), len(mod)
	if origLen == 0 || modLen == 0 {
		return nil
	}

	dp := make([][]int, origLen+1)
	for idx := range dp {
		dp[idx] = make([]int, modLen+1)
	}

	for row := 1; row <= origLen; row++ {
		for col := 1; col <= modLen; col++ {
			if orig[row-1] == mod[col-1] {
				dp[row][col] = dp[row-1][col-1] + 1
			} else {
				dp[row][col] = max(dp[row-1][col], dp[row][col-1])
			}
		}
	}

	lcsLen := dp[origLen][modLen]
	if lcsLen == 0 {
		return nil
	}

	lcs := make([]T, lcsLen)
	row, col, idx := origLen, modLen, lcsLen-1
	for row > 0 && col > 0 {
		switch {
		case orig[row-1] == mod[col-1]:
			lcs[idx] = orig[row-1]
			row--
			col--
			idx--
		case dp[row-1][col] > dp[row][col-1]:
			row--
		default:
			col--
		}
	}

	return lcs
}
