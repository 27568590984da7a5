package diff

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

// Op is a line-level edit operation.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Line is one line of an edit script. OldLine and NewLine are 1-based and
// track each side's numbering independently: OldLine is the destination
// line number (0 for inserts), NewLine the source line number (0 for
// deletes). Text keeps its trailing newline when the input had one, so
// concatenating lines reproduces the original content exactly.
type Line struct {
	Op      Op
	OldLine int
	NewLine int
	Text    string
}

// Result is the outcome of diffing a destination buffer against a source
// buffer. Binary marks content that cannot be line-diffed; Lines is empty
// in that case.
type Result struct {
	Binary bool
	Lines  []Line
}

// Compute produces the line-level edit script that turns destination into
// source. Content containing a NUL byte or invalid UTF-8 short-circuits to
// a Binary result. The script is minimal under full-line equality, which
// includes trailing whitespace; a file without a trailing newline is
// diffed as-is, never padded.
func Compute(destination, source []byte) Result {
	if isBinary(destination) || isBinary(source) {
		return Result{Binary: true}
	}

	old := splitLines(destination)
	new := splitLines(source)

	matcher := difflib.NewMatcher(old, new)

	var lines []Line
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for k := 0; k < op.I2-op.I1; k++ {
				lines = append(lines, Line{
					Op:      OpEqual,
					OldLine: op.I1 + k + 1,
					NewLine: op.J1 + k + 1,
					Text:    old[op.I1+k],
				})
			}
		case 'd', 'r':
			for i := op.I1; i < op.I2; i++ {
				lines = append(lines, Line{
					Op:      OpDelete,
					OldLine: i + 1,
					Text:    old[i],
				})
			}
			if op.Tag == 'r' {
				for j := op.J1; j < op.J2; j++ {
					lines = append(lines, Line{
						Op:      OpInsert,
						NewLine: j + 1,
						Text:    new[j],
					})
				}
			}
		case 'i':
			for j := op.J1; j < op.J2; j++ {
				lines = append(lines, Line{
					Op:      OpInsert,
					NewLine: j + 1,
					Text:    new[j],
				})
			}
		}
	}

	return Result{Lines: lines}
}

// Hunks groups the edit script for display, keeping up to context equal
// lines around each run of changes and merging overlapping windows. A
// result with no changes yields no hunks.
func (r Result) Hunks(context int) [][]Line {
	n := len(r.Lines)
	var ranges [][2]int
	for i := 0; i < n; i++ {
		if r.Lines[i].Op == OpEqual {
			continue
		}
		start := i - context
		if start < 0 {
			start = 0
		}
		end := i + context + 1
		if end > n {
			end = n
		}
		if len(ranges) > 0 && start <= ranges[len(ranges)-1][1] {
			ranges[len(ranges)-1][1] = end
		} else {
			ranges = append(ranges, [2]int{start, end})
		}
	}

	hunks := make([][]Line, 0, len(ranges))
	for _, rg := range ranges {
		hunks = append(hunks, r.Lines[rg[0]:rg[1]])
	}
	return hunks
}

// HasChanges reports whether the script contains any insert or delete.
func (r Result) HasChanges() bool {
	for _, l := range r.Lines {
		if l.Op != OpEqual {
			return true
		}
	}
	return false
}

// splitLines splits content into lines that keep their trailing newline.
// The final line stays unterminated when the content is.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.SplitAfter(string(content), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func isBinary(content []byte) bool {
	return bytes.IndexByte(content, 0) >= 0 || !utf8.Valid(content)
}
