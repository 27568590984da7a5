package ignore

import (
	"os"
	"strings"

	"github.com/arthur-debert/doot/pkg/errors"
	"github.com/arthur-debert/doot/pkg/types"
)

// Rule is one compiled ignore pattern. Rules are immutable once compiled
// and evaluated in declaration order with last-match-wins semantics.
type Rule struct {
	pattern  string
	segments []string
	negated  bool
	dirOnly  bool
	anchored bool
}

// Matcher is an ordered sequence of rules compiled from an ignore file.
// The zero value (no rules) ignores nothing.
type Matcher struct {
	rules []Rule
}

// Compile compiles gitignore-syntax pattern lines into a Matcher.
// Lines that are empty or start with '#' are skipped; '\#' escapes a
// literal leading '#'. Returns a PATTERN_INVALID error for malformed
// globs such as an unterminated character class.
func Compile(lines []string) (*Matcher, error) {
	m := &Matcher{}
	for i, raw := range lines {
		rule, ok, err := parseLine(raw)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrPatternInvalid,
				"invalid pattern %q", raw).WithDetail("line", i+1)
		}
		if ok {
			m.rules = append(m.rules, rule)
		}
	}
	return m, nil
}

// Load reads an ignore file and compiles it. A missing file yields an
// empty matcher, matching the behavior of a group with no ignore rules.
func Load(fsys types.FS, path string) (*Matcher, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Matcher{}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIgnoreLoad, "failed to read ignore file %s", path)
	}
	return Compile(strings.Split(string(data), "\n"))
}

// parseLine turns one ignore-file line into a rule. The second return is
// false for blank and comment lines.
func parseLine(raw string) (Rule, bool, error) {
	line := strings.TrimSpace(raw)

	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false, nil
	}

	// Inline comments: everything from an unescaped " #" on is dropped
	if idx := strings.Index(line, " #"); idx >= 0 {
		line = strings.TrimSpace(line[:idx])
		if line == "" {
			return Rule{}, false, nil
		}
	}

	var rule Rule

	if strings.HasPrefix(line, "!") {
		rule.negated = true
		line = line[1:]
	}

	if strings.HasPrefix(line, `\#`) {
		line = line[1:]
	}

	if strings.HasSuffix(line, "/") && !strings.HasSuffix(line, `\/`) {
		rule.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	if strings.HasPrefix(line, "/") {
		rule.anchored = true
		line = line[1:]
	}

	if line == "" {
		return Rule{}, false, nil
	}

	if err := validatePattern(line); err != nil {
		return Rule{}, false, err
	}

	rule.pattern = line
	rule.segments = strings.Split(line, "/")
	return rule, true, nil
}

// Matches reports whether path is ignored. The path must be slash-separated
// and relative to the tree root. Evaluation is a pure fold over the rule
// list: rules apply in order, the last matching rule wins, and no match
// means not ignored. A path under an ignored directory is always ignored;
// negation cannot re-include descendants of an excluded directory.
func (m *Matcher) Matches(path string, isDir bool) bool {
	path = strings.Trim(path, "/")
	if path == "" || path == "." {
		return false
	}

	// Directory exclusion is terminal for descendants
	segs := strings.Split(path, "/")
	for i := 1; i < len(segs); i++ {
		if m.verdict(strings.Join(segs[:i], "/"), true) {
			return true
		}
	}

	return m.verdict(path, isDir)
}

// verdict folds the rule list over one exact path
func (m *Matcher) verdict(path string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.match(path) {
			ignored = !r.negated
		}
	}
	return ignored
}

// Len returns the number of compiled rules
func (m *Matcher) Len() int {
	return len(m.rules)
}

func (r *Rule) match(path string) bool {
	segs := strings.Split(path, "/")

	if r.anchored {
		return matchSegments(r.segments, segs)
	}

	// A pattern without a slash matches the final path segment at any depth
	if len(r.segments) == 1 && r.segments[0] != "**" {
		return matchSegment(r.segments[0], segs[len(segs)-1])
	}

	// Unanchored multi-segment patterns may start at any depth
	for i := 0; i < len(segs); i++ {
		if matchSegments(r.segments, segs[i:]) {
			return true
		}
	}
	return false
}
