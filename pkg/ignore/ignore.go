// Package ignore matches slash-separated paths against gitignore-style
// patterns. rp uses it to drop entries of a list file.
package ignore

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Pattern is one compiled ignore line.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of Line.
	Negate bool           // Line started with '!'.
	Line   string         // Original pattern line.
	LineNo int            // 1-based position among the compiled lines.
}

// Matcher holds an ordered set of patterns. Later patterns override earlier
// ones, so a negated pattern can re-include a path.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Matcher. A nil logger is replaced by a no-op logger.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Compile builds a Matcher from pattern lines.
func Compile(logger *zap.Logger, lines ...string) *Matcher {
	m := New(logger)
	m.CompileLines(lines...)
	return m
}

// CompileLines appends patterns. Blank lines and '#' comments are skipped.
func (m *Matcher) CompileLines(lines ...string) {
	for _, line := range lines {
		re, negate, ok := parsePatternLine(line)
		if !ok {
			continue
		}
		p := &Pattern{
			Regexp: re,
			Negate: negate,
			Line:   line,
			LineNo: len(m.patterns) + 1,
		}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled exclude pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// MatchesPathWithPattern reports whether p is excluded along with the last
// pattern that decided it.
func (m *Matcher) MatchesPathWithPattern(p string) (bool, *Pattern) {
	normalized := normalizePath(p)

	var matched *Pattern
	matches := false
	for _, pattern := range m.patterns {
		if pattern.Regexp.MatchString(normalized) {
			matched = pattern
			matches = !pattern.Negate
		}
	}
	return matches, matched
}

// normalizePath converts p to a clean slash path without a leading "./".
func normalizePath(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	return strings.TrimPrefix(p, "./")
}

// parsePatternLine turns one ignore line into an anchored regexp.
// ok is false for blank lines, comments and lines that do not compile.
func parsePatternLine(line string) (re *regexp.Regexp, negate bool, ok bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	rooted := strings.HasPrefix(trimmed, "/")
	dirOnly := strings.HasSuffix(trimmed, "/")
	body := strings.Trim(trimmed, "/")
	if body == "" {
		return nil, false, false
	}

	expr := globToRegex(body)
	if dirOnly {
		expr += "/.*"
	} else {
		expr += "(/.*)?"
	}
	if rooted {
		expr = "^" + expr + "$"
	} else {
		expr = "^(.*/)?" + expr + "$"
	}

	compiled, err := regexp.Compile(expr)
	if err != nil {
		return nil, false, false
	}
	return compiled, negate, true
}

// globToRegex translates '*', '?' and the '**' forms in one pass so that
// generated regexp syntax is never rewritten again.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); {
		rest := glob[i:]
		switch {
		case strings.HasPrefix(rest, "**/"):
			b.WriteString("(.*/)?")
			i += 3
		case rest == "/**":
			b.WriteString("(/.*)?")
			i += 3
		case strings.HasPrefix(rest, "**"):
			b.WriteString(".*")
			i += 2
		case rest[0] == '*':
			b.WriteString("[^/]*")
			i++
		case rest[0] == '?':
			b.WriteString("[^/]")
			i++
		default:
			r, size := utf8.DecodeRuneInString(rest)
			b.WriteString(regexp.QuoteMeta(string(r)))
			i += size
		}
	}
	return b.String()
}
