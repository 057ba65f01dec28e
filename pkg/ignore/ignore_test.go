package ignore

import "testing"

func TestMatcher_MatchesPath(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"extension", []string{"*.log"}, "app.log", true},
		{"extension nested", []string{"*.log"}, "logs/app.log", true},
		{"extension no match", []string{"*.log"}, "app.go", false},
		{"star stays in segment", []string{"src/*.go"}, "src/pkg/a.go", false},
		{"directory", []string{"vendor/"}, "vendor/github.com/x/y.go", true},
		{"directory nested", []string{"vendor/"}, "a/vendor/y.go", true},
		{"directory pattern needs children", []string{"vendor/"}, "vendor", false},
		{"rooted", []string{"/build"}, "build/out.txt", true},
		{"rooted not nested", []string{"/build"}, "src/build/out.txt", false},
		{"leading double star", []string{"**/testdata"}, "a/b/testdata/x.json", true},
		{"middle double star", []string{"docs/**/draft.md"}, "docs/a/b/draft.md", true},
		{"middle double star zero dirs", []string{"docs/**/draft.md"}, "docs/draft.md", true},
		{"trailing double star", []string{"gen/**"}, "gen/x/y.go", true},
		{"question mark", []string{"file?.txt"}, "file1.txt", true},
		{"question mark not slash", []string{"a?b"}, "a/b", false},
		{"regex characters are literal", []string{"a+(b).txt"}, "a+(b).txt", true},
		{"dot is literal", []string{"a.txt"}, "abtxt", false},
		{"negation", []string{"*.log", "!keep.log"}, "keep.log", false},
		{"negation then re-exclude", []string{"*.log", "!keep.log", "keep.*"}, "keep.log", true},
		{"comment and blank ignored", []string{"# *.go", "", "   "}, "main.go", false},
		{"escaped hash", []string{`\#notes`}, "#notes", true},
		{"dot slash prefix", []string{"/main.go"}, "./main.go", true},
		{"path is cleaned", []string{"tmp/"}, "./tmp/../tmp/x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compile(nil, tt.patterns...)
			if got, _ := m.MatchesPathWithPattern(tt.path); got != tt.want {
				t.Errorf("MatchesPathWithPattern(%q) with %v = %v, want %v", tt.path, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestMatcher_MatchesPathWithPattern(t *testing.T) {
	m := Compile(nil, "*.log", "!keep.log")

	matched, pattern := m.MatchesPathWithPattern("keep.log")
	if matched {
		t.Error("keep.log should not be excluded")
	}
	if pattern == nil || pattern.Line != "!keep.log" || !pattern.Negate || pattern.LineNo != 2 {
		t.Errorf("pattern = %+v, want the negated second line", pattern)
	}

	matched, pattern = m.MatchesPathWithPattern("main.go")
	if matched || pattern != nil {
		t.Errorf("MatchesPathWithPattern(main.go) = %v, %+v, want false, nil", matched, pattern)
	}
}

func TestMatcher_SkipsBlankAndCommentLines(t *testing.T) {
	m := New(nil)
	m.CompileLines("# comment", "", "*.tmp", "/", "!x")
	if got := len(m.patterns); got != 2 {
		t.Errorf("compiled %d patterns, want 2", got)
	}
}
