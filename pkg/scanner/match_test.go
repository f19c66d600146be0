package scanner_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/filescan/pkg/errors"
	"github.com/joe/filescan/pkg/scanner"
)

func candidate(rel string) scanner.Candidate {
	name := rel
	for i := len(rel) - 1; i >= 0; i-- {
		if rel[i] == '/' {
			name = rel[i+1:]
			break
		}
	}

	return scanner.Candidate{Path: "/root/" + rel, Name: name, RelativePath: rel}
}

func TestPatterns_MatchWholeName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := scanner.Patterns(`file\d`, `.*\.md`)
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(m.Match(candidate("file1"))).To(BeTrue())
	g.Expect(m.Match(candidate("docs/README.md"))).To(BeTrue())
	g.Expect(m.Match(candidate("file12"))).To(BeFalse())
	g.Expect(m.Match(candidate("myfile1"))).To(BeFalse())
}

func TestPatterns_NoRulesMatchNothing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := scanner.Patterns()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(m.Match(candidate("anything"))).To(BeFalse())
}

func TestPatterns_Invalid(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := scanner.Patterns("ok", "(unclosed")
	g.Expect(err).To(MatchError(errors.ErrInvalidPattern))
	g.Expect(err.Error()).To(ContainSubstring("(unclosed"))
}

func TestPatterns_UnbalancedGroupRejected(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := scanner.Patterns("a)|(b")
	g.Expect(err).To(MatchError(errors.ErrInvalidPattern))
	g.Expect(err.Error()).To(ContainSubstring("a)|(b"))
	g.Expect(m).To(BeNil())
}

func TestPatterns_AlternationMatchesWholeName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := scanner.Patterns("a|b")
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(m.Match(candidate("a"))).To(BeTrue())
	g.Expect(m.Match(candidate("b"))).To(BeTrue())
	g.Expect(m.Match(candidate("abc.txt"))).To(BeFalse())
	g.Expect(m.Match(candidate("xyzb"))).To(BeFalse())
}

func TestGlobs_NameAndPathRules(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, err := scanner.Globs("*.go", "docs/**")
	g.Expect(err).ShouldNot(HaveOccurred())

	g.Expect(m.Match(candidate("pkg/deep/main.go"))).To(BeTrue())
	g.Expect(m.Match(candidate("docs/a/b.txt"))).To(BeTrue())
	g.Expect(m.Match(candidate("other/b.txt"))).To(BeFalse())
}

func TestGlobs_Invalid(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := scanner.Globs("[")
	g.Expect(err).To(MatchError(errors.ErrInvalidPattern))
}

func TestExtensions(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := scanner.Extensions(".log", "txt", "")

	g.Expect(m.Match(candidate("a.log"))).To(BeTrue())
	g.Expect(m.Match(candidate("dir/b.txt"))).To(BeTrue())
	g.Expect(m.Match(candidate("c.LOG"))).To(BeFalse())
	g.Expect(m.Match(candidate(".txt"))).To(BeFalse())
	g.Expect(m.Match(candidate("noext"))).To(BeFalse())
}

func TestMatchFunc_UsesFullPath(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var seen string
	m := scanner.MatchFunc(func(path string) bool {
		seen = path
		return true
	})

	g.Expect(m.Match(candidate("x/y.txt"))).To(BeTrue())
	g.Expect(seen).To(Equal("/root/x/y.txt"))
}
