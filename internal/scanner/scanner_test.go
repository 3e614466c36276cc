package scanner_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bearcnc/lintdoc/internal/scanner"
)

var _ = Describe("Scanner", func() {
	var (
		s    *scanner.FileScanner
		docs string
	)

	BeforeEach(func() {
		s = scanner.NewScanner(true)
		docs = filepath.Join("..", "..", "testdata", "docs")
	})

	It("should find markdown files recursively", func() {
		files, err := s.Scan(docs, []string{"**/*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(3))
	})

	It("should match base names for patterns without directories", func() {
		files, err := s.Scan(docs, []string{"*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(3))
	})

	It("should return sorted file paths", func() {
		files, err := s.Scan(docs, []string{"*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(filepath.Base(files[0])).To(Equal("duplicate.md"))
		Expect(filepath.Base(files[1])).To(Equal("arrays.md"))
		Expect(filepath.Base(files[2])).To(Equal("rules.md"))
	})

	It("should respect exclude patterns", func() {
		files, err := s.Scan(docs, []string{"**/*.md"}, []string{"duplicate.md", "nested/**"})
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(1))
		Expect(filepath.Base(files[0])).To(Equal("rules.md"))
	})

	It("should handle non-recursive mode", func() {
		s = scanner.NewScanner(false)
		files, err := s.Scan(docs, []string{"*.md"}, nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(files).To(HaveLen(2))
	})

	It("should return error for nonexistent directory", func() {
		_, err := s.Scan("nonexistent_dir", []string{"*.md"}, nil)
		Expect(err).To(HaveOccurred())
	})

	Describe("Resolve", func() {
		It("should put explicit files first and drop duplicates", func() {
			rules := filepath.Join(docs, "rules.md")
			files, err := s.Resolve([]string{rules}, []string{docs}, []string{"*.md"}, []string{"duplicate.md"})
			Expect(err).ToNot(HaveOccurred())
			Expect(files).To(HaveLen(2))
			Expect(files[0]).To(Equal(rules))
			Expect(filepath.Base(files[1])).To(Equal("arrays.md"))
		})
	})
})
