package suite_test

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/bearcnc/lintdoc/internal/config"
	"github.com/bearcnc/lintdoc/internal/suite"
)

var _ = Describe("Coverage", func() {
	var (
		cfg *config.Config
		log *logrus.Logger
	)

	BeforeEach(func() {
		log = logrus.New()
		log.SetOutput(io.Discard)
		cfg = config.DefaultConfig()
		cfg.Docs.Directories = []string{docsDir()}
	})

	find := func(report *suite.CoverageReport, id string) suite.RuleCoverage {
		for _, r := range report.Rules {
			if r.RuleID == id {
				return r
			}
		}
		Fail("rule " + id + " not in coverage report")
		return suite.RuleCoverage{}
	}

	It("should count the sections of every enabled rule", func() {
		report, err := suite.New(cfg, log, nil).Coverage("es6")
		Expect(err).ToNot(HaveOccurred())

		Expect(find(report, "prefer-const").Sections()).To(Equal(1))
		Expect(find(report, "no-array-constructor").Locations).To(Equal([]string{
			filepath.Join(docsDir(), "nested", "arrays.md") + ":3",
		}))
		Expect(report.Missing()).To(ContainElement("no-const-assign"))
		Expect(report.Missing()).ToNot(ContainElement("no-var"))
		Expect(report.Unknown).To(BeEmpty())
	})

	It("should list duplicated rules", func() {
		report, err := suite.New(cfg, log, nil).Coverage("es6")
		Expect(err).ToNot(HaveOccurred())

		dups := report.Duplicated()
		Expect(dups).To(HaveLen(1))
		Expect(dups[0].RuleID).To(Equal("no-var"))
		Expect(dups[0].Locations).To(ContainElement(filepath.Join(docsDir(), "duplicate.md") + ":3"))
	})

	It("should leave disabled rules out", func() {
		report, err := suite.New(cfg, log, nil).Coverage("es5")
		Expect(err).ToNot(HaveOccurred())
		for _, r := range report.Rules {
			Expect(r.RuleID).ToNot(Equal("no-var"))
		}
	})

	It("should list documented rules the profile does not configure", func() {
		path := filepath.Join(GinkgoT().TempDir(), "extra.md")
		Expect(os.WriteFile(path, []byte("- Made up. eslint: [`made-up-rule`]\n"), 0644)).To(Succeed())
		cfg.Docs = config.DocsConfig{Files: []string{path}}

		report, err := suite.New(cfg, log, nil).Coverage("es6")
		Expect(err).ToNot(HaveOccurred())
		Expect(report.Unknown).To(Equal([]string{"made-up-rule"}))
	})

	It("should reject unknown profiles", func() {
		_, err := suite.New(cfg, log, nil).Coverage("es2015")
		Expect(err).To(HaveOccurred())
	})
})
