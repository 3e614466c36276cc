package ruleset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bearcnc/lintdoc/internal/ruleset"
)

var _ = Describe("RuleSet", func() {
	Describe("Severity", func() {
		It("should use ESLint spellings", func() {
			Expect(ruleset.Off.String()).To(Equal("off"))
			Expect(ruleset.Warn.String()).To(Equal("warn"))
			Expect(ruleset.Error.String()).To(Equal("error"))
		})

		It("should parse names and numbers", func() {
			sev, err := ruleset.ParseSeverity("2")
			Expect(err).ToNot(HaveOccurred())
			Expect(sev).To(Equal(ruleset.Error))

			sev, err = ruleset.ParseSeverity(" Warn ")
			Expect(err).ToNot(HaveOccurred())
			Expect(sev).To(Equal(ruleset.Warn))

			_, err = ruleset.ParseSeverity("fatal")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Compose", func() {
		var rs *ruleset.RuleSet

		BeforeEach(func() {
			rs = ruleset.Compose("test",
				ruleset.Group{Name: "a", Rules: []ruleset.Rule{
					ruleset.R("no-var", ruleset.Error),
					ruleset.R("eqeqeq", ruleset.Error, "always"),
				}},
				ruleset.Group{Name: "b", Rules: []ruleset.Rule{
					ruleset.R("no-var", ruleset.Off),
					ruleset.R("func-names", ruleset.Warn),
				}},
			)
		})

		It("should let later groups override earlier ones", func() {
			s, ok := rs.Setting("no-var")
			Expect(ok).To(BeTrue())
			Expect(s.Severity).To(Equal(ruleset.Off))
		})

		It("should keep options of untouched rules", func() {
			s, ok := rs.Setting("eqeqeq")
			Expect(ok).To(BeTrue())
			Expect(s.Options).To(Equal([]any{"always"}))
		})

		It("should list enabled rules sorted", func() {
			Expect(rs.Enabled()).To(Equal([]string{"eqeqeq", "func-names"}))
		})

		It("should not modify the receiver on Extend", func() {
			ext := rs.Extend("more", ruleset.Group{Name: "c", Rules: []ruleset.Rule{ruleset.R("no-var", ruleset.Error)}})
			Expect(ext.Enabled()).To(ContainElement("no-var"))
			Expect(rs.Enabled()).ToNot(ContainElement("no-var"))
			Expect(rs.Groups).To(HaveLen(2))
		})

		It("should override severities and keep options", func() {
			over := rs.Override("overrides", map[string]ruleset.Severity{
				"eqeqeq":     ruleset.Warn,
				"func-names": ruleset.Off,
			})
			s, ok := over.Setting("eqeqeq")
			Expect(ok).To(BeTrue())
			Expect(s.Severity).To(Equal(ruleset.Warn))
			Expect(s.Options).To(Equal([]any{"always"}))
			Expect(over.Enabled()).To(Equal([]string{"eqeqeq"}))
			Expect(over.Groups[len(over.Groups)-1].Name).To(Equal("overrides"))
			Expect(rs.Enabled()).To(Equal([]string{"eqeqeq", "func-names"}))
		})

		It("should return the receiver for no overrides", func() {
			Expect(rs.Override("overrides", nil)).To(BeIdenticalTo(rs))
		})

		It("should merge language options field by field", func() {
			lo := ruleset.Compose("lo",
				ruleset.Group{LanguageOptions: &ruleset.LanguageOptions{EcmaVersion: "5", SourceType: "script"}},
				ruleset.Group{LanguageOptions: &ruleset.LanguageOptions{EcmaVersion: "latest"}},
			).LanguageOptions()
			Expect(lo.EcmaVersion).To(Equal("latest"))
			Expect(lo.SourceType).To(Equal("script"))
		})
	})

	Describe("Profile", func() {
		It("should know es5 and es6", func() {
			Expect(ruleset.ProfileNames()).To(Equal([]string{"es5", "es6"}))
		})

		It("should fail for an unknown profile", func() {
			_, err := ruleset.Profile("es2099")
			Expect(err).To(HaveOccurred())
		})

		It("should turn no-var off in the legacy profile", func() {
			rs, err := ruleset.Profile(ruleset.ProfileES5)
			Expect(err).ToNot(HaveOccurred())
			Expect(rs.Enabled()).ToNot(ContainElement("no-var"))
			Expect(rs.Enabled()).To(ContainElement("no-object-constructor"))
			Expect(rs.Enabled()).ToNot(ContainElement("prefer-const"))
			Expect(rs.LanguageOptions().EcmaVersion).To(Equal("5"))
		})

		It("should include both rule generations in es6", func() {
			rs, err := ruleset.Profile(ruleset.ProfileES6)
			Expect(err).ToNot(HaveOccurred())
			Expect(rs.Enabled()).To(ContainElements("no-var", "prefer-const", "no-const-assign", "no-object-constructor"))
			Expect(rs.LanguageOptions()).To(Equal(ruleset.LanguageOptions{EcmaVersion: "latest", SourceType: "module"}))
		})

		It("should keep func-style off and func-names at warn", func() {
			rs, err := ruleset.Profile(ruleset.ProfileES6)
			Expect(err).ToNot(HaveOccurred())
			Expect(rs.Enabled()).ToNot(ContainElement("func-style"))
			s, _ := rs.Setting("func-names")
			Expect(s.Severity).To(Equal(ruleset.Warn))
		})

		It("should list each plugin once", func() {
			rs, err := ruleset.Profile(ruleset.ProfileES6)
			Expect(err).ToNot(HaveOccurred())
			var namespaces []string
			for _, p := range rs.Plugins() {
				namespaces = append(namespaces, p.Namespace)
			}
			Expect(namespaces).To(Equal([]string{"@stylistic", "import"}))
		})

		It("should return independent copies", func() {
			a, _ := ruleset.Profile(ruleset.ProfileES6)
			b, _ := ruleset.Profile(ruleset.ProfileES6)
			a.Groups = nil
			Expect(b.Groups).ToNot(BeEmpty())
		})
	})
})
