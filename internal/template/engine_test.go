package template_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bearcnc/lintdoc/internal/ruleset"
	tmpl "github.com/bearcnc/lintdoc/internal/template"
)

var _ = Describe("TemplateEngine", func() {
	var engine *tmpl.DefaultEngine

	BeforeEach(func() {
		var err error
		engine, err = tmpl.NewEngine("", "")
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("ListTemplates", func() {
		It("should list the embedded template", func() {
			Expect(engine.ListTemplates()).To(ContainElement("eslint_flat"))
		})
	})

	Describe("Render", func() {
		It("should render rule severities and options", func() {
			rs := ruleset.Compose("custom", ruleset.Group{
				Name: "custom/core",
				Rules: []ruleset.Rule{
					ruleset.R("no-var", ruleset.Error),
					ruleset.R("eqeqeq", ruleset.Error, "always", map[string]any{"null": "ignore"}),
					ruleset.R("func-style", ruleset.Off, "expression"),
				},
			})

			result, err := engine.Render(rs)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring("// Profile: custom"))
			Expect(result).To(ContainSubstring(`name: "custom/core",`))
			Expect(result).To(ContainSubstring(`"no-var": "error",`))
			Expect(result).To(ContainSubstring(`"eqeqeq": ["error","always",{"null":"ignore"}],`))
			Expect(result).To(ContainSubstring(`"func-style": ["off","expression"],`))
			Expect(result).ToNot(ContainSubstring("plugins:"))
			Expect(result).ToNot(ContainSubstring("languageOptions:"))
		})

		It("should import plugins once", func() {
			rs, err := ruleset.Profile(ruleset.ProfileES6)
			Expect(err).ToNot(HaveOccurred())

			result, err := engine.Render(rs)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring(`import stylisticPlugin from "@stylistic/eslint-plugin";`))
			Expect(result).To(ContainSubstring(`import importPlugin from "eslint-plugin-import";`))
			Expect(result).To(ContainSubstring(`"@stylistic": stylisticPlugin,`))
			Expect(result).To(ContainSubstring(`"import": importPlugin,`))
		})

		It("should render language options", func() {
			es6, _ := ruleset.Profile(ruleset.ProfileES6)
			result, err := engine.Render(es6)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring(`ecmaVersion: "latest",`))
			Expect(result).To(ContainSubstring(`sourceType: "module",`))

			es5, _ := ruleset.Profile(ruleset.ProfileES5)
			result, err = engine.Render(es5)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(ContainSubstring("ecmaVersion: 5,"))
			Expect(result).ToNot(ContainSubstring("sourceType"))
			Expect(result).To(ContainSubstring(`"no-var": "off",`))
		})

		It("should fail for an unknown template", func() {
			_, err := engine.RenderWith("missing", ruleset.Compose("x"))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("eslint_flat"))
		})
	})

	Describe("template directory", func() {
		It("should fall back to embedded templates for a nonexistent directory", func() {
			e, err := tmpl.NewEngine("nonexistent_dir", "eslint_flat")
			Expect(err).ToNot(HaveOccurred())
			Expect(e.ListTemplates()).To(ContainElement("eslint_flat"))
		})

		It("should load and prefer templates from the directory", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "rules_only.tmpl"),
				[]byte(`{{ range .Groups }}{{ range .Rules }}{{ .ID }}={{ .Value }};{{ end }}{{ end }}`), 0644)).To(Succeed())

			e, err := tmpl.NewEngine(dir, "rules_only")
			Expect(err).ToNot(HaveOccurred())
			Expect(e.ListTemplates()).To(Equal([]string{"eslint_flat", "rules_only"}))

			result, err := e.Render(ruleset.Compose("x", ruleset.Group{Rules: []ruleset.Rule{ruleset.R("no-var", ruleset.Warn)}}))
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(Equal(`no-var="warn";`))
		})

		It("should fail for an unknown default template", func() {
			_, err := tmpl.NewEngine("", "ginkgo_default")
			Expect(err).To(HaveOccurred())
		})

		It("should fail for a broken template", func() {
			dir := GinkgoT().TempDir()
			Expect(os.WriteFile(filepath.Join(dir, "broken.tmpl"), []byte(`{{ .Groups `), 0644)).To(Succeed())
			_, err := tmpl.NewEngine(dir, "")
			Expect(err).To(HaveOccurred())
		})
	})
})
