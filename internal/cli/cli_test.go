package cli

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Commands", func() {
	var out *bytes.Buffer

	execute := func(args ...string) error {
		out = &bytes.Buffer{}
		rootCmd.SetOut(out)
		rootCmd.SetErr(out)
		rootCmd.SetArgs(args)
		return Execute()
	}

	BeforeEach(func() {
		color.NoColor = true
		exportOutput = ""
	})

	It("should validate a config file", func() {
		path := filepath.Join("..", "..", "testdata", "configs", "minimal.yaml")
		Expect(execute("validate", "--config", path)).To(Succeed())
		Expect(out.String()).To(ContainSubstring("is valid"))
	})

	It("should fail for a missing explicit config file", func() {
		Expect(execute("validate", "--config", "nonexistent.yaml")).ToNot(Succeed())
	})

	It("should export a profile to a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "eslint.config.mjs")
		Expect(execute("export", "--config", filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"),
			"--profile", "es5", "-o", path)).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("// Profile: es5"))
	})

	It("should close the log file when a command fails", func() {
		dir := GinkgoT().TempDir()
		logPath := filepath.Join(dir, "lintdoc.log")
		cfgPath := filepath.Join(dir, "lintdoc.yaml")
		Expect(os.WriteFile(cfgPath, []byte("docs:\n  files: [rules.md]\nlogging:\n  file: "+logPath+"\n"), 0644)).To(Succeed())

		Expect(execute("export", "--config", cfgPath, "--profile", "es2015")).ToNot(Succeed())
		Expect(logFile).To(BeNil())
		Expect(logPath).To(BeAnExistingFile())
	})

	It("should reject an unknown profile on export", func() {
		Expect(execute("export", "--config", filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"),
			"--profile", "es2015")).ToNot(Succeed())
	})
})
