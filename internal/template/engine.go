package template

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/bearcnc/lintdoc/internal/domain"
	"github.com/bearcnc/lintdoc/internal/ruleset"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// DefaultTemplate is the embedded ESLint flat config template.
const DefaultTemplate = "eslint_flat"

// TemplateEngine renders a rule set into an ESLint configuration module.
type TemplateEngine interface {
	Render(rs *ruleset.RuleSet) (string, error)
	ListTemplates() []string
}

// templateData is the struct passed to templates.
type templateData struct {
	Profile         string
	Plugins         []pluginData
	Groups          []groupData
	LanguageOptions *ruleset.LanguageOptions
}

type pluginData struct {
	Namespace string
	Package   string
	Ident     string
}

type groupData struct {
	Name  string
	Rules []ruleData
}

type ruleData struct {
	ID    string
	Value string // JavaScript literal
}

// DefaultEngine implements TemplateEngine.
type DefaultEngine struct {
	templates   map[string]*template.Template
	defaultName string
	templateDir string
}

// NewEngine creates a new template engine. Templates in templateDir override
// the embedded ones of the same name; a missing or empty templateDir leaves
// only the embedded templates.
func NewEngine(templateDir string, defaultTemplate string) (*DefaultEngine, error) {
	if defaultTemplate == "" {
		defaultTemplate = DefaultTemplate
	}
	engine := &DefaultEngine{
		templates:   make(map[string]*template.Template),
		defaultName: defaultTemplate,
		templateDir: templateDir,
	}

	if err := engine.loadEmbedded(); err != nil {
		return nil, err
	}
	if err := engine.loadTemplates(); err != nil {
		return nil, err
	}
	if _, ok := engine.templates[defaultTemplate]; !ok {
		return nil, domain.NewError("template", templateDir, 0,
			fmt.Sprintf("default template %q not found (available: %s)", defaultTemplate, strings.Join(engine.ListTemplates(), ", ")), nil)
	}

	return engine, nil
}

func (e *DefaultEngine) loadEmbedded() error {
	entries, err := embedded.ReadDir("templates")
	if err != nil {
		return domain.NewError("template", "embedded", 0, "failed to read embedded templates", err)
	}
	for _, entry := range entries {
		content, err := embedded.ReadFile("templates/" + entry.Name())
		if err != nil {
			return domain.NewError("template", entry.Name(), 0, "failed to read embedded template", err)
		}
		if err := e.add(entry.Name(), string(content)); err != nil {
			return err
		}
	}
	return nil
}

// loadTemplates reads all .tmpl files from the template directory.
func (e *DefaultEngine) loadTemplates() error {
	if e.templateDir == "" {
		return nil
	}
	entries, err := os.ReadDir(e.templateDir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return domain.NewError("template", e.templateDir, 0, "failed to read template directory", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		path := filepath.Join(e.templateDir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return domain.NewError("template", path, 0, "failed to read template file", err)
		}
		if err := e.add(entry.Name(), string(content)); err != nil {
			return domain.NewError("template", path, 0, "failed to parse template", err)
		}
	}

	return nil
}

func (e *DefaultEngine) add(fileName, content string) error {
	name := strings.TrimSuffix(fileName, ".tmpl")
	tmpl, err := template.New(name).Funcs(CustomFuncMap()).Parse(content)
	if err != nil {
		return domain.NewError("template", fileName, 0, "failed to parse template", err)
	}
	e.templates[name] = tmpl
	return nil
}

// Render renders rs with the default template.
func (e *DefaultEngine) Render(rs *ruleset.RuleSet) (string, error) {
	return e.RenderWith(e.defaultName, rs)
}

// RenderWith renders rs with the named template.
func (e *DefaultEngine) RenderWith(name string, rs *ruleset.RuleSet) (string, error) {
	tmpl, ok := e.templates[name]
	if !ok {
		return "", domain.NewError("template", "", 0,
			fmt.Sprintf("template %q not found (available: %s)", name, strings.Join(e.ListTemplates(), ", ")), nil)
	}

	data, err := buildData(rs)
	if err != nil {
		return "", domain.NewError("export", rs.Name, 0, "failed to encode rule options", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", domain.NewError("template", name, 0, "failed to execute template", err)
	}
	return buf.String(), nil
}

// ListTemplates returns the names of all loaded templates, sorted.
func (e *DefaultEngine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildData(rs *ruleset.RuleSet) (templateData, error) {
	data := templateData{Profile: rs.Name}

	for _, p := range rs.Plugins() {
		data.Plugins = append(data.Plugins, pluginData{
			Namespace: p.Namespace,
			Package:   p.Package,
			Ident:     pluginIdent(p.Namespace),
		})
	}

	for _, g := range rs.Groups {
		if len(g.Rules) == 0 {
			continue
		}
		gd := groupData{Name: g.Name}
		for _, r := range g.Rules {
			v, err := ruleValue(r.Setting)
			if err != nil {
				return data, fmt.Errorf("%s: %w", r.ID, err)
			}
			gd.Rules = append(gd.Rules, ruleData{ID: r.ID, Value: v})
		}
		data.Groups = append(data.Groups, gd)
	}

	if lo := rs.LanguageOptions(); lo != (ruleset.LanguageOptions{}) {
		data.LanguageOptions = &lo
	}
	return data, nil
}
