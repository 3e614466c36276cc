// Package ruleset holds the shared rule tables as typed data and composes
// them into profiles.
package ruleset

import (
	"fmt"
	"sort"
	"strings"
)

// Severity is the level a rule is configured at.
type Severity int

const (
	Off Severity = iota
	Warn
	Error
)

// String returns the ESLint spelling of the severity.
func (s Severity) String() string {
	switch s {
	case Off:
		return "off"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity accepts ESLint's string and numeric spellings.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return Off, nil
	case "warn", "1":
		return Warn, nil
	case "error", "2":
		return Error, nil
	}
	return Off, fmt.Errorf("unknown severity %q", s)
}

// Setting is a rule's severity plus its rule-specific options.
type Setting struct {
	Severity Severity
	Options  []any
}

// Rule binds a setting to a rule id.
type Rule struct {
	ID string
	Setting
}

// R builds a Rule.
func R(id string, sev Severity, options ...any) Rule {
	return Rule{ID: id, Setting: Setting{Severity: sev, Options: options}}
}

// Plugin is a rule namespace and the package providing it.
type Plugin struct {
	Namespace string // e.g. "@stylistic"
	Package   string // e.g. "@stylistic/eslint-plugin"
}

// LanguageOptions are the parser settings a group asks for.
type LanguageOptions struct {
	EcmaVersion string // "5", "latest", ...
	SourceType  string // "script", "module"; empty leaves the engine default
}

// Group is one rule table, as a single config object.
type Group struct {
	Name            string
	Plugins         []Plugin
	LanguageOptions *LanguageOptions
	Rules           []Rule
}

// RuleSet is an ordered composition of groups. Later settings for the same
// rule id override earlier ones.
type RuleSet struct {
	Name   string
	Groups []Group
}

// Compose concatenates groups in order.
func Compose(name string, groups ...Group) *RuleSet {
	return &RuleSet{Name: name, Groups: append([]Group(nil), groups...)}
}

// Extend returns a new RuleSet with groups appended after rs's.
func (rs *RuleSet) Extend(name string, groups ...Group) *RuleSet {
	all := append(append([]Group(nil), rs.Groups...), groups...)
	return &RuleSet{Name: name, Groups: all}
}

// Effective returns the final setting of every rule.
func (rs *RuleSet) Effective() map[string]Setting {
	out := make(map[string]Setting)
	for _, g := range rs.Groups {
		for _, r := range g.Rules {
			out[r.ID] = r.Setting
		}
	}
	return out
}

// Setting returns the final setting of one rule.
func (rs *RuleSet) Setting(id string) (Setting, bool) {
	s, ok := rs.Effective()[id]
	return s, ok
}

// Override returns a copy of rs with a final group changing the severity of
// the given rules. Options already configured for a rule are kept.
func (rs *RuleSet) Override(groupName string, severities map[string]Severity) *RuleSet {
	if len(severities) == 0 {
		return rs
	}
	ids := make([]string, 0, len(severities))
	for id := range severities {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	current := rs.Effective()
	g := Group{Name: groupName}
	for _, id := range ids {
		g.Rules = append(g.Rules, R(id, severities[id], current[id].Options...))
	}
	return rs.Extend(rs.Name, g)
}

// Enabled returns the sorted ids of rules not turned off.
func (rs *RuleSet) Enabled() []string {
	var ids []string
	for id, s := range rs.Effective() {
		if s.Severity != Off {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Plugins returns the plugins used by any group, first occurrence wins.
func (rs *RuleSet) Plugins() []Plugin {
	seen := make(map[string]bool)
	var out []Plugin
	for _, g := range rs.Groups {
		for _, p := range g.Plugins {
			if seen[p.Namespace] {
				continue
			}
			seen[p.Namespace] = true
			out = append(out, p)
		}
	}
	return out
}

// LanguageOptions returns the merged language options, later groups win per field.
func (rs *RuleSet) LanguageOptions() LanguageOptions {
	var lo LanguageOptions
	for _, g := range rs.Groups {
		if g.LanguageOptions == nil {
			continue
		}
		if g.LanguageOptions.EcmaVersion != "" {
			lo.EcmaVersion = g.LanguageOptions.EcmaVersion
		}
		if g.LanguageOptions.SourceType != "" {
			lo.SourceType = g.LanguageOptions.SourceType
		}
	}
	return lo
}
