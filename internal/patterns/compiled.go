// Package patterns compiles declarative PatternRule lists into a dispatch
// structure optimized for single-pass, per-node matching: an exact-basename
// map, an Aho–Corasick substring automaton for Contains rules, and plain
// slices for the less frequent EndsWith/StartsWith/Glob kinds. Classification
// of a rule's pattern into one of the five matcher kinds happens once, at
// compile time — the hot loop (MatchAll) never re-parses a pattern.
package patterns

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/prenomnom/dux/internal/ahocorasick"
	"github.com/prenomnom/dux/internal/model"
)

type suffixRule struct {
	suffix string
	rule   *model.PatternRule
}

type prefixRule struct {
	prefix string
	rule   *model.PatternRule
}

type globRule struct {
	pattern       string
	secondAttempt string
	rule          *model.PatternRule
}

type containsValue struct {
	rule    *model.PatternRule
	endOnly bool
}

// additionalRule is a synthetic rule built from config's
// additional_temp_paths / additional_cache_paths, matched by exact or
// prefix comparison against the raw-case path.
type additionalRule struct {
	base string
	rule *model.PatternRule
}

// dispatchBlock holds every rule applicable to one node kind (file or
// directory), already split by matcher kind.
type dispatchBlock struct {
	exact      map[string][]*model.PatternRule
	containsAC *ahocorasick.Automaton[containsValue]
	hasContains bool
	endsWith   []suffixRule
	startsWith []prefixRule
	globs      []globRule
}

// CompiledRuleSet is the output of CompileRuleSet: two dispatch blocks (one
// for files, one for directories) plus the shared additional-path rules.
type CompiledRuleSet struct {
	forFile    dispatchBlock
	forDir     dispatchBlock
	additional []additionalRule
}

// CompileRuleSet builds a CompiledRuleSet from declarative rules plus the
// extra temp/cache path bases from configuration. It is a pure function of
// its inputs: the same rules always compile to a ruleset with identical
// MatchAll behavior.
func CompileRuleSet(rules []model.PatternRule, additionalTempPaths, additionalCachePaths []string) *CompiledRuleSet {
	rs := &CompiledRuleSet{
		forFile: newDispatchBlock(),
		forDir:  newDispatchBlock(),
	}

	for i := range rules {
		rule := &rules[i]
		if rule.ApplyTo == model.ApplyFile || rule.ApplyTo == model.ApplyBoth {
			addRule(&rs.forFile, rule)
		}
		if rule.ApplyTo == model.ApplyDir || rule.ApplyTo == model.ApplyBoth {
			addRule(&rs.forDir, rule)
		}
	}

	rs.forFile.containsAC.Build()
	rs.forDir.containsAC.Build()

	for _, base := range additionalTempPaths {
		rs.additional = append(rs.additional, additionalRule{
			base: base,
			rule: &model.PatternRule{Name: "additional-temp-path", Pattern: base, Category: model.Temp, ApplyTo: model.ApplyBoth},
		})
	}
	for _, base := range additionalCachePaths {
		rs.additional = append(rs.additional, additionalRule{
			base: base,
			rule: &model.PatternRule{Name: "additional-cache-path", Pattern: base, Category: model.Cache, ApplyTo: model.ApplyBoth},
		})
	}

	return rs
}

func newDispatchBlock() dispatchBlock {
	return dispatchBlock{
		exact:      map[string][]*model.PatternRule{},
		containsAC: ahocorasick.New[containsValue](),
	}
}

func addRule(block *dispatchBlock, rule *model.PatternRule) {
	lowered := strings.ToLower(rule.Pattern)
	for _, sub := range expandBraces(lowered) {
		c := classify(sub)
		switch c.kind {
		case kindExact:
			block.exact[c.literal] = append(block.exact[c.literal], rule)
		case kindContains:
			block.hasContains = true
			block.containsAC.AddWord("/"+c.literal+"/", containsValue{rule: rule, endOnly: false})
			block.containsAC.AddWord("/"+c.literal, containsValue{rule: rule, endOnly: true})
		case kindEndsWith:
			block.endsWith = append(block.endsWith, suffixRule{suffix: c.suffix, rule: rule})
		case kindStartsWith:
			block.startsWith = append(block.startsWith, prefixRule{prefix: c.prefix, rule: rule})
		case kindGlob:
			block.globs = append(block.globs, globRule{pattern: c.pattern, secondAttempt: globSecondAttempt(c.pattern), rule: rule})
		}
	}
}

// MatchAll returns every rule matching this node, in the order spec'd by
// the pattern compiler: within a category, the first phase (Exact →
// Contains → EndsWith → StartsWith → Glob → Additional) and, within a
// phase, the first rule in declaration order wins; across categories, all
// matching rules are returned, at most one per category.
func (rs *CompiledRuleSet) MatchAll(lpath, lbase string, isDir bool, rawPath string) []*model.PatternRule {
	block := &rs.forFile
	if isDir {
		block = &rs.forDir
	}

	seen := map[model.Category]bool{}
	var matched []*model.PatternRule
	try := func(candidates []*model.PatternRule) {
		for _, r := range candidates {
			if seen[r.Category] {
				continue
			}
			seen[r.Category] = true
			matched = append(matched, r)
		}
	}

	try(block.exact[lbase])
	try(block.contains(lpath))
	try(block.endsWithMatches(lbase))
	try(block.startsWithMatches(lbase))
	try(block.globMatches(lpath, lbase))
	try(rs.additionalMatches(rawPath))

	return matched
}

func (b *dispatchBlock) contains(lpath string) []*model.PatternRule {
	if !b.hasContains {
		return nil
	}
	var out []*model.PatternRule
	for _, m := range b.containsAC.Iter(lpath) {
		for _, v := range m.Values {
			if v.endOnly && m.EndIndex != len(lpath)-1 {
				continue
			}
			out = append(out, v.rule)
		}
	}
	return out
}

func (b *dispatchBlock) endsWithMatches(lbase string) []*model.PatternRule {
	var out []*model.PatternRule
	for _, sr := range b.endsWith {
		if strings.HasSuffix(lbase, sr.suffix) {
			out = append(out, sr.rule)
		}
	}
	return out
}

func (b *dispatchBlock) startsWithMatches(lbase string) []*model.PatternRule {
	var out []*model.PatternRule
	for _, pr := range b.startsWith {
		if strings.HasPrefix(lbase, pr.prefix) {
			out = append(out, pr.rule)
		}
	}
	return out
}

func (b *dispatchBlock) globMatches(lpath, lbase string) []*model.PatternRule {
	var out []*model.PatternRule
	for _, g := range b.globs {
		if ok, _ := doublestar.Match(g.pattern, lpath); ok {
			out = append(out, g.rule)
			continue
		}
		if ok, _ := doublestar.Match(g.secondAttempt, lbase); ok {
			out = append(out, g.rule)
		}
	}
	return out
}

func (rs *CompiledRuleSet) additionalMatches(rawPath string) []*model.PatternRule {
	var out []*model.PatternRule
	for _, ar := range rs.additional {
		if rawPath == ar.base || strings.HasPrefix(rawPath, ar.base+"/") {
			out = append(out, ar.rule)
		}
	}
	return out
}
