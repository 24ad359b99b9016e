// Package insights implements the pruning traversal that classifies a
// finalized scan tree against a compiled rule set, bounding memory with
// per-category top-K heaps while keeping exact per-category totals.
package insights

import "github.com/prenomnom/dux/internal/model"

// Config is everything Generate needs beyond the tree itself.
type Config struct {
	TempPatterns          []model.PatternRule
	CachePatterns         []model.PatternRule
	BuildArtifactPatterns []model.PatternRule

	AdditionalTempPaths  []string
	AdditionalCachePaths []string

	// MaxInsightsPerCategory is the per-category top-K heap capacity (K).
	// Values below 10 are treated as 10.
	MaxInsightsPerCategory int
}

const minK = 10

func (c Config) k() int {
	if c.MaxInsightsPerCategory < minK {
		return minK
	}
	return c.MaxInsightsPerCategory
}

func (c Config) allRules() []model.PatternRule {
	var rules []model.PatternRule
	rules = append(rules, c.TempPatterns...)
	rules = append(rules, c.CachePatterns...)
	rules = append(rules, c.BuildArtifactPatterns...)
	return rules
}
