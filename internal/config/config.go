// Package config assembles the rule catalogs and run options consumed by
// the scanner and insight engine: per-domain PatternRule lists (frontend,
// backend, mobile, devops, data/ML, system) and the AppConfig that wires
// them together with scan and insight-engine parameters.
package config

import "github.com/prenomnom/dux/internal/model"

// Domain groups a set of pattern rules by the kind of project they target.
// Unlike the cleaner this package is descended from, a Domain here is
// purely a label used to build (and optionally filter) rule catalogs — it
// carries no cleaning semantics.
type Domain int

const (
	DomainSystem Domain = iota
	DomainFrontend
	DomainBackend
	DomainMobile
	DomainDevOps
	DomainDataML
)

// String returns a human-readable representation.
func (d Domain) String() string {
	switch d {
	case DomainSystem:
		return "System"
	case DomainFrontend:
		return "Frontend"
	case DomainBackend:
		return "Backend"
	case DomainMobile:
		return "Mobile"
	case DomainDevOps:
		return "DevOps"
	case DomainDataML:
		return "DataML"
	default:
		return "Unknown"
	}
}

// AllDomains lists every built-in domain, in the order their rule catalogs
// are concatenated by Rules when no domain is selected.
var AllDomains = []Domain{DomainSystem, DomainFrontend, DomainBackend, DomainMobile, DomainDevOps, DomainDataML}

// rulesByDomain returns the built-in pattern rules contributed by one
// domain. Declared as a function (rather than a package-level map literal)
// so each domain file's rule-building function stays the grounding unit
// named in DESIGN.md.
func rulesByDomain(d Domain) []model.PatternRule {
	switch d {
	case DomainSystem:
		return systemRules()
	case DomainFrontend:
		return frontendRules()
	case DomainBackend:
		return backendRules()
	case DomainMobile:
		return mobileRules()
	case DomainDevOps:
		return devopsRules()
	case DomainDataML:
		return dataMLRules()
	default:
		return nil
	}
}

// AppConfig is the full set of knobs a CLI or TUI consumer assembles
// before calling the scanner and insight engine.
type AppConfig struct {
	// ScanWorkers is the scanner's worker pool size (scan_workers, >= 1).
	ScanWorkers int
	// MaxDepth optionally bounds scan recursion; nil means unlimited.
	MaxDepth *int
	// Domains selects which built-in rule catalogs to include; empty means
	// all of them.
	Domains []Domain
	// ExtraRules are appended after the selected domains' built-in rules.
	ExtraRules []model.PatternRule
	// AdditionalTempPaths and AdditionalCachePaths are extra absolute path
	// bases classified on (raw-case) prefix match.
	AdditionalTempPaths  []string
	AdditionalCachePaths []string
	// MaxInsightsPerCategory is the per-category top-K heap capacity (K);
	// must be >= 10.
	MaxInsightsPerCategory int
	// Verbose enables more detailed progress/error reporting in consumers.
	Verbose bool
}

const minMaxInsightsPerCategory = 10

// NewDefaultConfig returns an AppConfig with sensible defaults: all
// built-in domains, four scan workers, and a top-50 per category.
func NewDefaultConfig() *AppConfig {
	return &AppConfig{
		ScanWorkers:            4,
		Domains:                nil,
		MaxInsightsPerCategory: 50,
		Verbose:                false,
	}
}

// Rules resolves cfg.Domains (all built-in domains when empty) plus
// ExtraRules into the flat PatternRule list the insight engine compiles.
func (cfg *AppConfig) Rules() []model.PatternRule {
	domains := cfg.Domains
	if len(domains) == 0 {
		domains = AllDomains
	}
	var rules []model.PatternRule
	for _, d := range domains {
		rules = append(rules, rulesByDomain(d)...)
	}
	rules = append(rules, cfg.ExtraRules...)
	return rules
}

// EffectiveMaxInsightsPerCategory clamps K to the engine's documented
// floor of 10.
func (cfg *AppConfig) EffectiveMaxInsightsPerCategory() int {
	if cfg.MaxInsightsPerCategory < minMaxInsightsPerCategory {
		return minMaxInsightsPerCategory
	}
	return cfg.MaxInsightsPerCategory
}
