package config

import (
	"testing"

	"github.com/prenomnom/dux/internal/model"
)

func TestDomain_String(t *testing.T) {
	tests := []struct {
		domain   Domain
		expected string
	}{
		{DomainSystem, "System"},
		{DomainFrontend, "Frontend"},
		{DomainBackend, "Backend"},
		{DomainMobile, "Mobile"},
		{DomainDevOps, "DevOps"},
		{DomainDataML, "DataML"},
		{Domain(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.domain.String(); got != tt.expected {
				t.Errorf("Domain.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg == nil {
		t.Fatal("NewDefaultConfig() returned nil")
	}
	if cfg.ScanWorkers != 4 {
		t.Errorf("expected ScanWorkers 4, got %d", cfg.ScanWorkers)
	}
	if cfg.MaxInsightsPerCategory != 50 {
		t.Errorf("expected MaxInsightsPerCategory 50, got %d", cfg.MaxInsightsPerCategory)
	}
	if len(cfg.Domains) != 0 {
		t.Errorf("expected empty Domains (meaning all), got %v", cfg.Domains)
	}
}

func TestRulesDefaultsToAllDomains(t *testing.T) {
	cfg := NewDefaultConfig()
	rules := cfg.Rules()

	var full []model.PatternRule
	for _, d := range AllDomains {
		full = append(full, rulesByDomain(d)...)
	}
	if len(rules) != len(full) {
		t.Fatalf("expected %d rules across all domains, got %d", len(full), len(rules))
	}
}

func TestRulesRestrictedToSelectedDomains(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Domains = []Domain{DomainFrontend}
	rules := cfg.Rules()

	want := frontendRules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d frontend-only rules, got %d", len(want), len(rules))
	}
	for _, r := range rules {
		found := false
		for _, w := range want {
			if r.Name == w.Name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("unexpected rule %q leaked from another domain", r.Name)
		}
	}
}

func TestExtraRulesAppended(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Domains = []Domain{DomainSystem}
	cfg.ExtraRules = []model.PatternRule{{Name: "custom", Pattern: "**/*.scratch", Category: model.Temp, ApplyTo: model.ApplyFile}}

	rules := cfg.Rules()
	found := false
	for _, r := range rules {
		if r.Name == "custom" {
			found = true
		}
	}
	if !found {
		t.Error("expected ExtraRules to be appended to the resolved rule list")
	}
}

func TestEffectiveMaxInsightsPerCategoryClampsToFloor(t *testing.T) {
	tests := []struct {
		configured int
		want       int
	}{
		{0, 10},
		{5, 10},
		{10, 10},
		{200, 200},
	}
	for _, tt := range tests {
		cfg := &AppConfig{MaxInsightsPerCategory: tt.configured}
		if got := cfg.EffectiveMaxInsightsPerCategory(); got != tt.want {
			t.Errorf("EffectiveMaxInsightsPerCategory() with configured=%d = %d, want %d", tt.configured, got, tt.want)
		}
	}
}

func TestEveryDomainRuleHasANameAndPattern(t *testing.T) {
	for _, d := range AllDomains {
		for _, r := range rulesByDomain(d) {
			if r.Pattern == "" {
				t.Errorf("domain %s has a rule %q with an empty pattern", d, r.Name)
			}
			if r.Name == "" {
				t.Errorf("domain %s has a rule with an empty name", d)
			}
		}
	}
}
