package insights

import (
	"sort"
	"strings"

	"github.com/prenomnom/dux/internal/model"
	"github.com/prenomnom/dux/internal/patterns"
)

// Generate runs the insight engine's single explicit-stack, pre-order DFS
// over root: every node is matched against the compiled rule set, matches
// are recorded into their category's aggregator, and a node matched as
// Temp or Cache (or any stop_recursion rule) is not descended into — its
// subtree is represented by the ancestor's own Insight, not enumerated
// again. Generate is a pure function of root and cfg: the same inputs
// always produce a bit-identical InsightBundle.
func Generate(root *model.ScanNode, cfg Config) model.InsightBundle {
	k := cfg.k()
	ruleset := patterns.CompileRuleSet(cfg.allRules(), cfg.AdditionalTempPaths, cfg.AdditionalCachePaths)

	aggs := make(map[model.Category]*categoryAggregator, len(model.Categories))
	for _, c := range model.Categories {
		aggs[c] = newCategoryAggregator(k)
	}

	if root != nil {
		walk(root, ruleset, aggs)
	}

	bundle := model.InsightBundle{ByCategory: make(map[model.Category]*model.CategoryTotals, len(model.Categories))}
	var all []model.Insight
	for _, c := range model.Categories {
		agg := aggs[c]
		bundle.ByCategory[c] = &agg.totals
		all = append(all, agg.finalize()...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].DiskUsage > all[j].DiskUsage })
	bundle.Insights = all

	return bundle
}

func walk(root *model.ScanNode, ruleset *patterns.CompiledRuleSet, aggs map[model.Category]*categoryAggregator) {
	stack := []*model.ScanNode{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lpath := strings.ToLower(n.Path)
		lbase := strings.ToLower(n.Name)
		matched := ruleset.MatchAll(lpath, lbase, n.IsDir(), n.Path)

		stopRecursion := false
		descendSkip := false
		for _, r := range matched {
			aggs[r.Category].record(model.Insight{
				Path:      n.Path,
				SizeBytes: n.SizeBytes,
				DiskUsage: n.DiskUsage,
				Kind:      n.Kind,
				Category:  r.Category,
				Summary:   r.Name,
			})
			if r.Category == model.Temp || r.Category == model.Cache {
				descendSkip = true
			}
			if r.StopRecursion {
				stopRecursion = true
			}
		}

		if !n.IsDir() || stopRecursion || descendSkip {
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// Filter returns every insight in bundle whose category is in categories,
// preserving bundle's disk-usage-descending order.
func Filter(bundle model.InsightBundle, categories []model.Category) []model.Insight {
	if len(categories) == 0 {
		return bundle.Insights
	}
	want := make(map[model.Category]bool, len(categories))
	for _, c := range categories {
		want[c] = true
	}
	out := make([]model.Insight, 0, len(bundle.Insights))
	for _, ins := range bundle.Insights {
		if want[ins.Category] {
			out = append(out, ins)
		}
	}
	return out
}
