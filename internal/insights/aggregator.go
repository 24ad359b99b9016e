package insights

import (
	"container/heap"
	"sort"

	"github.com/prenomnom/dux/internal/model"
)

// insightHeap is a min-heap of Insight keyed by DiskUsage, used as the
// bounded top-K structure for one category.
type insightHeap []model.Insight

func (h insightHeap) Len() int            { return len(h) }
func (h insightHeap) Less(i, j int) bool  { return h[i].DiskUsage < h[j].DiskUsage }
func (h insightHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *insightHeap) Push(x interface{}) { *h = append(*h, x.(model.Insight)) }
func (h *insightHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// categoryAggregator accumulates both the exact per-category totals and
// the bounded top-K heap for one category.
type categoryAggregator struct {
	totals   model.CategoryTotals
	heapData insightHeap
	k        int
	bestSeen map[string]int64
}

func newCategoryAggregator(k int) *categoryAggregator {
	return &categoryAggregator{
		totals:   model.CategoryTotals{Paths: map[string]struct{}{}},
		k:        k,
		bestSeen: map[string]int64{},
	}
}

// record folds one matched Insight into the exact totals and, subject to
// the heap admission rule, the bounded top-K heap.
//
// Per-path dedup uses a side map of the best DiskUsage seen so far rather
// than mutating the heap in place: an insight whose path is already
// present with an equal or larger DiskUsage is dropped outright; otherwise
// it goes through ordinary top-K admission (push if not full, else
// replace the current minimum if it would be evicted). A path that
// already has an entry in the heap can end up with a second, larger
// entry this way — that stale duplicate is expected and is resolved by
// finalize's single dedup pass, not by this method.
func (a *categoryAggregator) record(insight model.Insight) {
	a.totals.Count++
	a.totals.SizeBytes += insight.SizeBytes
	a.totals.DiskUsage += insight.DiskUsage
	a.totals.Paths[insight.Path] = struct{}{}

	if prev, ok := a.bestSeen[insight.Path]; ok && insight.DiskUsage <= prev {
		return
	}
	a.bestSeen[insight.Path] = insight.DiskUsage

	if a.heapData.Len() < a.k {
		heap.Push(&a.heapData, insight)
		return
	}
	if a.heapData.Len() > 0 && insight.DiskUsage > a.heapData[0].DiskUsage {
		heap.Pop(&a.heapData)
		heap.Push(&a.heapData, insight)
	}
}

// finalize sorts the heap's contents by DiskUsage descending and dedups
// by path, keeping only the largest-DiskUsage entry seen per path.
func (a *categoryAggregator) finalize() []model.Insight {
	sorted := make([]model.Insight, len(a.heapData))
	copy(sorted, a.heapData)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].DiskUsage > sorted[j].DiskUsage })

	seen := make(map[string]bool, len(sorted))
	out := make([]model.Insight, 0, len(sorted))
	for _, ins := range sorted {
		if seen[ins.Path] {
			continue
		}
		seen[ins.Path] = true
		out = append(out, ins)
	}
	return out
}
