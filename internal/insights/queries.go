package insights

import (
	"container/heap"
	"sort"

	"github.com/prenomnom/dux/internal/model"
)

// nodeHeap is a min-heap of *model.ScanNode keyed by DiskUsage, used to
// keep only the n largest nodes seen during TopN's streaming DFS.
type nodeHeap []*model.ScanNode

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].DiskUsage < h[j].DiskUsage }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*model.ScanNode)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// KindFilter restricts TopN to nodes of Kind when Apply is set; with Apply
// false, files and directories are both eligible.
type KindFilter struct {
	Kind  model.Kind
	Apply bool
}

// TopN runs a streaming DFS over root (root itself excluded) and returns
// the n largest nodes by DiskUsage, optionally restricted to one Kind. It
// keeps only a bounded heap of size n rather than materializing the full
// node list.
func TopN(root *model.ScanNode, n int, filter KindFilter) []*model.ScanNode {
	if root == nil || n <= 0 {
		return nil
	}

	h := &nodeHeap{}
	var visit func(node *model.ScanNode, isRoot bool)
	visit = func(node *model.ScanNode, isRoot bool) {
		if !isRoot && (!filter.Apply || node.Kind == filter.Kind) {
			if h.Len() < n {
				heap.Push(h, node)
			} else if h.Len() > 0 && node.DiskUsage > (*h)[0].DiskUsage {
				heap.Pop(h)
				heap.Push(h, node)
			}
		}
		for _, c := range node.Children {
			visit(c, false)
		}
	}
	visit(root, true)

	out := make([]*model.ScanNode, h.Len())
	copy(out, *h)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DiskUsage > out[j].DiskUsage })
	return out
}
