package scanner

import (
	"sort"

	"github.com/prenomnom/dux/internal/model"
)

// finalize runs the size finalizer: a two-pass post-order walk that must
// run strictly after every worker has exited, since it is the first point
// at which every appended child is guaranteed visible. The first pass
// collects every directory in discovery order; the second, walking that
// list in reverse, sums each directory's size from its (by then finalized)
// children and sorts those children largest-disk-usage-first.
func finalize(root *model.ScanNode) {
	if !root.IsDir() {
		return
	}

	var dirs []*model.ScanNode
	var collect func(n *model.ScanNode)
	collect = func(n *model.ScanNode) {
		dirs = append(dirs, n)
		for _, c := range n.Children {
			if c.IsDir() {
				collect(c)
			}
		}
	}
	collect(root)

	for i := len(dirs) - 1; i >= 0; i-- {
		d := dirs[i]
		var size, usage int64
		for _, c := range d.Children {
			size += c.SizeBytes
			usage += c.DiskUsage
		}
		d.SizeBytes = size
		d.DiskUsage = usage

		sort.SliceStable(d.Children, func(a, b int) bool {
			return d.Children[a].DiskUsage > d.Children[b].DiskUsage
		})
	}
}
