package scanner

import (
	"context"
	"fmt"

	"github.com/prenomnom/dux/internal/fsadapter"
)

// fakeNode is an in-memory filesystem entry used to drive scanner tests
// without touching a real disk.
type fakeNode struct {
	name      string
	isDir     bool
	size      int64
	diskUsage int64
	children  []*fakeNode
}

func file(name string, size int64) *fakeNode {
	return &fakeNode{name: name, size: size, diskUsage: size}
}

func dir(name string, children ...*fakeNode) *fakeNode {
	return &fakeNode{name: name, isDir: true, children: children}
}

// fakeFS implements fsadapter.FS over an in-memory tree rooted at rootPath.
type fakeFS struct {
	rootPath string
	nodes    map[string]*fakeNode
}

func newFakeFS(rootPath string, root *fakeNode) *fakeFS {
	fs := &fakeFS{rootPath: rootPath, nodes: map[string]*fakeNode{}}
	var walk func(path string, n *fakeNode)
	walk = func(path string, n *fakeNode) {
		fs.nodes[path] = n
		for _, c := range n.children {
			walk(path+"/"+c.name, c)
		}
	}
	walk(rootPath, root)
	return fs
}

func (f *fakeFS) ExpandUser(path string) (string, error) { return path, nil }

func (f *fakeFS) Exists(path string) bool {
	_, ok := f.nodes[path]
	return ok
}

func (f *fakeFS) StatPath(path string) (fsadapter.Stat, error) {
	n, ok := f.nodes[path]
	if !ok {
		return fsadapter.Stat{}, fmt.Errorf("fakeFS: no such path %q", path)
	}
	return fsadapter.Stat{Size: n.size, DiskUsage: n.diskUsage, IsDir: n.isDir}, nil
}

func (f *fakeFS) Scandir(ctx context.Context, path string) (func() (fsadapter.Entry, bool, error), error) {
	n, ok := f.nodes[path]
	if !ok || !n.isDir {
		return nil, fmt.Errorf("fakeFS: not a directory %q", path)
	}
	i := 0
	next := func() (fsadapter.Entry, bool, error) {
		select {
		case <-ctx.Done():
			return fsadapter.Entry{}, false, ctx.Err()
		default:
		}
		if i >= len(n.children) {
			return fsadapter.Entry{}, false, nil
		}
		c := n.children[i]
		i++
		full := path + "/" + c.name
		st := fsadapter.Stat{Size: c.size, DiskUsage: c.diskUsage, IsDir: c.isDir}
		return fsadapter.Entry{Name: c.name, Path: full, Stat: &st}, true, nil
	}
	return next, nil
}
