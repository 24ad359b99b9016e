// Package fsadapter is the single point of contact between the scanner and
// the real filesystem: expanding paths, existence checks, stat, and
// directory enumeration. Keeping this behind an interface is what lets the
// scanner package be tested against an in-memory fake instead of a real
// disk (see fake_fs_test.go in the scanner package).
package fsadapter

import "context"

// Stat is what the adapter reports for one path: logical size, allocated
// disk usage, and whether it is a directory. No symlink is ever followed —
// a symlink stats as whatever os.Lstat-equivalent semantics report for the
// link itself.
type Stat struct {
	Size      int64
	DiskUsage int64
	IsDir     bool
}

// Entry is one item yielded while enumerating a directory. Stat is nil when
// the individual entry could not be stat'd — the caller counts that as an
// access error and moves on; it never aborts the whole scan.
type Entry struct {
	Name string
	Path string
	Stat *Stat
}

// FS is the capability set the scanner needs from the filesystem.
type FS interface {
	// ExpandUser expands a leading "~" to the user's home directory.
	ExpandUser(path string) (string, error)

	// Exists reports whether path exists (following no symlinks).
	Exists(path string) bool

	// StatPath stats path directly, without resolving symlinks.
	StatPath(path string) (Stat, error)

	// Scandir lazily enumerates path's immediate children. The returned
	// function yields one Entry per call until the directory is exhausted
	// (ok == false) or an error terminates enumeration early.
	Scandir(ctx context.Context, path string) (func() (Entry, bool, error), error)
}
