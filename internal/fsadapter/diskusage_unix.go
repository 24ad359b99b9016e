//go:build !windows

package fsadapter

import (
	"os"
	"syscall"
)

// statFromInfo builds a Stat from os.FileInfo, pulling allocated block
// count from the platform-specific Sys() payload when available. This is
// the same syscall.Stat_t.Blocks trick the teacher's disk-usage peers in
// the reference corpus reach for — no third-party syscall wrapper is
// needed on POSIX, so none is imported here (see DESIGN.md).
func statFromInfo(info os.FileInfo) Stat {
	isDir := info.IsDir()
	size := info.Size()
	usage := size

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		usage = int64(st.Blocks) * 512
	}

	if isDir {
		// Directory sizes are computed by the finalizer from children, not
		// from the directory inode's own allocation.
		return Stat{Size: 0, DiskUsage: 0, IsDir: true}
	}
	return Stat{Size: size, DiskUsage: usage, IsDir: false}
}
