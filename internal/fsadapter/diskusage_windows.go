//go:build windows

package fsadapter

import "os"

// statFromInfo on Windows has no portable allocated-block count available
// from os.FileInfo alone, so disk usage falls back to logical size, same as
// the spec allows ("may equal size_bytes when the FS adapter cannot report
// allocation").
func statFromInfo(info os.FileInfo) Stat {
	isDir := info.IsDir()
	size := info.Size()
	if isDir {
		return Stat{Size: 0, DiskUsage: 0, IsDir: true}
	}
	return Stat{Size: size, DiskUsage: size, IsDir: false}
}
