package config

import "github.com/prenomnom/dux/internal/model"

// systemRules covers OS- and editor-level temp/cache files common to any
// domain: swap files, OS metadata, trash, and general-purpose log/tmp
// extensions. Grounded on the teacher's internal/cleaner system domain
// list and the original Python default pattern catalog's generic section.
func systemRules() []model.PatternRule {
	return []model.PatternRule{
		{Name: "os-metadata", Pattern: "**/.DS_Store", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "windows-thumbs", Pattern: "**/Thumbs.db", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "editor-swap-files", Pattern: "**/*.{swp,swo,bak}", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "trash", Pattern: "**/.Trash/**", Category: model.Temp, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "log-files", Pattern: "**/*.log", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "tmp-files", Pattern: "**/*.tmp", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "core-dumps", Pattern: "**/core.[0-9]*", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "generic-cache-dir", Pattern: "**/.cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "build-dir-generic", Pattern: "**/CMakeFiles/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "zig-cache", Pattern: "**/zig-cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
	}
}
