package config

import "github.com/prenomnom/dux/internal/model"

// frontendRules covers JS/TS/web tooling: package manager stores, bundler
// output, and framework build caches. Grounded on the teacher's
// internal/cleaner/frontend.go domain list and on the original Python
// default pattern catalog (dux/config/defaults.py's frontend section).
func frontendRules() []model.PatternRule {
	return []model.PatternRule{
		{Name: "node_modules", Pattern: "**/node_modules/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "bower_components", Pattern: "**/bower_components/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "next-build", Pattern: "**/.next/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "nuxt-build", Pattern: "**/.nuxt/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "vite-cache", Pattern: "**/.vite/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "parcel-cache", Pattern: "**/.parcel-cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "turbo-cache", Pattern: "**/.turbo/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "eslint-cache", Pattern: "**/.eslintcache", Category: model.Cache, ApplyTo: model.ApplyFile},
		{Name: "webpack-dist", Pattern: "**/dist/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "generic-build", Pattern: "**/build/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "coverage-report", Pattern: "**/coverage/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "npm-cache", Pattern: "**/.npm/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "yarn-cache", Pattern: "**/.yarn/cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "pnpm-store", Pattern: "**/.pnpm-store/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "storybook-build", Pattern: "**/storybook-static/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
	}
}
