package config

import "github.com/prenomnom/dux/internal/model"

// backendRules covers server-side language toolchains: pip/uv/poetry/conda
// caches, Go's module and build caches, Rust's Cargo target directory, and
// JVM build-tool output (Gradle/Maven/Ivy/SBT/Coursier). Grounded on the
// teacher's cleaner domain lists and the original Python defaults catalog.
func backendRules() []model.PatternRule {
	return []model.PatternRule{
		{Name: "python-venv", Pattern: "**/.venv/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "python-pycache", Pattern: "**/__pycache__/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "python-egg-info", Pattern: "**/*.egg-info/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "python-tox", Pattern: "**/.tox/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "pip-cache", Pattern: "**/pip/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "uv-cache", Pattern: "**/uv/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "poetry-cache", Pattern: "**/pypoetry/cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "conda-pkgs", Pattern: "**/pkgs/**", Category: model.Cache, ApplyTo: model.ApplyDir},
		{Name: "go-mod-cache", Pattern: "**/go/pkg/mod/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "go-build-cache", Pattern: "**/go-build/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "cargo-target", Pattern: "**/target/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "rustup-toolchains", Pattern: "**/.rustup/toolchains/**", Category: model.Cache, ApplyTo: model.ApplyDir},
		{Name: "nuget-packages", Pattern: "**/packages/**", Category: model.Cache, ApplyTo: model.ApplyDir},
		{Name: "composer-cache", Pattern: "**/composer/cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "bundler-cache", Pattern: "**/vendor/bundle/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "gradle-caches", Pattern: "**/.gradle/caches/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "maven-repository", Pattern: "**/.m2/repository/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "ivy-cache", Pattern: "**/.ivy2/cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "sbt-target", Pattern: "**/.sbt/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir},
		{Name: "coursier-cache", Pattern: "**/.cache/coursier/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
	}
}
