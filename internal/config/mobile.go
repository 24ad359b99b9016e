package config

import "github.com/prenomnom/dux/internal/model"

// mobileRules covers iOS/Android/cross-platform tooling output. Grounded
// on the teacher's cleaner domain lists (Xcode DerivedData, CocoaPods,
// Gradle caches shared with backend.go, Flutter/React Native build trees).
func mobileRules() []model.PatternRule {
	return []model.PatternRule{
		{Name: "xcode-derived-data", Pattern: "**/DerivedData/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "xcode-archives", Pattern: "**/Archives/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir},
		{Name: "cocoapods-pods", Pattern: "**/Pods/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "android-gradle-build", Pattern: "**/app/build/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "android-studio-caches", Pattern: "**/.AndroidStudio*/system/caches/**", Category: model.Cache, ApplyTo: model.ApplyDir},
		{Name: "flutter-build", Pattern: "**/.dart_tool/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "flutter-pub-cache", Pattern: "**/.pub-cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "react-native-build", Pattern: "**/android/build/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "fastlane-report", Pattern: "**/fastlane/report.xml", Category: model.Temp, ApplyTo: model.ApplyFile},
	}
}
