package config

import "github.com/prenomnom/dux/internal/model"

// dataMLRules covers data-science and ML tooling caches: Jupyter
// checkpoints, Hugging Face / PyTorch / Ollama / Whisper model caches.
// Grounded on the original Python default pattern catalog's data/ML
// section for the model-cache patterns, and on the teacher's
// internal/cleaner/dataml.go W&B and MLflow sections for wandb-runs and
// mlflow-runs, which have no original_source equivalent (see DESIGN.md).
func dataMLRules() []model.PatternRule {
	return []model.PatternRule{
		{Name: "jupyter-checkpoints", Pattern: "**/.ipynb_checkpoints/**", Category: model.Temp, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "huggingface-cache", Pattern: "**/huggingface/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "torch-hub-cache", Pattern: "**/torch/hub/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "whisper-cache", Pattern: "**/whisper/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "ollama-models", Pattern: "**/.ollama/models/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "mlflow-runs", Pattern: "**/mlruns/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir},
		{Name: "wandb-runs", Pattern: "**/wandb/**", Category: model.BuildArtifact, ApplyTo: model.ApplyDir, StopRecursion: true},
	}
}
