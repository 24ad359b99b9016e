package config

import "github.com/prenomnom/dux/internal/model"

// devopsRules covers infrastructure tooling: container build contexts,
// Terraform/Ansible local state and caches, and Kubernetes tooling caches.
// Grounded on the original Python default pattern catalog's devops section
// and the teacher's equivalent domain lists.
func devopsRules() []model.PatternRule {
	return []model.PatternRule{
		{Name: "terraform-providers", Pattern: "**/.terraform/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "terraform-state-backup", Pattern: "**/*.tfstate.backup", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "ansible-retry", Pattern: "**/*.retry", Category: model.Temp, ApplyTo: model.ApplyFile},
		{Name: "ansible-fact-cache", Pattern: "**/.ansible/tmp/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "vagrant-boxes", Pattern: "**/.vagrant/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "docker-buildx-cache", Pattern: "**/buildx-cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "kube-cache", Pattern: "**/.kube/cache/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "helm-cache", Pattern: "**/.cache/helm/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
		{Name: "precommit-cache", Pattern: "**/.cache/pre-commit/**", Category: model.Cache, ApplyTo: model.ApplyDir, StopRecursion: true},
	}
}
