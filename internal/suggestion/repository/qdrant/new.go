package qdrant

import (
	"task-suggestion-service/internal/suggestion/repository"
	pkgLog "task-suggestion-service/pkg/log"
	pkgQdrant "task-suggestion-service/pkg/qdrant"
)

const (
	payloadVersion  = "registry_version"
	payloadModel    = "embedding_model"
	payloadCategory = "category"
	payloadIndex    = "index"
	payloadPhrase   = "phrase"

	scrollPageSize = 256
)

type implRepository struct {
	client         *pkgQdrant.Client
	collectionName string
	l              pkgLog.Logger
}

// New creates a Qdrant-backed reference vector repository.
func New(client *pkgQdrant.Client, collectionName string, l pkgLog.Logger) repository.ReferenceRepository {
	return &implRepository{
		client:         client,
		collectionName: collectionName,
		l:              l,
	}
}
