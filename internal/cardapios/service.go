package cardapios

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service exposes the menu-record operations backing the public and editor
// routes.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List serves the public listing: the status filter is forced to PUBLICADO
// and the public projection hides the identifier, status and original text.
func (s *Service) List(ctx context.Context, q ListQuery) ([]bson.M, error) {
	q.Statuses = nil
	return s.repo.List(ctx, q, true)
}

// ListEditor serves the editor listing: caller-supplied statuses (default
// PUBLICADO) and no projection.
func (s *Service) ListEditor(ctx context.Context, q ListQuery) ([]bson.M, error) {
	return s.repo.List(ctx, q, false)
}

// Get fetches a single record by its opaque identifier, materialized so an
// empty result is observable.
func (s *Service) Get(ctx context.Context, id primitive.ObjectID) ([]bson.M, error) {
	return s.repo.GetByID(ctx, id)
}

// Upsert applies an editor-submitted batch in array order.
func (s *Service) Upsert(ctx context.Context, items []Cardapio) error {
	return s.repo.BulkUpsert(ctx, items)
}
