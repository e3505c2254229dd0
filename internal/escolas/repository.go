package escolas

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound reports a lookup for a school id that does not exist.
var ErrNotFound = errors.New("escola not found")

// Repository defines persistence operations for schools. Result shapes are
// projection-driven (the listing hides different fields than the detail), so
// documents come back raw.
type Repository interface {
	// SearchByName returns at most limit {_id, nome} summaries whose nome
	// matches the wildcard pattern for the given term.
	SearchByName(ctx context.Context, nome string, limit int64) ([]bson.M, error)
	// ListAll returns every school, hiding tipo_unidade, tipo_atendimento,
	// agrupamento and telefone.
	ListAll(ctx context.Context) ([]bson.M, error)
	// GetByID returns the school document without its _id, or ErrNotFound.
	GetByID(ctx context.Context, id int64) (bson.M, error)
}
