package cardapios

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines persistence operations for menu records. Listing results
// are projection-driven, so they come back as raw documents.
type Repository interface {
	List(ctx context.Context, q ListQuery, projected bool) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) ([]bson.M, error)
	DistinctIdades(ctx context.Context, tipoUnidade string) ([]string, error)
	BulkUpsert(ctx context.Context, items []Cardapio) error
}

// BulkError reports the first failed operation of an ordered batch: the
// store aborts the remainder, so Index also tells the caller how many
// operations were applied.
type BulkError struct {
	Index int
	Err   error
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("bulk upsert aborted at operation %d: %v", e.Index, e.Err)
}

func (e *BulkError) Unwrap() error { return e.Err }
