package cardapios

import (
	"context"
	"errors"
	"fmt"

	"github.com/pratoaberto/api/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over the `cardapios` collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) List(ctx context.Context, q ListQuery, projected bool) ([]bson.M, error) {
	metrics.StoreQueries.WithLabelValues("cardapios", "find").Inc()
	cur, err := m.col.Find(ctx, q.Filter(), q.FindOptions(projected))
	if err != nil {
		return nil, fmt.Errorf("list cardapios: %w", err)
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode cardapios: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) ([]bson.M, error) {
	metrics.StoreQueries.WithLabelValues("cardapios", "find").Inc()
	cur, err := m.col.Find(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("get cardapio: %w", err)
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode cardapio: %w", err)
	}
	return out, nil
}

// DistinctIdades samples the first 100 menu records store-wide and collects
// the distinct idade values among those matching the given tipo_unidade. The
// $limit-before-$match order mirrors the production pipeline: it is a
// sampling cap, not a correctness guarantee.
func (m *MongoRepo) DistinctIdades(ctx context.Context, tipoUnidade string) ([]string, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$limit", Value: 100}},
		bson.D{{Key: "$match", Value: bson.D{{Key: "tipo_unidade", Value: tipoUnidade}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tipo_unidade"},
			{Key: "idades", Value: bson.D{{Key: "$addToSet", Value: "$idade"}}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: "idades", Value: 1}}}},
	}
	metrics.StoreQueries.WithLabelValues("cardapios", "aggregate").Inc()
	cur, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate idades: %w", err)
	}
	var rows []struct {
		Idades []string `bson:"idades"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode idades: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].Idades, nil
}

// BulkUpsert queues one write per record, in array order, into a single
// ordered batch: records carrying an identifier become a field-level $set
// keyed on it (a miss is a no-op), the rest become inserts. The store aborts
// the remaining batch on the first failure, reported as a *BulkError.
func (m *MongoRepo) BulkUpsert(ctx context.Context, items []Cardapio) error {
	models := make([]mongo.WriteModel, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.HasID() {
			models = append(models, mongo.NewUpdateOneModel().
				SetFilter(bson.M{"_id": it.ID}).
				SetUpdate(bson.M{"$set": it.Fields()}))
		} else {
			models = append(models, mongo.NewInsertOneModel().SetDocument(it.Fields()))
		}
	}
	if len(models) == 0 {
		return nil
	}
	metrics.StoreQueries.WithLabelValues("cardapios", "bulkWrite").Inc()
	_, err := m.col.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		var bwe mongo.BulkWriteException
		if errors.As(err, &bwe) && len(bwe.WriteErrors) > 0 {
			we := bwe.WriteErrors[0]
			return &BulkError{Index: we.Index, Err: we}
		}
		return fmt.Errorf("bulk upsert: %w", err)
	}
	return nil
}
