package escolas

import (
	"context"
	"fmt"

	"github.com/pratoaberto/api/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository over the `escolas` collection.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) SearchByName(ctx context.Context, nome string, limit int64) ([]bson.M, error) {
	filter := bson.M{"nome": primitive.Regex{Pattern: NamePattern(nome), Options: "i"}}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "nome": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	metrics.StoreQueries.WithLabelValues("escolas", "find").Inc()
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search escolas: %w", err)
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode escolas: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) ListAll(ctx context.Context) ([]bson.M, error) {
	opts := options.Find().SetProjection(bson.M{
		"tipo_unidade":     0,
		"tipo_atendimento": 0,
		"agrupamento":      0,
		"telefone":         0,
	})
	metrics.StoreQueries.WithLabelValues("escolas", "find").Inc()
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list escolas: %w", err)
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode escolas: %w", err)
	}
	return out, nil
}

func (m *MongoRepo) GetByID(ctx context.Context, id int64) (bson.M, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0})
	metrics.StoreQueries.WithLabelValues("escolas", "findOne").Inc()
	var doc bson.M
	if err := m.col.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get escola: %w", err)
	}
	return doc, nil
}
