package cardapios

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListQuery is the typed form of the listing query parameters. Zero values
// mean "not supplied": empty strings leave their filter out, Limit/Page of 0
// mean unpaginated.
type ListQuery struct {
	Agrupamento     string
	TipoAtendimento string
	TipoUnidade     string
	Idade           string

	// Statuses is the editor's multi-value status filter. Empty defaults to
	// PUBLICADO, which is also the only value the public routes can see.
	Statuses []string

	// Data is the exact date from the path; when set it wins over the range.
	Data        string
	DataInicial string
	DataFinal   string

	Limit int64
	Page  int64
}

// Filter builds the find filter document.
func (q ListQuery) Filter() bson.M {
	f := bson.M{}
	if len(q.Statuses) > 0 {
		f["status"] = bson.M{"$in": q.Statuses}
	} else {
		f["status"] = StatusPublicado
	}
	if q.Agrupamento != "" {
		f["agrupamento"] = q.Agrupamento
	}
	if q.TipoAtendimento != "" {
		f["tipo_atendimento"] = q.TipoAtendimento
	}
	if q.TipoUnidade != "" {
		f["tipo_unidade"] = q.TipoUnidade
	}
	if q.Idade != "" {
		f["idade"] = q.Idade
	}
	if q.Data != "" {
		f["data"] = q.Data
	} else {
		// dates are lexicographically sortable strings, so the range is a
		// plain string comparison
		dr := bson.M{}
		if q.DataInicial != "" {
			dr["$gte"] = q.DataInicial
		}
		if q.DataFinal != "" {
			dr["$lte"] = q.DataFinal
		}
		if len(dr) > 0 {
			f["data"] = dr
		}
	}
	return f
}

// Offsets returns the skip/limit directives: page and limit both positive
// paginate, limit alone caps, page alone has no effect.
func (q ListQuery) Offsets() (skip, limit int64) {
	if q.Page > 0 && q.Limit > 0 {
		return q.Limit * (q.Page - 1), q.Limit
	}
	if q.Limit > 0 {
		return 0, q.Limit
	}
	return 0, 0
}

// FindOptions builds the sort/skip/limit/projection directives. The public
// projection hides the identifier, status and original menu text.
func (q ListQuery) FindOptions(projected bool) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "data", Value: -1}})
	if projected {
		opts.SetProjection(bson.M{"_id": 0, "status": 0, "cardapio_original": 0})
	}
	skip, limit := q.Offsets()
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return opts
}
